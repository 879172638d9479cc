// Package config centralizes all tunable game parameters.
package config

import "time"

// Rendering
const (
	BlockWidth  = 2 // Terminal columns per cell
	BlockHeight = 1 // Terminal rows per cell
	HUDRows     = 1 // Rows above the arena reserved for the status line
)

// Loop rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// SSH sessions
const (
	InactivityDisconnectUser = 120 // Seconds without input before disconnect
	MaxUsernameLength        = 16
)
