// Package config provides shared configuration utilities.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is unset or not an integer.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// ArenaSize reads SNAKE_WIDTH and SNAKE_HEIGHT, raising either to minSize.
func ArenaSize(defaultWidth, defaultHeight, minSize int) (width, height int) {
	width = max(GetEnvInt("SNAKE_WIDTH", defaultWidth), minSize)
	height = max(GetEnvInt("SNAKE_HEIGHT", defaultHeight), minSize)
	return width, height
}
