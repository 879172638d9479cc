// Package loop drives a snake game from a terminal: it feeds key events
// and elapsed time into the simulation and renders a frame after each update.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
)

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the reader is exhausted, the session is
// idle for too long, or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the input reader

	s, err := newSession(ctx, r, w, opts)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	width, height := s.game.Size()
	s.logger.Info("session started", "width", width, "height", height)

	lastTime := time.Now()

	for s.running {
		select {
		case <-ctx.Done():
			s.running = false
			continue
		default:
		}

		frameStart := time.Now()
		s.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		s.processInput()
		if !s.running {
			break
		}

		// ===== UPDATE PHASE =====
		s.updateScreen()
		if err := s.game.Tick(s.delta.Seconds()); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		s.trackTransitions()

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	s.logger.Info("session ended", "games", s.games, "length", s.game.Snake().Len())
	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending key events and hands them to the game.
func (s *session) processInput() {
	inp := input.ReadInput(s.inputStream)

	if inp.Quit || inp.Closed {
		s.running = false
		return
	}

	if len(inp.Pressed) > 0 {
		s.lastInput = time.Now()
	} else if s.idleTimeout > 0 && time.Since(s.lastInput) > s.idleTimeout {
		s.logger.Info("disconnecting idle session", "idle", s.idleTimeout)
		s.running = false
		return
	}

	for _, key := range inp.Keys {
		s.game.HandleKey(key)
	}
}

// updateScreen recenters the arena when the terminal size changes.
func (s *session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	if termWidth == s.termWidth && termHeight == s.termHeight {
		return
	}

	s.termWidth = termWidth
	s.termHeight = termHeight
	s.offsetCol, s.offsetRow = s.centerOffset(termWidth, termHeight)
	s.chunkWriter.SetOffset(s.offsetCol, s.offsetRow)

	// Remove residue from the previous layout.
	draw.ClearScreen(s.writer)
	s.grid.ForceRedraw()
}

// centerOffset returns the 0-based offsets that center the layout in the terminal.
func (s *session) centerOffset(termWidth, termHeight int) (col, row int) {
	cols, rows := s.layoutSize()
	col = max((termWidth-cols)/2, 0)
	row = max((termHeight-rows)/2, 0)
	return col, row
}

// trackTransitions logs game over and restart edges. A restart repaints
// the whole grid to wipe the game over banner.
func (s *session) trackTransitions() {
	over := s.game.GameOver()
	switch {
	case over && !s.wasOver:
		s.logger.Info("game over", "game", s.games, "length", s.game.Snake().Len())
	case !over && s.wasOver:
		s.games++
		s.grid.ForceRedraw()
		s.logger.Debug("game restarted", "game", s.games)
	}
	s.wasOver = over
}
