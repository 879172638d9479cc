package loop

import (
	"fmt"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/loop/config"
)

const (
	gameOverText = " G A M E   O V E R "
	controlsText = "Arrows/WASD/HJKL to steer, Q to quit"
)

// drawFrame polls a snapshot of the game and writes the changed cells and
// the HUD in one flush.
func (s *session) drawFrame() error {
	snap := s.game.Snapshot()

	fillGrid(s.grid, snap)
	s.grid.Render(s.chunkWriter)
	drawHUD(s.chunkWriter, snap, s.grid.TerminalWidth())
	if snap.GameOver {
		drawGameOver(s.chunkWriter, s.grid.TerminalWidth(), s.grid.TerminalHeight())
	}

	return s.chunkWriter.Flush()
}

// fillGrid maps a snapshot onto the block grid.
func fillGrid(grid *draw.Grid, snap game.Snapshot) {
	grid.Clear()
	grid.Border()

	if snap.FoodExists {
		grid.Set(snap.Food.X, snap.Food.Y, draw.Food)
	}
	for i, c := range snap.Body {
		if i == 0 {
			grid.Set(c.X, c.Y, draw.Head)
			continue
		}
		grid.Set(c.X, c.Y, draw.Body)
	}

	grid.SetOverlay(snap.GameOver)
}

// drawHUD draws the status line above the arena and the controls below it.
func drawHUD(cw *draw.ChunkWriter, snap game.Snapshot, width int) {
	status := fmt.Sprintf("Length: %-4d", snap.Length())
	cw.WriteAt(1, 1, status)

	rows := config.HUDRows + snap.Height*config.BlockHeight + 1
	hint := controlsText
	if len(hint) > width {
		hint = hint[:width]
	}
	cw.WriteAt(1, rows, hint)
}

// drawGameOver writes the banner across the middle of the arena. The grid
// re-renders those cells once the overlay is gone.
func drawGameOver(cw *draw.ChunkWriter, width, height int) {
	col := max((width-len(gameOverText))/2, 0) + 1
	row := config.HUDRows + height/2 + 1
	cw.WriteAt(col, row, gameOverText)
}
