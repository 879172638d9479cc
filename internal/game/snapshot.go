package game

import "github.com/tomz197/snake/internal/snake"

// Snapshot is an immutable copy of everything a renderer needs for one frame.
type Snapshot struct {
	Body       []snake.Cell // head first
	Food       snake.Cell
	FoodExists bool
	Width      int
	Height     int
	GameOver   bool
}

// Length returns the number of body cells.
func (s Snapshot) Length() int {
	return len(s.Body)
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:       g.snake.Body(),
		Food:       g.food,
		FoodExists: g.foodExists,
		Width:      g.width,
		Height:     g.height,
		GameOver:   g.state == StateGameOver,
	}
}
