// Package game runs the snake simulation: key handling, timed movement
// ticks, food placement, collision resolution and the automatic restart
// after a game over.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/tomz197/snake/internal/snake"
)

var (
	// ErrArenaTooSmall is returned when the arena cannot hold the initial layout.
	ErrArenaTooSmall = errors.New("arena too small")
	// ErrArenaFull is returned when no free interior cell is left for food.
	ErrArenaFull = errors.New("no free cell for food")
)

// maxSpawnAttempts bounds rejection sampling before falling back to a scan.
const maxSpawnAttempts = 64

// State is the game phase.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// Key is a logical key delivered by the input collaborator.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// direction maps arrow-equivalent keys to a heading.
func (k Key) direction() (snake.Direction, bool) {
	switch k {
	case KeyUp:
		return snake.Up, true
	case KeyDown:
		return snake.Down, true
	case KeyLeft:
		return snake.Left, true
	case KeyRight:
		return snake.Right, true
	default:
		return 0, false
	}
}

// Game owns one snake, the food and the arena.
type Game struct {
	snake *snake.Snake

	food       snake.Cell
	foodExists bool

	width  int
	height int

	state       State
	waitingTime float64 // seconds since the last movement tick, or since death

	rng *rand.Rand
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// New creates a running game on a width x height arena.
func New(width, height int, opts ...Option) (*Game, error) {
	if width < MinArenaSize || height < MinArenaSize {
		return nil, fmt.Errorf("new game %dx%d (minimum %d): %w",
			width, height, MinArenaSize, ErrArenaTooSmall)
	}

	g := &Game{
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.restart()
	return g, nil
}

// restart resets the snake, the food and the timers.
func (g *Game) restart() {
	g.snake = snake.New(startX, startY)
	g.food = snake.Cell{X: defaultFoodX, Y: defaultFoodY}
	g.foodExists = true
	g.state = StateRunning
	g.waitingTime = 0
}

// HandleKey steers the snake. Non-arrow keys, keys during a game over and
// 180-degree reversals are ignored; any other direction moves immediately.
func (g *Game) HandleKey(key Key) {
	if g.state == StateGameOver {
		return
	}

	dir, ok := key.direction()
	if !ok {
		return
	}
	if dir == g.snake.Direction().Opposite() {
		return
	}

	g.moveSnake(&dir)
}

// Tick advances the clock by dt seconds. A full arena is not an error.
func (g *Game) Tick(dt float64) error {
	g.waitingTime += dt

	if g.state == StateGameOver {
		if g.waitingTime > RestartDelay {
			g.restart()
		}
		return nil
	}

	if !g.foodExists {
		// A full arena leaves food absent; the snake keeps moving.
		if err := g.SpawnFood(); err != nil && !errors.Is(err, ErrArenaFull) {
			return fmt.Errorf("tick: %w", err)
		}
	}

	if g.waitingTime > MovingPeriod {
		g.moveSnake(nil)
	}
	return nil
}

// moveSnake performs one movement tick, optionally forcing a heading.
func (g *Game) moveSnake(dir *snake.Direction) {
	if g.canMove(dir) {
		g.snake.MoveForward(dir)
		g.checkEating()
	} else {
		g.state = StateGameOver
	}

	g.waitingTime = 0
}

// canMove reports whether the next head lands on a free interior cell.
func (g *Game) canMove(dir *snake.Direction) bool {
	next := g.snake.NextHead(dir)
	if g.snake.Overlaps(next) {
		return false
	}
	return g.inside(next)
}

// inside reports whether c lies strictly within the border walls.
func (g *Game) inside(c snake.Cell) bool {
	return c.X > 0 && c.Y > 0 && c.X < g.width-1 && c.Y < g.height-1
}

func (g *Game) checkEating() {
	if g.foodExists && g.snake.Head() == g.food {
		g.foodExists = false
		g.snake.RestoreTail()
	}
}

// SpawnFood places food on a random interior cell not covered by the
// snake (tail excluded). It returns ErrArenaFull when no such cell exists.
func (g *Game) SpawnFood() error {
	for i := 0; i < maxSpawnAttempts; i++ {
		c := snake.Cell{
			X: 1 + g.rng.Intn(g.width-2),
			Y: 1 + g.rng.Intn(g.height-2),
		}
		if !g.snake.Overlaps(c) {
			g.placeFood(c)
			return nil
		}
	}

	var free []snake.Cell
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			c := snake.Cell{X: x, Y: y}
			if !g.snake.Overlaps(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return fmt.Errorf("spawn food (snake length %d): %w", g.snake.Len(), ErrArenaFull)
	}

	g.placeFood(free[g.rng.Intn(len(free))])
	return nil
}

func (g *Game) placeFood(c snake.Cell) {
	g.food = c
	g.foodExists = true
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// GameOver reports whether the snake has crashed.
func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}

// Snake returns the simulated snake. Callers must treat it as read-only.
func (g *Game) Snake() *snake.Snake {
	return g.snake
}

// Food returns the food cell and whether it currently exists.
func (g *Game) Food() (snake.Cell, bool) {
	return g.food, g.foodExists
}

// Size returns the arena dimensions.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}
