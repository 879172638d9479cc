package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/snake/internal/snake"
)

// step is a tick long enough to trigger exactly one movement.
const step = 0.11

func newTestGame(t *testing.T, width, height int) *Game {
	t.Helper()
	g, err := New(width, height, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return g
}

// steer moves s once per direction, growing by one cell after each move
// when grow is set.
func steer(s *snake.Snake, grow bool, dirs ...snake.Direction) {
	for _, d := range dirs {
		s.MoveForward(&d)
		if grow {
			s.RestoreTail()
		}
	}
}

// repeat returns d n times.
func repeat(d snake.Direction, n int) []snake.Direction {
	dirs := make([]snake.Direction, n)
	for i := range dirs {
		dirs[i] = d
	}
	return dirs
}

// fillInterior grows a snake from the left wall of an 8x8 arena through
// the first n interior cells, row by row in a serpentine. The tail stays
// outside the walls.
func fillInterior(n int) *snake.Snake {
	s := snake.New(-2, 1) // head on the wall at (0,1)
	var path []snake.Direction
	path = append(path, repeat(snake.Right, 6)...)
	for row := 2; row <= 6; row++ {
		path = append(path, snake.Down)
		if row%2 == 0 {
			path = append(path, repeat(snake.Left, 5)...)
		} else {
			path = append(path, repeat(snake.Right, 5)...)
		}
	}
	steer(s, true, path[:n]...)
	return s
}

func initialBody() []snake.Cell {
	return []snake.Cell{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 20, 20)

	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, initialBody(), g.Snake().Body())
	food, exists := g.Food()
	assert.True(t, exists)
	assert.Equal(t, snake.Cell{X: 6, Y: 4}, food)
	w, h := g.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)
}

func TestNewGameRejectsSmallArena(t *testing.T) {
	_, err := New(7, 20)
	assert.ErrorIs(t, err, ErrArenaTooSmall)

	_, err = New(20, 3)
	assert.ErrorIs(t, err, ErrArenaTooSmall)
}

func TestTickBelowMovingPeriodDoesNotMove(t *testing.T) {
	g := newTestGame(t, 20, 20)

	for i := 0; i < 3; i++ {
		g.Tick(0.03)
	}
	assert.Equal(t, initialBody(), g.Snake().Body())

	g.Tick(0.03)
	body := g.Snake().Body()
	assert.Equal(t, snake.Cell{X: 5, Y: 2}, body[0])
	assert.Equal(t, snake.Cell{X: 3, Y: 2}, body[len(body)-1])
	assert.NotContains(t, body, snake.Cell{X: 2, Y: 2})
	assert.Equal(t, 0.0, g.waitingTime)
}

func TestHandleKeyRejectsReversal(t *testing.T) {
	g := newTestGame(t, 20, 20)

	g.HandleKey(KeyLeft)

	assert.Equal(t, snake.Right, g.Snake().Direction())
	assert.Equal(t, initialBody(), g.Snake().Body())
}

func TestHandleKeyMovesImmediately(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.Tick(0.05)

	g.HandleKey(KeyDown)

	assert.Equal(t, snake.Down, g.Snake().Direction())
	assert.Equal(t, snake.Cell{X: 4, Y: 3}, g.Snake().Head())
	assert.Equal(t, 3, g.Snake().Len())
	assert.Equal(t, 0.0, g.waitingTime)
}

func TestHandleKeyIgnoresOtherKeys(t *testing.T) {
	g := newTestGame(t, 20, 20)

	g.HandleKey(KeyOther)

	assert.Equal(t, initialBody(), g.Snake().Body())
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 20, 20)

	for g.Snake().Head().X < 18 {
		g.Tick(step)
		require.False(t, g.GameOver())
	}
	before := g.Snake().Body()

	g.Tick(step)

	assert.True(t, g.GameOver())
	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, before, g.Snake().Body())
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.snake = snake.New(4, 5)
	steer(g.snake, true, snake.Down, snake.Left)
	before := g.Snake().Body()
	require.Equal(t, []snake.Cell{
		{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5},
	}, before)

	g.HandleKey(KeyUp)

	assert.True(t, g.GameOver())
	assert.Equal(t, before, g.Snake().Body())
}

func TestMovingOntoTailCellIsAllowed(t *testing.T) {
	g := newTestGame(t, 20, 20)
	// A 2x2 loop: the head chases the tail into the cell it vacates.
	g.snake = snake.New(4, 5)
	steer(g.snake, true, snake.Down)
	steer(g.snake, false, snake.Left)
	require.Equal(t, []snake.Cell{
		{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5},
	}, g.Snake().Body())

	g.HandleKey(KeyUp)

	assert.False(t, g.GameOver())
	assert.Equal(t, snake.Cell{X: 5, Y: 5}, g.Snake().Head())
	assert.Equal(t, 4, g.Snake().Len())
}

func TestEatingFoodGrowsSnake(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.food = snake.Cell{X: 5, Y: 2}

	g.Tick(step)

	assert.Equal(t, snake.Cell{X: 5, Y: 2}, g.Snake().Head())
	_, exists := g.Food()
	assert.False(t, exists)
	assert.Equal(t, 4, g.Snake().Len())
	assert.Equal(t, snake.Cell{X: 2, Y: 2}, g.Snake().Tail())
}

func TestFoodRespawnsOnNextTick(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.food = snake.Cell{X: 5, Y: 2}
	g.Tick(step)

	require.NoError(t, g.Tick(0.01))

	food, exists := g.Food()
	require.True(t, exists)
	assert.False(t, g.Snake().Overlaps(food))
	assert.True(t, g.inside(food))
}

func TestRestartAfterDelay(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.HandleKey(KeyUp)
	g.HandleKey(KeyUp) // (4,0) is the wall
	require.True(t, g.GameOver())

	g.HandleKey(KeyDown)
	assert.Equal(t, snake.Cell{X: 4, Y: 1}, g.Snake().Head(), "keys are ignored after game over")

	g.Tick(0.5)
	g.Tick(0.5)
	assert.True(t, g.GameOver(), "restart needs strictly more than the delay")

	g.Tick(0.01)

	assert.False(t, g.GameOver())
	assert.Equal(t, initialBody(), g.Snake().Body())
	assert.Equal(t, snake.Right, g.Snake().Direction())
	food, exists := g.Food()
	assert.True(t, exists)
	assert.Equal(t, snake.Cell{X: 6, Y: 4}, food)
	assert.Equal(t, 0.0, g.waitingTime)
}

func TestSpawnFoodStaysInside(t *testing.T) {
	g := newTestGame(t, 8, 10)

	for i := 0; i < 500; i++ {
		require.NoError(t, g.SpawnFood())
		food, exists := g.Food()
		require.True(t, exists)
		assert.True(t, g.inside(food), "food %v outside the walls", food)
		assert.False(t, g.Snake().Overlaps(food))
	}
}

func TestSpawnFoodFullArena(t *testing.T) {
	g := newTestGame(t, 8, 8)
	g.snake = fillInterior(36)
	g.foodExists = false

	err := g.SpawnFood()

	assert.ErrorIs(t, err, ErrArenaFull)
	_, exists := g.Food()
	assert.False(t, exists)
}

func TestSpawnFoodFindsLastFreeCell(t *testing.T) {
	g := newTestGame(t, 8, 8)
	g.snake = fillInterior(35)

	require.NoError(t, g.SpawnFood())

	food, exists := g.Food()
	assert.True(t, exists)
	assert.Equal(t, snake.Cell{X: 1, Y: 6}, food)
}

func TestTickWithFullArenaKeepsRunning(t *testing.T) {
	g := newTestGame(t, 8, 8)
	g.snake = fillInterior(36)
	g.foodExists = false

	err := g.Tick(0.01)

	assert.NoError(t, err, "a full arena is not a tick failure")
	assert.False(t, g.GameOver())
	_, exists := g.Food()
	assert.False(t, exists)
}
