// Package snake implements the snake body: an ordered run of grid cells
// with a heading, moved one cell at a time.
package snake

import "github.com/gammazero/deque"

// Cell is one arena grid position.
type Cell struct {
	X, Y int
}

// Direction is an axis-aligned heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// step returns the cell adjacent to c in direction d.
func (c Cell) step(d Direction) Cell {
	switch d {
	case Up:
		return Cell{X: c.X, Y: c.Y - 1}
	case Down:
		return Cell{X: c.X, Y: c.Y + 1}
	case Left:
		return Cell{X: c.X - 1, Y: c.Y}
	default:
		return Cell{X: c.X + 1, Y: c.Y}
	}
}

// Snake holds the body (head at the front), the heading and the cell most
// recently dropped from the tail.
type Snake struct {
	body        deque.Deque[Cell]
	direction   Direction
	lastRemoved *Cell // nil until the first move
}

// New builds the initial three-cell body starting at (x, y), heading Right.
// The cell at (x+2, y) is the head.
func New(x, y int) *Snake {
	s := &Snake{direction: Right}
	s.body.PushBack(Cell{X: x + 2, Y: y})
	s.body.PushBack(Cell{X: x + 1, Y: y})
	s.body.PushBack(Cell{X: x, Y: y})
	return s
}

// Head returns the front cell.
func (s *Snake) Head() Cell {
	if s.body.Len() == 0 {
		panic("snake: head of empty body")
	}
	return s.body.Front()
}

// Tail returns the back cell.
func (s *Snake) Tail() Cell {
	if s.body.Len() == 0 {
		panic("snake: tail of empty body")
	}
	return s.body.Back()
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a head-first copy of the body cells.
func (s *Snake) Body() []Cell {
	cells := make([]Cell, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// NextHead reports where the head would land if the heading became dir
// (or stayed the same when dir is nil). It does not mutate the snake.
func (s *Snake) NextHead(dir *Direction) Cell {
	moving := s.direction
	if dir != nil {
		moving = *dir
	}
	return s.Head().step(moving)
}

// MoveForward optionally turns to dir, then advances one cell: the new
// head is pushed and the old tail is popped and remembered. Reversal
// legality is the caller's concern.
func (s *Snake) MoveForward(dir *Direction) {
	if dir != nil {
		s.direction = *dir
	}
	s.body.PushFront(s.Head().step(s.direction))

	removed := s.body.PopBack()
	s.lastRemoved = &removed
}

// RestoreTail re-appends the most recently removed tail cell, growing the
// body by one. It panics if the snake has never moved.
func (s *Snake) RestoreTail() {
	if s.lastRemoved == nil {
		panic("snake: restore tail before any move")
	}
	s.body.PushBack(*s.lastRemoved)
}

// Overlaps reports whether c matches a body cell other than the current
// tail. The tail is vacated on the next move, so landing on it is not a
// collision.
func (s *Snake) Overlaps(c Cell) bool {
	for i := 0; i < s.body.Len()-1; i++ {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}
