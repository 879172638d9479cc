package game

// Arena dimensions in cells, including the border walls.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
	MinArenaSize  = 8 // Smallest arena that fits the start layout and default food
)

// Initial layout, also used on every restart.
const (
	startX       = 2 // Tail cell of the initial snake
	startY       = 2
	defaultFoodX = 6
	defaultFoodY = 4
)

// Timing, in seconds.
const (
	MovingPeriod = 0.1 // Between automatic movement ticks
	RestartDelay = 1.0 // Game over screen before the automatic restart
)
