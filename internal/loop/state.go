package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
)

// Options configures a play session.
type Options struct {
	Width        int               // Arena width in cells, defaults to game.DefaultWidth
	Height       int               // Arena height in cells, defaults to game.DefaultHeight
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Logger       *log.Logger       // Defaults to a logger that discards everything
	Rand         *rand.Rand        // Food placement source, seeded from the clock when nil
	IdleTimeout  time.Duration     // Ends the session after this long without input; 0 disables
}

// session holds the per-connection state of the driving loop.
type session struct {
	game         *game.Game
	grid         *draw.Grid
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	idleTimeout  time.Duration

	running   bool
	lastInput time.Time
	delta     time.Duration
	wasOver   bool // Game over flag seen on the previous frame
	games     int  // Games played in this session, including the current one

	// Layout, recomputed on terminal resize
	termWidth  int
	termHeight int
	offsetCol  int
	offsetRow  int
}

// newSession creates the game and the rendering resources. The input
// reader runs until ctx is done.
func newSession(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) (*session, error) {
	if opts.Width == 0 {
		opts.Width = game.DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = game.DefaultHeight
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var gameOpts []game.Option
	if opts.Rand != nil {
		gameOpts = append(gameOpts, game.WithRand(opts.Rand))
	}
	g, err := game.New(opts.Width, opts.Height, gameOpts...)
	if err != nil {
		return nil, err
	}

	return &session{
		game:         g,
		grid:         draw.NewGrid(opts.Width, opts.Height, config.BlockWidth, config.BlockHeight, config.HUDRows+1),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(ctx, r),
		termSizeFunc: opts.TermSizeFunc,
		logger:       opts.Logger,
		idleTimeout:  opts.IdleTimeout,
		running:      true,
		lastInput:    time.Now(),
		games:        1,
	}, nil
}

// layoutSize returns the terminal area taken by HUD, arena and hint line.
func (s *session) layoutSize() (cols, rows int) {
	return s.grid.TerminalWidth(), config.HUDRows + s.grid.TerminalHeight() + 1
}
