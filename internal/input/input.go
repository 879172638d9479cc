// Package input turns raw terminal bytes into discrete key events.
package input

import (
	"bufio"
	"context"

	"github.com/tomz197/snake/internal/game"
)

// Input holds the key events read since the previous frame, in arrival order.
type Input struct {
	Quit    bool
	Closed  bool // Underlying reader hit EOF or failed
	Keys    []game.Key
	Pressed []byte
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	closed  bool
	pending []byte // Unfinished escape sequence carried to the next read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits on a read error or once ctx is done.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		defer close(s.ch)
		for ctx.Err() == nil {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// parses them into key events. A trailing ESC or ESC [ is held back until
// the next call; it becomes a plain key only if nothing follows it.
func ReadInput(s *Stream) Input {
	var fresh []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			fresh = append(fresh, b)
		default:
			break drain
		}
	}

	buf := append(s.pending, fresh...)
	s.pending = nil

	final := len(fresh) == 0 || s.closed
	inp, rest := parse(buf, final)
	s.pending = rest
	inp.Closed = s.closed
	return inp
}

// Parse converts a complete batch of raw bytes into key events.
// Arrow keys arrive as CSI sequences: ESC [ A..D.
func Parse(buf []byte) Input {
	inp, _ := parse(buf, true)
	return inp
}

// parse converts buf into key events. Unless final is set, an unfinished
// escape sequence at the end of buf is returned unparsed as rest.
func parse(buf []byte, final bool) (inp Input, rest []byte) {
	if !final {
		if n := partialEscape(buf); n > 0 {
			rest = append([]byte(nil), buf[len(buf)-n:]...)
			buf = buf[:len(buf)-n]
		}
	}
	inp.Pressed = buf

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if key, ok := arrowKey(buf[i+2]); ok {
				inp.Keys = append(inp.Keys, key)
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03': // q or Ctrl+C
			inp.Quit = true
		case 'w', 'W', 'k', 'K':
			inp.Keys = append(inp.Keys, game.KeyUp)
		case 's', 'S', 'j', 'J':
			inp.Keys = append(inp.Keys, game.KeyDown)
		case 'a', 'A', 'h', 'H':
			inp.Keys = append(inp.Keys, game.KeyLeft)
		case 'd', 'D', 'l', 'L':
			inp.Keys = append(inp.Keys, game.KeyRight)
		default:
			inp.Keys = append(inp.Keys, game.KeyOther)
		}
	}

	return inp, rest
}

// partialEscape returns the length of an unfinished CSI prefix (ESC or
// ESC [) at the end of buf, or 0.
func partialEscape(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

func arrowKey(code byte) (game.Key, bool) {
	switch code {
	case 'A':
		return game.KeyUp, true
	case 'B':
		return game.KeyDown, true
	case 'C':
		return game.KeyRight, true
	case 'D':
		return game.KeyLeft, true
	}
	return game.KeyOther, false
}
