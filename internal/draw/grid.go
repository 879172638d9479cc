package draw

// Block characters for drawing.
const (
	BlockFull   = '█'
	BlockLight  = '░'
	BlockMedium = '▒'
	BlockDark   = '▓'
	BlockEmpty  = ' '
	FoodMark    = '●'
)

// Block is what occupies one arena cell.
type Block uint8

const (
	Empty Block = iota
	Wall
	Body
	Head
	Food
)

// glyph returns the character drawn for a block. The overlay dims every
// block by one shade so the arena stays visible beneath it.
func (b Block) glyph(overlay bool) rune {
	switch b {
	case Wall:
		if overlay {
			return BlockDark
		}
		return BlockFull
	case Body:
		if overlay {
			return BlockMedium
		}
		return BlockDark
	case Head:
		if overlay {
			return BlockDark
		}
		return BlockFull
	case Food:
		return FoodMark
	default:
		if overlay {
			return BlockLight
		}
		return BlockEmpty
	}
}

// Grid is a block buffer for the arena. Each logical cell is rendered as
// a blockWidth x blockHeight run of terminal characters. Only cells that
// changed since the last render are written.
type Grid struct {
	width       int
	height      int
	blockWidth  int
	blockHeight int
	originRow   int // 1-based terminal row of arena row 0

	blocks  []Block
	overlay bool

	drawn      []rune // Glyph last written per cell, 0 if unknown
	forceDirty bool
}

// NewGrid creates a grid of width x height cells whose top-left corner is
// drawn at terminal row originRow (1-based, before any writer offset).
func NewGrid(width, height, blockWidth, blockHeight, originRow int) *Grid {
	if blockWidth < 1 {
		blockWidth = 1
	}
	if blockHeight < 1 {
		blockHeight = 1
	}
	return &Grid{
		width:       width,
		height:      height,
		blockWidth:  blockWidth,
		blockHeight: blockHeight,
		originRow:   originRow,
		blocks:      make([]Block, width*height),
		drawn:       make([]rune, width*height),
		forceDirty:  true,
	}
}

// TerminalWidth returns the number of terminal columns the grid covers.
func (g *Grid) TerminalWidth() int {
	return g.width * g.blockWidth
}

// TerminalHeight returns the number of terminal rows the grid covers.
func (g *Grid) TerminalHeight() int {
	return g.height * g.blockHeight
}

// Clear resets all cells to Empty and removes the overlay.
func (g *Grid) Clear() {
	clear(g.blocks)
	g.overlay = false
}

// Set places b at cell (x, y). Out of range cells are ignored.
func (g *Grid) Set(x, y int, b Block) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.blocks[y*g.width+x] = b
	}
}

// At returns the block at cell (x, y), or Empty when out of range.
func (g *Grid) At(x, y int) Block {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Empty
	}
	return g.blocks[y*g.width+x]
}

// SetOverlay toggles the translucent overlay drawn over the whole grid.
func (g *Grid) SetOverlay(on bool) {
	g.overlay = on
}

// Border fills the outermost ring of cells with walls.
func (g *Grid) Border() {
	for x := 0; x < g.width; x++ {
		g.Set(x, 0, Wall)
		g.Set(x, g.height-1, Wall)
	}
	for y := 0; y < g.height; y++ {
		g.Set(0, y, Wall)
		g.Set(g.width-1, y, Wall)
	}
}

// ForceRedraw makes the next Render write every cell.
func (g *Grid) ForceRedraw() {
	g.forceDirty = true
}

// Render writes changed cells to cw.
func (g *Grid) Render(cw *ChunkWriter) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			ch := g.blocks[i].glyph(g.overlay)
			if !g.forceDirty && g.drawn[i] == ch {
				continue
			}
			g.drawn[i] = ch
			g.writeCell(cw, x, y, ch)
		}
	}
	g.forceDirty = false
}

func (g *Grid) writeCell(cw *ChunkWriter, x, y int, ch rune) {
	col := x*g.blockWidth + 1
	for r := 0; r < g.blockHeight; r++ {
		cw.MoveCursor(col, g.originRow+y*g.blockHeight+r)
		for c := 0; c < g.blockWidth; c++ {
			// Food is a single mark padded with blanks.
			if ch == FoodMark && c > 0 {
				cw.WriteRune(BlockEmpty)
				continue
			}
			cw.WriteRune(ch)
		}
	}
}
