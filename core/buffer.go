package core

import "github.com/gdamore/tcell/v2"

// Cell is a single character cell with its display attributes
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a fixed-size 2D grid of cells. All writes outside the grid are
// silently dropped; callers never need to pre-clip coordinates.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer of the given dimensions filled with spaces
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear(' ', tcell.StyleDefault)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Set writes a cell, reporting whether the coordinates were in range
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
	return true
}

// SetRune replaces the rune at a position, keeping the existing style
func (b *Buffer) SetRune(x, y int, r rune) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.cells[y*b.width+x].Rune = r
	return true
}

// Get returns the cell at a position
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// MapStyle applies fn to the style of the cell at a position.
// Used for region tints that keep the underlying characters.
func (b *Buffer) MapStyle(x, y int, fn func(Cell) tcell.Style) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	c := &b.cells[y*b.width+x]
	c.Style = fn(*c)
	return true
}

// Clear overwrites every cell with the given rune and style
func (b *Buffer) Clear(r rune, style tcell.Style) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: r, Style: style}
	}
}

// Each visits every cell in row-major order
func (b *Buffer) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}
