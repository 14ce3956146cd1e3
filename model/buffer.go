package model

// Buffer is fresh storage for the next generation. Distinct rows may be
// written from different goroutines; Freeze hands the storage to a Grid.
type Buffer struct {
	height int
	width  int
	cells  [][]CellState
	frozen bool
}

// NewBuffer allocates an all-dead buffer shaped like g
func NewBuffer(g *Grid) *Buffer {
	return &Buffer{
		height: g.height,
		width:  g.width,
		cells:  newCells(g.height, g.width),
	}
}

// Set writes a cell. It panics on a frozen buffer or an index off the board.
func (b *Buffer) Set(row, col int, state CellState) {
	if b.frozen {
		panic("model: Set on frozen Buffer")
	}
	b.cells[row][col] = state
}

// Freeze returns the finished generation. The buffer must not be used afterwards.
func (b *Buffer) Freeze() *Grid {
	if b.frozen {
		panic("model: Buffer frozen twice")
	}
	b.frozen = true
	g := &Grid{height: b.height, width: b.width, cells: b.cells}
	b.cells = nil
	return g
}
