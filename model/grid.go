package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

const (
	// randomAliveProbability is the chance of each cell starting Alive in a random board
	randomAliveProbability = 0.5

	gridRuneAlive = '#'
	gridRuneDead  = '.'
)

// Grid is one generation of the board. It is immutable once built: new
// generations are new Grid values.
type Grid struct {
	height int
	width  int
	cells  [][]CellState
}

// Bounds is an inclusive rectangle of cells
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Area returns the number of cells covered by the rectangle
func (b Bounds) Area() int {
	return (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
}

// Grow expands the rectangle by margin cells on every side, clipped to a height x width board
func (b Bounds) Grow(margin, height, width int) Bounds {
	return Bounds{
		MinRow: max(0, b.MinRow-margin),
		MaxRow: min(height-1, b.MaxRow+margin),
		MinCol: max(0, b.MinCol-margin),
		MaxCol: min(width-1, b.MaxCol+margin),
	}
}

func newCells(height, width int) [][]CellState {
	cells := make([][]CellState, height)
	for i := range cells {
		cells[i] = make([]CellState, width)
	}
	return cells
}

// NewEmptyGrid creates a grid with every cell Dead
func NewEmptyGrid(height, width int) (*Grid, error) {
	if err := checkDimensions("NewEmptyGrid", height, width); err != nil {
		return nil, err
	}
	return &Grid{height: height, width: width, cells: newCells(height, width)}, nil
}

// NewRandomGrid creates a grid where every cell is independently Alive with
// probability 0.5. A nil r falls back to a randomly seeded PCG source.
func NewRandomGrid(height, width int, r *rand.Rand) (*Grid, error) {
	if err := checkDimensions("NewRandomGrid", height, width); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	cells := newCells(height, width)
	for y := range height {
		for x := range width {
			cells[y][x] = FromBool(r.Float64() < randomAliveProbability)
		}
	}
	return &Grid{height: height, width: width, cells: cells}, nil
}

// NewGridFromSeed creates a grid from caller supplied rows. The data is copied.
func NewGridFromSeed(height, width int, data [][]CellState) (*Grid, error) {
	if err := checkDimensions("NewGridFromSeed", height, width); err != nil {
		return nil, err
	}
	if len(data) != height {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"[NewGridFromSeed] got %d rows, want %d", len(data), height)
	}

	cells := newCells(height, width)
	for y, row := range data {
		if len(row) != width {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"[NewGridFromSeed] row %d has %d cells, want %d", y, len(row), width)
		}
		copy(cells[y], row)
	}
	return &Grid{height: height, width: width, cells: cells}, nil
}

// NewGridFromBools is NewGridFromSeed for boolean rows
func NewGridFromBools(height, width int, data [][]bool) (*Grid, error) {
	rows := make([][]CellState, len(data))
	for y, row := range data {
		rows[y] = make([]CellState, len(row))
		for x, alive := range row {
			rows[y][x] = FromBool(alive)
		}
	}
	return NewGridFromSeed(height, width, rows)
}

// Dimensions returns the height and width of the grid
func (g *Grid) Dimensions() (height, width int) {
	return g.height, g.width
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (CellState, error) {
	if !g.inBounds(row, col) {
		return Dead, errors.Wrapf(ErrOutOfBounds,
			"[Get] (%d,%d) outside %dx%d grid", row, col, g.height, g.width)
	}
	return g.cells[row][col], nil
}

// IsAlive reports whether a cell is alive. Positions off the board read as dead.
func (g *Grid) IsAlive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col] == Alive
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// LiveNeighbors counts living cells among the 8 neighbors of (row, col).
// The window is clipped to the board, so the border behaves as dead padding.
func (g *Grid) LiveNeighbors(row, col int) int {
	count := 0

	minY := max(0, row-1)
	maxY := min(g.height-1, row+1)
	minX := max(0, col-1)
	maxX := min(g.width-1, col+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if ny == row && nx == col {
				continue
			}
			if g.cells[ny][nx] == Alive {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// ActiveBounds returns the bounding box of living cells. ok is false when the board is empty.
func (g *Grid) ActiveBounds() (b Bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != Alive {
				continue
			}
			if !ok {
				b = Bounds{MinRow: y, MaxRow: y, MinCol: x, MaxCol: x}
				ok = true
				continue
			}
			b.MinRow = min(b.MinRow, y)
			b.MaxRow = max(b.MaxRow, y)
			b.MinCol = min(b.MinCol, x)
			b.MaxCol = max(b.MaxCol, x)
		}
	}
	return b, ok
}

// BoundingBoxSize returns the area of the active region, 0 for an empty board
func (g *Grid) BoundingBoxSize() int {
	b, ok := g.ActiveBounds()
	if !ok {
		return 0
	}
	return b.Area()
}

// Hash returns an MD5 digest of the dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.height, g.width)
	for y := range g.height {
		row := make([]byte, g.width)
		for x := range g.width {
			row[x] = byte(g.cells[y][x])
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Cells returns a copy of the cell matrix, row-major
func (g *Grid) Cells() [][]CellState {
	out := newCells(g.height, g.width)
	for y := range g.cells {
		copy(out[y], g.cells[y])
	}
	return out
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.height != other.height || g.width != other.width {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid with '#' for alive and '.' for dead cells, one line per row
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				sb.WriteRune(gridRuneAlive)
			} else {
				sb.WriteRune(gridRuneDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
