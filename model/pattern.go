package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPattern is returned for pattern text that cannot be parsed
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a small rectangle of cells that can be placed onto a board
type Pattern struct {
	Name  string
	Cells [][]CellState
}

// Size returns the pattern's height and width
func (p Pattern) Size() (height, width int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	return len(p.Cells), len(p.Cells[0])
}

// Built-in patterns
var (
	Glider = Pattern{Name: "glider", Cells: [][]CellState{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}}
	Blinker = Pattern{Name: "blinker", Cells: [][]CellState{
		{Alive, Alive, Alive},
	}}
	Block = Pattern{Name: "block", Cells: [][]CellState{
		{Alive, Alive},
		{Alive, Alive},
	}}
)

// Patterns maps built-in pattern names to their definitions
var Patterns = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Block.Name:   Block,
}

// ParsePlaintext reads a pattern in the plaintext (.cells) format: lines
// starting with '!' are comments, '.' is dead and 'O' or '*' is alive.
// Short rows are padded with dead cells.
func ParsePlaintext(name string, r io.Reader) (Pattern, error) {
	var (
		rows    [][]CellState
		width   int
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		row := make([]CellState, 0, len(line))
		for i, ch := range line {
			switch ch {
			case '.':
				row = append(row, Dead)
			case 'O', '*':
				row = append(row, Alive)
			default:
				return Pattern{}, errors.Wrapf(ErrInvalidPattern,
					"[ParsePlaintext] %s line %d col %d: unexpected %q", name, lineNo, i+1, ch)
			}
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, errors.Wrapf(err, "[ParsePlaintext] failed to read %s", name)
	}

	// Trailing blank lines carry no cells
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return Pattern{}, errors.Wrapf(ErrInvalidPattern, "[ParsePlaintext] %s has no cells", name)
	}

	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]CellState, width-len(row))...)
		}
	}
	return Pattern{Name: name, Cells: rows}, nil
}

// LoadPattern parses a plaintext pattern file
func LoadPattern(filename string) (Pattern, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPattern] failed to open file: %+v", filename)
	}
	defer f.Close()

	return ParsePlaintext(filename, f)
}

// Place builds an otherwise dead height x width grid with the pattern's top-left corner at (row, col)
func Place(height, width int, p Pattern, row, col int) (*Grid, error) {
	if err := checkDimensions("Place", height, width); err != nil {
		return nil, err
	}
	ph, pw := p.Size()
	if row < 0 || col < 0 || row+ph > height || col+pw > width {
		return nil, errors.Wrapf(ErrOutOfBounds,
			"[Place] %s (%dx%d) at (%d,%d) does not fit %dx%d grid", p.Name, ph, pw, row, col, height, width)
	}

	cells := newCells(height, width)
	for y, prow := range p.Cells {
		copy(cells[row+y][col:], prow)
	}
	return &Grid{height: height, width: width, cells: cells}, nil
}

// PlaceCentered places the pattern in the middle of a height x width grid
func PlaceCentered(height, width int, p Pattern) (*Grid, error) {
	ph, pw := p.Size()
	return Place(height, width, p, (height-ph)/2, (width-pw)/2)
}
