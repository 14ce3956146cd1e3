package model

// CellState is the state of a single cell on the board
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// FromBool maps true to Alive and false to Dead
func FromBool(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the state is Alive
func (c CellState) IsAlive() bool {
	return c == Alive
}

func (c CellState) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
