package rules

import "github.com/sheikhrachel/petridish/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly three live neighbors is born; a live cell with two or
three live neighbors survives; every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Next returns the next state of a cell in the given state with the given live neighbor count
func Next(neighbors int, state model.CellState) model.CellState {
	return model.FromBool(ApplyConwayRules(neighbors, state.IsAlive()))
}
