package rules

/*
ApplyConwayRules returns the next state of a cell given its live
neighbor count and current state. This is the complete rule set:
a live cell with 2 or 3 neighbors survives, a dead cell with exactly
3 neighbors is born, and every other combination is dead.

Equivalent form: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
