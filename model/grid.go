package model

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/conwayterm/go-life/rules"
)

// CellState is the binary state of a grid cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// IsAlive reports whether the state is Alive.
func (s CellState) IsAlive() bool {
	return s == Alive
}

// Cell is one position on the board. X and Y always equal the cell's
// location in the grid container; only the grid stamps them, and Set
// never touches them.
type Cell struct {
	X     int
	Y     int
	State CellState
}

// Grid represents the game board: a fixed width x height container of
// cells. Dimensions never change after construction.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates a grid with the specified dimensions, every cell
// dead and its coordinates stamped.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{X: x, Y: y, State: Dead}
		}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the width of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *Grid) Height() int {
	return g.height
}

// Get returns the state of the cell at (x, y). Out-of-bounds
// coordinates read as Dead.
func (g *Grid) Get(x, y int) CellState {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Dead
	}
	return g.cells[y][x].State
}

// Set replaces the state of the cell at (x, y). The cell's stored
// coordinates are untouched.
func (g *Grid) Set(x, y int, state CellState) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x].State = state
	}
}

// CountNeighbors counts the live cells among the up-to-8 neighbors of
// (x, y). Positions outside the grid are skipped, never wrapped, so
// edge and corner cells simply have fewer candidates.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx].State.IsAlive() {
				count++
			}
		}
	}

	return count
}

// Randomize seeds every cell independently: alive iff two fair coin
// flips both land true, so the alive probability is exactly 1/4.
func (g *Grid) Randomize() {
	for y := range g.cells {
		for x := range g.cells[y] {
			state := Dead
			if rand.Intn(2) == 0 && rand.Intn(2) == 0 {
				state = Alive
			}
			g.cells[y][x].State = state
		}
	}
}

// NextGeneration computes the full next generation into a fresh grid
// (pool-recycled when a pool is supplied), reading only the receiver.
// The receiver is left untouched; the caller adopts the returned grid
// as the new current one.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := g.nextBuffer(pool)
	for y := 0; y < g.height; y++ {
		g.stepRow(y, next)
	}
	return next
}

// NextGenerationParallel is NextGeneration with the rows partitioned
// across one worker per CPU. Every worker reads only the old grid and
// writes a disjoint row range of the new one, so no cell's update can
// see another's result from the same pass.
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := g.nextBuffer(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				g.stepRow(y, next)
			}
			return nil
		})
	}

	// Workers are infallible; Wait only joins them.
	_ = eg.Wait()

	return next
}

func (g *Grid) nextBuffer(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// stepRow writes row y of next from the receiver's snapshot.
func (g *Grid) stepRow(y int, next *Grid) {
	for x := 0; x < g.width; x++ {
		if rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x].State.IsAlive()) {
			next.cells[y][x].State = Alive
		} else {
			next.cells[y][x].State = Dead
		}
	}
}

// CountLivingCells returns the total number of living cells.
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].State.IsAlive() {
				count++
			}
		}
	}
	return
}

// reset resizes the grid in place, restamping every coordinate and
// killing every cell. Pool use only.
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for y := range g.cells {
		if len(g.cells[y]) != width {
			g.cells[y] = make([]Cell, width)
		}
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{X: x, Y: y, State: Dead}
		}
	}
}

// clear kills every cell, keeping dimensions and coordinates.
func (g *Grid) clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].State = Dead
		}
	}
}
