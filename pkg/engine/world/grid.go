// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Position is a (row, col) coordinate on a grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position adjacent to p in the given direction
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns "row,col"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Grid is a fixed-size lattice where every cell holds an optional occupant.
// The zero value of T marks an empty cell.
type Grid[T comparable] struct {
	cells [][]T
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid[T comparable](rows, cols int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions, discarding any occupants
func (g *Grid[T]) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]T, rows)
	for row := range g.cells {
		g.cells[row] = make([]T, cols)
	}
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid[T]) IsValidPosition(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the occupant at p, or the zero value if p is empty or out of bounds
func (g *Grid[T]) Get(p Position) T {
	var zero T
	if !g.IsValidPosition(p) {
		return zero
	}
	return g.cells[p.Row][p.Col]
}

// IsEmpty reports whether p is in bounds and holds no occupant
func (g *Grid[T]) IsEmpty(p Position) bool {
	var zero T
	return g.IsValidPosition(p) && g.cells[p.Row][p.Col] == zero
}

// Set stores v at p. Returns false if p is out of bounds.
func (g *Grid[T]) Set(p Position, v T) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.cells[p.Row][p.Col] = v
	return true
}

// GetRelative returns the position and occupant adjacent to p in the given direction.
// ok is false when the neighbour is outside the grid.
func (g *Grid[T]) GetRelative(p Position, dir Direction) (next Position, v T, ok bool) {
	if !dir.IsValid() {
		return p, v, false
	}
	next = p.Step(dir)
	if !g.IsValidPosition(next) {
		return next, v, false
	}
	return next, g.cells[next.Row][next.Col], true
}

// BottomCenter returns the middle cell of the last row
func (g *Grid[T]) BottomCenter() Position {
	return Position{Row: g.rows - 1, Col: g.cols / 2}
}

// TopCenter returns the middle cell of the first row
func (g *Grid[T]) TopCenter() Position {
	return Position{Row: 0, Col: g.cols / 2}
}

// ForEach iterates over every cell in row-major order, occupied or not
func (g *Grid[T]) ForEach(fn func(p Position, v T)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Position{Row: row, Col: col}, g.cells[row][col])
		}
	}
}

// ForEachOccupied iterates over occupied cells in row-major order
func (g *Grid[T]) ForEachOccupied(fn func(p Position, v T)) {
	var zero T
	g.ForEach(func(p Position, v T) {
		if v != zero {
			fn(p, v)
		}
	})
}

// Count returns the number of occupied cells
func (g *Grid[T]) Count() int {
	n := 0
	g.ForEachOccupied(func(Position, T) { n++ })
	return n
}
