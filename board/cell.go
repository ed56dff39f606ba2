package board

import "strconv"

type CellKind uint8

const (
	// Empty cells hold nothing and score 0.
	Empty CellKind = iota
	// Marker cells are occupied by a piece's anchor. They never accumulate.
	Marker
	// Accumulated cells hold the sum of piece values that landed on them.
	Accumulated
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Marker:
		return "marker"
	case Accumulated:
		return "accumulated"
	}
	return "unknown"
}

// A Cell is exactly one of Empty, Marker{name, rotation} or Accumulated{n}.
// The zero value is Empty.
type Cell struct {
	kind     CellKind
	name     string
	rotation int
	n        int
}

func EmptyCell() Cell {
	return Cell{}
}

func MarkerCell(name string, rotation int) Cell {
	return Cell{kind: Marker, name: name, rotation: rotation}
}

func AccumulatedCell(n int) Cell {
	return Cell{kind: Accumulated, n: n}
}

func (c Cell) Kind() CellKind {
	return c.kind
}

// Name is the piece name of a Marker cell, or "" otherwise.
func (c Cell) Name() string {
	return c.name
}

// Rotation is the piece rotation of a Marker cell, or 0 otherwise.
func (c Cell) Rotation() int {
	return c.rotation
}

// Value is the accumulated amount of an Accumulated cell, or 0 otherwise.
func (c Cell) Value() int {
	return c.n
}

// add returns the cell with v more points. Only valid on non-markers.
func (c Cell) add(v int) Cell {
	return AccumulatedCell(c.n + v)
}

func (c Cell) String() string {
	switch c.kind {
	case Marker:
		return c.name + strconv.Itoa(c.rotation)
	case Accumulated:
		return strconv.Itoa(c.n)
	}
	return "0"
}
