package board

import (
	"errors"
	"fmt"

	"github.com/domino14/runestone/piece"
	"github.com/domino14/runestone/scorer"
)

// UnlimitedLoss disables the lost-points budget.
const UnlimitedLoss = -1

var (
	ErrOverlap       = errors.New("anchor cell already holds a piece")
	ErrAnchorOutside = errors.New("anchor cell is outside the board")
)

// Rules are the fixed parameters shared by every board in a search.
type Rules struct {
	Rows     int
	Cols     int
	PointMod int
	// MaxLostPoints is the most value a board may lose to overlaps and
	// out-of-bounds offsets. UnlimitedLoss turns the budget off.
	MaxLostPoints int
}

func DefaultRules() Rules {
	return Rules{
		Rows:          4,
		Cols:          4,
		PointMod:      scorer.DefaultPointMod,
		MaxLostPoints: UnlimitedLoss,
	}
}

// A Board is a Rows x Cols grid of cells plus loss accounting. Boards are
// copied before every branch of a search and never shared between branches.
type Board struct {
	rules  Rules
	cells  []Cell
	badges []int

	lostPoints  int
	cachedScore int
	scoreValid  bool
}

// NewBoard creates an empty board. The badges are copied and kept sorted
// in descending order.
func NewBoard(rules Rules, badges []int) *Board {
	return &Board{
		rules:  rules,
		cells:  make([]Cell, rules.Rows*rules.Cols),
		badges: scorer.SortedBadges(badges),
	}
}

// Copy returns a deep copy of the board. The badge slice is shared since it
// is never modified.
func (b *Board) Copy() *Board {
	n := &Board{
		rules:       b.rules,
		cells:       make([]Cell, len(b.cells)),
		badges:      b.badges,
		lostPoints:  b.lostPoints,
		cachedScore: b.cachedScore,
		scoreValid:  b.scoreValid,
	}
	copy(n.cells, b.cells)
	return n
}

func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) Rows() int {
	return b.rules.Rows
}

func (b *Board) Cols() int {
	return b.rules.Cols
}

func (b *Board) Badges() []int {
	return append([]int(nil), b.badges...)
}

func (b *Board) LostPoints() int {
	return b.lostPoints
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.rules.Cols && y >= 0 && y < b.rules.Rows
}

// Cell returns the cell at column x, row y. It panics if out of bounds.
func (b *Board) Cell(x, y int) Cell {
	return b.cells[b.idx(x, y)]
}

// IsOpen reports whether a piece may be anchored at (x, y): the cell is on
// the board and does not already hold a piece.
func (b *Board) IsOpen(x, y int) bool {
	return b.InBounds(x, y) && b.cells[b.idx(x, y)].kind != Marker
}

func (b *Board) idx(x, y int) int {
	return y*b.rules.Cols + x
}

func (b *Board) overBudget(lost int) bool {
	return b.rules.MaxLostPoints != UnlimitedLoss && lost > b.rules.MaxLostPoints
}

// TryInsert anchors p at (x, y) with the given rotation. Every offset that
// lands on the board and not on a piece adds its value to that cell; every
// other offset, as well as any value already sitting on the anchor cell, is
// charged to the lost points. If the charge would exceed the loss budget the
// insertion is refused with false and the board is left untouched.
//
// Anchoring on a cell that already holds a piece, or off the board, is a
// caller bug and returns an error.
func (b *Board) TryInsert(x, y, rotation int, p *piece.Piece) (bool, error) {
	if !b.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrAnchorOutside, x, y)
	}
	anchor := b.idx(x, y)
	if b.cells[anchor].kind == Marker {
		return false, fmt.Errorf("%w: %s at (%d,%d)", ErrOverlap, b.cells[anchor], x, y)
	}

	lost := b.lostPoints + b.cells[anchor].n
	if b.overBudget(lost) {
		return false, nil
	}
	cells := p.AbsoluteCells(x, y, rotation)
	// Work out the full charge first so a refused insertion changes nothing.
	for _, c := range cells {
		if b.lands(c.X, c.Y, anchor) {
			continue
		}
		lost += c.Value
		if b.overBudget(lost) {
			return false, nil
		}
	}

	b.cells[anchor] = MarkerCell(p.Name(), rotation)
	for _, c := range cells {
		if b.lands(c.X, c.Y, anchor) {
			i := b.idx(c.X, c.Y)
			b.cells[i] = b.cells[i].add(c.Value)
		}
	}
	b.lostPoints = lost
	b.scoreValid = false
	return true, nil
}

// lands reports whether an offset at (x, y) can accumulate, given that the
// cell at index anchor is about to become a marker.
func (b *Board) lands(x, y, anchor int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	i := b.idx(x, y)
	return i != anchor && b.cells[i].kind != Marker
}

// Values returns the positive accumulated values in row-major order.
func (b *Board) Values() []int {
	var vals []int
	for _, c := range b.cells {
		if c.kind == Accumulated && c.n > 0 {
			vals = append(vals, c.n)
		}
	}
	return vals
}

// Score is memoized until the next successful insertion.
func (b *Board) Score() int {
	if !b.scoreValid {
		b.cachedScore = scorer.Score(b.Values(), b.badges, b.rules.PointMod)
		b.scoreValid = true
	}
	return b.cachedScore
}

// Equal compares cells and lost points.
func (b *Board) Equal(o *Board) bool {
	if b.rules != o.rules || b.lostPoints != o.lostPoints || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
