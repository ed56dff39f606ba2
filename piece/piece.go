package piece

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/runestone/geometry"
)

var (
	ErrUnknownPiece = errors.New("unknown piece")
	ErrBadPiece     = errors.New("bad piece definition")
)

// A Piece is a named rune stone. Its offsets are relative to the anchor cell
// and are never modified after construction.
type Piece struct {
	name    string
	offsets []geometry.Offset
}

func NewPiece(name string, offsets []geometry.Offset) (*Piece, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrBadPiece)
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: %s has no offsets", ErrBadPiece, name)
	}
	for _, o := range offsets {
		if o.Value <= 0 {
			return nil, fmt.Errorf("%w: %s offset %s has non-positive value", ErrBadPiece, name, o)
		}
	}
	p := &Piece{name: name, offsets: make([]geometry.Offset, len(offsets))}
	copy(p.offsets, offsets)
	return p, nil
}

func (p *Piece) Name() string {
	return p.name
}

// Offsets returns a copy of the piece's offsets in declared order.
func (p *Piece) Offsets() []geometry.Offset {
	return append([]geometry.Offset(nil), p.offsets...)
}

// TotalValue is the sum of all offset values.
func (p *Piece) TotalValue() int {
	return lo.SumBy(p.offsets, func(o geometry.Offset) int { return o.Value })
}

// AbsoluteCells rotates every offset and then translates it by the anchor.
// The result follows the declared offset order.
func (p *Piece) AbsoluteCells(ax, ay, rotation int) []geometry.Offset {
	return lo.Map(p.offsets, func(o geometry.Offset, _ int) geometry.Offset {
		return o.Rotate(rotation).Translate(ax, ay)
	})
}

func (p *Piece) String() string {
	var sb strings.Builder
	sb.WriteString(p.name)
	sb.WriteString(":")
	for _, o := range p.offsets {
		sb.WriteString(" ")
		sb.WriteString(o.String())
	}
	return sb.String()
}

// A Catalog maps piece names to their shapes.
type Catalog map[string]*Piece

// Names returns the catalog's piece names, sorted.
func (c Catalog) Names() []string {
	names := lo.Keys(c)
	sort.Strings(names)
	return names
}

// Sequence looks up each name in order. Names may repeat.
func (c Catalog) Sequence(names []string) ([]*Piece, error) {
	pieces := make([]*Piece, 0, len(names))
	for _, n := range names {
		p, ok := c[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, n)
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}
