package piece

import "github.com/domino14/runestone/geometry"

// ReferenceCatalog returns the two-piece catalog the optimizer ships with.
//
//	A: (1,0,2) (0,1,1)
//	B: (1,0,1) (0,1,2)
func ReferenceCatalog() Catalog {
	return Catalog{
		"A": mustPiece("A", [][3]int{{1, 0, 2}, {0, 1, 1}}),
		"B": mustPiece("B", [][3]int{{1, 0, 1}, {0, 1, 2}}),
	}
}

// FromTriples builds a piece from (x, y, value) triples.
func FromTriples(name string, triples [][3]int) (*Piece, error) {
	offsets := make([]geometry.Offset, len(triples))
	for i, t := range triples {
		offsets[i] = geometry.NewOffset(t[0], t[1], t[2])
	}
	return NewPiece(name, offsets)
}

func mustPiece(name string, triples [][3]int) *Piece {
	p, err := FromTriples(name, triples)
	if err != nil {
		panic(err)
	}
	return p
}
