package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/runestone/board"
	"github.com/domino14/runestone/piece"
)

func newZobrist() *Zobrist {
	z := &Zobrist{}
	z.Initialize(16)
	return z
}

func TestHashStableAcrossCopies(t *testing.T) {
	is := is.New(t)
	z := newZobrist()
	cat := piece.ReferenceCatalog()
	b := board.NewBoard(board.DefaultRules(), []int{4, 2})
	_, err := b.TryInsert(1, 1, 2, cat["A"])
	is.NoErr(err)

	is.Equal(z.Hash(b, 1), z.Hash(b.Copy(), 1))
	is.Equal(z.NumCells(), 16)
}

func TestHashDistinguishesPositions(t *testing.T) {
	is := is.New(t)
	z := newZobrist()
	cat := piece.ReferenceCatalog()
	empty := board.NewBoard(board.DefaultRules(), []int{4, 2})

	a0 := empty.Copy()
	_, err := a0.TryInsert(1, 1, 0, cat["A"])
	is.NoErr(err)
	a1 := empty.Copy()
	_, err = a1.TryInsert(1, 1, 1, cat["A"])
	is.NoErr(err)
	b0 := empty.Copy()
	_, err = b0.TryInsert(1, 1, 0, cat["B"])
	is.NoErr(err)

	// these are extremely unlikely to collide, but it is not impossible.
	hashes := []uint64{
		z.Hash(empty, 2), z.Hash(empty, 1),
		z.Hash(a0, 1), z.Hash(a1, 1), z.Hash(b0, 1),
	}
	seen := map[uint64]bool{}
	for _, h := range hashes {
		is.True(!seen[h])
		seen[h] = true
	}
}

func TestHashSameStateDifferentOrder(t *testing.T) {
	is := is.New(t)
	z := newZobrist()
	cat := piece.ReferenceCatalog()
	empty := board.NewBoard(board.DefaultRules(), []int{4, 2})

	first := empty.Copy()
	_, err := first.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)
	_, err = first.TryInsert(2, 2, 0, cat["B"])
	is.NoErr(err)

	second := empty.Copy()
	_, err = second.TryInsert(2, 2, 0, cat["B"])
	is.NoErr(err)
	_, err = second.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)

	is.True(first.Equal(second))
	is.Equal(z.Hash(first, 0), z.Hash(second, 0))
}
