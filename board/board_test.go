package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/runestone/piece"
)

func newTestBoard(maxLost int) *Board {
	r := DefaultRules()
	r.MaxLostPoints = maxLost
	return NewBoard(r, []int{2, 4})
}

func TestNewBoardSortsBadges(t *testing.T) {
	is := is.New(t)
	b := newTestBoard(UnlimitedLoss)
	is.Equal(b.Badges(), []int{4, 2})
	is.Equal(b.Score(), 0)
	is.Equal(b.LostPoints(), 0)
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			is.Equal(b.Cell(x, y).Kind(), Empty)
			is.True(b.IsOpen(x, y))
		}
	}
	is.True(!b.IsOpen(4, 0))
	is.True(!b.IsOpen(0, -1))
}

func TestTryInsert(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)

	ok, err := b.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)
	is.True(ok)
	is.Equal(b.Cell(0, 0), MarkerCell("A", 0))
	is.Equal(b.Cell(1, 0), AccumulatedCell(2))
	is.Equal(b.Cell(0, 1), AccumulatedCell(1))
	is.Equal(b.LostPoints(), 0)
	is.True(!b.IsOpen(0, 0))
	is.Equal(b.Score(), 2)

	// B anchored at (1,1) adds 1 to (2,1) and 2 to (1,2)
	ok, err = b.TryInsert(1, 1, 0, cat["B"])
	is.NoErr(err)
	is.True(ok)
	is.Equal(b.Cell(2, 1), AccumulatedCell(1))
	is.Equal(b.Cell(1, 2), AccumulatedCell(2))
	is.Equal(b.Values(), []int{2, 1, 1, 2})
	is.Equal(b.Score(), 4)
}

func TestTryInsertAccumulatesOnSharedCell(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(0)

	_, err := b.TryInsert(0, 0, 0, cat["A"]) // (1,0)+=2, (0,1)+=1
	is.NoErr(err)
	// B turned twice at (1,1): (0,1)+=1, (1,0)+=2
	ok, err := b.TryInsert(1, 1, 2, cat["B"])
	is.NoErr(err)
	is.True(ok)
	is.Equal(b.Cell(1, 0), AccumulatedCell(4))
	is.Equal(b.Cell(0, 1), AccumulatedCell(2))
	is.Equal(b.LostPoints(), 0)
	is.Equal(b.Score(), 6)
}

func TestTryInsertChargesAnchorAndMarkers(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)

	_, err := b.TryInsert(0, 0, 0, cat["A"]) // (1,0)+=2
	is.NoErr(err)
	// B rotated twice: (1,0)->(-1,0), (0,1)->(0,-1). Anchored at (2,1):
	// (1,1)+=1, (2,0)+=2.
	_, err = b.TryInsert(2, 1, 2, cat["B"])
	is.NoErr(err)
	// A anchored at (1,1): the 1 already there is charged, and so is the
	// 2 that would land on B's marker at (2,1).
	ok, err := b.TryInsert(1, 1, 0, cat["A"])
	is.NoErr(err)
	is.True(ok)
	is.Equal(b.Cell(1, 1), MarkerCell("A", 0))
	is.Equal(b.Cell(2, 1), MarkerCell("B", 2))
	is.Equal(b.LostPoints(), 1+2)
	is.Equal(b.Cell(1, 2), AccumulatedCell(1))
}

func TestTryInsertAllOutside(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)

	ok, err := b.TryInsert(3, 3, 0, cat["A"])
	is.NoErr(err)
	is.True(ok)
	is.Equal(b.LostPoints(), 3)
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			if x == 3 && y == 3 {
				is.Equal(b.Cell(x, y), MarkerCell("A", 0))
				continue
			}
			is.Equal(b.Cell(x, y), EmptyCell())
		}
	}
	is.Equal(b.Score(), 0)
}

func TestTryInsertRespectsBudget(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(2)

	ok, err := b.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)
	is.True(ok)
	before := b.Copy()

	// everything off the board costs 3 > 2
	ok, err = b.TryInsert(3, 3, 0, cat["A"])
	is.NoErr(err)
	is.True(!ok)
	is.True(b.Equal(before))
	is.Equal(b.LostPoints(), 0)

	// one offset off the board costs 1, within budget
	ok, err = b.TryInsert(3, 0, 0, cat["B"])
	is.NoErr(err)
	is.True(ok)
	is.Equal(b.LostPoints(), 1)
	is.Equal(b.Cell(3, 1), AccumulatedCell(2))

	// anchor on (1,0) which holds 2: 1+2 > 2, refused before anything else
	before = b.Copy()
	ok, err = b.TryInsert(1, 0, 1, cat["B"])
	is.NoErr(err)
	is.True(!ok)
	is.True(b.Equal(before))
}

func TestTryInsertOverlapIsAnError(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)
	_, err := b.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)

	ok, err := b.TryInsert(0, 0, 1, cat["B"])
	is.True(!ok)
	is.True(errors.Is(err, ErrOverlap))

	_, err = b.TryInsert(4, 4, 0, cat["B"])
	is.True(errors.Is(err, ErrAnchorOutside))
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)
	c := b.Copy()
	_, err := c.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)
	is.Equal(b.Cell(0, 0), EmptyCell())
	is.Equal(b.Cell(1, 0), EmptyCell())
	is.True(!b.Equal(c))
}

func TestScoreCacheInvalidated(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)
	is.Equal(b.Score(), 0)
	_, err := b.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)
	is.Equal(b.Score(), 2)
	_, err = b.TryInsert(2, 2, 0, cat["A"])
	is.NoErr(err)
	is.Equal(b.Score(), 4)
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	cat := piece.ReferenceCatalog()
	b := newTestBoard(UnlimitedLoss)
	_, err := b.TryInsert(0, 0, 0, cat["A"])
	is.NoErr(err)
	expected := "" +
		"A0 2  0  0  \n" +
		"1  0  0  0  \n" +
		"0  0  0  0  \n" +
		"0  0  0  0  \n" +
		"score: 2"
	is.Equal(b.String(), expected)
}

func TestCellStrings(t *testing.T) {
	is := is.New(t)
	is.Equal(EmptyCell().String(), "0")
	is.Equal(MarkerCell("B", 3).String(), "B3")
	is.Equal(AccumulatedCell(12).String(), "12")
	is.Equal(Accumulated.String(), "accumulated")
}
