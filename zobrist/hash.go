package zobrist

import (
	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/domino14/runestone/board"
)

const bignum = 1<<63 - 2

// Zobrist hashes a search position: every cell of a board, its lost points,
// and how many pieces remain to be placed.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable    []uint64
	markerTable []uint64
	lostKey     uint64
	depthKey    uint64

	numCells int
}

func (z *Zobrist) Initialize(numCells int) {
	z.numCells = numCells
	z.posTable = make([]uint64, numCells)
	z.markerTable = make([]uint64, numCells)
	for i := 0; i < numCells; i++ {
		z.posTable[i] = frand.Uint64n(bignum) + 1
		z.markerTable[i] = frand.Uint64n(bignum) + 1
	}
	z.lostKey = frand.Uint64n(bignum) + 1
	z.depthKey = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) NumCells() int {
	return z.numCells
}

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

// Hash returns the key for board b with remaining pieces left to place.
// Empty cells contribute nothing.
func (z *Zobrist) Hash(b *board.Board, remaining int) uint64 {
	key := uint64(0)
	cols := b.Cols()
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < cols; x++ {
			i := y*cols + x
			c := b.Cell(x, y)
			switch c.Kind() {
			case board.Accumulated:
				key ^= hashUint64(z.posTable[i] + uint64(c.Value()))
			case board.Marker:
				key ^= hashUint64(z.markerTable[i] ^ (xxhash.Sum64String(c.Name()) + uint64(c.Rotation())))
			}
		}
	}
	key ^= hashUint64(z.lostKey + uint64(b.LostPoints()))
	key ^= hashUint64(z.depthKey + uint64(remaining))
	return key
}
