package solver

import (
	"math"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/runestone/board"
	"github.com/domino14/runestone/zobrist"
)

const (
	minTablePowerOf2 = 10
	maxTablePowerOf2 = 24
	// rough cost of an entry: the slot itself plus the two boards it keeps
	// alive.
	entryOverheadBytes = 64
	bytesPerCell       = 40
)

// A tableEntry remembers the best leaf found below a position. A nil
// result means the position has no complete placement.
type tableEntry struct {
	hash     uint64
	position *board.Board
	result   *board.Board
	valid    bool
}

// TranspositionTable caches subtree results for positions that can be
// reached through different placement orders. Entries are checked against
// the full position, so a hash collision is a miss and never a wrong answer.
type TranspositionTable struct {
	table        []tableEntry
	sizePowerOf2 int
	sizeMask     uint64

	created    uint64
	lookups    uint64
	hits       uint64
	collisions uint64

	zobrist *zobrist.Zobrist
}

func estimatedEntryBytes(numCells int) int {
	return entryOverheadBytes + 2*numCells*bytesPerCell
}

// Reset sizes the table to about fractionOfMemory of system memory and
// clears it.
func (t *TranspositionTable) Reset(fractionOfMemory float64, numCells int) {
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(estimatedEntryBytes(numCells)))
	power := minTablePowerOf2
	if desiredNElems >= 1 {
		power = int(math.Log2(desiredNElems))
	}
	power = max(minTablePowerOf2, min(maxTablePowerOf2, power))

	numElems := 1 << power
	reset := false
	if t.table != nil && len(t.table) == numElems {
		reset = true
		clear(t.table)
	} else {
		t.table = make([]tableEntry, numElems)
	}
	t.sizePowerOf2 = power
	t.sizeMask = uint64(numElems - 1)

	if t.zobrist == nil || t.zobrist.NumCells() != numCells {
		t.zobrist = &zobrist.Zobrist{}
		t.zobrist.Initialize(numCells)
	}

	log.Debug().Int("num-elems", numElems).
		Float64("desired-num-elems", desiredNElems).
		Uint64("total-system-memory-bytes", totalMem).
		Bool("reset", reset).
		Msg("transposition-table-size")

	t.created = 0
	t.lookups = 0
	t.hits = 0
	t.collisions = 0
}

func (t *TranspositionTable) Zobrist() *zobrist.Zobrist {
	return t.zobrist
}

func (t *TranspositionTable) Size() int {
	return len(t.table)
}

func (t *TranspositionTable) lookup(zval uint64, pos *board.Board) (*board.Board, bool) {
	t.lookups++
	e := t.table[zval&t.sizeMask]
	if !e.valid {
		return nil, false
	}
	if e.hash != zval || !e.position.Equal(pos) {
		t.collisions++
		return nil, false
	}
	t.hits++
	return e.result, true
}

func (t *TranspositionTable) store(zval uint64, pos, result *board.Board) {
	// just overwrite whatever is there.
	t.table[zval&t.sizeMask] = tableEntry{hash: zval, position: pos, result: result, valid: true}
	t.created++
}
