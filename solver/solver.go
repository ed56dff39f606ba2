// Package solver searches every placement of a fixed sequence of pieces on a
// board and returns the best-scoring complete board.
//
// The search is exact and exponential in the number of pieces: at each level
// every open cell is tried with every rotation. It is meant for small grids
// and short piece lists.
package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/runestone/board"
	"github.com/domino14/runestone/piece"
	"github.com/domino14/runestone/scorer"
	"github.com/domino14/runestone/stats"
)

// DefaultThresholdCap bounds the automatic early-exit threshold.
const DefaultThresholdCap = 54

const DefaultTableMemoryFraction = 0.05

const numRotations = 4

var ErrNoSolution = errors.New("no solution found")

// Mode picks how the search treats good-enough leaves.
type Mode int

const (
	// FirstSatisfactory stops at the first leaf whose score reaches the
	// threshold, in enumeration order. That leaf is not necessarily the
	// best one.
	FirstSatisfactory Mode = iota
	// TrueMaximum explores everything and returns the best leaf.
	TrueMaximum
)

func (m Mode) String() string {
	switch m {
	case FirstSatisfactory:
		return "first-satisfactory"
	case TrueMaximum:
		return "true-maximum"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-satisfactory", "first", "":
		return FirstSatisfactory, nil
	case "true-maximum", "max":
		return TrueMaximum, nil
	}
	return FirstSatisfactory, fmt.Errorf("unknown search mode %q", s)
}

type Solver struct {
	mode         Mode
	threshold    int
	thresholdCap int
	// allowSkip adds a branch at every level that leaves the current piece
	// out. Without it every piece must be placed.
	allowSkip               bool
	transpositionTableOptim bool
	tableMemoryFraction     float64

	ttable *TranspositionTable
	stats  stats.SearchStats

	// set per Solve
	activeThreshold int
	logger          zerolog.Logger
}

// Init sets the default options: first-satisfactory mode with an automatic
// threshold, no skipping, transposition table on.
func (s *Solver) Init() {
	s.mode = FirstSatisfactory
	s.threshold = 0
	s.thresholdCap = DefaultThresholdCap
	s.allowSkip = false
	s.transpositionTableOptim = true
	s.tableMemoryFraction = DefaultTableMemoryFraction
	s.ttable = &TranspositionTable{}
	s.logger = log.Logger
}

func (s *Solver) SetMode(m Mode) {
	s.mode = m
}

// SetThreshold fixes the early-exit score. A value <= 0 means automatic:
// min(threshold cap, sum of badges).
func (s *Solver) SetThreshold(t int) {
	s.threshold = t
}

func (s *Solver) SetThresholdCap(c int) {
	s.thresholdCap = c
}

func (s *Solver) SetAllowSkip(a bool) {
	s.allowSkip = a
}

func (s *Solver) SetTranspositionTableOptim(o bool) {
	s.transpositionTableOptim = o
}

func (s *Solver) SetTableMemoryFraction(f float64) {
	s.tableMemoryFraction = f
}

// Stats returns the counters of the last Solve.
func (s *Solver) Stats() *stats.SearchStats {
	return &s.stats
}

// Threshold returns the early-exit score that Solve uses for boards with
// these badges. TrueMaximum never exits early.
func (s *Solver) Threshold(badges []int) int {
	if s.mode == TrueMaximum {
		return math.MaxInt
	}
	if s.threshold > 0 {
		return s.threshold
	}
	return min(s.thresholdCap, scorer.MaxScore(badges))
}

// Solve places pieces, in order, on copies of b and returns the best
// complete board found. b itself is never modified. ErrNoSolution means no
// complete placement exists; any other error is a broken invariant.
func (s *Solver) Solve(b *board.Board, pieces []*piece.Piece) (*board.Board, error) {
	if s.ttable == nil {
		s.Init()
	}
	s.stats.Reset()
	s.activeThreshold = s.Threshold(b.Badges())
	s.logger = log.With().Str("run-id", uuid.NewString()).Logger()
	if s.transpositionTableOptim {
		s.ttable.Reset(s.tableMemoryFraction, b.Rows()*b.Cols())
	}

	s.logger.Info().
		Int("pieces", len(pieces)).
		Int("rows", b.Rows()).
		Int("cols", b.Cols()).
		Ints("badges", b.Badges()).
		Int("max-lost-points", b.Rules().MaxLostPoints).
		Str("mode", s.mode.String()).
		Int("threshold", s.activeThreshold).
		Bool("allow-skip", s.allowSkip).
		Bool("transposition-table", s.transpositionTableOptim).
		Msg("search-starting")

	start := time.Now()
	best, err := s.search(b, pieces)
	s.stats.Elapsed = time.Since(start)
	if s.transpositionTableOptim {
		s.stats.TableLookups = s.ttable.lookups
		s.stats.TableHits = s.ttable.hits
	}
	s.logger.Info().EmbedObject(&s.stats).Msg("search-finished")

	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}

// search never modifies b; every branch works on its own copy.
func (s *Solver) search(b *board.Board, remaining []*piece.Piece) (*board.Board, error) {
	s.stats.Nodes++
	if len(remaining) == 0 {
		s.stats.AddLeaf(b.Score())
		return b, nil
	}

	var key uint64
	if s.transpositionTableOptim {
		key = s.ttable.Zobrist().Hash(b, len(remaining))
		if res, ok := s.ttable.lookup(key, b); ok {
			return res, nil
		}
	}

	p := remaining[0]
	rest := remaining[1:]
	var best *board.Board
	skipped := false

	// consider keeps res if it beats best, and reports whether the search
	// should stop here.
	consider := func(res *board.Board) bool {
		if res == nil {
			return false
		}
		if res.Score() >= s.activeThreshold {
			s.stats.ShortCircuited = true
			return true
		}
		if best == nil || res.Score() > best.Score() {
			best = res
		}
		return false
	}
	skip := func() (*board.Board, bool, error) {
		skipped = true
		s.stats.Skips++
		res, err := s.search(b, rest)
		if err != nil {
			return nil, false, err
		}
		return res, consider(res), nil
	}

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			if !b.IsOpen(x, y) {
				continue
			}
			for rot := 0; rot < numRotations; rot++ {
				nb := b.Copy()
				ok, err := nb.TryInsert(x, y, rot, p)
				if err != nil {
					return nil, fmt.Errorf("placing %s at (%d,%d) rotation %d: %w", p.Name(), x, y, rot, err)
				}
				if !ok {
					s.stats.Refused++
					continue
				}
				res, err := s.search(nb, rest)
				if err != nil {
					return nil, err
				}
				if consider(res) {
					return res, nil
				}
			}
			if s.allowSkip && !skipped {
				res, stop, err := skip()
				if err != nil {
					return nil, err
				}
				if stop {
					return res, nil
				}
			}
		}
	}
	if s.allowSkip && !skipped {
		res, stop, err := skip()
		if err != nil {
			return nil, err
		}
		if stop {
			return res, nil
		}
	}

	if s.transpositionTableOptim {
		s.ttable.store(key, b, best)
	}
	return best, nil
}
