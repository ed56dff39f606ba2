package stats

import (
	"time"

	"github.com/rs/zerolog"
)

// SearchStats counts what a placement search did.
type SearchStats struct {
	// Nodes is every position the search visited, leaves included.
	Nodes uint64
	// Leaves are positions with no pieces left to place.
	Leaves uint64
	// Refused counts insertions turned down by the loss budget.
	Refused uint64
	// Skips counts "leave this piece out" branches.
	Skips uint64

	TableLookups uint64
	TableHits    uint64

	ShortCircuited bool
	Elapsed        time.Duration

	LeafScores Statistic
}

func (s *SearchStats) Reset() {
	*s = SearchStats{}
}

// AddLeaf records a fully placed board's score.
func (s *SearchStats) AddLeaf(score int) {
	s.Leaves++
	s.LeafScores.Push(float64(score))
}

func (s *SearchStats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("leaves", s.Leaves).
		Uint64("refused", s.Refused).
		Uint64("skips", s.Skips).
		Uint64("tt-lookups", s.TableLookups).
		Uint64("tt-hits", s.TableHits).
		Bool("short-circuited", s.ShortCircuited).
		Dur("elapsed", s.Elapsed).
		Float64("leaf-score-mean", s.LeafScores.Mean()).
		Float64("leaf-score-stdev", s.LeafScores.Stdev()).
		Float64("leaf-score-max", s.LeafScores.Max())
}
