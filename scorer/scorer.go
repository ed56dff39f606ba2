// Package scorer turns a board's accumulated cell values into a score by
// matching them against badge capacities.
package scorer

import (
	"sort"

	"github.com/samber/lo"
)

// DefaultPointMod is the rounding modulus used by the game: odd leftover
// points on a cell are wasted.
const DefaultPointMod = 2

// Score pairs the largest positive value with the largest badge, the second
// largest with the second, and so on. Each pair contributes the value rounded
// down to a multiple of pointMod, capped at the badge. Unpaired values and
// badges contribute nothing. Neither input slice is modified.
func Score(values []int, badges []int, pointMod int) int {
	if pointMod < 1 {
		pointMod = 1
	}
	positive := lo.Filter(values, func(v int, _ int) bool { return v > 0 })
	sort.Sort(sort.Reverse(sort.IntSlice(positive)))

	sortedBadges := SortedBadges(badges)

	n := min(len(positive), len(sortedBadges))
	score := 0
	for i := 0; i < n; i++ {
		score += min(positive[i]/pointMod*pointMod, sortedBadges[i])
	}
	return score
}

// SortedBadges returns a descending copy of badges.
func SortedBadges(badges []int) []int {
	sorted := append([]int(nil), badges...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted
}

// MaxScore is the best score any board can reach with these badges.
func MaxScore(badges []int) int {
	return lo.Sum(badges)
}
