package scoring

import (
	"math"

	"github.com/erikamanning/poker-planning/models"
)

// pointsTable maps every uncertainty-complexity-effort combination to a
// story point value. The table is handcrafted, not derived from a formula.
var pointsTable = map[string]int{
	"S-S-S": 1,
	"S-S-M": 2,
	"S-S-L": 5,
	"S-M-S": 2,
	"S-M-M": 3,
	"S-M-L": 5,
	"S-L-S": 3,
	"S-L-M": 5,
	"S-L-L": 8,
	"M-S-S": 3,
	"M-S-M": 5,
	"M-S-L": 8,
	"M-M-S": 5,
	"M-M-M": 5,
	"M-M-L": 8,
	"M-L-S": 8,
	"M-L-M": 8,
	"M-L-L": 13,
	"L-S-S": 5,
	"L-S-M": 8,
	"L-S-L": 13,
	"L-M-S": 8,
	"L-M-M": 8,
	"L-M-L": 13,
	"L-L-S": 8,
	"L-L-M": 13,
	"L-L-L": 13,
}

// fibSequence holds the candidate final estimates in ascending order.
var fibSequence = []int{1, 2, 3, 5, 8, 13, 21}

// CalculatePoints maps a completed vote to its story point value. The
// second return value is false while any dimension is still unset; an
// incomplete vote is a normal intermediate state, not an error.
func CalculatePoints(vote models.Vote) (int, bool) {
	if !IsVoteComplete(vote) {
		return 0, false
	}

	key := string(vote.Uncertainty) + "-" + string(vote.Complexity) + "-" + string(vote.Effort)
	points, ok := pointsTable[key]
	return points, ok
}

// IsVoteComplete reports whether all three dimensions have been cast.
func IsVoteComplete(vote models.Vote) bool {
	return models.ValidSize(vote.Uncertainty) &&
		models.ValidSize(vote.Complexity) &&
		models.ValidSize(vote.Effort)
}

// RoundToFinalEstimate returns the candidate estimate closest to the given
// average. Candidates are scanned in ascending order with a strict
// comparison, so an exact tie resolves to the smaller value.
func RoundToFinalEstimate(average float64) int {
	closest := fibSequence[0]
	minDiff := math.Abs(average - float64(closest))

	for _, fib := range fibSequence {
		diff := math.Abs(average - float64(fib))
		if diff < minDiff {
			minDiff = diff
			closest = fib
		}
	}

	return closest
}

// SizeLabel returns the display name for a size.
func SizeLabel(size models.Size) string {
	switch size {
	case models.SizeSmall:
		return "Small"
	case models.SizeMedium:
		return "Medium"
	case models.SizeLarge:
		return "Large"
	}
	return ""
}
