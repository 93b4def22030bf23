// internal/bench/rating.go
// Package: bench
package bench

import (
	"strings"

	"github.com/mwiater/gollamabench/internal/results"
)

// ratingThreshold is one row of the rating table. Rows are evaluated top
// down and the first match wins; both bounds are exclusive.
type ratingThreshold struct {
	rating              string
	stars               int
	minTokensPerSecond  float64
	maxTimeToFirstToken float64 // seconds
}

var ratingTable = []ratingThreshold{
	{"Excellent", 5, 20, 2},
	{"Very Good", 4, 15, 3},
	{"Good", 3, 10, 5},
	{"Fair", 2, 5, 10},
}

// fallbackRating applies when no threshold row matches.
const fallbackRating = "Needs Improvement"

// RatePerformance maps throughput and first-token latency onto the
// five-level rating scale and attaches the ranking score.
func RatePerformance(tokensPerSecond, timeToFirstToken float64) results.Performance {
	rating, stars := fallbackRating, 1
	for _, row := range ratingTable {
		if tokensPerSecond > row.minTokensPerSecond && timeToFirstToken < row.maxTimeToFirstToken {
			rating, stars = row.rating, row.stars
			break
		}
	}

	return results.Performance{
		Rating:           rating,
		RatingStars:      strings.Repeat("⭐", stars),
		PerformanceScore: performanceScore(tokensPerSecond, timeToFirstToken),
	}
}

// performanceScore combines the two inputs into a single number used only
// for relative ranking in the comparison view: throughput minus a penalty
// for slow first fragments. It plays no part in the rating itself.
func performanceScore(tokensPerSecond, timeToFirstToken float64) float64 {
	return tokensPerSecond - 2*timeToFirstToken
}
