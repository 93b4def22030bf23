// internal/results/summary.go
// Package: results
package results

import "sort"

// Summary aggregates a set of logged results for the overview display.
type Summary struct {
	TotalTests          int
	Models              []string // distinct, in first-seen order
	AvgTokensPerSecond  float64
	AvgTotalTime        float64
	AvgTimeToFirstToken float64
	Ratings             map[string]int
}

// ModelComparison holds grouped means for a single model.
type ModelComparison struct {
	ModelName           string
	Tests               int
	AvgTokensPerSecond  float64
	AvgTotalTime        float64
	AvgTimeToFirstToken float64
	AvgScore            float64
	CommonRating        string
}

// Summarize computes overall statistics across all results.
func Summarize(rs []TestResult) Summary {
	s := Summary{
		TotalTests: len(rs),
		Ratings:    map[string]int{},
	}
	if len(rs) == 0 {
		return s
	}

	seen := map[string]bool{}
	var tps, total, ttft float64
	for _, r := range rs {
		if !seen[r.ModelName] {
			seen[r.ModelName] = true
			s.Models = append(s.Models, r.ModelName)
		}
		tps += r.Metrics.TokensPerSecond
		total += r.Metrics.TotalTime
		ttft += r.Metrics.TimeToFirstToken
		s.Ratings[r.Performance.Rating]++
	}

	n := float64(len(rs))
	s.AvgTokensPerSecond = tps / n
	s.AvgTotalTime = total / n
	s.AvgTimeToFirstToken = ttft / n
	return s
}

// CompareModels groups results by model and returns per-model means, sorted
// by descending mean tokens per second.
func CompareModels(rs []TestResult) []ModelComparison {
	byModel := map[string][]TestResult{}
	var order []string
	for _, r := range rs {
		if _, ok := byModel[r.ModelName]; !ok {
			order = append(order, r.ModelName)
		}
		byModel[r.ModelName] = append(byModel[r.ModelName], r)
	}

	out := make([]ModelComparison, 0, len(order))
	for _, m := range order {
		rows := byModel[m]
		mc := ModelComparison{ModelName: m, Tests: len(rows)}

		ratingCounts := map[string]int{}
		var ratingOrder []string
		for _, r := range rows {
			mc.AvgTokensPerSecond += r.Metrics.TokensPerSecond
			mc.AvgTotalTime += r.Metrics.TotalTime
			mc.AvgTimeToFirstToken += r.Metrics.TimeToFirstToken
			mc.AvgScore += r.Performance.PerformanceScore
			if ratingCounts[r.Performance.Rating] == 0 {
				ratingOrder = append(ratingOrder, r.Performance.Rating)
			}
			ratingCounts[r.Performance.Rating]++
		}

		n := float64(len(rows))
		mc.AvgTokensPerSecond /= n
		mc.AvgTotalTime /= n
		mc.AvgTimeToFirstToken /= n
		mc.AvgScore /= n

		// Most common rating; ties go to the rating seen first.
		best := 0
		for _, rating := range ratingOrder {
			if ratingCounts[rating] > best {
				best = ratingCounts[rating]
				mc.CommonRating = rating
			}
		}
		out = append(out, mc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgTokensPerSecond > out[j].AvgTokensPerSecond
	})
	return out
}

// SortedByNewest returns a copy of rs ordered by timestamp descending.
// Timestamps are RFC 3339 strings, so lexical order is chronological.
func SortedByNewest(rs []TestResult) []TestResult {
	cp := make([]TestResult, len(rs))
	copy(cp, rs)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].Timestamp > cp[j].Timestamp
	})
	return cp
}
