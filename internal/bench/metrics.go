// internal/bench/metrics.go
// Package: bench
package bench

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mwiater/gollamabench/internal/results"
)

// CalculateMetrics derives run metrics from the assembled response text and
// the client-side timings. The streamed fragment count stands in for the
// token count; no real tokenization happens.
func CalculateMetrics(response string, fragments int, total, firstToken time.Duration) results.Metrics {
	m := results.Metrics{
		TotalTime:           total.Seconds(),
		TimeToFirstToken:    firstToken.Seconds(),
		TotalTokens:         fragments,
		ResponseLengthChars: utf8.RuneCountInString(response),
	}

	if m.TotalTime > 0 {
		m.TokensPerSecond = float64(fragments) / m.TotalTime
	}

	words := strings.Fields(response)
	if len(words) > 0 {
		var chars int
		for _, w := range words {
			chars += utf8.RuneCountInString(w)
		}
		m.AverageWordLength = float64(chars) / float64(len(words))
	}

	return m
}
