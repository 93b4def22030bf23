// internal/results/types.go
// Package: results
package results

// Metrics holds the client-side measurements derived from a single
// streamed generation.
type Metrics struct {
	TotalTime           float64 `json:"total_time"`          // seconds, request start to stream end
	TimeToFirstToken    float64 `json:"time_to_first_token"` // seconds, request start to first fragment
	TotalTokens         int     `json:"total_tokens"`        // streamed fragment count, not true tokenization
	TokensPerSecond     float64 `json:"tokens_per_second"`
	ResponseLengthChars int     `json:"response_length_chars"`
	AverageWordLength   float64 `json:"average_word_length"`
}

// Performance is the qualitative judgement attached to a run.
type Performance struct {
	Rating           string  `json:"rating"`       // Excellent .. Needs Improvement
	RatingStars      string  `json:"rating_stars"` // unary star string matching the rating
	PerformanceScore float64 `json:"performance_score"`
}

// TestResult is one logged benchmark run. It is created once per run and
// never mutated after being appended to the log.
type TestResult struct {
	Timestamp     string          `json:"timestamp"` // RFC 3339
	ModelName     string          `json:"model_name"`
	Host          string          `json:"host"`
	Query         string          `json:"query"`
	Response      string          `json:"response"`
	Metrics       Metrics         `json:"metrics"`
	Performance   Performance     `json:"performance"`
	Configuration map[string]bool `json:"configuration"` // display flags active for the run
}

// resultLog is the on-disk document wrapping the ordered result list.
type resultLog struct {
	TestResults []TestResult `json:"test_results"`
}
