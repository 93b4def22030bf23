package viewer

import (
	"strings"
	"testing"

	"github.com/mwiater/gollamabench/internal/results"
)

func testResults() []results.TestResult {
	mk := func(ts, model, rating string, tps float64) results.TestResult {
		return results.TestResult{
			Timestamp: ts,
			ModelName: model,
			Query:     "Explain quantum computing in simple terms.",
			Response:  "Quantum computing uses qubits.",
			Metrics: results.Metrics{
				TotalTime:        8.45,
				TimeToFirstToken: 1.23,
				TotalTokens:      156,
				TokensPerSecond:  tps,
			},
			Performance: results.Performance{Rating: rating, RatingStars: "⭐⭐⭐⭐"},
		}
	}
	return []results.TestResult{
		mk("2026-08-30T10:00:00Z", "smollm2:135m", "Very Good", 18.46),
		mk("2026-08-30T11:00:00Z", "llama3.2:1b", "Good", 12.0),
	}
}

func Test_RenderSummary(t *testing.T) {
	out := RenderSummary(results.Summarize(testResults()))

	for _, want := range []string{
		"TEST RESULTS SUMMARY",
		"Total Tests:",
		"smollm2:135m, llama3.2:1b",
		"Very Good: 1 (50.0%)",
		"Good: 1 (50.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func Test_RenderDetails_NewestFirstWithLimit(t *testing.T) {
	out := RenderDetails(testResults(), 1)

	if !strings.Contains(out, "Showing latest 1 results:") {
		t.Fatalf("missing limit note:\n%s", out)
	}
	if !strings.Contains(out, "llama3.2:1b") {
		t.Fatalf("expected the newest run:\n%s", out)
	}
	if strings.Contains(out, "smollm2:135m") {
		t.Fatalf("older run should be cut by the limit:\n%s", out)
	}
	// Timestamps render as "YYYY-MM-DD HH:MM:SS".
	if !strings.Contains(out, "2026-08-30 11:00:00") {
		t.Fatalf("timestamp not reformatted:\n%s", out)
	}
}

func Test_RenderDetails_Empty(t *testing.T) {
	out := RenderDetails(nil, 0)
	if !strings.Contains(out, "No test results found.") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func Test_RenderDetails_LongResponsePreview(t *testing.T) {
	rs := testResults()
	rs[0].Response = strings.Repeat("x", 150)
	out := RenderDetails(rs, 0)
	if !strings.Contains(out, strings.Repeat("x", 100)+"...") {
		t.Fatalf("expected a truncated preview:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("x", 101)) {
		t.Fatalf("preview too long:\n%s", out)
	}
}

func Test_RenderComparison(t *testing.T) {
	out := RenderComparison(results.CompareModels(testResults()))
	if !strings.Contains(out, "MODEL COMPARISON") {
		t.Fatalf("missing title:\n%s", out)
	}
	// Faster model appears before the slower one.
	fast := strings.Index(out, "smollm2:135m")
	slow := strings.Index(out, "llama3.2:1b")
	if fast == -1 || slow == -1 || fast > slow {
		t.Fatalf("unexpected ordering:\n%s", out)
	}
}

func Test_RenderComparison_NeedsTwoModels(t *testing.T) {
	one := testResults()[:1]
	out := RenderComparison(results.CompareModels(one))
	if !strings.Contains(out, "Need at least 2 different models to compare.") {
		t.Fatalf("unexpected output: %s", out)
	}
}
