package bench

import (
	"strings"
	"testing"
)

func Test_RatePerformance_Table(t *testing.T) {
	cases := []struct {
		name   string
		tps    float64
		ttft   float64
		rating string
		stars  int
	}{
		{"excellent", 25, 1.5, "Excellent", 5},
		{"very good", 18, 2.5, "Very Good", 4},
		{"good", 12, 4, "Good", 3},
		{"fair", 7, 8, "Fair", 2},
		{"needs improvement", 3, 12, "Needs Improvement", 1},
		{"mid-range run", 18.46, 1.23, "Very Good", 4},
		{"fast but slow start", 25, 5, "Fair", 2},
		{"boundary tps not exclusive", 20, 1, "Very Good", 4},
		{"boundary ttft not exclusive", 25, 2, "Very Good", 4},
		{"zero everything", 0, 0, "Needs Improvement", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := RatePerformance(tc.tps, tc.ttft)
			if p.Rating != tc.rating {
				t.Fatalf("rating: got %q, want %q", p.Rating, tc.rating)
			}
			if got := strings.Count(p.RatingStars, "⭐"); got != tc.stars {
				t.Fatalf("stars: got %d, want %d", got, tc.stars)
			}
		})
	}
}

func Test_RatePerformance_TotalAndDeterministic(t *testing.T) {
	// Every input lands on exactly one of the five ratings, and repeated
	// evaluation is stable.
	valid := map[string]bool{
		"Excellent": true, "Very Good": true, "Good": true,
		"Fair": true, "Needs Improvement": true,
	}
	for tps := -5.0; tps <= 30; tps += 2.5 {
		for ttft := -1.0; ttft <= 12; ttft += 1.5 {
			first := RatePerformance(tps, ttft)
			if !valid[first.Rating] {
				t.Fatalf("unknown rating %q for (%v, %v)", first.Rating, tps, ttft)
			}
			if again := RatePerformance(tps, ttft); again != first {
				t.Fatalf("non-deterministic rating for (%v, %v)", tps, ttft)
			}
		}
	}
}

func Test_performanceScore_OrdersRuns(t *testing.T) {
	fast := performanceScore(20, 1)
	slow := performanceScore(5, 8)
	if fast <= slow {
		t.Fatalf("expected fast run to outscore slow run: %v vs %v", fast, slow)
	}

	// Same throughput, lower latency ranks higher.
	if performanceScore(10, 1) <= performanceScore(10, 4) {
		t.Fatal("expected lower latency to rank higher")
	}
}
