// internal/viewer/render.go
// Package: viewer
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gollamabench/internal/results"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	queryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	midStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const rule = "============================================================"

// responsePreviewLen caps the response excerpt in the detail listing.
const responsePreviewLen = 100

// RenderSummary formats overall statistics for display.
func RenderSummary(s results.Summary) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(rule))
	fmt.Fprintln(&b, titleStyle.Render("TEST RESULTS SUMMARY"))
	fmt.Fprintln(&b, titleStyle.Render(rule))

	fmt.Fprintln(&b, sectionStyle.Render("Overall Statistics:"))
	fmt.Fprintln(&b, labelStyle.Render("  Total Tests:   ")+valueStyle.Render(fmt.Sprintf("%d", s.TotalTests)))
	fmt.Fprintln(&b, labelStyle.Render("  Models Tested: ")+valueStyle.Render(fmt.Sprintf("%d", len(s.Models))))
	fmt.Fprintln(&b, labelStyle.Render("  Models:        ")+valueStyle.Render(strings.Join(s.Models, ", ")))

	fmt.Fprintln(&b, sectionStyle.Render("Performance Averages:"))
	fmt.Fprintln(&b, labelStyle.Render("  Tokens/Second:       ")+valueStyle.Render(fmt.Sprintf("%.2f", s.AvgTokensPerSecond)))
	fmt.Fprintln(&b, labelStyle.Render("  Total Time:          ")+valueStyle.Render(fmt.Sprintf("%.2fs", s.AvgTotalTime)))
	fmt.Fprintln(&b, labelStyle.Render("  Time to First Token: ")+valueStyle.Render(fmt.Sprintf("%.2fs", s.AvgTimeToFirstToken)))

	fmt.Fprintln(&b, sectionStyle.Render("Performance Ratings:"))
	for _, rating := range ratingOrder {
		count, ok := s.Ratings[rating]
		if !ok {
			continue
		}
		pct := float64(count) / float64(s.TotalTests) * 100
		fmt.Fprintln(&b, labelStyle.Render("  "+rating+": ")+valueStyle.Render(fmt.Sprintf("%d (%.1f%%)", count, pct)))
	}
	return b.String()
}

// ratingOrder fixes the histogram display order, best first.
var ratingOrder = []string{"Excellent", "Very Good", "Good", "Fair", "Needs Improvement"}

// RenderDetails formats a per-test listing, newest first. A limit of 0
// shows everything.
func RenderDetails(rs []results.TestResult, limit int) string {
	if len(rs) == 0 {
		return labelStyle.Render("No test results found.") + "\n"
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(rule))
	fmt.Fprintln(&b, titleStyle.Render("DETAILED TEST RESULTS"))
	fmt.Fprintln(&b, titleStyle.Render(rule))

	sorted := results.SortedByNewest(rs)
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
		fmt.Fprintln(&b, sectionStyle.Render(fmt.Sprintf("Showing latest %d results:", limit)))
	}

	for i, r := range sorted {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, sectionStyle.Render(fmt.Sprintf("Test #%d", len(rs)-i)))
		fmt.Fprintln(&b, labelStyle.Render("  Time:  ")+valueStyle.Render(strings.Replace(trim(r.Timestamp, 19), "T", " ", 1)))
		fmt.Fprintln(&b, labelStyle.Render("  Model: ")+valueStyle.Render(r.ModelName))
		fmt.Fprintln(&b, labelStyle.Render("  Query: ")+queryStyle.Render(r.Query))
		fmt.Fprintln(&b, labelStyle.Render("  Metrics:"))
		fmt.Fprintln(&b, labelStyle.Render("    Total Time:  ")+valueStyle.Render(fmt.Sprintf("%.2fs", r.Metrics.TotalTime)))
		fmt.Fprintln(&b, labelStyle.Render("    First Token: ")+valueStyle.Render(fmt.Sprintf("%.2fs", r.Metrics.TimeToFirstToken)))
		fmt.Fprintln(&b, labelStyle.Render("    Tokens:      ")+valueStyle.Render(fmt.Sprintf("%d", r.Metrics.TotalTokens)))
		fmt.Fprintln(&b, labelStyle.Render("    Tokens/Sec:  ")+valueStyle.Render(fmt.Sprintf("%.2f", r.Metrics.TokensPerSecond)))
		fmt.Fprintln(&b, labelStyle.Render("  Rating: ")+ratingStyle(r.Performance.Rating).Render(r.Performance.Rating+" "+r.Performance.RatingStars))
		fmt.Fprintln(&b, labelStyle.Render("  Response: ")+queryStyle.Render(preview(r.Response)))
		fmt.Fprintln(&b, titleStyle.Render(strings.Repeat("-", 40)))
	}
	return b.String()
}

// RenderComparison formats per-model grouped means. The input is expected
// to be sorted already (results.CompareModels sorts by mean tokens/sec).
func RenderComparison(comparisons []results.ModelComparison) string {
	if len(comparisons) < 2 {
		return labelStyle.Render("Need at least 2 different models to compare.") + "\n"
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(rule))
	fmt.Fprintln(&b, titleStyle.Render("MODEL COMPARISON"))
	fmt.Fprintln(&b, titleStyle.Render(rule))

	for _, c := range comparisons {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, sectionStyle.Render(c.ModelName))
		fmt.Fprintln(&b, labelStyle.Render("  Tests:          ")+valueStyle.Render(fmt.Sprintf("%d", c.Tests)))
		fmt.Fprintln(&b, labelStyle.Render("  Avg Tokens/Sec: ")+valueStyle.Render(fmt.Sprintf("%.2f", c.AvgTokensPerSecond)))
		fmt.Fprintln(&b, labelStyle.Render("  Avg Time:       ")+valueStyle.Render(fmt.Sprintf("%.2fs", c.AvgTotalTime)))
		fmt.Fprintln(&b, labelStyle.Render("  Avg Score:      ")+valueStyle.Render(fmt.Sprintf("%.2f", c.AvgScore)))
		fmt.Fprintln(&b, labelStyle.Render("  Common Rating:  ")+ratingStyle(c.CommonRating).Render(c.CommonRating))
	}
	return b.String()
}

func ratingStyle(rating string) lipgloss.Style {
	switch rating {
	case "Excellent", "Very Good":
		return goodStyle
	case "Good", "Fair":
		return midStyle
	default:
		return badStyle
	}
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > responsePreviewLen {
		return string(r[:responsePreviewLen]) + "..."
	}
	return s
}

func trim(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
