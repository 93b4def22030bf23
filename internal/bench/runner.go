// internal/bench/runner.go
// Package: bench
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/mwiater/gollamabench/internal/results"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	midStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

const rule = "============================================================"

// Runner executes a single benchmark run: availability check, streamed
// query, metric derivation, rating, and log append. Each Runner is built
// from an immutable Config and used for exactly one invocation.
type Runner struct {
	cfg    Config
	client *Client
	store  *results.Store
	out    io.Writer
	now    func() time.Time
}

// NewRunner returns a runner for the given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:    cfg,
		client: NewClient(cfg.Host),
		store:  results.NewStore(cfg.LogFile),
		out:    os.Stdout,
		now:    time.Now,
	}
}

// Run executes the full pipeline and returns the logged result. Any failure
// during the query phase aborts the run without writing a log entry; the
// error has already been reported to the user when Run returns it.
func (r *Runner) Run(ctx context.Context) (results.TestResult, error) {
	r.printHeader()

	if r.cfg.Debug {
		pp.Println(r.cfg)
	}

	if err := r.client.CheckModel(ctx, r.cfg.Model); err != nil {
		r.reportCheckFailure(err)
		return results.TestResult{}, err
	}
	fmt.Fprintln(r.out, goodStyle.Render(fmt.Sprintf("Model %q is available.", r.cfg.Model)))
	fmt.Fprintln(r.out)

	response, fragments, total, firstToken, err := r.streamQuery(ctx)
	if err != nil {
		fmt.Fprintln(r.out, badStyle.Render(fmt.Sprintf("Error during query execution: %v", err)))
		return results.TestResult{}, err
	}

	metrics := CalculateMetrics(response, fragments, total, firstToken)
	performance := RatePerformance(metrics.TokensPerSecond, metrics.TimeToFirstToken)
	r.printMetrics(metrics, performance)

	result := results.TestResult{
		Timestamp:     r.now().Format(time.RFC3339),
		ModelName:     r.cfg.Model,
		Host:          r.cfg.Host,
		Query:         r.cfg.Query,
		Response:      response,
		Metrics:       metrics,
		Performance:   performance,
		Configuration: r.cfg.DisplayFlags(),
	}

	warn, err := r.store.Append(result)
	if warn != nil {
		fmt.Fprintln(r.out, warnStyle.Render(fmt.Sprintf("Warning: starting a fresh log: %v", warn)))
	}
	if err != nil {
		fmt.Fprintln(r.out, badStyle.Render(fmt.Sprintf("Error: result was not saved: %v", err)))
		return results.TestResult{}, err
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Render("Testing completed! Result appended to "+r.cfg.LogFile))
	return result, nil
}

// streamQuery drains the fragment stream exactly once, echoing each
// fragment as it arrives and recording the three timestamps the metrics
// need. A mid-stream failure discards the partial response.
func (r *Runner) streamQuery(ctx context.Context) (response string, fragments int, total, firstToken time.Duration, err error) {
	fmt.Fprintln(r.out, headerStyle.Render("Response Stream:"))
	fmt.Fprintln(r.out)

	var sb strings.Builder
	start := time.Now()
	var tFirst time.Time

	err = r.client.Stream(ctx, r.cfg.Model, r.cfg.Query, func(fragment string) {
		if tFirst.IsZero() {
			tFirst = time.Now()
		}
		fragments++
		sb.WriteString(fragment)
		fmt.Fprint(r.out, fragment)
	})
	end := time.Now()
	fmt.Fprintln(r.out)

	if err != nil {
		return "", 0, 0, 0, err
	}

	if !tFirst.IsZero() {
		firstToken = tFirst.Sub(start)
	}
	return sb.String(), fragments, end.Sub(start), firstToken, nil
}

func (r *Runner) printHeader() {
	fmt.Fprintln(r.out, headerStyle.Render(rule))
	fmt.Fprintln(r.out, headerStyle.Render("OLLAMA LOCAL MODEL TESTING"))
	fmt.Fprintln(r.out, headerStyle.Render(rule))
	fmt.Fprintln(r.out, labelStyle.Render("  Model: ")+valueStyle.Render(r.cfg.Model))
	fmt.Fprintln(r.out, labelStyle.Render("  Host:  ")+valueStyle.Render(r.cfg.Host))
	fmt.Fprintln(r.out, labelStyle.Render("  Time:  ")+valueStyle.Render(r.now().Format("2006-01-02 15:04:05")))
	fmt.Fprintln(r.out, labelStyle.Render("  Query: ")+valueStyle.Render(r.cfg.Query))
	fmt.Fprintln(r.out, headerStyle.Render(rule))
	fmt.Fprintln(r.out)
}

// reportCheckFailure prints the human-readable message for an availability
// check failure, including the installed-model hint when applicable.
func (r *Runner) reportCheckFailure(err error) {
	var notFound *ModelNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(r.out, badStyle.Render(fmt.Sprintf("Error: model %q is not available.", notFound.Model)))
		if len(notFound.Available) > 0 {
			fmt.Fprintln(r.out, labelStyle.Render("Available models:"))
			for _, m := range notFound.Available {
				fmt.Fprintln(r.out, "  - "+m)
			}
		}
		fmt.Fprintln(r.out, labelStyle.Render(fmt.Sprintf("To install it, run: ollama pull %s", notFound.Model)))
		return
	}

	fmt.Fprintln(r.out, badStyle.Render(fmt.Sprintf("Error connecting to Ollama: %v", err)))
	fmt.Fprintln(r.out, labelStyle.Render("Make sure Ollama is running: ollama serve"))
}

func (r *Runner) printMetrics(m results.Metrics, p results.Performance) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Render(rule))
	fmt.Fprintln(r.out, headerStyle.Render("PERFORMANCE EVALUATION"))
	fmt.Fprintln(r.out, headerStyle.Render(rule))

	fmt.Fprintln(r.out, labelStyle.Render("  Total Time:          ")+valueStyle.Render(fmt.Sprintf("%.2f seconds", m.TotalTime)))
	fmt.Fprintln(r.out, labelStyle.Render("  Time to First Token: ")+valueStyle.Render(fmt.Sprintf("%.2f seconds", m.TimeToFirstToken)))

	if r.cfg.ShowTokenStats {
		fmt.Fprintln(r.out, labelStyle.Render("  Total Tokens:        ")+valueStyle.Render(fmt.Sprintf("%d", m.TotalTokens)))
		fmt.Fprintln(r.out, labelStyle.Render("  Tokens/Second:       ")+valueStyle.Render(fmt.Sprintf("%.2f", m.TokensPerSecond)))
	}

	if r.cfg.ShowDetailedMetrics {
		fmt.Fprintln(r.out, labelStyle.Render("  Response Length:     ")+valueStyle.Render(fmt.Sprintf("%d characters", m.ResponseLengthChars)))
		fmt.Fprintln(r.out, labelStyle.Render("  Average Word Length: ")+valueStyle.Render(fmt.Sprintf("%.1f chars/word", m.AverageWordLength)))
	}

	fmt.Fprintln(r.out, labelStyle.Render("  Performance Rating:  ")+ratingStyle(p.Rating).Render(p.Rating+" "+p.RatingStars))
	fmt.Fprintln(r.out, headerStyle.Render(rule))
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
