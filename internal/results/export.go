// internal/results/export.go
// Package: results
package results

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// csvHeader matches the Metrics/Performance fields flattened per row.
var csvHeader = []string{
	"Timestamp", "Model", "Query", "Response", "Total_Time",
	"Time_to_First_Token", "Total_Tokens", "Tokens_per_Second",
	"Response_Length", "Performance_Rating", "Performance_Score",
}

// ExportCSV writes one header row plus one row per result, in log order.
func ExportCSV(w io.Writer, rs []TestResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range rs {
		record := []string{
			r.Timestamp,
			r.ModelName,
			r.Query,
			r.Response,
			formatFloat(r.Metrics.TotalTime),
			formatFloat(r.Metrics.TimeToFirstToken),
			strconv.Itoa(r.Metrics.TotalTokens),
			formatFloat(r.Metrics.TokensPerSecond),
			strconv.Itoa(r.Metrics.ResponseLengthChars),
			r.Performance.Rating,
			formatFloat(r.Performance.PerformanceScore),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile exports the results to a file at path, overwriting it.
func ExportCSVFile(path string, rs []TestResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportCSV(f, rs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
