package bench

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/gollamabench/internal/results"
)

// newFakeOllama serves /api/tags with the given installed models and streams
// a canned three-fragment chat response for any /api/chat request.
func newFakeOllama(t *testing.T, installed ...string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", newTagsHandler(installed...))
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"message":{"role":"assistant","content":"Quantum "},"done":false}`)
		fmt.Fprintln(w, `{"message":{"role":"assistant","content":"computing "},"done":false}`)
		fmt.Fprintln(w, `{"message":{"role":"assistant","content":"explained."},"done":false}`)
		fmt.Fprintln(w, `{"done":true,"done_reason":"stop"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srvURL, logFile string) Config {
	return Config{
		Model:               "smollm2:135m",
		Query:               "Explain quantum computing in simple terms.",
		Host:                srvURL,
		LogFile:             logFile,
		ShowDetailedMetrics: true,
		ShowTokenStats:      true,
	}
}

func Test_Runner_HappyPath(t *testing.T) {
	srv := newFakeOllama(t, "smollm2:135m")
	logFile := filepath.Join(t.TempDir(), "results.json")

	r := NewRunner(testConfig(srv.URL, logFile))
	var out bytes.Buffer
	r.out = &out

	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.Response != "Quantum computing explained." {
		t.Fatalf("unexpected response: %q", result.Response)
	}
	if result.Metrics.TotalTokens != 3 {
		t.Fatalf("expected 3 fragments, got %d", result.Metrics.TotalTokens)
	}
	if result.Performance.Rating == "" || result.Performance.RatingStars == "" {
		t.Fatalf("missing performance rating: %+v", result.Performance)
	}
	if result.Configuration["show_detailed_metrics"] != true {
		t.Fatalf("missing configuration snapshot: %v", result.Configuration)
	}

	// Fragments are echoed in arrival order.
	if !strings.Contains(out.String(), "Quantum computing explained.") {
		t.Fatalf("response not echoed to console: %s", out.String())
	}

	logged, err := results.NewStore(logFile).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(logged) != 1 || logged[0].Response != result.Response {
		t.Fatalf("unexpected log contents: %+v", logged)
	}
}

func Test_Runner_AppendsSequentially(t *testing.T) {
	srv := newFakeOllama(t, "smollm2:135m")
	logFile := filepath.Join(t.TempDir(), "results.json")

	for i := 0; i < 3; i++ {
		r := NewRunner(testConfig(srv.URL, logFile))
		r.out = &bytes.Buffer{}
		if _, err := r.Run(context.Background()); err != nil {
			t.Fatalf("run %d error: %v", i, err)
		}
	}

	logged, err := results.NewStore(logFile).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(logged) != 3 {
		t.Fatalf("expected 3 logged results, got %d", len(logged))
	}
}

func Test_Runner_ModelMissing_LogUntouched(t *testing.T) {
	srv := newFakeOllama(t, "llama3.2:1b") // requested model not installed
	logFile := filepath.Join(t.TempDir(), "results.json")

	// Seed an existing log with one entry.
	seed := results.TestResult{Timestamp: "2026-08-30T10:00:00Z", ModelName: "llama3.2:1b"}
	if err := results.NewStore(logFile).Write([]results.TestResult{seed}); err != nil {
		t.Fatalf("seed write: %v", err)
	}
	before, _ := os.ReadFile(logFile)

	r := NewRunner(testConfig(srv.URL, logFile))
	var out bytes.Buffer
	r.out = &out

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("expected an error for a missing model")
	}
	if !strings.Contains(out.String(), "not available") {
		t.Fatalf("expected a human-readable message, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "ollama pull smollm2:135m") {
		t.Fatalf("expected a pull hint, got: %s", out.String())
	}

	after, _ := os.ReadFile(logFile)
	if !bytes.Equal(before, after) {
		t.Fatal("log changed after an aborted run")
	}
}

func Test_Runner_DaemonUnreachable(t *testing.T) {
	srv := newFakeOllama(t, "smollm2:135m")
	url := srv.URL
	srv.Close()

	logFile := filepath.Join(t.TempDir(), "results.json")
	r := NewRunner(testConfig(url, logFile))
	var out bytes.Buffer
	r.out = &out

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("expected an error for an unreachable daemon")
	}
	if !strings.Contains(out.String(), "ollama serve") {
		t.Fatalf("expected a serve hint, got: %s", out.String())
	}
	if _, err := os.Stat(logFile); !os.IsNotExist(err) {
		t.Fatal("no log should be written for an aborted run")
	}
}

func Test_Runner_MalformedLog_WarnsAndStartsFresh(t *testing.T) {
	srv := newFakeOllama(t, "smollm2:135m")
	logFile := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(logFile, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write malformed log: %v", err)
	}

	r := NewRunner(testConfig(srv.URL, logFile))
	var out bytes.Buffer
	r.out = &out

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out.String(), "Warning") {
		t.Fatalf("expected a warning about the malformed log, got: %s", out.String())
	}

	logged, err := results.NewStore(logFile).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("expected a fresh log of length 1, got %d", len(logged))
	}
}

func Test_Runner_StreamInterrupted_NothingLogged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", newTagsHandler("smollm2:135m"))
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"message":{"role":"assistant","content":"partial"},"done":false}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logFile := filepath.Join(t.TempDir(), "results.json")
	r := NewRunner(testConfig(srv.URL, logFile))
	r.out = &bytes.Buffer{}

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("expected a stream error")
	}
	if _, err := os.Stat(logFile); !os.IsNotExist(err) {
		t.Fatal("partial responses must not be logged")
	}
}
