// internal/bench/client.go
// Package: bench
package bench

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatStreamEvent is one NDJSON line from /api/chat.
type chatStreamEvent struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Message   struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Done       bool   `json:"done"`
	DoneReason string `json:"done_reason,omitempty"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type psResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Client talks to a single Ollama host.
type Client struct {
	host string
	http *http.Client
}

// NewClient returns a client for the given host, e.g. "http://localhost:11434".
// The transport keeps connections alive, but no overall request timeout is
// set: a generation may take as long as the daemon needs, and cancellation
// happens only through the context.
func NewClient(host string) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}
	return &Client{
		host: strings.TrimRight(host, "/"),
		http: &http.Client{Transport: transport},
	}
}

// Host returns the base URL this client targets.
func (c *Client) Host() string { return c.host }

// ListModels returns the names of all models installed on the daemon.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ConnectionError{Host: c.host, Err: fmt.Errorf("unexpected status %s from /api/tags", resp.Status)}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, &ConnectionError{Host: c.host, Err: fmt.Errorf("could not parse /api/tags response: %w", err)}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// RunningModels returns the set of models currently loaded per /api/ps.
func (c *Client) RunningModels(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/ps", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	var ps psResponse
	if err := json.NewDecoder(resp.Body).Decode(&ps); err != nil {
		return nil, &ConnectionError{Host: c.host, Err: fmt.Errorf("could not parse /api/ps response: %w", err)}
	}

	running := make(map[string]struct{}, len(ps.Models))
	for _, m := range ps.Models {
		running[m.Name] = struct{}{}
	}
	return running, nil
}

// CheckModel confirms that model is installed on the daemon. It returns a
// *ConnectionError when the daemon is unreachable and a *ModelNotFoundError
// when the model is absent. The model is never pulled automatically.
func (c *Client) CheckModel(ctx context.Context, model string) error {
	installed, err := c.ListModels(ctx)
	if err != nil {
		return err
	}
	for _, name := range installed {
		if name == model {
			return nil
		}
	}
	return &ModelNotFoundError{Model: model, Available: installed}
}

// Stream sends query to model over a streamed /api/chat call and invokes
// onFragment with each piece of message content in arrival order. It
// returns once the daemon signals completion. A connection that drops
// before the done event yields a *StreamError.
func (c *Client) Stream(ctx context.Context, model, query string, onFragment func(string)) error {
	payload := chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: query}},
		Stream:   true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return &StreamError{Err: fmt.Errorf("ollama error: status=%d body=%s", resp.StatusCode, string(b))}
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var ev chatStreamEvent
			if err := json.Unmarshal(line, &ev); err == nil {
				if ev.Message.Content != "" {
					onFragment(ev.Message.Content)
				}
				if ev.Done {
					return nil
				}
			}
			// Malformed lines are skipped; the stream continues.
		}
		if readErr != nil {
			if readErr == io.EOF {
				return &StreamError{Err: fmt.Errorf("stream ended before completion")}
			}
			return &StreamError{Err: readErr}
		}
	}
}
