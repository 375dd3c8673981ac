package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient issues GETs with a user agent, a per-request timeout, and
// bounded retry on transient failures.
type HTTPClient struct {
	Client      *http.Client
	UserAgent   string
	MaxAttempts int
	Timeout     time.Duration
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	// Network-level errors are worth one more try.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Get fetches url and returns the body and content type.
func (c *HTTPClient) Get(ctx context.Context, url string) ([]byte, string, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, ct, err := c.tryOnce(ctx, url)
		if err == nil {
			return body, ct, nil
		}
		lastErr = err
		if !isTransient(err) || i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
		}
	}
	return nil, "", lastErr
}

func (c *HTTPClient) tryOnce(ctx context.Context, url string) ([]byte, string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", &statusError{code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// RemoteSource fetches a document over HTTP. HTML responses go through the
// readable-text extractor; anything else is treated as plain text.
type RemoteSource struct {
	URL    string
	Name   string
	Client *HTTPClient
}

func (s *RemoteSource) ID() string {
	if s.Name != "" {
		return s.Name
	}
	return s.URL
}

func (s *RemoteSource) Text(ctx context.Context) (string, error) {
	client := s.Client
	if client == nil {
		client = &HTTPClient{MaxAttempts: 2, Timeout: 15 * time.Second}
	}
	body, ct, err := client.Get(ctx, s.URL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	if strings.Contains(ct, "text/html") || looksLikeHTML(body) {
		return TextFromHTML(body), nil
	}
	return string(body), nil
}

func looksLikeHTML(body []byte) bool {
	head := strings.ToLower(string(body[:min(len(body), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
