// Package fetch downloads source tables over HTTP with retry and
// backoff, so a flaky mirror does not abort a build.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rhicksrad/India/internal/logging"
	"github.com/rhicksrad/India/internal/utils"
)

// Client downloads files with exponential backoff on transient failures.
type Client struct {
	httpClient       *http.Client
	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
}

// NewClient allows customizing HTTP timeout and retry/backoff behavior.
// Zero or negative settings fall back to the defaults: 60s timeout, 3
// attempts, 500ms base delay, 4s delay cap.
func NewClient(httpTimeout time.Duration, retryMax int, baseDelay, maxDelay time.Duration) *Client {
	if httpTimeout <= 0 {
		httpTimeout = 60 * time.Second
	}
	if retryMax <= 0 {
		retryMax = 3
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 4 * time.Second
	}
	return &Client{
		httpClient:       &http.Client{Timeout: httpTimeout},
		retryMaxAttempts: retryMax,
		retryBaseDelay:   baseDelay,
		retryMaxDelay:    maxDelay,
	}
}

// HTTPError reports a non-2xx download response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("download %s: status=%d", e.URL, e.StatusCode)
}

// Download fetches url into dest. Timeouts, 429s and 5xx responses are
// retried with capped exponential backoff; anything else fails fast. The
// file lands via a temp-file rename so a failed attempt never leaves a
// partial table behind.
func (c *Client) Download(ctx context.Context, url, dest string) error {
	if url == "" {
		return errors.New("download url is empty")
	}
	if err := utils.EnsureDir(filepath.Dir(dest)); err != nil {
		return fmt.Errorf("ensure dest dir: %w", err)
	}

	maxAttempts := c.retryMaxAttempts
	backoff := c.retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if isRetryableNetErr(err) && attempt < maxAttempts {
				lastErr = err
				logging.Warn("download retry", zap.String("url", url), zap.Int("attempt", attempt), zap.Error(err))
				time.Sleep(backoff)
				backoff *= 2
				continue
			}
			return fmt.Errorf("http request: %w", err)
		}

		retry := false
		func() {
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = &HTTPError{URL: url, StatusCode: resp.StatusCode}
				if (resp.StatusCode == http.StatusTooManyRequests || (resp.StatusCode >= 500 && resp.StatusCode <= 599)) && attempt < maxAttempts {
					retry = true
					// Respect Retry-After if present (seconds or HTTP date).
					if ra := resp.Header.Get("Retry-After"); ra != "" {
						if secs, err := parseRetryAfterSeconds(ra); err == nil && secs > 0 {
							time.Sleep(time.Duration(secs) * time.Second)
							return
						}
					}
					sleep := withJitter(backoff)
					if c.retryMaxDelay > 0 && sleep > c.retryMaxDelay {
						sleep = c.retryMaxDelay
					}
					time.Sleep(sleep)
					backoff *= 2
				}
				return
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				lastErr = fmt.Errorf("read body: %w", err)
				retry = isRetryableNetErr(err) && attempt < maxAttempts
				return
			}
			if err := utils.SafeWriteFile(dest, body); err != nil {
				lastErr = fmt.Errorf("write %s: %w", dest, err)
				return
			}
			logging.Debug("downloaded", zap.String("url", url), zap.String("dest", filepath.Base(dest)), zap.Int("bytes", len(body)))
			lastErr = nil
		}()
		if lastErr == nil {
			return nil
		}
		if retry {
			logging.Warn("download retry", zap.String("url", url), zap.Int("attempt", attempt), zap.Error(lastErr))
			continue
		}
		break
	}
	return lastErr
}

// Exists reports whether dest is already present and non-empty, so a
// fetch can be skipped without re-downloading.
func Exists(dest string) bool {
	info, err := os.Stat(dest)
	return err == nil && info.Size() > 0
}

func isRetryableNetErr(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) {
		if nerr.Timeout() {
			return true
		}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return false
}

// parseRetryAfterSeconds interprets a Retry-After value as seconds or an
// HTTP date.
func parseRetryAfterSeconds(v string) (int, error) {
	if s, err := strconv.Atoi(v); err == nil {
		return s, nil
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return int(d.Seconds()), nil
	}
	return 0, fmt.Errorf("invalid Retry-After: %q", v)
}

func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 500 * time.Millisecond
	}
	// jitter factor in [0.8, 1.2)
	f := 0.8 + rand.Float64()*0.4
	out := time.Duration(float64(d) * f)
	if out <= 0 {
		return d
	}
	return out
}
