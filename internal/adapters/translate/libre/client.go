// Package libre is a client for LibreTranslate compatible REST servers
package libre

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"faqbridge/internal/adapters/translate"
	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 250 * time.Millisecond
	maxBackoff       = 5 * time.Second
	maxReplyBytes    = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Retry config for transport errors, 429 and 5xx
	MaxRetries int
	RetryBase  time.Duration

	// HTTPClient overrides the default client, Timeout is ignored when set
	HTTPClient *http.Client
}

// Client translates through POST {BaseURL}/translate
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type reply struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// New creates a Client with defaults applied, BaseURL is required
func New(o Options) (*Client, error) {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "libre base url is required")
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:  hc,
		opts:  o,
		log:   *logger.Named("libre"),
		now:   time.Now,
		sleep: sleepCtx,
	}, nil
}

// Translate sends text to the server unless src and dst share a base language
func (c *Client) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if translate.SameLanguage(src, dst) {
		return text, nil
	}
	body, err := json.Marshal(request{
		Q:      text,
		Source: translate.Base(src),
		Target: translate.Base(dst),
		Format: "text",
		APIKey: c.opts.APIKey,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "libre encode request")
	}

	resp, err := c.do(ctx, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out reply
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "libre decode reply")
	}
	if out.TranslatedText == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "libre returned an empty translation")
	}
	return out.TranslatedText, nil
}

// do posts body with retries and returns a 200 response the caller must close
func (c *Client) do(ctx context.Context, body []byte) (*http.Response, error) {
	url := c.opts.BaseURL + "/translate"
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "libre request canceled")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "libre new request failed")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if ctx.Err() != nil || !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "libre do failed")
			}
			if err := c.backoffSleep(ctx, attempts, "libre transport error retrying"); err != nil {
				return nil, err
			}
			attempts++
			continue
		}

		c.log.Debug().
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("libre http response")

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode == http.StatusTooManyRequests:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "libre rate limited")
			}
			if err := c.backoffSleep(ctx, attempts, "libre rate limited backing off"); err != nil {
				return nil, err
			}
			attempts++
		case resp.StatusCode >= 500:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "libre server error %d", resp.StatusCode)
			}
			if err := c.backoffSleep(ctx, attempts, "libre transient error retrying"); err != nil {
				return nil, err
			}
			attempts++
		default:
			var r reply
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			msg := strings.TrimSpace(string(raw))
			if json.Unmarshal(raw, &r) == nil && r.Error != "" {
				msg = r.Error
			}
			return nil, perr.Newf(perr.ErrorCodeUnknown, "libre unexpected status %d: %s", resp.StatusCode, msg)
		}
	}
}

func (c *Client) backoffSleep(ctx context.Context, attempt int, msg string) error {
	back := c.backoff(attempt)
	c.log.Warn().Dur("retry_in", back).Int("attempt", attempt).Msg(msg)
	if err := c.sleep(ctx, back); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "libre retry canceled")
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
