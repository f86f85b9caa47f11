// Package httpmodel is the scoring.Model backed by the model server HTTP API
package httpmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"aidetect/internal/adapters/scoring"
	perr "aidetect/internal/platform/errors"
	"aidetect/internal/platform/logger"
)

const (
	defaultBaseURL      = "http://127.0.0.1:9000"
	defaultTimeout      = 120 * time.Second
	defaultUA           = "aidetect-api"
	defaultMaxLength    = 512
	defaultBatchSize    = 1
	defaultQuantization = "nf4"
)

// Options configures the Client
type Options struct {
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	ModelName    string
	AdapterPath  string
	Quantization string
	MaxLength    int
	BatchSize    int
}

// Client talks to one model server
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

var _ scoring.Model = (*Client)(nil)

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxLength <= 0 {
		o.MaxLength = defaultMaxLength
	}
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	if o.Quantization == "" {
		o.Quantization = defaultQuantization
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("httpmodel"),
		now:  time.Now,
	}
}

// Health queries the server health endpoint
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}

// GPUAvailable reads the device flag from the health endpoint
func (c *Client) GPUAvailable(ctx context.Context) (bool, error) {
	h, err := c.Health(ctx)
	return h.GPUAvailable, err
}

// Load asks the server to load the configured model unless it reports ready already
func (c *Client) Load(ctx context.Context) (scoring.Info, error) {
	h, err := c.Health(ctx)
	if err != nil {
		return scoring.Info{}, err
	}

	info := scoring.Info{
		ModelName:    c.opts.ModelName,
		AdapterPath:  c.opts.AdapterPath,
		Device:       h.Device,
		GPUAvailable: h.GPUAvailable,
		Quantization: c.opts.Quantization,
		MaxLength:    c.opts.MaxLength,
		BatchSize:    c.opts.BatchSize,
	}
	if h.Ready {
		c.log.Info().Str("device", h.Device).Msg("model server already loaded")
		return info, nil
	}

	var lr LoadResponse
	req := LoadRequest{
		ModelName:    c.opts.ModelName,
		AdapterPath:  c.opts.AdapterPath,
		Quantization: c.opts.Quantization,
		MaxLength:    c.opts.MaxLength,
	}
	if err := c.do(ctx, http.MethodPost, "/load", req, &lr); err != nil {
		return scoring.Info{}, err
	}
	if !lr.Loaded {
		return scoring.Info{}, perr.Unavailablef("model server did not load %s", c.opts.ModelName)
	}
	if lr.ModelName != "" {
		info.ModelName = lr.ModelName
	}
	if lr.Device != "" {
		info.Device = lr.Device
	}
	info.GPUAvailable = lr.GPUAvailable || info.GPUAvailable
	info.LoadedAt = c.now().UTC()
	return info, nil
}

// ScoreOne scores a single text
func (c *Client) ScoreOne(ctx context.Context, text string) (float64, error) {
	ps, err := c.ScoreMany(ctx, []string{text})
	if err != nil {
		return 0, err
	}
	if len(ps) != 1 {
		return 0, perr.Newf(perr.ErrorCodeUnknown, "model server returned %d scores for 1 text", len(ps))
	}
	return ps[0], nil
}

// ScoreMany scores texts in a single request
func (c *Client) ScoreMany(ctx context.Context, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return []float64{}, nil
	}
	var sr ScoreResponse
	req := ScoreRequest{Texts: texts, MaxLength: c.opts.MaxLength, BatchSize: c.opts.BatchSize}
	if err := c.do(ctx, http.MethodPost, "/score", req, &sr); err != nil {
		return nil, err
	}
	return sr.Probabilities, nil
}

// do issues one JSON request and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "model server encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, body)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "model server new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "model server %s %s failed", method, path)
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("model server response")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusServiceUnavailable:
		return perr.Newf(perr.ErrorCodeUnavailable, "model server not ready")
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Newf(perr.ErrorCodeUnknown, "model server unexpected status %d body %s", resp.StatusCode, strings.TrimSpace(string(tail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "model server decode response")
	}
	return nil
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	return rc.Close()
}
