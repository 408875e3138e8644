package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kbukum/cerealpipe/errors"
	"github.com/kbukum/cerealpipe/frame"
	"github.com/kbukum/cerealpipe/logger"
)

// FetchFunc retrieves the raw dataset bytes from a source location.
// The caller owns the returned ReadCloser.
type FetchFunc func(ctx context.Context, url string) (io.ReadCloser, error)

// Loader fetches the cereal dataset and decodes it into a frame.
type Loader struct {
	cfg    Config
	log    *logger.Logger
	client *http.Client
	fetch  FetchFunc
}

// Option configures a Loader.
type Option func(*Loader)

// WithFetchFunc replaces the HTTP fetch with a custom strategy.
// Tests use this to supply an arbitrary dataset offline.
func WithFetchFunc(fn FetchFunc) Option {
	return func(l *Loader) { l.fetch = fn }
}

// WithLogger sets the loader's logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New creates a Loader from config. The default fetch strategy performs a
// real HTTP GET against cfg.URL.
func New(cfg Config, opts ...Option) (*Loader, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Loader{
		cfg:    cfg,
		log:    logger.WithComponent("loader"),
		client: &http.Client{Timeout: cfg.Timeout},
	}
	l.fetch = l.httpFetch

	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// URL returns the configured source location.
func (l *Loader) URL() string {
	return l.cfg.URL
}

// Load fetches the dataset and decodes it. Transport and decode errors are
// classified as FETCH_FAILED with the original cause in the chain.
func (l *Loader) Load(ctx context.Context) (*frame.Frame, error) {
	body, err := l.fetch(ctx, l.cfg.URL)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Timeout(l.cfg.URL).WithCause(err)
		}
		return nil, errors.FetchFailed(l.cfg.URL, err)
	}
	defer body.Close()

	f, err := frame.ReadCSV(body)
	if err != nil {
		return nil, errors.FetchFailed(l.cfg.URL, err)
	}

	l.log.Info("dataset loaded", logger.Fields(
		logger.FieldSource, l.cfg.URL,
		logger.FieldRows, f.Len(),
		logger.FieldColumns, len(f.Columns()),
	))
	return f, nil
}

// httpFetch is the default FetchFunc: a plain GET with no retries.
func (l *Loader) httpFetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.cfg.UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
