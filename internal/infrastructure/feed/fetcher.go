// Package feed fetches and parses RSS, Atom and JSON feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/eaterss/internal/application/settings"
	"github.com/tesso57/eaterss/internal/infrastructure/httpcache"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "EateRSS"

var (
	// ErrEmptyURL is returned for a blank feed URL.
	ErrEmptyURL = errors.New("feed url is empty")
	// ErrBodyTooLarge is returned when a response exceeds the size limit.
	ErrBodyTooLarge = errors.New("response body too large")
)

// NetworkError describes a failed retrieval.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: HTTP %d %s", e.Op, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseCache stores bodies and validators for conditional requests.
type ResponseCache interface {
	Get(ctx context.Context, url string) (httpcache.Entry, bool, error)
	Put(ctx context.Context, e httpcache.Entry) error
	Delete(ctx context.Context, url string) error
}

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// Fetcher retrieves raw feed documents over HTTP.
type Fetcher struct {
	Client       *http.Client
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int64
	Cache        ResponseCache
	Logger       logrus.FieldLogger
}

// NewFetcher creates a Fetcher from configuration. cache may be nil.
func NewFetcher(cfg settings.FetchConfig, cache ResponseCache, logger logrus.FieldLogger) *Fetcher {
	return &Fetcher{
		Client:       &http.Client{Transport: acceptTransport{base: http.DefaultTransport}},
		UserAgent:    cfg.UserAgent,
		Timeout:      cfg.Timeout(),
		MaxBodyBytes: cfg.MaxBodyBytes,
		Cache:        cache,
		Logger:       logger,
	}
}

// Fetch performs a single GET of url and returns the body.
// All failures are returned as *NetworkError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &NetworkError{Op: "fetch", URL: url, Err: ErrEmptyURL}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Op: "fetch", URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent())

	cached, hasCached := f.lookup(ctx, url)
	if hasCached {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "fetch", URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotModified && hasCached {
		f.logger().WithField("url", url).Debug("feed not modified, using cached body")
		return cached.Body, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{
			Op:         "fetch",
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %q", resp.Status),
		}
	}

	body, err := readLimited(resp.Body, f.MaxBodyBytes)
	if err != nil {
		return nil, &NetworkError{Op: "read", URL: url, Err: err}
	}

	f.remember(ctx, url, resp.Header, body, hasCached)
	return body, nil
}

func (f *Fetcher) lookup(ctx context.Context, url string) (httpcache.Entry, bool) {
	if f.Cache == nil {
		return httpcache.Entry{}, false
	}
	e, ok, err := f.Cache.Get(ctx, url)
	if err != nil {
		f.logger().WithError(err).WithField("url", url).Warn("response cache lookup failed")
		return httpcache.Entry{}, false
	}
	if !ok || !e.HasValidators() {
		return httpcache.Entry{}, false
	}
	return e, true
}

// remember stores body under its validators. A cached entry whose server has
// stopped sending validators is dropped so it is not revalidated again.
func (f *Fetcher) remember(ctx context.Context, url string, header http.Header, body []byte, hadCached bool) {
	if f.Cache == nil {
		return
	}
	e := httpcache.Entry{
		URL:          url,
		ETag:         header.Get("ETag"),
		LastModified: header.Get("Last-Modified"),
		Body:         body,
		FetchedAt:    time.Now(),
	}
	if !e.HasValidators() {
		if hadCached {
			if err := f.Cache.Delete(ctx, url); err != nil {
				f.logger().WithError(err).WithField("url", url).Warn("response cache eviction failed")
			}
		}
		return
	}
	if err := f.Cache.Put(ctx, e); err != nil {
		f.logger().WithError(err).WithField("url", url).Warn("response cache update failed")
	}
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
}

func (f *Fetcher) userAgent() string {
	if ua := strings.TrimSpace(f.UserAgent); ua != "" {
		return ua
	}
	return DefaultUserAgent
}

func (f *Fetcher) logger() logrus.FieldLogger {
	if f.Logger != nil {
		return f.Logger
	}
	return logrus.StandardLogger()
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}
