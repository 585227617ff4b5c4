// Package feed fetches the photo feed and probes the images it refers to.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/five82/pixwall/internal/photo"

	// Decoders for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source yields the raw feed once and probes individual images.
type Source interface {
	FetchPhotos(ctx context.Context) ([]photo.Record, error)
	ProbeImage(ctx context.Context, ref string) (ImageInfo, error)
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// ErrUnavailable is returned for records that have no media URL.
var ErrUnavailable = errors.New("image unavailable")

// ImageInfo describes a decoded image header.
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

// Client talks to the feed server over HTTP.
type Client struct {
	baseURL   *url.URL
	feedPath  string
	http      *resty.Client
	userAgent string
}

const (
	defaultFeedURL   = "127.0.0.1:8080"
	defaultFeedPath  = "data/pictures.json"
	defaultUserAgent = "pixwall/0.1"

	// RequestTimeout bounds the feed request.
	RequestTimeout = 10 * time.Second
	// ImageTimeout bounds a single image probe; an image that has not
	// resolved by then counts as failed.
	ImageTimeout = 10 * time.Second
)

// NewClient builds a Client for the feed at feedURL/feedPath. timeout <= 0
// uses RequestTimeout.
func NewClient(feedURL, feedPath string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(feedURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(feedPath) == "" {
		feedPath = defaultFeedPath
	}
	if timeout <= 0 {
		timeout = RequestTimeout
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", defaultUserAgent)
	return &Client{
		baseURL:   base,
		feedPath:  strings.TrimSpace(feedPath),
		http:      httpClient,
		userAgent: defaultUserAgent,
	}, nil
}

// FeedURL returns the absolute URL of the feed document.
func (c *Client) FeedURL() string {
	return c.resolve(c.feedPath)
}

// FetchPhotos downloads and decodes the feed. Any non-200 response counts as
// a failure.
func (c *Client) FetchPhotos(ctx context.Context) ([]photo.Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.FeedURL())
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", c.feedPath, resp.StatusCode())
	}
	var entries []Entry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return Records(entries), nil
}

// ProbeImage fetches ref (resolved against the feed base) and decodes its
// header. The probe is bounded by ImageTimeout on top of ctx.
func (c *Client) ProbeImage(ctx context.Context, ref string) (ImageInfo, error) {
	if c == nil {
		return ImageInfo{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(ref) == "" {
		return ImageInfo{}, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, ImageTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(c.resolve(ref))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("execute request: %w", err)
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() != http.StatusOK {
		return ImageInfo{}, fmt.Errorf("image %s returned status %d", ref, resp.StatusCode())
	}
	cfg, format, err := image.DecodeConfig(body)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode image: %w", err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

func (c *Client) resolve(ref string) string {
	rel, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return c.baseURL.String() + "/" + strings.TrimLeft(ref, "/")
	}
	return c.baseURL.ResolveReference(rel).String()
}

func parseBaseURL(feedURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(feedURL)
	if trimmed == "" {
		trimmed = defaultFeedURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed_url %q: %w", feedURL, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
