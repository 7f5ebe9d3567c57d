package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resty.dev/v3"
)

// ErrNotFound is returned by a Source when the named document does not exist.
var ErrNotFound = errors.New("document not found")

// Source reads the raw catalog documents (tools.json, categories.json, ...).
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
	String() string
}

type DirSource struct {
	Dir string
}

func (s *DirSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}

func (s *DirSource) String() string {
	return s.Dir
}

// HTTPSource fetches the documents relative to a base URL, e.g. a CDN bucket.
type HTTPSource struct {
	BaseURL string
	client  *resty.Client
}

func NewHTTPSource(baseURL string) *HTTPSource {
	client := resty.New().
		SetTimeout(30*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json")
	return &HTTPSource{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (s *HTTPSource) Read(ctx context.Context, name string) ([]byte, error) {
	url := s.BaseURL + "/" + name
	resp, err := s.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error fetching %s: %d %s", url, resp.StatusCode(), resp.Status())
	}
	return []byte(resp.String()), nil
}

func (s *HTTPSource) String() string {
	return s.BaseURL
}

// OpenSource picks an HTTP source for http(s) locations and a directory
// source for everything else.
func OpenSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location)
	}
	return &DirSource{Dir: location}
}
