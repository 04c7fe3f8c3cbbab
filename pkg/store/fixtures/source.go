package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned by a Source when the requested file does not exist.
var ErrNotFound = errors.New("fixture not found")

// Source retrieves raw fixture bytes by file name.
type Source interface {
	Fetch(ctx context.Context, file string) ([]byte, error)
	Describe() string
}

type dirSource struct {
	dir string
}

func NewDirSource(dir string) Source {
	return &dirSource{dir: dir}
}

func (s *dirSource) Fetch(_ context.Context, file string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Clean("/"+file)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return data, nil
}

func (s *dirSource) Describe() string {
	return "dir:" + s.dir
}

type httpSource struct {
	client  *http.Client
	baseURL *url.URL
}

// NewHTTPSource fetches fixtures from baseURL joined with basePath and "data",
// the layout the static build serves them under.
func NewHTTPSource(client *http.Client, baseURL, basePath string) (Source, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixtures base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("fixtures base url %q must be absolute", baseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	u.Path = path.Join("/", u.Path, basePath, "data") + "/"

	return &httpSource{client: client, baseURL: u}, nil
}

func (s *httpSource) Fetch(ctx context.Context, file string) ([]byte, error) {
	target := s.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(file, "/")})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", target, err)
	}
	return data, nil
}

func (s *httpSource) Describe() string {
	return "http:" + s.baseURL.String()
}
