package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/de-tools/bureau-dashboard/pkg/config"
	"github.com/de-tools/bureau-dashboard/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "risk.json"), []byte(`{"a":1}`), 0o600))
	src := NewDirSource(dir)

	t.Run("reads file", func(t *testing.T) {
		data, err := src.Fetch(context.Background(), "risk.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(data))
	})

	t.Run("missing file is not found", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), "timing.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stays inside the directory", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), "../../etc/passwd")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHTTPSource(t *testing.T) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		switch r.URL.Path {
		case "/bureau/data/overview.json":
			_, _ = w.Write([]byte(`{"bureauDate":"2025-11-30"}`))
		case "/bureau/data/broken.json":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.Client(), srv.URL, "/bureau/")
	require.NoError(t, err)

	tests := []struct {
		name         string
		file         string
		wantBody     string
		wantErr      bool
		wantNotFound bool
	}{
		{name: "ok", file: "overview.json", wantBody: `{"bureauDate":"2025-11-30"}`},
		{name: "not found", file: "data_quality.json", wantErr: true, wantNotFound: true},
		{name: "server error", file: "broken.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := src.Fetch(context.Background(), tt.file)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(data))
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantNotFound, errors.Is(err, ErrNotFound))
		})
	}

	assert.Equal(t, []string{
		"/bureau/data/overview.json",
		"/bureau/data/data_quality.json",
		"/bureau/data/broken.json",
	}, requested)
}

func TestNewHTTPSource_RejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPSource(nil, "/data", "")
	assert.Error(t, err)
}

type fakeObjectGetter struct {
	mu      sync.Mutex
	objects map[string]string
	denied  map[string]bool
	keys    []string
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return http.StatusText(e.status)
}

func (e *statusError) HTTPStatusCode() int {
	return e.status
}

func (f *fakeObjectGetter) GetObject(
	_ context.Context,
	params *s3.GetObjectInput,
	_ ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := aws.ToString(params.Key)
	f.keys = append(f.keys, aws.ToString(params.Bucket)+"/"+key)

	if f.denied[key] {
		return nil, fmt.Errorf("operation error S3: GetObject: %w", &statusError{status: http.StatusForbidden})
	}
	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3Source(t *testing.T) {
	getter := &fakeObjectGetter{objects: map[string]string{
		"exports/2025-11/outreach.json": `{"outreachCohortDistribution":[]}`,
	}}
	src := NewS3Source(getter, "bureau-fixtures", "exports/2025-11")

	data, err := src.Fetch(context.Background(), "outreach.json")
	require.NoError(t, err)
	assert.Equal(t, `{"outreachCohortDistribution":[]}`, string(data))

	_, err = src.Fetch(context.Background(), "data_quality.json")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{
		"bureau-fixtures/exports/2025-11/outreach.json",
		"bureau-fixtures/exports/2025-11/data_quality.json",
	}, getter.keys)
	assert.Equal(t, "s3://bureau-fixtures/exports/2025-11", src.Describe())
}

func TestS3Source_AccessDenied(t *testing.T) {
	// given
	getter := &fakeObjectGetter{denied: map[string]bool{"exports/data_quality.json": true}}
	src := NewS3Source(getter, "bureau-fixtures", "exports")

	// when
	_, err := src.Fetch(context.Background(), "data_quality.json")

	// then
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "access denied to s3://bureau-fixtures/exports/data_quality.json")
	var status *statusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusForbidden, status.status)
}

func TestLoader_OptionalFixtureDeniedOnS3(t *testing.T) {
	// given
	objects := map[string]string{}
	for _, res := range store.Manifest {
		if res.Name == store.ResourceDataQuality {
			continue
		}
		objects["exports/"+res.File] = string(readFixture(t, res.File))
	}
	getter := &fakeObjectGetter{objects: objects, denied: map[string]bool{"exports/data_quality.json": true}}

	// when
	docs, err := NewLoader(NewS3Source(getter, "bureau-fixtures", "exports")).Load(context.Background())

	// then
	require.NoError(t, err)
	assert.False(t, docs.Overview.DataQuality.Present())
}

func TestOpenSource(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.FixturesConfig
		describe string
		wantErr  bool
	}{
		{name: "dir", cfg: config.FixturesConfig{Source: config.SourceDir, Dir: "data"}, describe: "dir:data"},
		{
			name:     "http",
			cfg:      config.FixturesConfig{Source: config.SourceHTTP, BaseURL: "https://example.com"},
			describe: "http:https://example.com/bureau/data/",
		},
		{name: "http relative url", cfg: config.FixturesConfig{Source: config.SourceHTTP, BaseURL: "data"}, wantErr: true},
		{name: "unknown", cfg: config.FixturesConfig{Source: "ftp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := OpenSource(context.Background(), tt.cfg, "/bureau")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.describe, src.Describe())
		})
	}
}
