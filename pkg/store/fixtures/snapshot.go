package fixtures

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
	"github.com/rs/zerolog"
)

var ErrNotReady = errors.New("fixtures are still loading")

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "loading"
	}
}

// Snapshot gates every reader on one load: it moves from loading to either
// ready or error exactly once.
type Snapshot struct {
	mu    sync.RWMutex
	state State
	docs  *domain.Documents
	err   error
	done  chan struct{}
}

func NewSnapshot() *Snapshot {
	return &Snapshot{done: make(chan struct{})}
}

// NewReadySnapshot wraps documents that were loaded elsewhere.
func NewReadySnapshot(docs *domain.Documents) *Snapshot {
	s := NewSnapshot()
	s.resolve(docs, nil)
	return s
}

func (s *Snapshot) Status() (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.err
}

// Documents returns the loaded set, ErrNotReady while loading, or the load error.
func (s *Snapshot) Documents() (*domain.Documents, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.state {
	case StateReady:
		return s.docs, nil
	case StateError:
		return nil, s.err
	default:
		return nil, ErrNotReady
	}
}

// Done is closed once the snapshot leaves the loading state.
func (s *Snapshot) Done() <-chan struct{} {
	return s.done
}

// Run loads the snapshot once. A zero timeout waits on the source indefinitely.
func (s *Snapshot) Run(ctx context.Context, loader *Loader, timeout time.Duration) error {
	logger := zerolog.Ctx(ctx)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	docs, err := loader.Load(ctx)
	if !s.resolve(docs, err) {
		logger.Warn().Msg("snapshot already resolved, ignoring reload")
		return nil
	}

	if err != nil {
		logger.Error().Err(err).Msg("failed to load dashboard fixtures")
		return err
	}

	logger.Info().Msg("dashboard fixtures loaded")
	return nil
}

func (s *Snapshot) resolve(docs *domain.Documents, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return false
	}

	if err != nil {
		s.state, s.err = StateError, err
		metrics.SnapshotReady.Set(0)
	} else {
		s.state, s.docs = StateReady, docs
		metrics.SnapshotReady.Set(1)
	}
	close(s.done)
	return true
}
