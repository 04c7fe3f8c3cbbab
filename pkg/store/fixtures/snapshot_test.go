package fixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Run(t *testing.T) {
	t.Run("starts loading", func(t *testing.T) {
		s := NewSnapshot()

		state, err := s.Status()
		assert.Equal(t, StateLoading, state)
		assert.NoError(t, err)

		_, err = s.Documents()
		assert.ErrorIs(t, err, ErrNotReady)

		select {
		case <-s.Done():
			t.Fatal("done closed before load")
		default:
		}
	})

	t.Run("ready after a successful load", func(t *testing.T) {
		s := NewSnapshot()

		err := s.Run(context.Background(), NewLoader(NewDirSource(testdataDir)), time.Second)
		require.NoError(t, err)

		<-s.Done()
		state, _ := s.Status()
		assert.Equal(t, StateReady, state)
		docs, err := s.Documents()
		require.NoError(t, err)
		assert.Equal(t, "2025-11-30", docs.Overview.BureauDate)
	})

	t.Run("error after a failed load", func(t *testing.T) {
		src := sourceWith(t, map[string]func(*mock.Call){
			"behaviour.json": func(c *mock.Call) { c.Return(nil, errors.New("timeout")) },
		})
		s := NewSnapshot()

		err := s.Run(context.Background(), NewLoader(src), 0)
		require.Error(t, err)

		state, statusErr := s.Status()
		assert.Equal(t, StateError, state)
		assert.Equal(t, err, statusErr)
		_, err = s.Documents()
		var loadErr *LoadError
		assert.ErrorAs(t, err, &loadErr)
	})

	t.Run("resolves only once", func(t *testing.T) {
		s := NewReadySnapshot(&domain.Documents{})
		src := sourceWith(t, map[string]func(*mock.Call){
			"risk.json": func(c *mock.Call) { c.Return(nil, errors.New("late failure")) },
		})

		err := s.Run(context.Background(), NewLoader(src), 0)
		assert.NoError(t, err)

		state, _ := s.Status()
		assert.Equal(t, StateReady, state)
	})
}
