package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
	"github.com/de-tools/bureau-dashboard/pkg/models/store"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// LoadError names the fixture that stopped the snapshot from loading.
type LoadError struct {
	Resource store.ResourceName
	File     string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s (%s): %v", e.Resource, e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type validator interface {
	Validate() error
}

type Loader struct {
	source    Source
	resources []store.Resource
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source, resources: store.Manifest}
}

// Load fetches every resource concurrently and decodes it. It returns either
// the complete set of documents or the first failure; never a partial set.
func (l *Loader) Load(ctx context.Context) (*domain.Documents, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	var (
		docs        domain.Documents
		dataQuality domain.DataQualityDocument
		hasDQ       bool
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, res := range l.resources {
		target := targetFor(res.Name, &docs, &dataQuality)
		if target == nil {
			return nil, &LoadError{Resource: res.Name, File: res.File, Err: errors.New("unknown resource")}
		}

		g.Go(func() error {
			data, err := l.source.Fetch(gctx, res.File)
			if errors.Is(err, ErrNotFound) && !res.Required {
				metrics.FixtureFetchTotal.WithLabelValues(string(res.Name), "absent").Inc()
				logger.Debug().Str("resource", string(res.Name)).Msg("optional fixture absent")
				return nil
			}
			if err != nil {
				metrics.FixtureFetchTotal.WithLabelValues(string(res.Name), "error").Inc()
				return &LoadError{Resource: res.Name, File: res.File, Err: err}
			}

			if err := decode(data, target); err != nil {
				metrics.FixtureFetchTotal.WithLabelValues(string(res.Name), "invalid").Inc()
				return &LoadError{Resource: res.Name, File: res.File, Err: err}
			}

			metrics.FixtureFetchTotal.WithLabelValues(string(res.Name), "ok").Inc()
			if res.Name == store.ResourceDataQuality {
				hasDQ = true
			}
			logger.Debug().
				Str("resource", string(res.Name)).
				Int("bytes", len(data)).
				Msg("fixture loaded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		metrics.SnapshotLoadDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, err
	}

	if hasDQ && !docs.Overview.DataQuality.Present() {
		docs.Overview.DataQuality = domain.Some(dataQuality)
	}

	metrics.SnapshotLoadDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	return &docs, nil
}

func targetFor(name store.ResourceName, docs *domain.Documents, dq *domain.DataQualityDocument) validator {
	switch name {
	case store.ResourceOverview:
		return &docs.Overview
	case store.ResourcePopulation:
		return &docs.Population
	case store.ResourceBehaviour:
		return &docs.Behaviour
	case store.ResourceRisk:
		return &docs.Risk
	case store.ResourceTiming:
		return &docs.Timing
	case store.ResourceMonetisation:
		return &docs.Monetisation
	case store.ResourceOutreach:
		return &docs.Outreach
	case store.ResourceDataQuality:
		return dq
	}
	return nil
}

func decode(data []byte, target validator) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse json: %w", err)
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("unexpected document shape: %w", err)
	}
	return nil
}
