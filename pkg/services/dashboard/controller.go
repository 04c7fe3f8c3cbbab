package dashboard

import (
	"fmt"

	"github.com/de-tools/bureau-dashboard/pkg/adapters"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

// SnapshotReader is satisfied by fixtures.Snapshot.
type SnapshotReader interface {
	Documents() (*domain.Documents, error)
}

type Controller interface {
	Tabs(active Tab) []api.TabInfo
	Render(tab Tab) (api.View, error)
}

type controller struct {
	snapshot SnapshotReader
}

func NewController(snapshot SnapshotReader) Controller {
	return &controller{snapshot: snapshot}
}

func (c *controller) Tabs(active Tab) []api.TabInfo {
	out := make([]api.TabInfo, 0, len(tabOrder))
	for _, t := range tabOrder {
		out = append(out, api.TabInfo{
			ID:     string(t),
			Label:  t.Label(),
			Active: t == active,
		})
	}
	return out
}

// Render builds the view for one tab from the already loaded documents.
func (c *controller) Render(tab Tab) (api.View, error) {
	if !tab.Valid() {
		return api.View{}, fmt.Errorf("unknown tab %q", tab)
	}

	docs, err := c.snapshot.Documents()
	if err != nil {
		return api.View{}, err
	}

	meta := tabs[tab]
	view := api.View{
		Tab:      string(tab),
		Title:    meta.title,
		Subtitle: meta.subtitle,
	}

	switch tab {
	case TabOverview:
		v := adapters.MapOverviewDocumentToView(docs.Overview)
		view.Overview = &v
	case TabPopulation:
		v := adapters.MapPopulationDocumentToView(docs.Population)
		view.Population = &v
	case TabBehaviour:
		v := adapters.MapBehaviourDocumentToView(docs.Behaviour)
		view.Behaviour = &v
	case TabRisk:
		v := adapters.MapRiskDocumentToView(docs.Risk)
		view.Risk = &v
	case TabTiming:
		v := adapters.MapTimingDocumentToView(docs.Timing)
		view.Timing = &v
	case TabMonetisation:
		v := adapters.MapMonetisationDocumentToView(docs.Monetisation)
		view.Monetisation = &v
	case TabOutreach:
		v := adapters.MapOutreachDocumentToView(docs.Outreach)
		view.Outreach = &v
	}

	return view, nil
}
