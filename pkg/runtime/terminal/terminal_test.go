package terminal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockController struct {
	mock.Mock
}

func (m *mockController) Tabs(active dashboard.Tab) []api.TabInfo {
	args := m.Called(active)
	return args.Get(0).([]api.TabInfo)
}

func (m *mockController) Render(tab dashboard.Tab) (api.View, error) {
	args := m.Called(tab)
	return args.Get(0).(api.View), args.Error(1)
}

func newTestCLI(ctrl dashboard.Controller, openErr error) (*CLI, *bytes.Buffer, *int) {
	var out bytes.Buffer
	opened := 0
	cli := NewCLI(Options{
		Open: func(context.Context) (dashboard.Controller, error) {
			opened++
			if openErr != nil {
				return nil, openErr
			}
			return ctrl, nil
		},
		Output: &out,
	})
	return cli, &out, &opened
}

func TestCLI_Render(t *testing.T) {
	view := api.View{
		Tab:   "outreach",
		Title: "Outreach prioritisation",
		Outreach: &api.OutreachView{
			Cohorts: []api.CategoryPoint{{Category: "Immediate", Count: 1200}},
			Total:   1200,
		},
	}

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "table", args: []string{"render", "--tab", "outreach"}, contains: "| Immediate | 1,200     | -     |"},
		{name: "json", args: []string{"render", "--tab", "outreach", "--format", "json"}, contains: `"total": 1200`},
		{name: "yaml", args: []string{"render", "--tab", "Outreach", "--format", "yaml"}, contains: "total: 1200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			ctrl := &mockController{}
			ctrl.On("Render", dashboard.TabOutreach).Return(view, nil)
			cli, out, _ := newTestCLI(ctrl, nil)
			cli.SetArgs(tt.args)

			// when
			err := cli.Execute(context.Background())

			// then
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.contains)
			ctrl.AssertExpectations(t)
			assert.Zero(t, testutil.CollectAndCount(metrics.ViewRenderTotal))
		})
	}
}

func TestCLI_RenderErrors(t *testing.T) {
	t.Run("unknown tab does not load fixtures", func(t *testing.T) {
		cli, _, opened := newTestCLI(&mockController{}, nil)
		cli.SetArgs([]string{"render", "--tab", "settings"})

		err := cli.Execute(context.Background())

		assert.ErrorContains(t, err, "unknown tab")
		assert.Zero(t, *opened)
	})

	t.Run("unknown format does not load fixtures", func(t *testing.T) {
		cli, _, opened := newTestCLI(&mockController{}, nil)
		cli.SetArgs([]string{"render", "--format", "csv"})

		err := cli.Execute(context.Background())

		assert.ErrorContains(t, err, "unsupported format")
		assert.Zero(t, *opened)
	})

	t.Run("load failure", func(t *testing.T) {
		loadErr := errors.New("failed to load risk (risk.json): fixture not found")
		cli, _, _ := newTestCLI(nil, loadErr)
		cli.SetArgs([]string{"render", "--tab", "risk"})

		err := cli.Execute(context.Background())

		assert.ErrorIs(t, err, loadErr)
	})
}

func TestCLI_Tabs(t *testing.T) {
	cli, out, opened := newTestCLI(nil, nil)
	cli.SetArgs([]string{"tabs"})

	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "monetisation   Monetisation   [aum-projection sam-segments waterfall]")
	assert.Zero(t, *opened)
}
