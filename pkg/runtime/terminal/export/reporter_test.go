package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func outreachView() api.View {
	share := 62.5
	return api.View{
		Tab:      "outreach",
		Title:    "Outreach prioritisation",
		Subtitle: "Who to call first",
		Outreach: &api.OutreachView{
			Cohorts: []api.CategoryPoint{
				{Category: "Immediate", Count: 12500, Percentage: &share, Colour: "#22c55e"},
				{Category: "Hold", Count: 7500},
			},
			Total: 20000,
		},
	}
}

func TestReporter_Table(t *testing.T) {
	// given
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	// when
	err := reporter.Write(outreachView(), FormatTable)

	// then
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Outreach prioritisation")
	assert.Contains(t, out, "=== Outreach cohorts ===")
	assert.Contains(t, out, "Total customers: 20,000")
	assert.Contains(t, out, "+-----------+-----------+-------+")
	assert.Contains(t, out, "| Cohort    | Customers | Share |")
	assert.Contains(t, out, "| Immediate | 12,500    | 62.5% |")
	assert.Contains(t, out, "| Hold      | 7,500     | -     |")
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewReporter(&buf).Write(outreachView(), FormatJSON))

	var got api.View
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, outreachView(), got)
}

func TestReporter_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewReporter(&buf).Write(outreachView(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "tab: outreach\n")
	assert.NotContains(t, out, "population")
	assert.NotContains(t, out, "{")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	outreach := decoded["outreach"].(map[string]any)
	assert.Equal(t, 20000, outreach["total"])
	cohorts := outreach["cohorts"].([]any)
	require.Len(t, cohorts, 2)
	assert.Equal(t, "#22c55e", cohorts[0].(map[string]any)["colour"])
}

func TestReporter_UnsupportedFormat(t *testing.T) {
	err := NewReporter(&bytes.Buffer{}).Write(outreachView(), "csv")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestReporter_ClipsLongCells(t *testing.T) {
	reporter := NewReporter(&bytes.Buffer{})
	reporter.config.MaxCellWidth = 5

	assert.Equal(t, "abcd…", reporter.clip("abcdefgh"))
	assert.Equal(t, "abc", reporter.clip("abc"))
}
