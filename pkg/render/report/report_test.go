package report

import (
	"testing"

	"github.com/de-tools/bureau-dashboard/pkg/adapters"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Overview(t *testing.T) {
	t.Run("without data quality", func(t *testing.T) {
		ov := adapters.MapOverviewDocumentToView(domain.OverviewDocument{TotalCustomers: 48213, BureauDate: "2025-11-30"})

		r := Build(api.View{Tab: "overview", Title: "Overview", Overview: &ov})

		assert.Equal(t, "Overview", r.Title)
		require.Len(t, r.Sections, 1)
		assert.Contains(t, r.Sections[0].Summary, Item{Label: "Total customers (N0)", Value: "48,213"})
	})

	t.Run("with data quality", func(t *testing.T) {
		ov := adapters.MapOverviewDocumentToView(domain.OverviewDocument{
			BureauDate: "2025-11-30",
			DataQuality: domain.Some(domain.DataQualityDocument{
				AnchorSummary: domain.AnchorSummary{Confirmed: 3, None: 1},
				Table:         []domain.DataQualityRow{{Metric: "Rows", Value: 10, Status: "OK"}},
			}),
		})

		r := Build(api.View{Tab: "overview", Overview: &ov})

		require.Len(t, r.Sections, 4)
		assert.Equal(t, "Anchor resolution", r.Sections[1].Title)
		assert.Equal(t, [][]string{{"Rows", "10", "OK"}}, r.Sections[3].Rows)
	})
}

func TestBuild_Distribution(t *testing.T) {
	share := 75.0
	view := api.View{Tab: "risk", Risk: &api.RiskView{
		RiskTiers: []api.CategoryPoint{
			{Category: "70-100", Count: 1500, Percentage: &share},
			{Category: "0-39", Count: 500},
		},
	}}

	r := Build(view)

	require.Len(t, r.Sections, 2)
	assert.Equal(t, []string{"Tier", "Customers", "Share"}, r.Sections[0].Columns)
	assert.Equal(t, [][]string{{"70-100", "1,500", "75%"}, {"0-39", "500", "-"}}, r.Sections[0].Rows)
	assert.Empty(t, r.Sections[1].Rows)
}

func TestBuild_MonetisationGating(t *testing.T) {
	tests := []struct {
		name   string
		doc    domain.MonetisationDocument
		titles []string
	}{
		{
			name:   "waterfall only",
			doc:    domain.MonetisationDocument{TAMWaterfall: []domain.WaterfallStep{{Stage: "N0", Value: 10, Type: domain.StepStart}}},
			titles: []string{"TAM waterfall"},
		},
		{
			name: "sam with revenue and projection",
			doc: domain.MonetisationDocument{
				TAMWaterfall:  []domain.WaterfallStep{{Stage: "N0", Value: 10, Type: domain.StepStart}},
				SAMSegments:   domain.Some(domain.SAMSegments{PLEligible: 5}),
				RevenueModel:  domain.Some(domain.RevenueModel{}),
				AUMProjection: domain.Some([]domain.AUMPoint{{Month: 12, AUMInr: 1e7, Label: "Month 12"}}),
			},
			titles: []string{"TAM waterfall", "SAM segments", "Revenue model (year 1)", "AUM projection"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mv := adapters.MapMonetisationDocumentToView(tt.doc)

			r := Build(api.View{Tab: "monetisation", Monetisation: &mv})

			var titles []string
			for _, s := range r.Sections {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestBuild_Timing(t *testing.T) {
	tv := adapters.MapTimingDocumentToView(domain.TimingDocument{
		MonthsSinceCarLoan: []domain.MonthCustomers{{Months: 1, Customers: 4}, {Months: 3, Customers: 6}},
		SeasonalIndex:      []domain.SeasonalPoint{{Month: 10, MonthName: "Oct", Index: 1.3}},
	})

	r := Build(api.View{Tab: "timing", Timing: &tv})

	require.Len(t, r.Sections, 3)
	assert.Equal(t, [][]string{{"1", "4", ""}, {"3", "6", "yes"}}, r.Sections[1].Rows)
	assert.Contains(t, r.Sections[1].Summary, Item{Label: "Customers in golden window", Value: "6"})
	assert.Equal(t, [][]string{{"Oct", "1.30", "yes"}}, r.Sections[2].Rows)
}
