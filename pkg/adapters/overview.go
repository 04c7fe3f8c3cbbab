package adapters

import (
	"fmt"
	"strconv"

	"github.com/de-tools/bureau-dashboard/pkg/format"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

func MapOverviewDocumentToView(doc domain.OverviewDocument) api.OverviewView {
	view := api.OverviewView{
		Cards: []api.KPICard{
			{Label: "Total customers (N0)", Value: format.FormatCount(doc.TotalCustomers)},
			{Label: "Serviceable base (SAM)", Value: format.FormatCount(doc.ServiceableBase)},
			{Label: "Avg tradelines / customer", Value: format.FormatDecimal(doc.AvgTradelinesPerCustomer, 2)},
			{Label: "PL penetration rate", Value: format.FormatPercent(doc.PLPenetrationRate)},
			{
				Label: fmt.Sprintf("In golden window now (%d–%d mo)", GoldenWindowFrom, GoldenWindowTo),
				Value: format.FormatCount(doc.CustomersInGoldenWindowNow),
			},
			{Label: "Bureau date", Value: doc.BureauDate},
		},
		GoldenWindowCurveA: format.FormatCount(doc.GoldenWindowCurveA),
		GoldenWindowCurveB: format.FormatCount(doc.GoldenWindowCurveB),
	}

	if dq, ok := doc.DataQuality.Get(); ok {
		dqView := MapDataQualityDocumentToView(dq)
		view.DataQuality = &dqView
	}

	return view
}

func MapDataQualityDocumentToView(doc domain.DataQualityDocument) api.DataQualityView {
	anchors := doc.AnchorSummary
	view := api.DataQualityView{
		AnchorSummary: withShares([]api.CategoryPoint{
			{Category: "Confirmed", Count: anchors.Confirmed, Colour: anchorPalette[0]},
			{Category: "Inferred", Count: anchors.Inferred, Colour: anchorPalette[1]},
			{Category: "None", Count: anchors.None, Colour: anchorPalette[2]},
			{Category: "Ambiguous", Count: anchors.Ambiguous, Colour: anchorPalette[3]},
		}),
		Checks: []api.DataQualityCheck{
			{
				Name: "Repayment vs bucket consistency",
				Pass: doc.RepaymentBucketConsistency.Pass,
				Detail: fmt.Sprintf("Bucket D high-quality repayers: %s",
					format.FormatPercent(doc.RepaymentBucketConsistency.BucketDHighQualityPct)),
			},
			{
				Name: "Bureau data freshness < 90 days",
				Pass: doc.BureauFreshPctUnder90Days == 100,
				Detail: fmt.Sprintf("%s fresh, oldest pull %d days",
					format.FormatPercent(doc.BureauFreshPctUnder90Days), doc.BureauFreshnessDays),
			},
			{
				Name: "No month-36 spike",
				Pass: !isSpike(doc.Month36Spike),
				Detail: fmt.Sprintf("months 35/36/37: %s / %s / %s",
					format.FormatCount(doc.Month36Spike.Month35),
					format.FormatCount(doc.Month36Spike.Month36),
					format.FormatCount(doc.Month36Spike.Month37)),
			},
		},
		Table: make([]api.DataQualityRow, 0, len(doc.Table)),
	}

	for _, row := range doc.Table {
		view.Table = append(view.Table, api.DataQualityRow{
			Metric: row.Metric,
			Value:  stringifyValue(row.Value),
			Status: row.Status,
		})
	}

	return view
}

// isSpike flags a month-36 count that dwarfs both neighbours, which happens
// when older loans are clamped into the last histogram bucket.
func isSpike(s domain.Month36Spike) bool {
	neighbour := maxInt64(s.Month35, s.Month37)
	return s.Month36 > 2*neighbour && s.Month36 > 0
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return format.FormatCount(int64(val))
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
