package adapters

import (
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

// MaxMonthsSinceCarLoan is the last month kept on the months-since chart.
const MaxMonthsSinceCarLoan = 36

func MapTimingDocumentToView(doc domain.TimingDocument) api.TimingView {
	monthsSince := FilterMonthsSince(doc.MonthsSinceCarLoan)

	var bandTotal, top int64
	for _, p := range monthsSince {
		if p.InBand {
			bandTotal += p.Customers
		}
		top = maxInt64(top, p.Customers)
	}

	seasonal := make([]api.SeasonalPoint, 0, len(doc.SeasonalIndex))
	for _, s := range doc.SeasonalIndex {
		seasonal = append(seasonal, api.SeasonalPoint{
			Month:        s.Month,
			MonthName:    s.MonthName,
			Index:        s.Index,
			AboveAverage: s.Index > 1,
		})
	}

	return api.TimingView{
		TimingFlags: withShares(mapCategories(doc.TimingFlagDistribution, func(f domain.FlagCount) (string, int64) {
			return f.Flag, f.Customers
		}, solid(fillTiming))),
		MonthsSince:       monthsSince,
		GoldenWindow:      api.Band{From: GoldenWindowFrom, To: GoldenWindowTo},
		GoldenWindowTotal: bandTotal,
		MonthsSinceMax:    maxInt64(top, 1),
		Seasonal:          seasonal,
	}
}

// FilterMonthsSince drops months past MaxMonthsSinceCarLoan and empty months,
// keeping the input order.
func FilterMonthsSince(items []domain.MonthCustomers) []api.MonthPoint {
	points := make([]api.MonthPoint, 0, len(items))
	for _, m := range items {
		if m.Months > MaxMonthsSinceCarLoan || m.Customers == 0 {
			continue
		}
		points = append(points, api.MonthPoint{
			Months:    m.Months,
			Customers: m.Customers,
			InBand:    m.Months >= GoldenWindowFrom && m.Months <= GoldenWindowTo,
		})
	}
	return points
}
