package adapters

import (
	"math"
	"strconv"

	"github.com/de-tools/bureau-dashboard/pkg/format"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

// WaterfallHeadroomPct is extra axis space above the tallest bar for labels.
const WaterfallHeadroomPct = 15

func MapMonetisationDocumentToView(doc domain.MonetisationDocument) api.MonetisationView {
	view := api.MonetisationView{
		Waterfall: MapWaterfall(doc.TAMWaterfall),
	}

	segments, ok := doc.SAMSegments.Get()
	if !ok {
		return view
	}

	sam := &api.SAMView{
		Segments: withShares([]api.CategoryPoint{
			{Category: "PL eligible", Count: segments.PLEligible, Colour: samPalette[0]},
			{Category: "LAC eligible", Count: segments.LACEligible, Colour: samPalette[1]},
			{Category: "Deferred", Count: segments.Deferred, Colour: samPalette[2]},
			{Category: "Excluded", Count: segments.Excluded, Colour: samPalette[3]},
		}),
	}

	if model, ok := doc.RevenueModel.Get(); ok {
		revenue := MapRevenueModel(model)
		sam.Revenue = &revenue
	}

	if projection, ok := doc.AUMProjection.Get(); ok && len(projection) > 0 {
		sam.AUMProjection = MapAUMProjection(projection)
	}

	view.SAM = sam
	return view
}

// MapWaterfall colours each step by its type and sign and sizes the value axis.
// Steps are trusted to be in producer order; the running total is not checked.
func MapWaterfall(steps []domain.WaterfallStep) api.WaterfallView {
	view := api.WaterfallView{
		Bars: make([]api.WaterfallBar, 0, len(steps)),
	}

	for _, step := range steps {
		view.Max = math.Max(view.Max, stepMagnitude(step))
		view.Bars = append(view.Bars, api.WaterfallBar{
			Stage:  step.Stage,
			Value:  step.Value,
			Type:   string(step.Type),
			Colour: stepColour(step),
			Label:  format.FormatCount(int64(math.Round(step.Value))),
		})
	}
	view.AxisMax = view.Max * (100 + WaterfallHeadroomPct) / 100

	return view
}

func stepMagnitude(step domain.WaterfallStep) float64 {
	if step.Type.IsDelta() {
		return math.Abs(step.Value)
	}
	return step.Value
}

func stepColour(step domain.WaterfallStep) string {
	switch {
	case step.Type == domain.StepTotal:
		return ColourSuccess
	case step.Type == domain.StepStart:
		return ColourAccent
	case step.Value < 0:
		return ColourWarning
	default:
		return ColourNeutral
	}
}

func MapRevenueModel(model domain.RevenueModel) api.RevenueView {
	return api.RevenueView{
		Products: []api.ProductRevenue{
			mapProductEconomics("PL", model.PL),
			mapProductEconomics("LAC", model.LAC),
		},
		TotalAUMYear1:   format.FormatCurrencyMagnitude(model.TotalAUMYear1Inr),
		TotalNetRevenue: format.FormatCurrencyMagnitude(model.TotalNetRevenueYear1Inr),
	}
}

func mapProductEconomics(product string, p domain.ProductEconomics) api.ProductRevenue {
	return api.ProductRevenue{
		Product:       product,
		Ticket:        format.FormatCurrencyMagnitude(p.AvgTicketInr),
		TenorMonths:   strconv.FormatFloat(p.AvgTenorMonths, 'f', -1, 64) + " mo",
		Yield:         format.FormatPercent(p.YieldPct),
		CreditCost:    format.FormatPercent(p.CreditCostPct),
		NetMargin:     format.FormatPercent(p.NetMarginPct),
		PrepaymentAdj: strconv.FormatFloat(p.PrepaymentAdj, 'f', -1, 64) + "×",
		Disbursals:    format.FormatCount(p.DisbursalsCount),
		AUMYear1:      format.FormatCurrencyMagnitude(p.AUMYear1Inr),
		RevenueYear1:  format.FormatCurrencyMagnitude(p.RevenueYear1Inr),
	}
}

func MapAUMProjection(points []domain.AUMPoint) []api.AUMPoint {
	out := make([]api.AUMPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.AUMPoint{
			Month:  p.Month,
			Amount: p.AUMInr,
			Label:  p.Label,
			Value:  format.FormatCurrencyMagnitude(p.AUMInr),
		})
	}
	return out
}
