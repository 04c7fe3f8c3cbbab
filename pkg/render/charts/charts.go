// Package charts renders tab views as PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/de-tools/bureau-dashboard/pkg/adapters"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 960
	defaultHeight = 420
)

var (
	ErrUnknownChart = errors.New("unknown chart")
	// ErrNoData is returned for a chart whose optional section is absent.
	ErrNoData = errors.New("chart has no data")
)

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

type builder func(view api.View) (renderable, error)

var registry = map[string]map[string]builder{
	"overview": {
		"anchor-summary": anchorSummary,
	},
	"population": {
		"buckets":       populationBars(func(v *api.PopulationView) []api.CategoryPoint { return v.Buckets }, "Bucket distribution"),
		"lender-types":  populationBars(func(v *api.PopulationView) []api.CategoryPoint { return v.LenderTypes }, "Lender type"),
		"product-mix":   populationBars(func(v *api.PopulationView) []api.CategoryPoint { return v.ProductMix }, "Product mix"),
		"account-types": populationBars(func(v *api.PopulationView) []api.CategoryPoint { return v.AccountTypes }, "Top account types (tradelines)"),
	},
	"behaviour": {
		"curves":            behaviourCurves,
		"repayment-quality": behaviourBars(func(v *api.BehaviourView) []api.CategoryPoint { return v.RepaymentQuality }, "Repayment quality"),
		"credit-velocity":   behaviourBars(func(v *api.BehaviourView) []api.CategoryPoint { return v.CreditVelocity }, "Credit velocity (12m)"),
	},
	"risk": {
		"risk-tiers":    riskBars(func(v *api.RiskView) []api.CategoryPoint { return v.RiskTiers }, "Risk tier"),
		"affordability": riskBars(func(v *api.RiskView) []api.CategoryPoint { return v.Affordability }, "Affordability"),
	},
	"timing": {
		"timing-flags": timingFlags,
		"months-since": monthsSince,
		"seasonal":     seasonal,
	},
	"monetisation": {
		"waterfall":      waterfall,
		"sam-segments":   samSegments,
		"aum-projection": aumProjection,
	},
	"outreach": {
		"cohorts": cohorts,
	},
}

// IDs lists the charts available for a tab, sorted.
func IDs(tab string) []string {
	charts := registry[tab]
	ids := make([]string, 0, len(charts))
	for id := range charts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Render writes chart id of the given view as a PNG.
func Render(w io.Writer, view api.View, id string) error {
	build, ok := registry[view.Tab][id]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownChart, view.Tab, id)
	}

	c, err := build(view)
	if err != nil {
		return err
	}

	if err := c.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart %s/%s: %w", view.Tab, id, err)
	}
	return nil
}

func colour(hex string) drawing.Color {
	if len(hex) != 7 && len(hex) != 4 {
		return drawing.ColorTransparent
	}
	return drawing.ColorFromHex(hex)
}

func barStyle(hex string) chart.Style {
	if hex == "" {
		return chart.Style{}
	}
	c := colour(hex)
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

func categoryBars(title string, points []api.CategoryPoint) (renderable, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	var top float64
	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		top = max(top, float64(p.Count))
		bars = append(bars, chart.Value{
			Label: p.Category,
			Value: float64(p.Count),
			Style: barStyle(p.Colour),
		})
	}

	return newBarChart(title, bars, top), nil
}

func newBarChart(title string, bars []chart.Value, top float64) chart.BarChart {
	return chart.BarChart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		BarWidth:   max(12, defaultWidth/(2*len(bars)+1)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: max(top, 1)},
			ValueFormatter: countFormatter,
		},
		Bars: bars,
	}
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return fmt.Sprint(v)
}

func anchorSummary(view api.View) (renderable, error) {
	if view.Overview == nil || view.Overview.DataQuality == nil {
		return nil, ErrNoData
	}
	return categoryBars("Anchor resolution", view.Overview.DataQuality.AnchorSummary)
}

func populationBars(pick func(*api.PopulationView) []api.CategoryPoint, title string) builder {
	return func(view api.View) (renderable, error) {
		if view.Population == nil {
			return nil, ErrNoData
		}
		return categoryBars(title, pick(view.Population))
	}
}

func behaviourBars(pick func(*api.BehaviourView) []api.CategoryPoint, title string) builder {
	return func(view api.View) (renderable, error) {
		if view.Behaviour == nil {
			return nil, ErrNoData
		}
		return categoryBars(title, pick(view.Behaviour))
	}
}

func riskBars(pick func(*api.RiskView) []api.CategoryPoint, title string) builder {
	return func(view api.View) (renderable, error) {
		if view.Risk == nil {
			return nil, ErrNoData
		}
		return categoryBars(title, pick(view.Risk))
	}
}

func behaviourCurves(view api.View) (renderable, error) {
	if view.Behaviour == nil || len(view.Behaviour.Curves) == 0 {
		return nil, ErrNoData
	}
	b := view.Behaviour

	xs := make([]float64, len(b.Curves))
	curveA := make([]float64, len(b.Curves))
	curveB := make([]float64, len(b.Curves))
	for i, p := range b.Curves {
		xs[i] = float64(p.Months)
		curveA[i] = float64(p.CurveA)
		curveB[i] = float64(p.CurveB)
	}

	lineStyle := func(hex string) chart.Style {
		return chart.Style{StrokeColor: colour(hex), StrokeWidth: 2}
	}

	c := chart.Chart{
		Title:      "Time to next PL (months)",
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Months",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(adapters.MaxCurveMonths)},
		},
		YAxis: chart.YAxis{
			Name:           "Customers",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(max(b.CurveMax, 1))},
			ValueFormatter: countFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Curve A (all)", XValues: xs, YValues: curveA, Style: lineStyle(adapters.ColourAccent)},
			chart.ContinuousSeries{Name: "Curve B (first-timers)", XValues: xs, YValues: curveB, Style: lineStyle(adapters.ColourAmber)},
		},
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c, nil
}

func timingFlags(view api.View) (renderable, error) {
	if view.Timing == nil {
		return nil, ErrNoData
	}
	return categoryBars("Timing flags", view.Timing.TimingFlags)
}

func monthsSince(view api.View) (renderable, error) {
	if view.Timing == nil || len(view.Timing.MonthsSince) == 0 {
		return nil, ErrNoData
	}
	t := view.Timing

	bars := make([]chart.Value, 0, len(t.MonthsSince))
	for _, p := range t.MonthsSince {
		fill := adapters.ColourNeutral
		if p.InBand {
			fill = adapters.ColourAccent
		}
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(p.Months),
			Value: float64(p.Customers),
			Style: barStyle(fill),
		})
	}
	return newBarChart("Months since car loan", bars, float64(t.MonthsSinceMax)), nil
}

func seasonal(view api.View) (renderable, error) {
	if view.Timing == nil || len(view.Timing.Seasonal) == 0 {
		return nil, ErrNoData
	}

	var top float64
	bars := make([]chart.Value, 0, len(view.Timing.Seasonal))
	for _, p := range view.Timing.Seasonal {
		fill := adapters.ColourNeutral
		if p.AboveAverage {
			fill = adapters.ColourAmber
		}
		top = max(top, p.Index)
		bars = append(bars, chart.Value{Label: p.MonthName, Value: p.Index, Style: barStyle(fill)})
	}

	c := newBarChart("Seasonal demand index", bars, top)
	c.YAxis.ValueFormatter = chart.FloatValueFormatter
	return c, nil
}

// waterfall draws each step at its magnitude on the adapter's padded axis.
func waterfall(view api.View) (renderable, error) {
	if view.Monetisation == nil || len(view.Monetisation.Waterfall.Bars) == 0 {
		return nil, ErrNoData
	}
	wf := view.Monetisation.Waterfall

	bars := make([]chart.Value, 0, len(wf.Bars))
	for _, b := range wf.Bars {
		v := b.Value
		if v < 0 {
			v = -v
		}
		bars = append(bars, chart.Value{Label: b.Stage, Value: v, Style: barStyle(b.Colour)})
	}

	c := newBarChart("TAM waterfall", bars, wf.Max)
	if wf.AxisMax > 0 {
		c.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: wf.AxisMax}
	}
	return c, nil
}

func samSegments(view api.View) (renderable, error) {
	if view.Monetisation == nil || view.Monetisation.SAM == nil {
		return nil, ErrNoData
	}
	return categoryBars("SAM segments", view.Monetisation.SAM.Segments)
}

func aumProjection(view api.View) (renderable, error) {
	if view.Monetisation == nil || view.Monetisation.SAM == nil || len(view.Monetisation.SAM.AUMProjection) == 0 {
		return nil, ErrNoData
	}

	var top float64
	points := view.Monetisation.SAM.AUMProjection
	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		top = max(top, p.Amount)
		bars = append(bars, chart.Value{
			Label: p.Label + " (" + p.Value + ")",
			Value: p.Amount,
			Style: barStyle(adapters.ColourAccent),
		})
	}
	return newBarChart("AUM projection", bars, top), nil
}

func cohorts(view api.View) (renderable, error) {
	if view.Outreach == nil {
		return nil, ErrNoData
	}
	return categoryBars("Outreach cohorts", view.Outreach.Cohorts)
}

// Available reports whether chart id has data in view, without rendering it.
func Available(view api.View, id string) bool {
	build, ok := registry[view.Tab][id]
	if !ok {
		return false
	}
	_, err := build(view)
	return err == nil
}
