// Package report flattens a tab view into titled tables shared by the
// terminal and HTML renderers.
package report

import (
	"strconv"

	"github.com/de-tools/bureau-dashboard/pkg/format"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
)

type Item struct {
	Label string
	Value string
}

type Section struct {
	Title   string
	Summary []Item
	Columns []string
	Rows    [][]string
}

type Report struct {
	Tab      string
	Title    string
	Subtitle string
	Sections []Section
}

func Build(view api.View) Report {
	r := Report{Tab: view.Tab, Title: view.Title, Subtitle: view.Subtitle}

	switch {
	case view.Overview != nil:
		r.Sections = overview(view.Overview)
	case view.Population != nil:
		r.Sections = population(view.Population)
	case view.Behaviour != nil:
		r.Sections = behaviour(view.Behaviour)
	case view.Risk != nil:
		r.Sections = []Section{
			distribution("Risk tier", "Tier", view.Risk.RiskTiers),
			distribution("Affordability", "Tier", view.Risk.Affordability),
		}
	case view.Timing != nil:
		r.Sections = timing(view.Timing)
	case view.Monetisation != nil:
		r.Sections = monetisation(view.Monetisation)
	case view.Outreach != nil:
		s := distribution("Outreach cohorts", "Cohort", view.Outreach.Cohorts)
		s.Summary = []Item{{Label: "Total customers", Value: format.FormatCount(view.Outreach.Total)}}
		r.Sections = []Section{s}
	}

	return r
}

func distribution(title, column string, points []api.CategoryPoint) Section {
	s := Section{Title: title, Columns: []string{column, "Customers", "Share"}}
	for _, p := range points {
		share := "-"
		if p.Percentage != nil {
			share = format.FormatPercent(*p.Percentage)
		}
		s.Rows = append(s.Rows, []string{p.Category, format.FormatCount(p.Count), share})
	}
	return s
}

func overview(v *api.OverviewView) []Section {
	kpis := Section{Title: "Key metrics"}
	for _, c := range v.Cards {
		kpis.Summary = append(kpis.Summary, Item{Label: c.Label, Value: c.Value})
	}
	kpis.Summary = append(kpis.Summary,
		Item{Label: "Golden window customers, curve A", Value: v.GoldenWindowCurveA},
		Item{Label: "Golden window customers, curve B", Value: v.GoldenWindowCurveB},
	)

	sections := []Section{kpis}
	if v.DataQuality == nil {
		return sections
	}

	checks := Section{Title: "Data quality checks", Columns: []string{"Check", "Result", "Detail"}}
	for _, c := range v.DataQuality.Checks {
		result := "FAIL"
		if c.Pass {
			result = "PASS"
		}
		checks.Rows = append(checks.Rows, []string{c.Name, result, c.Detail})
	}

	table := Section{Title: "Data quality", Columns: []string{"Metric", "Value", "Status"}}
	for _, row := range v.DataQuality.Table {
		table.Rows = append(table.Rows, []string{row.Metric, row.Value, row.Status})
	}

	return append(sections,
		distribution("Anchor resolution", "Anchor", v.DataQuality.AnchorSummary),
		checks,
		table,
	)
}

func population(v *api.PopulationView) []Section {
	buckets := distribution("Bucket distribution", "Bucket", v.Buckets)
	buckets.Summary = []Item{{Label: "Customers across buckets", Value: v.BucketTotalLabel}}

	accounts := Section{Title: "Top account types", Columns: []string{"Account type", "Tradelines"}}
	for _, p := range v.AccountTypes {
		accounts.Rows = append(accounts.Rows, []string{p.Category, format.FormatCount(p.Count)})
	}

	return []Section{
		buckets,
		distribution("Lender type", "Lender type", v.LenderTypes),
		distribution("Product mix", "Mix", v.ProductMix),
		accounts,
	}
}

func behaviour(v *api.BehaviourView) []Section {
	curves := Section{
		Title:   "Time to next PL",
		Summary: []Item{{Label: "Golden window", Value: band(v.GoldenWindow)}},
		Columns: []string{"Months", "Curve A", "Curve B"},
	}
	for _, p := range v.Curves {
		curves.Rows = append(curves.Rows, []string{
			strconv.Itoa(p.Months),
			format.FormatCount(p.CurveA),
			format.FormatCount(p.CurveB),
		})
	}

	return []Section{
		curves,
		distribution("Repayment quality", "Bucket", v.RepaymentQuality),
		distribution("Credit velocity", "Segment", v.CreditVelocity),
	}
}

func timing(v *api.TimingView) []Section {
	months := Section{
		Title: "Months since car loan",
		Summary: []Item{
			{Label: "Golden window", Value: band(v.GoldenWindow)},
			{Label: "Customers in golden window", Value: format.FormatCount(v.GoldenWindowTotal)},
		},
		Columns: []string{"Months", "Customers", "Golden window"},
	}
	for _, p := range v.MonthsSince {
		inBand := ""
		if p.InBand {
			inBand = "yes"
		}
		months.Rows = append(months.Rows, []string{strconv.Itoa(p.Months), format.FormatCount(p.Customers), inBand})
	}

	seasonal := Section{Title: "Seasonal demand index", Columns: []string{"Month", "Index", "Above average"}}
	for _, p := range v.Seasonal {
		above := ""
		if p.AboveAverage {
			above = "yes"
		}
		seasonal.Rows = append(seasonal.Rows, []string{p.MonthName, format.FormatDecimal(p.Index, 2), above})
	}

	return []Section{
		distribution("Timing flags", "Flag", v.TimingFlags),
		months,
		seasonal,
	}
}

func monetisation(v *api.MonetisationView) []Section {
	wf := Section{Title: "TAM waterfall", Columns: []string{"Stage", "Type", "Customers"}}
	for _, b := range v.Waterfall.Bars {
		wf.Rows = append(wf.Rows, []string{b.Stage, b.Type, b.Label})
	}
	sections := []Section{wf}

	if v.SAM == nil {
		return sections
	}
	sections = append(sections, distribution("SAM segments", "Segment", v.SAM.Segments))

	if rev := v.SAM.Revenue; rev != nil {
		s := Section{
			Title: "Revenue model (year 1)",
			Summary: []Item{
				{Label: "Total AUM", Value: rev.TotalAUMYear1},
				{Label: "Total net revenue", Value: rev.TotalNetRevenue},
			},
			Columns: []string{
				"Product", "Ticket", "Tenor", "Yield", "Credit cost", "Net margin",
				"Prepayment adj", "Disbursals", "AUM", "Revenue",
			},
		}
		for _, p := range rev.Products {
			s.Rows = append(s.Rows, []string{
				p.Product, p.Ticket, p.TenorMonths, p.Yield, p.CreditCost, p.NetMargin,
				p.PrepaymentAdj, p.Disbursals, p.AUMYear1, p.RevenueYear1,
			})
		}
		sections = append(sections, s)
	}

	if len(v.SAM.AUMProjection) > 0 {
		s := Section{Title: "AUM projection", Columns: []string{"Month", "Label", "AUM"}}
		for _, p := range v.SAM.AUMProjection {
			s.Rows = append(s.Rows, []string{strconv.Itoa(p.Month), p.Label, p.Value})
		}
		sections = append(sections, s)
	}

	return sections
}

func band(b api.Band) string {
	return strconv.Itoa(b.From) + "-" + strconv.Itoa(b.To) + " months"
}
