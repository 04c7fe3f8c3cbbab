package dashboard

import (
	"fmt"
	"strings"
)

type Tab string

const (
	TabOverview     Tab = "overview"
	TabPopulation   Tab = "population"
	TabBehaviour    Tab = "behaviour"
	TabRisk         Tab = "risk"
	TabTiming       Tab = "timing"
	TabMonetisation Tab = "monetisation"
	TabOutreach     Tab = "outreach"
)

// DefaultTab is shown when no selection has been made.
const DefaultTab = TabOverview

type tabMeta struct {
	label    string
	title    string
	subtitle string
}

var tabOrder = []Tab{
	TabOverview,
	TabPopulation,
	TabBehaviour,
	TabRisk,
	TabTiming,
	TabMonetisation,
	TabOutreach,
}

var tabs = map[Tab]tabMeta{
	TabOverview: {
		label:    "Overview",
		title:    "Overview",
		subtitle: "Key metrics from bureau scrub (RUN 1-4).",
	},
	TabPopulation: {
		label:    "Population",
		title:    "Population & product mix (RUN 1)",
		subtitle: "Deduplicated base, buckets, lender type, product mix.",
	},
	TabBehaviour: {
		label:    "Behaviour",
		title:    "Behaviour & time-to-next-PL (RUN 2)",
		subtitle: "Curve A (all) vs Curve B (first-timers). Repayment quality and credit velocity.",
	},
	TabRisk: {
		label: "Risk",
		title: "Risk & affordability (RUN 3)",
		subtitle: "Rule-based view of how safe each customer looks (risk) and how much loan size " +
			"they seem comfortable with (affordability), based only on bureau behaviour.",
	},
	TabTiming: {
		label:    "Timing",
		title:    "Timing intelligence (RUN 4)",
		subtitle: "Golden window (2-10 months), timing flags, months since car loan, seasonal demand index.",
	},
	TabMonetisation: {
		label: "Monetisation",
		title: "Monetisation & TAM (RUN 5)",
		subtitle: "TAM waterfall, SAM segments (PL / LAC / Deferred / Excluded), expected disbursals, " +
			"and revenue model with AUM at month 6, 12, 24.",
	},
	TabOutreach: {
		label: "Outreach",
		title: "Outreach prioritisation",
		subtitle: "Cohorts that say who to call now, next 30 days, next 90 days, and who to park " +
			"for later based on risk and timing.",
	},
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder)
	return out
}

func (t Tab) Valid() bool {
	_, ok := tabs[t]
	return ok
}

func (t Tab) Label() string {
	return tabs[t].label
}

func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tab %q", s)
	}
	return t, nil
}

// Select is the only tab transition: a known selection becomes active,
// anything else leaves the current tab in place.
func Select(current Tab, selection string) Tab {
	next, err := ParseTab(selection)
	if err != nil {
		if current.Valid() {
			return current
		}
		return DefaultTab
	}
	return next
}
