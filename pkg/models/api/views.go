package api

// CategoryPoint is one bar or slice of a categorical chart.
type CategoryPoint struct {
	Category   string   `json:"category"`
	Count      int64    `json:"count"`
	Percentage *float64 `json:"percentage,omitempty"`
	Colour     string   `json:"colour,omitempty"`
}

type Band struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type OverviewView struct {
	Cards              []KPICard        `json:"cards"`
	GoldenWindowCurveA string           `json:"golden_window_curve_a"`
	GoldenWindowCurveB string           `json:"golden_window_curve_b"`
	DataQuality        *DataQualityView `json:"data_quality,omitempty"`
}

type DataQualityRow struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

type DataQualityCheck struct {
	Name   string `json:"name"`
	Pass   bool   `json:"pass"`
	Detail string `json:"detail"`
}

type DataQualityView struct {
	AnchorSummary []CategoryPoint    `json:"anchor_summary"`
	Checks        []DataQualityCheck `json:"checks"`
	Table         []DataQualityRow   `json:"table"`
}

type PopulationView struct {
	Buckets          []CategoryPoint `json:"buckets"`
	BucketTotal      int64           `json:"bucket_total"`
	BucketTotalLabel string          `json:"bucket_total_label"`
	LenderTypes      []CategoryPoint `json:"lender_types"`
	ProductMix       []CategoryPoint `json:"product_mix"`
	AccountTypes     []CategoryPoint `json:"account_types"`
}

type CurvePoint struct {
	Months int   `json:"months"`
	CurveA int64 `json:"curve_a"`
	CurveB int64 `json:"curve_b"`
}

type BehaviourView struct {
	Curves           []CurvePoint    `json:"curves"`
	CurveMax         int64           `json:"curve_max"`
	GoldenWindow     Band            `json:"golden_window"`
	RepaymentQuality []CategoryPoint `json:"repayment_quality"`
	CreditVelocity   []CategoryPoint `json:"credit_velocity"`
}

type RiskView struct {
	RiskTiers     []CategoryPoint `json:"risk_tiers"`
	Affordability []CategoryPoint `json:"affordability"`
}

type MonthPoint struct {
	Months    int   `json:"months"`
	Customers int64 `json:"customers"`
	InBand    bool  `json:"in_band"`
}

type SeasonalPoint struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	Index        float64 `json:"index"`
	AboveAverage bool    `json:"above_average"`
}

type TimingView struct {
	TimingFlags       []CategoryPoint `json:"timing_flags"`
	MonthsSince       []MonthPoint    `json:"months_since"`
	GoldenWindow      Band            `json:"golden_window"`
	GoldenWindowTotal int64           `json:"golden_window_total"`
	MonthsSinceMax    int64           `json:"months_since_max"`
	Seasonal          []SeasonalPoint `json:"seasonal"`
}

type WaterfallBar struct {
	Stage  string  `json:"stage"`
	Value  float64 `json:"value"`
	Type   string  `json:"type"`
	Colour string  `json:"colour"`
	Label  string  `json:"label"`
}

type WaterfallView struct {
	Bars    []WaterfallBar `json:"bars"`
	Max     float64        `json:"max"`
	AxisMax float64        `json:"axis_max"`
}

type ProductRevenue struct {
	Product       string `json:"product"`
	Ticket        string `json:"ticket"`
	TenorMonths   string `json:"tenor_months"`
	Yield         string `json:"yield"`
	CreditCost    string `json:"credit_cost"`
	NetMargin     string `json:"net_margin"`
	PrepaymentAdj string `json:"prepayment_adj"`
	Disbursals    string `json:"disbursals"`
	AUMYear1      string `json:"aum_year1"`
	RevenueYear1  string `json:"revenue_year1"`
}

type RevenueView struct {
	Products        []ProductRevenue `json:"products"`
	TotalAUMYear1   string           `json:"total_aum_year1"`
	TotalNetRevenue string           `json:"total_net_revenue"`
}

type AUMPoint struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
	Label  string  `json:"label"`
	Value  string  `json:"value"`
}

type SAMView struct {
	Segments      []CategoryPoint `json:"segments"`
	Revenue       *RevenueView    `json:"revenue,omitempty"`
	AUMProjection []AUMPoint      `json:"aum_projection,omitempty"`
}

type MonetisationView struct {
	Waterfall WaterfallView `json:"waterfall"`
	SAM       *SAMView      `json:"sam,omitempty"`
}

type OutreachView struct {
	Cohorts []CategoryPoint `json:"cohorts"`
	Total   int64           `json:"total"`
}

// View is the payload for a single tab. Exactly one of the tab sections is set.
type View struct {
	Tab          string            `json:"tab"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	Overview     *OverviewView     `json:"overview,omitempty"`
	Population   *PopulationView   `json:"population,omitempty"`
	Behaviour    *BehaviourView    `json:"behaviour,omitempty"`
	Risk         *RiskView         `json:"risk,omitempty"`
	Timing       *TimingView       `json:"timing,omitempty"`
	Monetisation *MonetisationView `json:"monetisation,omitempty"`
	Outreach     *OutreachView     `json:"outreach,omitempty"`
}

type TabInfo struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type Status struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}
