package domain

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

type OverviewDocument struct {
	TotalCustomers             int64                         `json:"totalCustomers"`
	AvgTradelinesPerCustomer   float64                       `json:"avgTradelinesPerCustomer"`
	ServiceableBase            int64                         `json:"serviceableBase"`
	PLPenetrationRate          float64                       `json:"plPenetrationRate"`
	GoldenWindowCurveA         int64                         `json:"goldenWindowCurveA"`
	GoldenWindowCurveB         int64                         `json:"goldenWindowCurveB"`
	CustomersInGoldenWindowNow int64                         `json:"customersInGoldenWindowNow"`
	BureauDate                 string                        `json:"bureauDate"`
	DataQuality                Optional[DataQualityDocument] `json:"dataQuality"`
}

func (d *OverviewDocument) Validate() error {
	if d.BureauDate == "" {
		return missing("bureauDate")
	}
	return nil
}

type AnchorSummary struct {
	Confirmed int64 `json:"confirmed"`
	Inferred  int64 `json:"inferred"`
	None      int64 `json:"none"`
	Ambiguous int64 `json:"ambiguous"`
}

type RepaymentBucketConsistency struct {
	Pass                  bool    `json:"pass"`
	BucketDHighQualityPct float64 `json:"bucketDHighQualityPct"`
}

type Month36Spike struct {
	Month35 int64 `json:"month35"`
	Month36 int64 `json:"month36"`
	Month37 int64 `json:"month37"`
}

// DataQualityRow.Value is either a number or a preformatted string.
type DataQualityRow struct {
	Metric string `json:"metric"`
	Value  any    `json:"value"`
	Status string `json:"status"`
}

type DataQualityDocument struct {
	TotalCustomers             int64                      `json:"totalCustomers"`
	AvgTradelinesPerCustomer   float64                    `json:"avgTradelinesPerCustomer"`
	AnchorSummary              AnchorSummary              `json:"anchorSummary"`
	Month0PctOnDemandCurve     float64                    `json:"month0PctOnDemandCurve"`
	PreExistingPLPct           float64                    `json:"preExistingPLPct"`
	BureauFreshnessDays        int64                      `json:"bureauFreshnessDays"`
	BureauFreshPctUnder90Days  float64                    `json:"bureauFreshPctUnder90Days"`
	RepaymentBucketConsistency RepaymentBucketConsistency `json:"repaymentBucketConsistency"`
	Month36Spike               Month36Spike               `json:"month36Spike"`
	Table                      []DataQualityRow           `json:"table"`
}

func (d *DataQualityDocument) Validate() error {
	if d.Table == nil {
		return missing("table")
	}
	return nil
}

type BucketCount struct {
	Bucket    string  `json:"bucket"`
	Customers int64   `json:"customers"`
	Pct       float64 `json:"pct"`
}

type LenderTypeCount struct {
	LenderType string `json:"lenderType"`
	Customers  int64  `json:"customers"`
}

type ProductMixCount struct {
	Mix       string `json:"mix"`
	Customers int64  `json:"customers"`
}

type AcctTypeCount struct {
	AcctType   string `json:"acctType"`
	Tradelines int64  `json:"tradelines"`
}

type PopulationDocument struct {
	BucketDistribution     []BucketCount     `json:"bucketDistribution"`
	LenderTypeDistribution []LenderTypeCount `json:"lenderTypeDistribution"`
	ProductMix             []ProductMixCount `json:"productMix"`
	AcctTypeDistribution   []AcctTypeCount   `json:"acctTypeDistribution"`
}

func (d *PopulationDocument) Validate() error {
	switch {
	case d.BucketDistribution == nil:
		return missing("bucketDistribution")
	case d.LenderTypeDistribution == nil:
		return missing("lenderTypeDistribution")
	case d.ProductMix == nil:
		return missing("productMix")
	case d.AcctTypeDistribution == nil:
		return missing("acctTypeDistribution")
	}
	return nil
}

type MonthCount struct {
	Months int   `json:"months"`
	Count  int64 `json:"count"`
}

type SegmentCount struct {
	Segment   string `json:"segment"`
	Customers int64  `json:"customers"`
}

type QualityBucketCount struct {
	Bucket    string `json:"bucket"`
	Customers int64  `json:"customers"`
}

type BehaviourDocument struct {
	TimeToNextPLCurveA           []MonthCount         `json:"timeToNextPLCurveA"`
	TimeToNextPLCurveB           []MonthCount         `json:"timeToNextPLCurveB"`
	RepaymentQualityDistribution []QualityBucketCount `json:"repaymentQualityDistribution"`
	CreditVelocity               []SegmentCount       `json:"creditVelocity"`
}

func (d *BehaviourDocument) Validate() error {
	switch {
	case d.TimeToNextPLCurveA == nil:
		return missing("timeToNextPLCurveA")
	case d.TimeToNextPLCurveB == nil:
		return missing("timeToNextPLCurveB")
	case d.RepaymentQualityDistribution == nil:
		return missing("repaymentQualityDistribution")
	case d.CreditVelocity == nil:
		return missing("creditVelocity")
	}
	return nil
}

type TierCount struct {
	Tier      string `json:"tier"`
	Customers int64  `json:"customers"`
}

type RiskDocument struct {
	RiskTierDistribution      []TierCount `json:"riskTierDistribution"`
	AffordabilityDistribution []TierCount `json:"affordabilityDistribution"`
}

func (d *RiskDocument) Validate() error {
	switch {
	case d.RiskTierDistribution == nil:
		return missing("riskTierDistribution")
	case d.AffordabilityDistribution == nil:
		return missing("affordabilityDistribution")
	}
	return nil
}

type FlagCount struct {
	Flag      string `json:"flag"`
	Customers int64  `json:"customers"`
}

type MonthCustomers struct {
	Months    int   `json:"months"`
	Customers int64 `json:"customers"`
}

type SeasonalPoint struct {
	Month     int     `json:"month"`
	MonthName string  `json:"monthName"`
	Index     float64 `json:"index"`
}

type TimingDocument struct {
	TimingFlagDistribution []FlagCount      `json:"timingFlagDistribution"`
	MonthsSinceCarLoan     []MonthCustomers `json:"monthsSinceCarLoan"`
	SeasonalIndex          []SeasonalPoint  `json:"seasonalIndex"`
}

func (d *TimingDocument) Validate() error {
	switch {
	case d.TimingFlagDistribution == nil:
		return missing("timingFlagDistribution")
	case d.MonthsSinceCarLoan == nil:
		return missing("monthsSinceCarLoan")
	case d.SeasonalIndex == nil:
		return missing("seasonalIndex")
	}
	return nil
}

type StepType string

const (
	StepStart StepType = "start"
	StepDelta StepType = "delta"
	StepTotal StepType = "total"
)

// IsDelta reports whether the step adds to or subtracts from the running total.
// The batch job labels subtractive steps "minus"; anything that is not a start
// or total step counts as a delta.
func (t StepType) IsDelta() bool {
	return t != StepStart && t != StepTotal
}

type WaterfallStep struct {
	Stage string   `json:"stage"`
	Value float64  `json:"value"`
	Type  StepType `json:"type"`
}

type SAMSegments struct {
	PLEligible  int64 `json:"plEligible"`
	LACEligible int64 `json:"lacEligible"`
	Deferred    int64 `json:"deferred"`
	Excluded    int64 `json:"excluded"`
}

type ProductEconomics struct {
	AvgTicketInr    float64 `json:"avgTicketInr"`
	AvgTenorMonths  float64 `json:"avgTenorMonths"`
	YieldPct        float64 `json:"yieldPct"`
	CreditCostPct   float64 `json:"creditCostPct"`
	NetMarginPct    float64 `json:"netMarginPct"`
	PrepaymentAdj   float64 `json:"prepaymentAdj"`
	DisbursalsCount int64   `json:"disbursalsCount"`
	AUMYear1Inr     float64 `json:"aumYear1Inr"`
	RevenueYear1Inr float64 `json:"revenueYear1Inr"`
}

type RevenueModel struct {
	PL                      ProductEconomics `json:"pl"`
	LAC                     ProductEconomics `json:"lac"`
	TotalAUMYear1Inr        float64          `json:"totalAumYear1Inr"`
	TotalNetRevenueYear1Inr float64          `json:"totalNetRevenueYear1Inr"`
}

type AUMPoint struct {
	Month  int     `json:"month"`
	AUMInr float64 `json:"aumInr"`
	Label  string  `json:"label"`
}

type MonetisationDocument struct {
	TAMWaterfall  []WaterfallStep        `json:"tamWaterfall"`
	SAMSegments   Optional[SAMSegments]  `json:"samSegments"`
	RevenueModel  Optional[RevenueModel] `json:"revenueModel"`
	AUMProjection Optional[[]AUMPoint]   `json:"aumProjection"`
}

func (d *MonetisationDocument) Validate() error {
	if d.TAMWaterfall == nil {
		return missing("tamWaterfall")
	}
	return nil
}

type CohortCount struct {
	Cohort    string `json:"cohort"`
	Customers int64  `json:"customers"`
}

type OutreachDocument struct {
	OutreachCohortDistribution []CohortCount `json:"outreachCohortDistribution"`
}

func (d *OutreachDocument) Validate() error {
	if d.OutreachCohortDistribution == nil {
		return missing("outreachCohortDistribution")
	}
	return nil
}

// Documents is the full snapshot produced by one batch run.
type Documents struct {
	Overview     OverviewDocument
	Population   PopulationDocument
	Behaviour    BehaviourDocument
	Risk         RiskDocument
	Timing       TimingDocument
	Monetisation MonetisationDocument
	Outreach     OutreachDocument
}
