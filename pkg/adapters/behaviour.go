package adapters

import (
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

// MaxCurveMonths is the last month shown on the time-to-next-PL chart.
const MaxCurveMonths = 24

func MapBehaviourDocumentToView(doc domain.BehaviourDocument) api.BehaviourView {
	curves := MergeCurves(doc.TimeToNextPLCurveA, doc.TimeToNextPLCurveB)

	var curveMax int64
	for _, p := range curves {
		curveMax = maxInt64(curveMax, maxInt64(p.CurveA, p.CurveB))
	}

	return api.BehaviourView{
		Curves:       curves,
		CurveMax:     curveMax,
		GoldenWindow: api.Band{From: GoldenWindowFrom, To: GoldenWindowTo},
		RepaymentQuality: mapCategories(doc.RepaymentQualityDistribution, func(q domain.QualityBucketCount) (string, int64) {
			return q.Bucket, q.Customers
		}, solid(fillRepayment)),
		CreditVelocity: mapCategories(doc.CreditVelocity, func(s domain.SegmentCount) (string, int64) {
			return s.Segment, s.Customers
		}, solid(fillVelocity)),
	}
}

// MergeCurves lays both curves onto a dense 0..MaxCurveMonths index. Months
// past the cap are dropped, not folded into the last point.
func MergeCurves(curveA, curveB []domain.MonthCount) []api.CurvePoint {
	merged := make([]api.CurvePoint, MaxCurveMonths+1)
	for m := range merged {
		merged[m].Months = m
	}

	for _, p := range curveA {
		if p.Months >= 0 && p.Months <= MaxCurveMonths {
			merged[p.Months].CurveA = p.Count
		}
	}
	for _, p := range curveB {
		if p.Months >= 0 && p.Months <= MaxCurveMonths {
			merged[p.Months].CurveB = p.Count
		}
	}

	return merged
}
