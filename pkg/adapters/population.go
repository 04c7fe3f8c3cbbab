package adapters

import (
	"github.com/de-tools/bureau-dashboard/pkg/format"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

// MaxAccountTypes caps the account-type chart. The producer sorts the
// distribution by tradeline count, so the first entries are the largest.
const MaxAccountTypes = 10

func MapPopulationDocumentToView(doc domain.PopulationDocument) api.PopulationView {
	buckets := make([]api.CategoryPoint, 0, len(doc.BucketDistribution))
	for _, b := range doc.BucketDistribution {
		pct := b.Pct
		buckets = append(buckets, api.CategoryPoint{
			Category:   b.Bucket,
			Count:      b.Customers,
			Percentage: &pct,
			Colour:     fillBuckets,
		})
	}
	bucketTotal := total(buckets)

	return api.PopulationView{
		Buckets:          buckets,
		BucketTotal:      bucketTotal,
		BucketTotalLabel: format.FormatCount(bucketTotal),
		LenderTypes: mapCategories(doc.LenderTypeDistribution, func(l domain.LenderTypeCount) (string, int64) {
			return l.LenderType, l.Customers
		}, cycle(lenderPalette)),
		ProductMix: mapCategories(doc.ProductMix, func(m domain.ProductMixCount) (string, int64) {
			return m.Mix, m.Customers
		}, cycle(productMixPalette)),
		AccountTypes: mapCategories(TopAccountTypes(doc.AcctTypeDistribution), func(a domain.AcctTypeCount) (string, int64) {
			return a.AcctType, a.Tradelines
		}, solid(fillAccountTypes)),
	}
}

// TopAccountTypes returns the first MaxAccountTypes entries in input order.
// It does not sort: an unsorted input yields an unsorted, possibly wrong top list.
func TopAccountTypes(items []domain.AcctTypeCount) []domain.AcctTypeCount {
	if len(items) <= MaxAccountTypes {
		return items
	}
	return items[:MaxAccountTypes]
}
