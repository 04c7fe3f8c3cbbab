package adapters

import (
	"fmt"
	"testing"

	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopAccountTypes_KeepsFirstTenInInputOrder(t *testing.T) {
	// Given fifteen entries deliberately not sorted by tradelines
	var items []domain.AcctTypeCount
	for i := 0; i < 15; i++ {
		items = append(items, domain.AcctTypeCount{
			AcctType:   fmt.Sprintf("T%02d", i),
			Tradelines: int64((i * 7) % 11),
		})
	}

	// When
	top := TopAccountTypes(items)

	// Then
	require.Len(t, top, 10)
	for i, item := range top {
		assert.Equal(t, fmt.Sprintf("T%02d", i), item.AcctType)
	}
}

func TestTopAccountTypes_ShortInputUnchanged(t *testing.T) {
	items := []domain.AcctTypeCount{{AcctType: "05", Tradelines: 3}, {AcctType: "10", Tradelines: 9}}

	assert.Equal(t, items, TopAccountTypes(items))
}

func TestMapPopulationDocumentToView(t *testing.T) {
	doc := domain.PopulationDocument{
		BucketDistribution: []domain.BucketCount{
			{Bucket: "Bucket A", Customers: 6000, Pct: 60},
			{Bucket: "Bucket B", Customers: 2500, Pct: 25},
			{Bucket: "Bucket C", Customers: 1000, Pct: 10},
			{Bucket: "Bucket D", Customers: 500, Pct: 5},
		},
		LenderTypeDistribution: []domain.LenderTypeCount{
			{LenderType: "NBF", Customers: 1}, {LenderType: "PVT", Customers: 2},
			{LenderType: "PUB", Customers: 3}, {LenderType: "Mixed", Customers: 4},
			{LenderType: "Other", Customers: 5},
		},
		ProductMix:           []domain.ProductMixCount{{Mix: "Vehicle only", Customers: 9}},
		AcctTypeDistribution: []domain.AcctTypeCount{},
	}

	view := MapPopulationDocumentToView(doc)

	assert.Equal(t, int64(10000), view.BucketTotal)
	assert.Equal(t, "10,000", view.BucketTotalLabel)
	require.Len(t, view.Buckets, 4)
	require.NotNil(t, view.Buckets[1].Percentage)
	assert.Equal(t, 25.0, *view.Buckets[1].Percentage)

	require.Len(t, view.LenderTypes, 5)
	assert.Equal(t, lenderPalette[0], view.LenderTypes[0].Colour)
	assert.Equal(t, lenderPalette[0], view.LenderTypes[4].Colour, "palette wraps around")
	assert.Equal(t, productMixPalette[0], view.ProductMix[0].Colour)
	assert.Empty(t, view.AccountTypes)
}
