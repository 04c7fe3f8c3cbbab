package adapters

import (
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

func MapRiskDocumentToView(doc domain.RiskDocument) api.RiskView {
	tier := func(t domain.TierCount) (string, int64) { return t.Tier, t.Customers }

	return api.RiskView{
		RiskTiers:     withShares(mapCategories(doc.RiskTierDistribution, tier, cycle(riskTierPalette))),
		Affordability: withShares(mapCategories(doc.AffordabilityDistribution, tier, cycle(affordabilityPalette))),
	}
}
