package adapters

import (
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/models/domain"
)

func MapOutreachDocumentToView(doc domain.OutreachDocument) api.OutreachView {
	cohorts := withShares(mapCategories(doc.OutreachCohortDistribution, func(c domain.CohortCount) (string, int64) {
		return c.Cohort, c.Customers
	}, cycle(cohortPalette)))

	return api.OutreachView{
		Cohorts: cohorts,
		Total:   total(cohorts),
	}
}
