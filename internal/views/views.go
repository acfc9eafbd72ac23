// Package views is the incident analytics pipeline: region filtering,
// casualty binning and the group-by aggregations behind each display.
// Every stage is a pure function of an immutable row slice, so the
// whole computation is idempotent and safe to rerun per selection.
package views

import "riskmap/pkg/models"

// Compute runs the full pipeline for one region selection and returns
// every shaped dataset. An empty region means no filter. The input
// rows are treated as a read-only snapshot.
func Compute(rows []models.Incident, region string) *models.ViewSet {
	filtered := FilterRegion(rows, region)

	set := &models.ViewSet{
		Region:               region,
		CasualtyDistribution: CasualtyDistribution(filtered),
		AttackTaxonomy:       AttackTaxonomy(filtered),
		GeographicCount:      GeographicCount(filtered),
		MonthlyTrend:         MonthlyTrend(filtered),
		YearlyByRegion:       YearlyByRegion(filtered),
		ActorProfile:         ActorProfiles(filtered),
	}
	if top, ok := TopCountry(set.GeographicCount); ok {
		set.TopCountry = top
	}
	return set
}
