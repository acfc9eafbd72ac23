package views

import "riskmap/pkg/models"

// FilterRegion returns the rows whose Region equals region. An empty
// region means no filter and returns the input slice unchanged; it is
// not treated as a match against "Unknown". The input is never
// mutated, and a region with no matching rows yields an empty result
// rather than an error.
func FilterRegion(rows []models.Incident, region string) []models.Incident {
	if region == "" {
		return rows
	}
	out := make([]models.Incident, 0, len(rows))
	for _, r := range rows {
		if r.Region == region {
			out = append(out, r)
		}
	}
	return out
}
