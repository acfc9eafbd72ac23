package views

import "riskmap/pkg/models"

// TopCountry returns the country with the highest incident count from
// the geographic aggregate. Ties are broken alphabetically so the
// insight is deterministic regardless of aggregate order. The second
// return is false when the aggregate is empty; callers suppress the
// insight instead of failing.
func TopCountry(counts []models.CountryCount) (string, bool) {
	best := ""
	bestCount := 0
	found := false
	for _, c := range counts {
		switch {
		case !found, c.Count > bestCount:
			best, bestCount, found = c.Country, c.Count, true
		case c.Count == bestCount && c.Country < best:
			best = c.Country
		}
	}
	return best, found
}
