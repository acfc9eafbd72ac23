package views

import (
	"sort"
	"time"

	"riskmap/pkg/models"
)

// Each aggregator is a pure function of the filtered table. An empty
// input always yields an empty result, never an error, and no
// aggregator mutates its input. Output order is deterministic (sorted
// by key) so repeated runs over the same table compare equal.

// CasualtyDistribution groups rows with positive casualties by
// (casualty range, region) and counts rows per group. Bucket
// intervals are recomputed from the current rows on every call.
func CasualtyDistribution(rows []models.Incident) []models.BucketCount {
	intervals := Boundaries(casualtyValues(rows))
	if len(intervals) == 0 {
		return nil
	}

	rank := make(map[string]int, len(intervals))
	for i, iv := range intervals {
		rank[iv.Label] = i
	}

	type key struct {
		label  string
		region string
	}
	counts := make(map[key]int)
	for _, r := range rows {
		if r.TotalCasualties <= 0 {
			continue
		}
		label, ok := bucketLabel(intervals, r.TotalCasualties)
		if !ok {
			continue
		}
		counts[key{label, r.Region}]++
	}

	out := make([]models.BucketCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.BucketCount{CasualtyRange: k.label, Region: k.region, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CasualtyRange != out[j].CasualtyRange {
			return rank[out[i].CasualtyRange] < rank[out[j].CasualtyRange]
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// AttackTaxonomy groups rows by (means of attack, attack context),
// counting rows per pair. Rows missing either field are silently
// excluded.
func AttackTaxonomy(rows []models.Incident) []models.TaxonomyCount {
	type key struct {
		means   string
		context string
	}
	counts := make(map[key]int)
	for i := range rows {
		if !rows[i].HasTaxonomy() {
			continue
		}
		counts[key{rows[i].MeansOfAttack, rows[i].AttackContext}]++
	}

	out := make([]models.TaxonomyCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.TaxonomyCount{MeansOfAttack: k.means, AttackContext: k.context, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeansOfAttack != out[j].MeansOfAttack {
			return out[i].MeansOfAttack < out[j].MeansOfAttack
		}
		return out[i].AttackContext < out[j].AttackContext
	})
	return out
}

// GeographicCount counts incidents per country across all rows.
func GeographicCount(rows []models.Incident) []models.CountryCount {
	counts := make(map[string]int)
	for i := range rows {
		counts[rows[i].Country]++
	}

	out := make([]models.CountryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, models.CountryCount{Country: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// MonthlyTrend sums casualties and counts incidents per calendar
// month, keyed by the first of the month, sorted time-ascending.
func MonthlyTrend(rows []models.Incident) []models.MonthlyPoint {
	points := make(map[time.Time]*models.MonthlyPoint)
	for i := range rows {
		m := rows[i].Month()
		p := points[m]
		if p == nil {
			p = &models.MonthlyPoint{Month: m}
			points[m] = p
		}
		p.IncidentCount++
		p.CasualtySum += rows[i].TotalCasualties
	}

	out := make([]models.MonthlyPoint, 0, len(points))
	for _, p := range points {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// YearlyByRegion counts incidents per (year, region). Combinations
// with zero incidents are omitted; the omission is uniform, so a
// region absent from one year's slice had no incidents that year.
func YearlyByRegion(rows []models.Incident) []models.YearRegionCount {
	type key struct {
		year   int
		region string
	}
	counts := make(map[key]int)
	for i := range rows {
		counts[key{rows[i].Year, rows[i].Region}]++
	}

	out := make([]models.YearRegionCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.YearRegionCount{Year: k.year, Region: k.region, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// ActorProfiles sums people affected and counts incidents per actor
// type.
func ActorProfiles(rows []models.Incident) []models.ActorProfile {
	profiles := make(map[string]*models.ActorProfile)
	for i := range rows {
		p := profiles[rows[i].ActorType]
		if p == nil {
			p = &models.ActorProfile{ActorType: rows[i].ActorType}
			profiles[rows[i].ActorType] = p
		}
		p.IncidentCount++
		p.AffectedSum += rows[i].TotalAffected
	}

	out := make([]models.ActorProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActorType < out[j].ActorType })
	return out
}
