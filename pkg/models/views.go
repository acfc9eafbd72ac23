package models

import "time"

// BucketCount is one (casualty range, region) group of the casualty
// distribution.
type BucketCount struct {
	CasualtyRange string `json:"casualty_range"`
	Region        string `json:"region"`
	Count         int    `json:"count"`
}

// TaxonomyCount is one (means of attack, attack context) group.
type TaxonomyCount struct {
	MeansOfAttack string `json:"means_of_attack"`
	AttackContext string `json:"attack_context"`
	Count         int    `json:"count"`
}

// CountryCount is one per-country incident count.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// MonthlyPoint is one point of the monthly trend. Month is normalized
// to the first of the month in UTC.
type MonthlyPoint struct {
	Month         time.Time `json:"month"`
	IncidentCount int       `json:"incident_count"`
	CasualtySum   int       `json:"casualty_sum"`
}

// YearRegionCount is one (year, region) incident count. Combinations
// with no incidents are omitted.
type YearRegionCount struct {
	Year   int    `json:"year"`
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// ActorProfile is the per-actor-type volume/impact pair.
type ActorProfile struct {
	ActorType     string `json:"actor_type"`
	IncidentCount int    `json:"incident_count"`
	AffectedSum   int    `json:"affected_sum"`
}

// ViewSet holds every shaped dataset derived from one pipeline run.
// It is the complete contract consumed by a rendering front end.
type ViewSet struct {
	Region               string            `json:"region,omitempty"`
	CasualtyDistribution []BucketCount     `json:"casualty_distribution"`
	AttackTaxonomy       []TaxonomyCount   `json:"attack_taxonomy"`
	GeographicCount      []CountryCount    `json:"geographic_count"`
	MonthlyTrend         []MonthlyPoint    `json:"monthly_trend"`
	YearlyByRegion       []YearRegionCount `json:"yearly_by_region"`
	ActorProfile         []ActorProfile    `json:"actor_profile"`

	// TopCountry is empty when the filtered table has no rows.
	TopCountry string `json:"top_country_insight,omitempty"`
}
