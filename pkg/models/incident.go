package models

import "time"

// Incident is one validated row of the security-incidents table.
// Rows are immutable once loaded; pipeline stages derive new views
// from them and never write back.
type Incident struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Country         string    `json:"country"`
	Region          string    `json:"region"`
	MeansOfAttack   string    `json:"means_of_attack,omitempty"`
	AttackContext   string    `json:"attack_context,omitempty"`
	ActorType       string    `json:"actor_type"`
	TotalCasualties int       `json:"total_casualties"`
	TotalAffected   int       `json:"total_affected"`

	// Year is derived from Date at load time.
	Year int `json:"year"`
}

// HasTaxonomy reports whether the row carries both categorical fields
// needed by the attack-taxonomy aggregate.
func (in *Incident) HasTaxonomy() bool {
	return in.MeansOfAttack != "" && in.AttackContext != ""
}

// Month returns the row's calendar month normalized to the first of
// the month in UTC, the key used by the monthly trend.
func (in *Incident) Month() time.Time {
	return time.Date(in.Date.Year(), in.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
