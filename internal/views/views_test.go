package views

import (
	"reflect"
	"testing"
	"time"

	"riskmap/pkg/models"
)

func mkIncident(id, country, region, actor string, date time.Time, casualties, affected int) models.Incident {
	return models.Incident{
		ID:              id,
		Date:            date,
		Country:         country,
		Region:          region,
		ActorType:       actor,
		TotalCasualties: casualties,
		TotalAffected:   affected,
		Year:            date.Year(),
	}
}

func TestComputeSingleRow(t *testing.T) {
	date := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Italy", "X", "State", date, 3, 5),
	}

	set := Compute(rows, "")

	if len(set.GeographicCount) != 1 || set.GeographicCount[0].Country != "Italy" || set.GeographicCount[0].Count != 1 {
		t.Fatalf("unexpected geographic count: %+v", set.GeographicCount)
	}
	if set.TopCountry != "Italy" {
		t.Fatalf("expected top country Italy, got %q", set.TopCountry)
	}
	if len(set.CasualtyDistribution) != 1 {
		t.Fatalf("expected 1 distribution group, got %d", len(set.CasualtyDistribution))
	}
	if set.CasualtyDistribution[0].CasualtyRange != "2–5" {
		t.Fatalf("expected bucket 2–5, got %q", set.CasualtyDistribution[0].CasualtyRange)
	}
	if set.CasualtyDistribution[0].Region != "X" || set.CasualtyDistribution[0].Count != 1 {
		t.Fatalf("unexpected distribution row: %+v", set.CasualtyDistribution[0])
	}
}

func TestComputeAllZeroCasualties(t *testing.T) {
	date := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]models.Incident, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, mkIncident("r", "France", "A", "Unknown", date, 0, 0))
	}

	set := Compute(rows, "")

	if len(set.CasualtyDistribution) != 0 {
		t.Fatalf("expected empty distribution, got %+v", set.CasualtyDistribution)
	}
	if len(set.GeographicCount) != 1 || set.GeographicCount[0].Count != 10 {
		t.Fatalf("expected all 10 rows in geographic count, got %+v", set.GeographicCount)
	}
}

func TestComputeRegionFilterDoesNotLeak(t *testing.T) {
	date := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 2),
		mkIncident("2", "Mali", "A", "NSAG", date, 0, 0),
		mkIncident("3", "Syria", "B", "State", date, 7, 7),
		mkIncident("4", "Yemen", "B", "State", date, 0, 3),
	}

	set := Compute(rows, "B")

	total := 0
	for _, c := range set.GeographicCount {
		if c.Country == "Mali" {
			t.Fatalf("region A row leaked into region B views: %+v", c)
		}
		total += c.Count
	}
	if total != 2 {
		t.Fatalf("expected 2 region-B rows, got %d", total)
	}
	for _, y := range set.YearlyByRegion {
		if y.Region != "B" {
			t.Fatalf("unexpected region in yearly view: %+v", y)
		}
	}
}

func TestComputeUnknownRegionDegrades(t *testing.T) {
	date := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 2),
	}

	set := Compute(rows, "Nowhere")

	if len(set.GeographicCount) != 0 || len(set.MonthlyTrend) != 0 || len(set.ActorProfile) != 0 {
		t.Fatalf("expected empty views for unmatched region, got %+v", set)
	}
	if set.TopCountry != "" {
		t.Fatalf("expected insight suppressed, got %q", set.TopCountry)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	date := time.Date(2020, 5, 9, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Sudan", "A", "NSAG", date, 12, 20),
		mkIncident("2", "Sudan", "A", "State", date.AddDate(0, 1, 3), 0, 4),
		mkIncident("3", "Chad", "B", "Unknown", date.AddDate(1, 0, 0), 1, 1),
	}
	before := make([]models.Incident, len(rows))
	copy(before, rows)

	first := Compute(rows, "")
	second := Compute(rows, "")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if !reflect.DeepEqual(rows, before) {
		t.Fatalf("input rows were mutated")
	}
}

func TestComputeInsightTieBreakIsDeterministic(t *testing.T) {
	date := time.Date(2023, 2, 2, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Zambia", "A", "State", date, 1, 1),
		mkIncident("2", "Angola", "A", "State", date, 2, 2),
	}

	for i := 0; i < 20; i++ {
		set := Compute(rows, "")
		if set.TopCountry != "Angola" {
			t.Fatalf("run %d: expected alphabetical tie-break Angola, got %q", i, set.TopCountry)
		}
	}
}
