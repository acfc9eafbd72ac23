package views

import (
	"reflect"
	"testing"
	"time"

	"riskmap/pkg/models"
)

func TestFilterRegionEmptyIsIdentity(t *testing.T) {
	date := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 1),
		mkIncident("2", "Chad", "B", "State", date, 2, 2),
	}

	got := FilterRegion(rows, "")
	if len(got) != len(rows) {
		t.Fatalf("expected identity, got %d rows", len(got))
	}
}

func TestFilterRegionSelectsOnlyMatches(t *testing.T) {
	date := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 1),
		mkIncident("2", "Chad", "B", "State", date, 2, 2),
		mkIncident("3", "Niger", "A", "State", date, 0, 0),
	}

	got := FilterRegion(rows, "A")
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, r := range got {
		if r.Region != "A" {
			t.Fatalf("unexpected row in filter result: %+v", r)
		}
	}
}

func TestFilterRegionIsIdempotent(t *testing.T) {
	date := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 1),
		mkIncident("2", "Chad", "B", "State", date, 2, 2),
	}

	once := FilterRegion(rows, "A")
	twice := FilterRegion(once, "A")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterRegionUnknownValueYieldsEmpty(t *testing.T) {
	date := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 1),
	}

	got := FilterRegion(rows, "Atlantis")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterRegionDoesNotMutateInput(t *testing.T) {
	date := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Incident{
		mkIncident("1", "Mali", "A", "NSAG", date, 1, 1),
		mkIncident("2", "Chad", "B", "State", date, 2, 2),
	}
	before := make([]models.Incident, len(rows))
	copy(before, rows)

	FilterRegion(rows, "B")
	if !reflect.DeepEqual(rows, before) {
		t.Fatalf("input rows were mutated")
	}
}
