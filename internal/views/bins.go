package views

import "riskmap/pkg/models"

// bucketLadder is the fixed ascending boundary ladder the casualty
// bins are cut from. It is truncated to the observed maximum on every
// run, so the produced intervals depend only on the current filtered
// subset.
var bucketLadder = []int{0, 1, 5, 10, 20, 50, 100, 200, 500, 1000}

// bucketLabels are the display labels for consecutive ladder pairs,
// truncated alongside the ladder.
var bucketLabels = []string{
	"1", "2–5", "6–10", "11–20", "21–50",
	"51–100", "101–200", "201–500", "501–1000", "1000+",
}

// Interval is one casualty bucket covering (Low, High]. The first
// interval additionally includes its low bound.
type Interval struct {
	Low   int
	High  int
	Label string
}

// Boundaries computes the casualty bucket intervals for the given
// values. Values <= 0 are ignored. The ladder is truncated to
// boundaries <= max(values); if the largest retained boundary is
// still below the maximum, max+1 is appended as a closing boundary so
// every value is covered. An empty (or all-zero) input produces no
// intervals.
func Boundaries(values []int) []Interval {
	maxCas := 0
	for _, v := range values {
		if v > maxCas {
			maxCas = v
		}
	}
	if maxCas <= 0 {
		return nil
	}

	bins := make([]int, 0, len(bucketLadder)+1)
	for _, b := range bucketLadder {
		if b <= maxCas {
			bins = append(bins, b)
		}
	}
	if bins[len(bins)-1] < maxCas {
		bins = append(bins, maxCas+1)
	}

	intervals := make([]Interval, 0, len(bins)-1)
	for i := 0; i+1 < len(bins); i++ {
		intervals = append(intervals, Interval{
			Low:   bins[i],
			High:  bins[i+1],
			Label: bucketLabels[i],
		})
	}
	return intervals
}

// Contains reports whether v falls inside the interval. first marks
// the inclusive-lowest interval of a ladder.
func (iv Interval) Contains(v int, first bool) bool {
	if first && v == iv.Low {
		return true
	}
	return v > iv.Low && v <= iv.High
}

// bucketLabel assigns v to one of the intervals and returns its
// label. The second return is false when v lies outside every
// interval.
func bucketLabel(intervals []Interval, v int) (string, bool) {
	for i, iv := range intervals {
		if iv.Contains(v, i == 0) {
			return iv.Label, true
		}
	}
	return "", false
}

// casualtyValues extracts the positive casualty counts from rows.
// Rows with zero casualties take no part in the distribution.
func casualtyValues(rows []models.Incident) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		if r.TotalCasualties > 0 {
			out = append(out, r.TotalCasualties)
		}
	}
	return out
}
