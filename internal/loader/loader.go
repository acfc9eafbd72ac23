// Package loader reads the cleaned security-incidents CSV into an
// immutable in-memory dataset. All normalization happens here: date
// parsing, the "Unknown" region substitution and the derived year.
// The pipeline itself never sees a malformed row.
package loader

import (
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"riskmap/internal/logger"
	"riskmap/pkg/models"
)

// Column headers of the cleaned incidents export.
const (
	colID            = "Incident ID"
	colDate          = "date"
	colCountry       = "Country"
	colRegion        = "Region"
	colMeansOfAttack = "Means of attack"
	colAttackContext = "Attack context"
	colActorType     = "Actor type"
	colCasualties    = "total_casualties"
	colAffected      = "Total affected"
)

// UnknownRegion is substituted for rows with no region value.
const UnknownRegion = "Unknown"

// Dataset is the read-only snapshot one process serves from. It is
// built once at startup and passed by reference into every pipeline
// invocation; nothing mutates it afterwards.
type Dataset struct {
	Rows        []models.Incident
	Regions     []string // sorted unique region values, selector source
	Fingerprint string   // content hash, used for cache keying
	LoadedAt    time.Time
}

// Load reads and validates the incidents CSV at path. Unparseable
// dates or counts are load-time failures: the pipeline's contract
// assumes required fields are present and well-formed, so a bad row
// fails the whole load with its line number rather than leaking
// through.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open incidents file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colID, colDate, colCountry, colActorType, colCasualties, colAffected} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	h := fnv.New64a()
	var rows []models.Incident
	regions := make(map[string]struct{})

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		for _, v := range rec {
			h.Write([]byte(v))
			h.Write([]byte{0})
		}

		date, ok := parseDate(field(colDate))
		if !ok {
			return nil, fmt.Errorf("line %d: unparseable date %q", line, field(colDate))
		}
		casualties, err := parseCount(field(colCasualties))
		if err != nil {
			return nil, fmt.Errorf("line %d: total_casualties: %w", line, err)
		}
		affected, err := parseCount(field(colAffected))
		if err != nil {
			return nil, fmt.Errorf("line %d: total affected: %w", line, err)
		}

		region := field(colRegion)
		if region == "" {
			region = UnknownRegion
		}
		regions[region] = struct{}{}

		rows = append(rows, models.Incident{
			ID:              field(colID),
			Date:            date,
			Country:         field(colCountry),
			Region:          region,
			MeansOfAttack:   field(colMeansOfAttack),
			AttackContext:   field(colAttackContext),
			ActorType:       field(colActorType),
			TotalCasualties: casualties,
			TotalAffected:   affected,
			Year:            date.Year(),
		})
	}

	regionList := make([]string, 0, len(regions))
	for reg := range regions {
		regionList = append(regionList, reg)
	}
	sort.Strings(regionList)

	ds := &Dataset{
		Rows:        rows,
		Regions:     regionList,
		Fingerprint: fmt.Sprintf("%016x", h.Sum64()),
		LoadedAt:    time.Now().UTC(),
	}
	logger.Infof("Loaded %d incidents across %d regions from %s", len(rows), len(regionList), path)
	return ds, nil
}

// parseDate accepts the layouts the incident exports use.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
		"01/02/2006",
	} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseCount parses a non-negative integer count. Empty cells
// normalize to zero; anything else must be a whole number. Exported
// floats like "3.0" are accepted since the source table passes
// through a float dtype.
func parseCount(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative count %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("invalid count %q", value)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative count %v", f)
	}
	return int(f), nil
}
