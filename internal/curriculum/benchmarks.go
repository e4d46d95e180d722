package curriculum

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed benchmarks.json
var benchmarksJSON []byte

//go:embed benchmark_schema.json
var benchmarkSchemaJSON []byte

// Country identifies a supported curriculum country.
type Country string

const (
	CountryNZ Country = "NZ"
	CountryAU Country = "AU"
	CountryUK Country = "UK"
	CountryUS Country = "US"
	CountryCA Country = "CA"
)

// AllCountries returns the supported countries in display order.
func AllCountries() []Country {
	return []Country{CountryNZ, CountryAU, CountryUK, CountryUS, CountryCA}
}

// Label returns the display name for a country.
func (c Country) Label() string {
	switch c {
	case CountryNZ:
		return "New Zealand"
	case CountryAU:
		return "Australia"
	case CountryUK:
		return "United Kingdom"
	case CountryUS:
		return "United States"
	case CountryCA:
		return "Canada"
	default:
		return string(c)
	}
}

// SystemType distinguishes "year" labelling (NZ, AU, UK) from
// "grade" labelling (US, CA). It affects labels only.
type SystemType string

const (
	SystemYear  SystemType = "year"
	SystemGrade SystemType = "grade"
)

// YearBenchmark assigns core and extension skills to one year/grade level.
// AgeMin is inclusive, AgeMax exclusive.
type YearBenchmark struct {
	Key             string   `json:"key"`
	Label           string   `json:"label"`
	AgeMin          int      `json:"age_min"`
	AgeMax          int      `json:"age_max"`
	CoreSkills      []string `json:"core"`
	ExtensionSkills []string `json:"extension"`
}

// BenchmarkTable holds the ordered year benchmarks for one country.
type BenchmarkTable struct {
	Country    Country
	SystemType SystemType
	Years      []YearBenchmark
}

// Year returns the benchmark entry for a year/grade key. Keys match
// case-insensitively so CLI input like "y3" resolves to "Y3".
func (t *BenchmarkTable) Year(key string) (YearBenchmark, bool) {
	for _, y := range t.Years {
		if strings.EqualFold(y.Key, key) {
			return y, true
		}
	}
	return YearBenchmark{}, false
}

// YearForAge returns the benchmark entry whose age band contains age.
func (t *BenchmarkTable) YearForAge(age int) (YearBenchmark, bool) {
	for _, y := range t.Years {
		if age >= y.AgeMin && age < y.AgeMax {
			return y, true
		}
	}
	return YearBenchmark{}, false
}

// rawBenchmarkTable matches the embedded JSON layout.
type rawBenchmarkTable struct {
	System SystemType      `json:"system"`
	Years  []YearBenchmark `json:"years"`
}

// loadBenchmarks parses and schema-validates the embedded benchmark data.
// Cross-reference checks against the skill catalog happen later, in New,
// once both data sets are in hand.
func loadBenchmarks() (map[Country]*BenchmarkTable, error) {
	var parsed any
	if err := json.Unmarshal(benchmarksJSON, &parsed); err != nil {
		return nil, fmt.Errorf("parse benchmarks: %w", err)
	}

	compiled, err := compileBenchmarkSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("benchmark data failed schema validation: %w", err)
	}

	var raw map[Country]rawBenchmarkTable
	if err := json.Unmarshal(benchmarksJSON, &raw); err != nil {
		return nil, fmt.Errorf("decode benchmarks: %w", err)
	}

	tables := make(map[Country]*BenchmarkTable, len(raw))
	for country, rt := range raw {
		tables[country] = &BenchmarkTable{
			Country:    country,
			SystemType: rt.System,
			Years:      rt.Years,
		}
	}
	return tables, nil
}

// compileBenchmarkSchema compiles the embedded JSON schema.
func compileBenchmarkSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(benchmarkSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse benchmark schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://benchmarks.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile benchmark schema: %w", err)
	}
	return compiled, nil
}

// validateBenchmarks checks cross-references and structural invariants:
// every referenced skill exists, core and extension sets are disjoint per
// year, and age bands are monotonic and non-overlapping per country.
func validateBenchmarks(tables map[Country]*BenchmarkTable, byID map[string]*Skill) error {
	var errs []string

	countries := make([]Country, 0, len(tables))
	for c := range tables {
		countries = append(countries, c)
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i] < countries[j] })

	for _, country := range countries {
		t := tables[country]
		prevMax := 0
		seen := make(map[string]bool, len(t.Years))
		for _, y := range t.Years {
			prefix := fmt.Sprintf("%s %s", country, y.Key)

			if seen[y.Key] {
				errs = append(errs, fmt.Sprintf("%s: duplicate year key", prefix))
			}
			seen[y.Key] = true

			if y.AgeMax <= y.AgeMin {
				errs = append(errs, fmt.Sprintf("%s: age band %d-%d is empty", prefix, y.AgeMin, y.AgeMax))
			}
			if y.AgeMin < prevMax {
				errs = append(errs, fmt.Sprintf("%s: age band %d-%d overlaps the previous year", prefix, y.AgeMin, y.AgeMax))
			}
			prevMax = y.AgeMax

			core := make(map[string]bool, len(y.CoreSkills))
			for _, id := range y.CoreSkills {
				if _, ok := byID[id]; !ok {
					errs = append(errs, fmt.Sprintf("%s: core references unknown skill %q", prefix, id))
				}
				core[id] = true
			}
			for _, id := range y.ExtensionSkills {
				if _, ok := byID[id]; !ok {
					errs = append(errs, fmt.Sprintf("%s: extension references unknown skill %q", prefix, id))
				}
				if core[id] {
					errs = append(errs, fmt.Sprintf("%s: skill %q is both core and extension", prefix, id))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("benchmark validation failed:\n  %s", joinLines(errs))
	}
	return nil
}
