package curriculum

import (
	"fmt"
	"slices"
	"strings"
)

// Role is a skill's relationship to a benchmark level.
type Role int

const (
	RoleNone      Role = iota // not referenced by the level
	RoleCore                  // expected to be mastered at the level
	RoleExtension             // stretch beyond the level's expectation
)

// Catalog is the immutable curriculum reference data: skill definitions,
// precomputed fact sets, and per-country benchmark tables. It is safe for
// concurrent use.
type Catalog struct {
	skills     []Skill
	byID       map[string]*Skill
	facts      map[string]map[string]bool
	benchmarks map[Country]*BenchmarkTable
}

// defaultCatalog is built once from the seed and embedded benchmark data.
var defaultCatalog *Catalog

func init() {
	c, err := New(seedSkills, nil)
	if err != nil {
		panic(fmt.Sprintf("curriculum: invalid built-in catalog: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in validated catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds and validates a catalog from a skill set and benchmark tables.
// Passing nil benchmarks loads the embedded country tables. Tests supply
// both to exercise custom curricula.
func New(skills []Skill, benchmarks map[Country]*BenchmarkTable) (*Catalog, error) {
	if benchmarks == nil {
		loaded, err := loadBenchmarks()
		if err != nil {
			return nil, err
		}
		benchmarks = loaded
	}

	c := &Catalog{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		facts:      make(map[string]map[string]bool, len(skills)),
		benchmarks: benchmarks,
	}
	for i := range c.skills {
		c.byID[c.skills[i].ID] = &c.skills[i]
	}

	if err := validateSkills(c.skills); err != nil {
		return nil, err
	}
	if err := validateBenchmarks(benchmarks, c.byID); err != nil {
		return nil, err
	}

	for _, s := range c.skills {
		set := make(map[string]bool)
		for _, f := range s.Facts() {
			set[f] = true
		}
		c.facts[s.ID] = set
	}
	return c, nil
}

// Skill returns a skill definition by ID.
func (c *Catalog) Skill(id string) (Skill, error) {
	s, ok := c.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// Skills returns all skills in catalog order.
func (c *Catalog) Skills() []Skill {
	return slices.Clone(c.skills)
}

// SkillIDs returns all skill IDs in catalog order.
func (c *Catalog) SkillIDs() []string {
	ids := make([]string, len(c.skills))
	for i, s := range c.skills {
		ids[i] = s.ID
	}
	return ids
}

// FactSet returns the precomputed fact-key set for a skill, or nil if the
// skill is unknown. Callers must not mutate the returned map.
func (c *Catalog) FactSet(id string) map[string]bool {
	return c.facts[id]
}

// Benchmark returns the benchmark table for a country.
func (c *Catalog) Benchmark(country Country) (*BenchmarkTable, bool) {
	t, ok := c.benchmarks[country]
	return t, ok
}

// Level resolves the core and extension skill ID lists for a country and
// year/grade key. A recognized country with an unrecognized key falls back
// to treating every catalog skill as core, so a stale or corrupted
// yearGrade value degrades instead of erroring.
func (c *Catalog) Level(country Country, yearKey string) (core, extension []string, year YearBenchmark, ok bool) {
	t, found := c.benchmarks[country]
	if !found {
		return c.SkillIDs(), nil, YearBenchmark{}, false
	}
	y, found := t.Year(yearKey)
	if !found {
		return c.SkillIDs(), nil, YearBenchmark{}, false
	}
	return slices.Clone(y.CoreSkills), slices.Clone(y.ExtensionSkills), y, true
}

// validateSkills performs structural checks on the skill set.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		prefix := fmt.Sprintf("skill %q", s.ID)

		if s.ID == "" {
			errs = append(errs, "skill with empty ID")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if s.Label == "" {
			errs = append(errs, prefix+": empty label")
		}
		if !s.Operation.Valid() {
			errs = append(errs, fmt.Sprintf("%s: invalid operation %q", prefix, s.Operation))
		}
		switch s.Domain {
		case DomainNumberFacts, DomainOperations, DomainNumberProperties:
		default:
			errs = append(errs, fmt.Sprintf("%s: invalid domain %q", prefix, s.Domain))
		}
		if len(s.Tables) > 0 && s.Operation != OpMultiplication && s.Operation != OpDivision {
			errs = append(errs, fmt.Sprintf("%s: tables set on %s skill", prefix, s.Operation))
		}
		for _, n := range s.Tables {
			if n < 1 || n > 12 {
				errs = append(errs, fmt.Sprintf("%s: table %d out of range 1-12", prefix, n))
			}
		}
		if s.ExpectedFactCount() == 0 {
			errs = append(errs, prefix+": no facts")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill catalog validation failed:\n  %s", joinLines(errs))
	}
	return nil
}

func joinLines(errs []string) string {
	return strings.Join(errs, "\n  ")
}
