package curriculum

import (
	"strings"
	"testing"
)

func TestDefault_SkillLookup(t *testing.T) {
	s, err := Default().Skill("NB10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Label != "Number Bonds to 10" {
		t.Errorf("got label %q, want %q", s.Label, "Number Bonds to 10")
	}
	if s.Domain != DomainNumberFacts {
		t.Errorf("got domain %q, want %q", s.Domain, DomainNumberFacts)
	}
	if s.Subdomain != SubNumberBonds {
		t.Errorf("got subdomain %q, want %q", s.Subdomain, SubNumberBonds)
	}
}

func TestDefault_SkillNotFound(t *testing.T) {
	_, err := Default().Skill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestExpectedFactCount(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"NB5", 3},
		{"NB10", 6},
		{"NB20", 11},
		{"ADD_10", 36},
		{"ADD_20", 121},
		{"SUB_10", 66},
		{"SUB_20", 231},
		{"DBL_10", 10},
		{"HLV_20", 10},
		{"SQ_1_12", 12},
		{"TT_CORE", 36},
		{"TT_MID", 36},
		{"TT_HARD", 36},
		{"TT_11_12", 24},
		{"DIV_CORE", 36},
		{"DIV_MID", 36},
	}
	for _, tt := range tests {
		s, err := Default().Skill(tt.id)
		if err != nil {
			t.Fatalf("%s: %v", tt.id, err)
		}
		if got := s.ExpectedFactCount(); got != tt.want {
			t.Errorf("%s: got %d facts, want %d", tt.id, got, tt.want)
		}
	}
}

func TestKey_AdditionCommutative(t *testing.T) {
	if got := Key(OpAddition, 7, 3); got != "3+7" {
		t.Errorf("Key(+, 7, 3) = %q, want %q", got, "3+7")
	}
	if Key(OpAddition, 3, 7) != Key(OpAddition, 7, 3) {
		t.Error("addition keys should be order-independent")
	}
	// Subtraction and division are not commutative.
	if got := Key(OpSubtraction, 9, 4); got != "9-4" {
		t.Errorf("Key(-, 9, 4) = %q, want %q", got, "9-4")
	}
	if got := Key(OpDivision, 20, 5); got != "20÷5" {
		t.Errorf("Key(÷, 20, 5) = %q, want %q", got, "20÷5")
	}
}

func TestFacts_BondsToTen(t *testing.T) {
	s, _ := Default().Skill("NB10")
	set := make(map[string]bool)
	for _, f := range s.Facts() {
		set[f] = true
	}
	for _, want := range []string{"0+10", "1+9", "2+8", "3+7", "4+6", "5+5"} {
		if !set[want] {
			t.Errorf("NB10 facts missing %q", want)
		}
	}
}

func TestFactList_Override(t *testing.T) {
	s := Skill{
		ID:        "ONE",
		Label:     "One fact",
		Domain:    DomainNumberFacts,
		Subdomain: SubNumberBonds,
		Operation: OpAddition,
		FactList:  []string{"1+1"},
	}
	if got := s.ExpectedFactCount(); got != 1 {
		t.Errorf("got %d facts, want 1", got)
	}
}

func TestLevel_KnownYear(t *testing.T) {
	core, ext, year, ok := Default().Level(CountryNZ, "Y3")
	if !ok {
		t.Fatal("NZ Y3 should resolve")
	}
	if year.Label != "Year 3" {
		t.Errorf("got label %q, want %q", year.Label, "Year 3")
	}
	if !contains(core, "TT_CORE") {
		t.Errorf("NZ Y3 core should contain TT_CORE, got %v", core)
	}
	if !contains(ext, "DIV_CORE") {
		t.Errorf("NZ Y3 extension should contain DIV_CORE, got %v", ext)
	}
}

func TestLevel_UnknownYear_AllCoreFallback(t *testing.T) {
	core, ext, _, ok := Default().Level(CountryNZ, "Y99")
	if ok {
		t.Error("unknown year should report ok=false")
	}
	if len(core) != len(Default().Skills()) {
		t.Errorf("fallback core has %d skills, want all %d", len(core), len(Default().Skills()))
	}
	if len(ext) != 0 {
		t.Errorf("fallback extension should be empty, got %v", ext)
	}
}

func TestLevel_UnknownCountry_AllCoreFallback(t *testing.T) {
	core, _, _, ok := Default().Level(Country("FR"), "Y1")
	if ok {
		t.Error("unknown country should report ok=false")
	}
	if len(core) == 0 {
		t.Error("fallback core should not be empty")
	}
}

func TestNew_DuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "A", Label: "a", Domain: DomainOperations, Subdomain: SubAddition, Operation: OpAddition, Bound: 5},
		{ID: "A", Label: "b", Domain: DomainOperations, Subdomain: SubAddition, Operation: OpAddition, Bound: 5},
	}
	_, err := New(skills, map[Country]*BenchmarkTable{})
	if err == nil || !strings.Contains(err.Error(), "duplicate skill ID") {
		t.Errorf("want duplicate ID error, got %v", err)
	}
}

func TestNew_BenchmarkReferencesUnknownSkill(t *testing.T) {
	skills := []Skill{
		{ID: "A", Label: "a", Domain: DomainOperations, Subdomain: SubAddition, Operation: OpAddition, Bound: 5},
	}
	benchmarks := map[Country]*BenchmarkTable{
		CountryNZ: {
			Country:    CountryNZ,
			SystemType: SystemYear,
			Years: []YearBenchmark{
				{Key: "Y1", Label: "Year 1", AgeMin: 5, AgeMax: 6, CoreSkills: []string{"MISSING"}},
			},
		},
	}
	_, err := New(skills, benchmarks)
	if err == nil || !strings.Contains(err.Error(), "unknown skill") {
		t.Errorf("want unknown skill error, got %v", err)
	}
}

func TestNew_CoreExtensionOverlap(t *testing.T) {
	skills := []Skill{
		{ID: "A", Label: "a", Domain: DomainOperations, Subdomain: SubAddition, Operation: OpAddition, Bound: 5},
	}
	benchmarks := map[Country]*BenchmarkTable{
		CountryNZ: {
			Country:    CountryNZ,
			SystemType: SystemYear,
			Years: []YearBenchmark{
				{Key: "Y1", Label: "Year 1", AgeMin: 5, AgeMax: 6, CoreSkills: []string{"A"}, ExtensionSkills: []string{"A"}},
			},
		},
	}
	_, err := New(skills, benchmarks)
	if err == nil || !strings.Contains(err.Error(), "both core and extension") {
		t.Errorf("want overlap error, got %v", err)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
