package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/quizgen"
	"github.com/mathdash/mathdash/internal/store"
)

// twentyFactSkill builds a skill with exactly 20 synthetic facts so
// coverage percentages are easy to dial in.
func twentyFactSkill(id string) curriculum.Skill {
	facts := make([]string, 20)
	for i := range facts {
		facts[i] = fmt.Sprintf("%d+%d", i, 100)
	}
	return curriculum.Skill{
		ID:        id,
		Label:     id,
		Domain:    curriculum.DomainNumberFacts,
		Subdomain: curriculum.SubAddition,
		Operation: curriculum.OpAddition,
		FactList:  facts,
	}
}

// attemptedRecords marks the first n facts of a skill as attempted at
// 50% accuracy, which keeps the skill in "developing".
func attemptedRecords(profileID string, skill curriculum.Skill, n int) []mastery.FactRecord {
	var records []mastery.FactRecord
	for _, fact := range skill.Facts()[:n] {
		r := mastery.NewFactRecord(profileID, fact, skill.Operation)
		r.Attempts = 2
		r.Correct = 1
		r.LastAttemptAt = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
		records = append(records, r)
	}
	return records
}

func recommendTestCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	skills := []curriculum.Skill{
		twentyFactSkill("FRESH"),
		twentyFactSkill("LOW"),
		twentyFactSkill("HIGH"),
	}
	benchmarks := map[curriculum.Country]*curriculum.BenchmarkTable{
		"NZ": {
			Country:    "NZ",
			SystemType: curriculum.SystemYear,
			Years: []curriculum.YearBenchmark{{
				Key: "Y1", Label: "Year 1", AgeMin: 5, AgeMax: 7,
				CoreSkills: []string{"HIGH", "LOW", "FRESH"},
			}},
		},
	}
	catalog, err := curriculum.New(skills, benchmarks)
	if err != nil {
		t.Fatal(err)
	}
	return catalog
}

func TestRecommendedFocus_Ordering(t *testing.T) {
	catalog := recommendTestCatalog(t)
	low, _ := catalog.Skill("LOW")
	high, _ := catalog.Skill("HIGH")

	// FRESH: not started. LOW: developing at 15% coverage. HIGH:
	// developing at 60% coverage (accuracy too low for proficient).
	records := append(
		attemptedRecords("p1", low, 3),
		attemptedRecords("p1", high, 12)...,
	)
	s := New(
		&fakeProfiles{profiles: map[string]*store.Profile{
			"p1": placedProfile("p1", "NZ", "Y1"),
		}},
		&fakeFacts{records: map[string][]mastery.FactRecord{"p1": records}},
		catalog, config.Defaults(), nil,
	)

	recs, err := s.RecommendedFocus(context.Background(), "p1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].SkillID != "FRESH" {
		t.Errorf("first = %q, want the not-started skill", recs[0].SkillID)
	}
	if recs[1].SkillID != "LOW" {
		t.Errorf("second = %q, want the lower-coverage developing skill", recs[1].SkillID)
	}
	if recs[0].Reason != ReasonNotStarted {
		t.Errorf("reason = %q, want %q", recs[0].Reason, ReasonNotStarted)
	}
	if recs[1].Reason != ReasonNeedsPractice {
		t.Errorf("reason = %q, want %q", recs[1].Reason, ReasonNeedsPractice)
	}
}

func TestRecommendedFocus_ExcludesMastered(t *testing.T) {
	catalog := recommendTestCatalog(t)
	high, _ := catalog.Skill("HIGH")

	s := New(
		&fakeProfiles{profiles: map[string]*store.Profile{
			"p1": placedProfile("p1", "NZ", "Y1"),
		}},
		&fakeFacts{records: map[string][]mastery.FactRecord{
			"p1": masteredRecords("p1", high),
		}},
		catalog, config.Defaults(), nil,
	)

	recs, err := s.RecommendedFocus(context.Background(), "p1", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.SkillID == "HIGH" {
			t.Error("mastered skill should not be recommended")
		}
	}
	if len(recs) != 2 {
		t.Errorf("got %d recommendations, want the 2 unmastered skills", len(recs))
	}
}

func TestRecommendedFocus_DefaultLimit(t *testing.T) {
	// A profile without a placement draws candidates from the whole
	// catalog, truncated to the configured default limit.
	s := newTestService(map[string]*store.Profile{
		"p1": {ID: "p1", Name: "Mia"},
	}, nil)

	recs, err := s.RecommendedFocus(context.Background(), "p1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := config.Defaults().Game.RecommendLimit; len(recs) != want {
		t.Errorf("got %d recommendations, want default limit %d", len(recs), want)
	}
}

func TestRecommendedFocus_UnknownProfile(t *testing.T) {
	s := newTestService(nil, nil)
	if _, err := s.RecommendedFocus(context.Background(), "missing", 3); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestPracticeConfig(t *testing.T) {
	tests := []struct {
		name  string
		skill curriculum.Skill
		check func(t *testing.T, cfg quizgen.Config)
	}{
		{
			name:  "bonds carry the target",
			skill: curriculum.Skill{Topic: curriculum.TopicBonds, Bound: 10, Operation: curriculum.OpAddition},
			check: func(t *testing.T, cfg quizgen.Config) {
				if cfg.Topic != curriculum.TopicBonds || cfg.BondTarget != 10 {
					t.Errorf("got topic %q target %d", cfg.Topic, cfg.BondTarget)
				}
			},
		},
		{
			name:  "times tables select the numbers",
			skill: curriculum.Skill{Operation: curriculum.OpMultiplication, Tables: []int{2, 5, 10}},
			check: func(t *testing.T, cfg quizgen.Config) {
				if len(cfg.Operations) != 1 || cfg.Operations[0] != curriculum.OpMultiplication {
					t.Errorf("operations = %v", cfg.Operations)
				}
				if len(cfg.SelectedNumbers) != 3 {
					t.Errorf("selected numbers = %v", cfg.SelectedNumbers)
				}
			},
		},
		{
			name:  "addition carries the range",
			skill: curriculum.Skill{Operation: curriculum.OpAddition, Bound: 20},
			check: func(t *testing.T, cfg quizgen.Config) {
				if cfg.NumberRange == nil || cfg.NumberRange.Max != 20 {
					t.Errorf("range = %+v", cfg.NumberRange)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := PracticeConfig(tt.skill)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("generated config is invalid: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
