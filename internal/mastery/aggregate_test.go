package mastery

import (
	"testing"
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
)

// makeRecord fabricates a record with the given history.
func makeRecord(fact string, op curriculum.Operation, attempts, correct int) FactRecord {
	r := NewFactRecord("p1", fact, op)
	r.Attempts = attempts
	r.Correct = correct
	r.AvgResponseMs = 2000
	r.LastAttemptAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return r
}

func nb10() curriculum.Skill {
	s, err := curriculum.Default().Skill("NB10")
	if err != nil {
		panic(err)
	}
	return s
}

func TestAggregate_ZeroAttemptsIsNotStarted(t *testing.T) {
	th := config.Defaults().Mastery
	p := Aggregate(nb10(), nil, nil, th)
	if p.Proficiency != NotStarted {
		t.Errorf("got %q, want not-started", p.Proficiency)
	}
	if p.Coverage != 0 || p.Accuracy != 0 {
		t.Errorf("empty skill should have zero coverage/accuracy, got %f/%f", p.Coverage, p.Accuracy)
	}
	if p.ExpectedFactCount != 6 {
		t.Errorf("NB10 expects 6 facts, got %d", p.ExpectedFactCount)
	}
	if p.LastPracticedAt != nil {
		t.Error("unpracticed skill should have no last-practiced timestamp")
	}
}

func TestAggregate_FullCoverageHighAccuracyIsMastered(t *testing.T) {
	th := config.Defaults().Mastery
	records := []FactRecord{
		makeRecord("0+10", curriculum.OpAddition, 5, 5),
		makeRecord("1+9", curriculum.OpAddition, 5, 5),
		makeRecord("2+8", curriculum.OpAddition, 5, 5),
		makeRecord("3+7", curriculum.OpAddition, 5, 5),
		makeRecord("4+6", curriculum.OpAddition, 5, 4),
		makeRecord("5+5", curriculum.OpAddition, 5, 5),
	}
	p := Aggregate(nb10(), nil, records, th)

	if p.Coverage != 100 {
		t.Errorf("coverage = %f, want 100", p.Coverage)
	}
	if p.MasteredFactCount != 6 {
		t.Errorf("mastered facts = %d, want 6", p.MasteredFactCount)
	}
	if p.Proficiency != Mastered {
		t.Errorf("got %q, want mastered", p.Proficiency)
	}
}

func TestAggregate_PartialCoverageIsProficient(t *testing.T) {
	th := config.Defaults().Mastery
	records := []FactRecord{
		makeRecord("0+10", curriculum.OpAddition, 5, 4),
		makeRecord("1+9", curriculum.OpAddition, 5, 4),
		makeRecord("2+8", curriculum.OpAddition, 5, 4),
		makeRecord("3+7", curriculum.OpAddition, 5, 4),
	}
	// Coverage 4/6 = 66.7%, accuracy 80%: proficient but not mastered.
	p := Aggregate(nb10(), nil, records, th)
	if p.Proficiency != Proficient {
		t.Errorf("got %q, want proficient", p.Proficiency)
	}
}

func TestAggregate_AnyAttemptIsAtLeastDeveloping(t *testing.T) {
	th := config.Defaults().Mastery
	records := []FactRecord{
		makeRecord("3+7", curriculum.OpAddition, 1, 0),
	}
	p := Aggregate(nb10(), nil, records, th)
	if p.Proficiency != Developing {
		t.Errorf("got %q, want developing", p.Proficiency)
	}
}

func TestAggregate_IgnoresForeignRecords(t *testing.T) {
	th := config.Defaults().Mastery
	records := []FactRecord{
		// Same key space but wrong operation.
		makeRecord("3+7", curriculum.OpSubtraction, 5, 5),
		// Right operation but not an NB10 fact.
		makeRecord("3+4", curriculum.OpAddition, 5, 5),
	}
	p := Aggregate(nb10(), nil, records, th)
	if p.Proficiency != NotStarted {
		t.Errorf("got %q, want not-started", p.Proficiency)
	}
	if p.TotalAttempts != 0 {
		t.Errorf("foreign records leaked into totals: %d attempts", p.TotalAttempts)
	}
}

func TestAggregate_CoverageCapsAtHundred(t *testing.T) {
	th := config.Defaults().Mastery
	skill := curriculum.Skill{
		ID:        "TINY",
		Label:     "Tiny",
		Domain:    curriculum.DomainNumberFacts,
		Subdomain: curriculum.SubNumberBonds,
		Operation: curriculum.OpAddition,
		FactList:  []string{"1+1"},
	}
	records := []FactRecord{makeRecord("1+1", curriculum.OpAddition, 10, 10)}
	p := Aggregate(skill, nil, records, th)
	if p.Coverage != 100 {
		t.Errorf("coverage = %f, want capped at 100", p.Coverage)
	}
	if p.Proficiency != Mastered {
		t.Errorf("got %q, want mastered", p.Proficiency)
	}
}

func TestAggregate_MoreCorrectNeverLowersTier(t *testing.T) {
	th := config.Defaults().Mastery
	records := []FactRecord{
		makeRecord("0+10", curriculum.OpAddition, 4, 2),
		makeRecord("1+9", curriculum.OpAddition, 4, 2),
		makeRecord("2+8", curriculum.OpAddition, 4, 2),
		makeRecord("3+7", curriculum.OpAddition, 4, 2),
		makeRecord("4+6", curriculum.OpAddition, 4, 2),
		makeRecord("5+5", curriculum.OpAddition, 4, 2),
	}

	prevRank := Aggregate(nb10(), nil, records, th).Proficiency.Rank()
	for round := 0; round < 20; round++ {
		i := round % len(records)
		records[i].Attempts++
		records[i].Correct++
		rank := Aggregate(nb10(), nil, records, th).Proficiency.Rank()
		if rank < prevRank {
			t.Fatalf("round %d: tier rank dropped from %d to %d after a correct attempt", round, prevRank, rank)
		}
		prevRank = rank
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	th := config.Defaults().Mastery
	records := []FactRecord{
		makeRecord("0+10", curriculum.OpAddition, 7, 5),
		makeRecord("5+5", curriculum.OpAddition, 3, 3),
	}
	a := Aggregate(nb10(), nil, records, th)
	b := Aggregate(nb10(), nil, records, th)
	if a != b {
		t.Errorf("same inputs produced different outputs:\n%+v\n%+v", a, b)
	}
}

func TestAggregate_AttemptWeightedResponseTime(t *testing.T) {
	th := config.Defaults().Mastery
	r1 := makeRecord("0+10", curriculum.OpAddition, 1, 1)
	r1.AvgResponseMs = 1000
	r2 := makeRecord("1+9", curriculum.OpAddition, 3, 3)
	r2.AvgResponseMs = 3000

	p := Aggregate(nb10(), nil, []FactRecord{r1, r2}, th)
	// (1000*1 + 3000*3) / 4 = 2500
	if p.AvgResponseMs != 2500 {
		t.Errorf("avg response = %f, want 2500", p.AvgResponseMs)
	}
}

func TestAggregate_PerformanceBudget(t *testing.T) {
	// The UI recomputes progress live; the whole catalog over ~1,200
	// records must stay well under 500ms.
	th := config.Defaults().Mastery
	catalog := curriculum.Default()

	var records []FactRecord
	for _, skill := range catalog.Skills() {
		for _, fact := range skill.Facts() {
			records = append(records, makeRecord(fact, skill.Operation, 6, 5))
			if len(records) >= 1200 {
				break
			}
		}
		if len(records) >= 1200 {
			break
		}
	}

	start := time.Now()
	for _, skill := range catalog.Skills() {
		Aggregate(skill, catalog.FactSet(skill.ID), records, th)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("aggregating the catalog took %v, budget is 500ms", elapsed)
	}
}
