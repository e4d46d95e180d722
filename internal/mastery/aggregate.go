package mastery

import (
	"math"
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
)

// Proficiency is a skill-level mastery tier for one profile.
type Proficiency string

const (
	NotStarted Proficiency = "not-started"
	Developing Proficiency = "developing"
	Proficient Proficiency = "proficient"
	Mastered   Proficiency = "mastered"
)

// Rank orders proficiency tiers from NotStarted (0) to Mastered (3).
func (p Proficiency) Rank() int {
	switch p {
	case NotStarted:
		return 0
	case Developing:
		return 1
	case Proficient:
		return 2
	case Mastered:
		return 3
	default:
		return -1
	}
}

// Label returns the display label for a proficiency tier.
func (p Proficiency) Label() string {
	switch p {
	case NotStarted:
		return "Not started"
	case Developing:
		return "Developing"
	case Proficient:
		return "Proficient"
	case Mastered:
		return "Mastered"
	default:
		return string(p)
	}
}

// AllProficiencies returns the tiers in ascending order.
func AllProficiencies() []Proficiency {
	return []Proficiency{NotStarted, Developing, Proficient, Mastered}
}

// SkillProgress is the derived per-skill summary returned to the UI.
// It is recomputed per request, never persisted.
type SkillProgress struct {
	SkillID           string
	Label             string
	Proficiency       Proficiency
	Accuracy          float64 // 0-100
	Coverage          float64 // 0-100
	TotalAttempts     int
	TotalCorrect      int
	AvgResponseMs     float64
	MasteredFactCount int
	ExpectedFactCount int
	IsCore            bool
	IsExtension       bool
	LastPracticedAt   *time.Time
}

// Aggregate computes a skill's progress summary from a profile's fact
// records. factSet is the skill's precomputed fact-key set; pass nil to
// derive it from the skill definition. The computation is pure and
// deterministic: same inputs, same output.
func Aggregate(skill curriculum.Skill, factSet map[string]bool, records []FactRecord, th config.Mastery) SkillProgress {
	if factSet == nil {
		factSet = make(map[string]bool)
		for _, f := range skill.Facts() {
			factSet[f] = true
		}
	}

	p := SkillProgress{
		SkillID:           skill.ID,
		Label:             skill.Label,
		ExpectedFactCount: len(factSet),
	}

	var (
		attempted      int
		weightedMs     float64
		lastPracticed  time.Time
		havePracticeAt bool
	)
	for _, r := range records {
		if r.Operation != skill.Operation || !factSet[r.Fact] {
			continue
		}
		attempted++
		p.TotalAttempts += r.Attempts
		p.TotalCorrect += r.Correct
		weightedMs += r.AvgResponseMs * float64(r.Attempts)
		if r.Mastered(th) {
			p.MasteredFactCount++
		}
		if r.LastAttemptAt.After(lastPracticed) {
			lastPracticed = r.LastAttemptAt
			havePracticeAt = true
		}
	}

	if p.ExpectedFactCount > 0 {
		p.Coverage = math.Min(100, float64(attempted)/float64(p.ExpectedFactCount)*100)
	}
	if p.TotalAttempts > 0 {
		p.Accuracy = float64(p.TotalCorrect) / float64(p.TotalAttempts) * 100
		p.AvgResponseMs = weightedMs / float64(p.TotalAttempts)
	}
	if havePracticeAt {
		t := lastPracticed
		p.LastPracticedAt = &t
	}

	p.Proficiency = classify(p, th)
	return p
}

// classify applies the ordered proficiency rules; the first match wins.
func classify(p SkillProgress, th config.Mastery) Proficiency {
	if p.TotalAttempts == 0 {
		return NotStarted
	}

	needMastered := int(math.Ceil(th.MasteredFactShare * float64(p.ExpectedFactCount)))
	if p.Coverage >= th.MasteredCoverage &&
		p.Accuracy >= th.MasteredAccuracy &&
		p.MasteredFactCount >= needMastered {
		return Mastered
	}

	if p.Coverage >= th.ProficientCoverage && p.Accuracy >= th.ProficientAccuracy {
		return Proficient
	}
	return Developing
}
