package tracker

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/mathdash/mathdash/internal/analytics"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/quizgen"
)

// Recommendation reason tags.
const (
	ReasonNotStarted    = "not-started"
	ReasonNeedsPractice = "needs-practice"
	ReasonNearlyThere   = "nearly-there"
)

// RecommendedSkill is one ranked practice suggestion. Action is a
// ready-to-use generator config that exercises the skill, so the UI can
// offer one-tap "Practice this".
type RecommendedSkill struct {
	SkillID     string
	Label       string
	Proficiency mastery.Proficiency
	Coverage    float64
	Accuracy    float64
	Reason      string
	Action      quizgen.Config
}

// RecommendedFocus returns the profile's top practice priorities: core
// skills not yet mastered, ranked by proficiency tier, then ascending
// coverage, then ascending accuracy, with catalog order breaking ties.
// limit <= 0 uses the configured default.
func (s *Service) RecommendedFocus(ctx context.Context, profileID string, limit int) ([]RecommendedSkill, error) {
	if limit <= 0 {
		limit = s.cfg.Game.RecommendLimit
	}

	profile, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	// Without a placement there is no benchmark to scope by, so draw
	// candidates from the whole catalog, same as the unknown-year
	// fallback.
	coreIDs := s.catalog.SkillIDs()
	if profile.HasCurriculum() {
		coreIDs, _, _, _ = s.catalog.Level(curriculum.Country(profile.Country), profile.YearGrade)
	}

	records, err := s.facts.ForProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load fact records: %w", err)
	}

	var recs []RecommendedSkill
	for _, id := range coreIDs {
		skill, err := s.catalog.Skill(id)
		if err != nil {
			continue
		}
		sp := mastery.Aggregate(skill, s.catalog.FactSet(id), records, s.cfg.Mastery)
		if sp.Proficiency == mastery.Mastered {
			continue
		}
		recs = append(recs, RecommendedSkill{
			SkillID:     id,
			Label:       skill.Label,
			Proficiency: sp.Proficiency,
			Coverage:    sp.Coverage,
			Accuracy:    sp.Accuracy,
			Reason:      reasonFor(sp.Proficiency),
			Action:      PracticeConfig(skill),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Proficiency.Rank() != b.Proficiency.Rank() {
			return a.Proficiency.Rank() < b.Proficiency.Rank()
		}
		if a.Coverage != b.Coverage {
			return a.Coverage < b.Coverage
		}
		return a.Accuracy < b.Accuracy
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}

	s.emit.Emit(analytics.EventRecommendationViewed,
		zap.String("profile_id", profileID),
		zap.Int("count", len(recs)),
	)
	return recs, nil
}

func reasonFor(p mastery.Proficiency) string {
	switch p {
	case mastery.NotStarted:
		return ReasonNotStarted
	case mastery.Proficient:
		return ReasonNearlyThere
	default:
		return ReasonNeedsPractice
	}
}

// PracticeConfig builds the generator config that exercises a skill.
func PracticeConfig(s curriculum.Skill) quizgen.Config {
	if s.Topic != curriculum.TopicNone {
		cfg := quizgen.Config{Topic: s.Topic}
		if s.Topic == curriculum.TopicBonds {
			cfg.BondTarget = s.Bound
		}
		return cfg
	}

	switch s.Operation {
	case curriculum.OpMultiplication, curriculum.OpDivision:
		return quizgen.Config{
			Operations:      []curriculum.Operation{s.Operation},
			SelectedNumbers: slices.Clone(s.Tables),
		}
	default:
		return quizgen.Config{
			Operations:  []curriculum.Operation{s.Operation},
			NumberRange: &quizgen.NumberRange{Min: 1, Max: s.Bound},
		}
	}
}
