// Package tracker orchestrates curriculum progress: it maps a profile's
// fact records onto the benchmark skills for its country and year, runs
// the mastery aggregation per skill, and derives overall status and
// recommended practice.
package tracker

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mathdash/mathdash/internal/analytics"
	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/store"
)

// OverallStatus places a profile relative to its benchmark level.
type OverallStatus string

const (
	StatusBehind  OverallStatus = "behind"
	StatusOnTrack OverallStatus = "on-track"
	StatusAhead   OverallStatus = "ahead"
)

// Label returns the display label for an overall status.
func (s OverallStatus) Label() string {
	switch s {
	case StatusBehind:
		return "Needs a boost"
	case StatusOnTrack:
		return "On track"
	case StatusAhead:
		return "Racing ahead"
	default:
		return string(s)
	}
}

// CurriculumProgress is the derived snapshot returned to the UI. Status
// and percentage are nil when the profile has no curriculum placement.
type CurriculumProgress struct {
	OverallStatus     *OverallStatus
	OverallPercentage *float64

	CoreSkillProgress      []mastery.SkillProgress
	ExtensionSkillProgress []mastery.SkillProgress
	CoreSkillCounts        map[mastery.Proficiency]int
	ExtensionSkillCounts   map[mastery.Proficiency]int

	Country        string
	CountryLabel   string
	YearGrade      string
	YearGradeLabel string

	CalculatedAt time.Time
}

// ProfileStore is the slice of the profile repository the tracker needs.
type ProfileStore interface {
	Get(ctx context.Context, id string) (*store.Profile, error)
}

// FactStore is the slice of the fact repository the tracker needs.
type FactStore interface {
	ForProfile(ctx context.Context, profileID string) ([]mastery.FactRecord, error)
}

// Service computes curriculum progress and recommendations.
type Service struct {
	profiles ProfileStore
	facts    FactStore
	catalog  *curriculum.Catalog
	cfg      config.Config
	emit     analytics.Emitter
}

// New creates a tracker service. A nil catalog uses the built-in one; a
// nil emitter discards events.
func New(profiles ProfileStore, facts FactStore, catalog *curriculum.Catalog, cfg config.Config, emit analytics.Emitter) *Service {
	if catalog == nil {
		catalog = curriculum.Default()
	}
	if emit == nil {
		emit = analytics.Nop()
	}
	return &Service{
		profiles: profiles,
		facts:    facts,
		catalog:  catalog,
		cfg:      cfg,
		emit:     emit,
	}
}

// CurriculumProgress computes the progress snapshot for a profile.
//
// A profile without a curriculum placement gets an empty snapshot with
// nil status rather than an error, so the UI can prompt for setup. A
// placement with an unrecognized yearGrade falls back to treating every
// catalog skill as core. Store failures propagate.
func (s *Service) CurriculumProgress(ctx context.Context, profileID string) (*CurriculumProgress, error) {
	profile, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	progress := &CurriculumProgress{
		CoreSkillCounts:      make(map[mastery.Proficiency]int),
		ExtensionSkillCounts: make(map[mastery.Proficiency]int),
		CalculatedAt:         time.Now().UTC(),
	}
	if !profile.HasCurriculum() {
		return progress, nil
	}

	country := curriculum.Country(profile.Country)
	coreIDs, extIDs, year, known := s.catalog.Level(country, profile.YearGrade)

	records, err := s.facts.ForProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load fact records: %w", err)
	}

	progress.CoreSkillProgress = s.aggregateSkills(coreIDs, records, curriculum.RoleCore)
	progress.ExtensionSkillProgress = s.aggregateSkills(extIDs, records, curriculum.RoleExtension)
	for _, sp := range progress.CoreSkillProgress {
		progress.CoreSkillCounts[sp.Proficiency]++
	}
	for _, sp := range progress.ExtensionSkillProgress {
		progress.ExtensionSkillCounts[sp.Proficiency]++
	}

	pct := s.overallPercentage(progress.CoreSkillProgress)
	status := s.overallStatus(pct, progress.CoreSkillProgress, progress.ExtensionSkillProgress)
	progress.OverallPercentage = &pct
	progress.OverallStatus = &status

	progress.Country = profile.Country
	progress.CountryLabel = country.Label()
	progress.YearGrade = profile.YearGrade
	if known {
		progress.YearGradeLabel = year.Label
	} else {
		progress.YearGradeLabel = profile.YearGrade
	}

	s.emit.Emit(analytics.EventProgressViewed,
		zap.String("profile_id", profileID),
		zap.String("status", string(status)),
		zap.Float64("percentage", pct),
	)
	return progress, nil
}

// aggregateSkills runs the mastery aggregation for each skill ID, in the
// given order, tagging each result with its benchmark role.
func (s *Service) aggregateSkills(ids []string, records []mastery.FactRecord, role curriculum.Role) []mastery.SkillProgress {
	out := make([]mastery.SkillProgress, 0, len(ids))
	for _, id := range ids {
		skill, err := s.catalog.Skill(id)
		if err != nil {
			// The catalog validates benchmark references at startup.
			continue
		}
		sp := mastery.Aggregate(skill, s.catalog.FactSet(id), records, s.cfg.Mastery)
		sp.IsCore = role == curriculum.RoleCore
		sp.IsExtension = role == curriculum.RoleExtension
		out = append(out, sp)
	}
	return out
}

// overallPercentage is the mean per-skill score over the core skills,
// scaled to [0, 100]. Scores rise with proficiency, so more mastered
// core skills can only raise the percentage.
func (s *Service) overallPercentage(core []mastery.SkillProgress) float64 {
	if len(core) == 0 {
		return 0
	}
	var sum float64
	for _, sp := range core {
		sum += s.skillScore(sp.Proficiency)
	}
	return math.Round(sum/float64(len(core))*1000) / 10
}

func (s *Service) skillScore(p mastery.Proficiency) float64 {
	switch p {
	case mastery.Developing:
		return s.cfg.Status.DevelopingScore
	case mastery.Proficient:
		return s.cfg.Status.ProficientScore
	case mastery.Mastered:
		return s.cfg.Status.MasteredScore
	default:
		return 0
	}
}

// overallStatus applies the status rules in order:
// behind when the percentage is under the cutoff or a strict majority of
// core skills have not reached proficient; ahead when nearly all core
// and extension skills are mastered; on-track otherwise.
func (s *Service) overallStatus(pct float64, core, ext []mastery.SkillProgress) OverallStatus {
	var struggling int
	for _, sp := range core {
		if sp.Proficiency == mastery.NotStarted || sp.Proficiency == mastery.Developing {
			struggling++
		}
	}
	if pct < s.cfg.Status.BehindBelow || struggling*2 > len(core) {
		return StatusBehind
	}

	total := len(core) + len(ext)
	if total > 0 {
		var mastered int
		for _, sp := range core {
			if sp.Proficiency == mastery.Mastered {
				mastered++
			}
		}
		for _, sp := range ext {
			if sp.Proficiency == mastery.Mastered {
				mastered++
			}
		}
		if float64(mastered)/float64(total) >= s.cfg.Status.AheadShare {
			return StatusAhead
		}
	}
	return StatusOnTrack
}
