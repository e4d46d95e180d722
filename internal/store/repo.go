package store

import (
	"context"
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
)

// Profile is a learner identity with an optional curriculum placement.
// Country, YearGrade, and Age are empty/zero until the learner (or a
// parent) sets them.
type Profile struct {
	ID        string
	Name      string
	Country   string
	YearGrade string
	Age       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCurriculum reports whether the profile has a curriculum placement.
func (p Profile) HasCurriculum() bool {
	return p.Country != "" && p.YearGrade != ""
}

// GameResult summarizes one finished game.
type GameResult struct {
	ID         string
	ProfileID  string
	Mode       string
	SkillID    string
	Questions  int
	Correct    int
	BestStreak int
	DurationMs int64
	PlayedAt   time.Time
}

// ProfileRepo manages learner profiles.
type ProfileRepo interface {
	// Create stores a new profile with the given display name.
	Create(ctx context.Context, name string) (*Profile, error)

	// Get returns the profile with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Profile, error)

	// ByName returns the profile with the given name, or ErrNotFound.
	ByName(ctx context.Context, name string) (*Profile, error)

	// List returns all profiles ordered by creation time.
	List(ctx context.Context) ([]*Profile, error)

	// SetCurriculum updates a profile's curriculum placement. Empty
	// strings clear the placement.
	SetCurriculum(ctx context.Context, id, country, yearGrade string, age int) error

	// Delete removes a profile and all its dependent rows.
	Delete(ctx context.Context, id string) error
}

// FactRepo manages per-fact attempt records.
type FactRepo interface {
	// RecordAttempt folds one attempt outcome into the profile's record
	// for the fact, creating the record on first attempt. It returns the
	// updated record.
	RecordAttempt(ctx context.Context, profileID, fact string, op curriculum.Operation, correct bool, responseMs int, at time.Time, th config.Mastery) (mastery.FactRecord, error)

	// ForProfile returns every fact record the profile has accumulated.
	ForProfile(ctx context.Context, profileID string) ([]mastery.FactRecord, error)

	// Reset deletes all of a profile's fact records.
	Reset(ctx context.Context, profileID string) error
}

// GameRepo manages finished-game summaries.
type GameRepo interface {
	// Save stores a finished game.
	Save(ctx context.Context, g *GameResult) error

	// Recent returns the profile's most recent games, newest first.
	Recent(ctx context.Context, profileID string, limit int) ([]GameResult, error)
}
