// Package config holds the tunable constants of the practice engine.
// The proficiency and status cutoffs are deliberately configuration, not
// code: they satisfy ordering and boundary requirements but the exact
// percentages are adjustable per deployment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Mastery holds the thresholds used to classify fact records and skills.
// Coverage and accuracy cutoffs are percentages in [0, 100]; shares and
// per-record accuracy are fractions in [0, 1].
type Mastery struct {
	// A fact record counts as mastered once it has at least
	// RecordMinAttempts attempts at RecordMinAccuracy accuracy.
	RecordMinAttempts int     `yaml:"record_min_attempts"`
	RecordMinAccuracy float64 `yaml:"record_min_accuracy"`

	// Proficient requires both cutoffs; mastered requires its cutoffs
	// plus MasteredFactShare of the skill's expected facts individually
	// mastered.
	ProficientCoverage float64 `yaml:"proficient_coverage"`
	ProficientAccuracy float64 `yaml:"proficient_accuracy"`
	MasteredCoverage   float64 `yaml:"mastered_coverage"`
	MasteredAccuracy   float64 `yaml:"mastered_accuracy"`
	MasteredFactShare  float64 `yaml:"mastered_fact_share"`
}

// Status holds the overall-status cutoffs and the per-skill scores that
// feed the overall percentage. Scores must be monotonic in proficiency.
type Status struct {
	BehindBelow     float64 `yaml:"behind_below"`
	AheadShare      float64 `yaml:"ahead_share"`
	DevelopingScore float64 `yaml:"developing_score"`
	ProficientScore float64 `yaml:"proficient_score"`
	MasteredScore   float64 `yaml:"mastered_score"`
}

// Game holds gameplay and recommendation settings.
type Game struct {
	QuestionsPerGame int `yaml:"questions_per_game"`
	RecommendLimit   int `yaml:"recommend_limit"`
}

// Config is the full tunable set.
type Config struct {
	Mastery Mastery `yaml:"mastery"`
	Status  Status  `yaml:"status"`
	Game    Game    `yaml:"game"`
}

// Defaults returns the built-in tunables.
func Defaults() Config {
	return Config{
		Mastery: Mastery{
			RecordMinAttempts:  3,
			RecordMinAccuracy:  0.8,
			ProficientCoverage: 60,
			ProficientAccuracy: 70,
			MasteredCoverage:   90,
			MasteredAccuracy:   90,
			MasteredFactShare:  0.9,
		},
		Status: Status{
			BehindBelow:     20,
			AheadShare:      0.9,
			DevelopingScore: 0.35,
			ProficientScore: 0.75,
			MasteredScore:   1.0,
		},
		Game: Game{
			QuestionsPerGame: 10,
			RecommendLimit:   4,
		},
	}
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/mathdash/config.yaml, falling back to
// ~/.config/mathdash/config.yaml. The file is optional.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathdash", "config.yaml"), nil
}

// Load returns the defaults overlaid with the YAML file at path, if any.
// A missing file is not an error; a malformed or invalid one is.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks range and ordering constraints on the tunables.
func (c Config) Validate() error {
	m := c.Mastery
	if m.RecordMinAttempts < 1 {
		return fmt.Errorf("record_min_attempts must be >= 1, got %d", m.RecordMinAttempts)
	}
	if m.RecordMinAccuracy <= 0 || m.RecordMinAccuracy > 1 {
		return fmt.Errorf("record_min_accuracy must be in (0, 1], got %g", m.RecordMinAccuracy)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"proficient_coverage", m.ProficientCoverage},
		{"proficient_accuracy", m.ProficientAccuracy},
		{"mastered_coverage", m.MasteredCoverage},
		{"mastered_accuracy", m.MasteredAccuracy},
	} {
		if v.val <= 0 || v.val > 100 {
			return fmt.Errorf("%s must be in (0, 100], got %g", v.name, v.val)
		}
	}
	if m.ProficientCoverage > m.MasteredCoverage {
		return fmt.Errorf("proficient_coverage %g exceeds mastered_coverage %g", m.ProficientCoverage, m.MasteredCoverage)
	}
	if m.ProficientAccuracy > m.MasteredAccuracy {
		return fmt.Errorf("proficient_accuracy %g exceeds mastered_accuracy %g", m.ProficientAccuracy, m.MasteredAccuracy)
	}
	if m.MasteredFactShare <= 0 || m.MasteredFactShare > 1 {
		return fmt.Errorf("mastered_fact_share must be in (0, 1], got %g", m.MasteredFactShare)
	}

	s := c.Status
	if s.BehindBelow < 0 || s.BehindBelow > 100 {
		return fmt.Errorf("behind_below must be in [0, 100], got %g", s.BehindBelow)
	}
	if s.AheadShare <= 0 || s.AheadShare > 1 {
		return fmt.Errorf("ahead_share must be in (0, 1], got %g", s.AheadShare)
	}
	if !(s.DevelopingScore < s.ProficientScore && s.ProficientScore < s.MasteredScore) {
		return fmt.Errorf("skill scores must be strictly increasing, got %g/%g/%g",
			s.DevelopingScore, s.ProficientScore, s.MasteredScore)
	}

	g := c.Game
	if g.QuestionsPerGame < 1 {
		return fmt.Errorf("questions_per_game must be >= 1, got %d", g.QuestionsPerGame)
	}
	if g.RecommendLimit < 1 {
		return fmt.Errorf("recommend_limit must be >= 1, got %d", g.RecommendLimit)
	}
	return nil
}
