package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_Valid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	body := []byte("mastery:\n  record_min_attempts: 5\ngame:\n  questions_per_game: 20\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Mastery.RecordMinAttempts)
	assert.Equal(t, 20, cfg.Game.QuestionsPerGame)
	// Untouched fields keep defaults.
	assert.Equal(t, Defaults().Mastery.MasteredCoverage, cfg.Mastery.MasteredCoverage)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero attempts", "mastery:\n  record_min_attempts: 0\n"},
		{"coverage ordering", "mastery:\n  proficient_coverage: 95\n"},
		{"score ordering", "status:\n  proficient_score: 0.2\n"},
		{"bad yaml", "mastery: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tunables.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
