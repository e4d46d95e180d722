// Package analytics records local app-usage events as structured JSON
// lines. Events never leave the machine and emission never fails the
// calling operation.
package analytics

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event names.
const (
	EventGameStarted          = "game_started"
	EventGameFinished         = "game_finished"
	EventProgressViewed       = "curriculum_progress_viewed"
	EventRecommendationViewed = "recommendations_viewed"
	EventProfileCreated       = "profile_created"
	EventProgressReset        = "progress_reset"
)

// Emitter records app-usage events. Implementations must be safe for
// concurrent use and must never panic or surface errors to callers.
type Emitter interface {
	Emit(event string, fields ...zap.Field)
	Close() error
}

type zapEmitter struct {
	log *zap.Logger
}

// New returns an emitter that appends JSON events to the file at path.
// The terminal UI owns stdout, so events always go to a file.
func New(path string) (Emitter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build analytics logger: %w", err)
	}
	return &zapEmitter{log: log}, nil
}

// NewDevelopment returns an emitter with the verbose console encoding,
// still file-bound since the terminal belongs to the UI.
func NewDevelopment(path string) (Emitter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build analytics logger: %w", err)
	}
	return &zapEmitter{log: log}, nil
}

// NewWithLogger returns an emitter backed by an existing zap logger.
func NewWithLogger(log *zap.Logger) Emitter {
	return &zapEmitter{log: log}
}

func (e *zapEmitter) Emit(event string, fields ...zap.Field) {
	e.log.Info(event, fields...)
}

func (e *zapEmitter) Close() error {
	// Sync on a file target can fail on some platforms; the data is
	// best-effort either way.
	_ = e.log.Sync()
	return nil
}

// Nop returns an emitter that discards every event.
func Nop() Emitter {
	return &zapEmitter{log: zap.NewNop()}
}

// DefaultLogPath resolves the analytics log path next to the database:
// $XDG_STATE_HOME/mathdash/events.log, falling back to
// ~/.local/state/mathdash/events.log.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "mathdash", "events.log"), nil
}
