// Package game runs one practice session: it drives the question
// generator, times and grades answers, maintains streaks, and writes
// every attempt through to the fact store.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mathdash/mathdash/internal/analytics"
	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/quizgen"
	"github.com/mathdash/mathdash/internal/store"
)

// Mode selects how a session ends.
type Mode string

const (
	// ModePractice asks a fixed number of questions.
	ModePractice Mode = "practice"
	// ModeSprint asks until the time limit expires.
	ModeSprint Mode = "sprint"
)

// SprintDuration is the time limit for sprint games.
const SprintDuration = 60 * time.Second

// AnswerMode selects the input style.
type AnswerMode string

const (
	AnswerTyped   AnswerMode = "typed"
	AnswerChoices AnswerMode = "choices"
)

// FactWriter is the slice of the fact repository a session writes to.
type FactWriter interface {
	RecordAttempt(ctx context.Context, profileID, fact string, op curriculum.Operation, correct bool, responseMs int, at time.Time, th config.Mastery) (mastery.FactRecord, error)
}

// GameSaver persists finished-game summaries.
type GameSaver interface {
	Save(ctx context.Context, g *store.GameResult) error
}

// Outcome reports the result of grading one answer.
type Outcome struct {
	Correct    bool
	Given      int
	Answer     int
	ResponseMs int
	Streak     int
	Record     mastery.FactRecord
}

// Options configures a new session.
type Options struct {
	ProfileID  string
	SkillID    string // optional, for the game summary
	Mode       Mode
	AnswerMode AnswerMode
	Questions  int // 0 uses the configured default
	Generator  quizgen.Config
}

// Session is the state of one game. It is driven by a single UI loop
// and is not safe for concurrent use.
type Session struct {
	opts     Options
	gen      *quizgen.Generator
	facts    FactWriter
	games    GameSaver
	emit     analytics.Emitter
	tunables config.Config
	clock    func() time.Time

	current    *quizgen.Question
	choices    []int
	asked      int
	correct    int
	streak     int
	bestStreak int
	startedAt  time.Time
	deadline   time.Time
	questionAt time.Time
	finished   bool
}

// New validates the generator config and builds a session. The
// generator's anti-repeat and spread state starts fresh.
func New(opts Options, gen *quizgen.Generator, facts FactWriter, games GameSaver, tunables config.Config, emit analytics.Emitter) (*Session, error) {
	if opts.ProfileID == "" {
		return nil, fmt.Errorf("game: profile ID required")
	}
	if err := opts.Generator.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if opts.Mode == "" {
		opts.Mode = ModePractice
	}
	if opts.AnswerMode == "" {
		opts.AnswerMode = AnswerTyped
	}
	if opts.Questions <= 0 {
		opts.Questions = tunables.Game.QuestionsPerGame
	}
	if gen == nil {
		gen = quizgen.New()
	}
	if emit == nil {
		emit = analytics.Nop()
	}

	gen.ClearHistory()
	gen.ClearMultipliers()

	return &Session{
		opts:     opts,
		gen:      gen,
		facts:    facts,
		games:    games,
		emit:     emit,
		tunables: tunables,
		clock:    time.Now,
	}, nil
}

// Start issues the first question and starts the game clock.
func (s *Session) Start() (*quizgen.Question, error) {
	s.startedAt = s.clock()
	if s.opts.Mode == ModeSprint {
		s.deadline = s.startedAt.Add(SprintDuration)
	}

	s.emit.Emit(analytics.EventGameStarted,
		zap.String("profile_id", s.opts.ProfileID),
		zap.String("mode", string(s.opts.Mode)),
		zap.String("skill_id", s.opts.SkillID),
	)
	return s.next()
}

// Current returns the outstanding question, nil when the game is over.
func (s *Session) Current() *quizgen.Question {
	return s.current
}

// Choices returns the multiple-choice options for the current question.
// Empty in typed mode.
func (s *Session) Choices() []int {
	return s.choices
}

// Progress returns questions answered so far and the target count.
// For sprints the target is 0 (open-ended).
func (s *Session) Progress() (answered, target int) {
	if s.opts.Mode == ModeSprint {
		return s.asked, 0
	}
	return s.asked, s.opts.Questions
}

// Streak returns the current and best correct streaks.
func (s *Session) Streak() (current, best int) {
	return s.streak, s.bestStreak
}

// TimeLeft returns the remaining sprint time, zero for practice games.
func (s *Session) TimeLeft() time.Duration {
	if s.opts.Mode != ModeSprint || s.deadline.IsZero() {
		return 0
	}
	left := s.deadline.Sub(s.clock())
	if left < 0 {
		return 0
	}
	return left
}

// Done reports whether the game has ended.
func (s *Session) Done() bool {
	return s.finished
}

// Answer grades the given value against the current question, records
// the attempt, and advances to the next question or ends the game.
func (s *Session) Answer(ctx context.Context, given int) (Outcome, error) {
	if s.finished || s.current == nil {
		return Outcome{}, fmt.Errorf("game: no outstanding question")
	}

	now := s.clock()
	responseMs := int(now.Sub(s.questionAt).Milliseconds())
	correct := given == s.current.Answer

	s.asked++
	if correct {
		s.correct++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	} else {
		s.streak = 0
	}

	rec, err := s.facts.RecordAttempt(ctx,
		s.opts.ProfileID, s.current.Fact, s.current.Operator,
		correct, responseMs, now, s.tunables.Mastery)
	if err != nil {
		return Outcome{}, fmt.Errorf("record attempt: %w", err)
	}

	out := Outcome{
		Correct:    correct,
		Given:      given,
		Answer:     s.current.Answer,
		ResponseMs: responseMs,
		Streak:     s.streak,
		Record:     rec,
	}

	if s.over(now) {
		return out, s.finish(ctx, now)
	}
	if _, err := s.next(); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// Expire ends a sprint whose deadline passed while a question was
// still open, discarding the unanswered question. It reports whether
// the session finished. Practice games and live sprints are untouched.
func (s *Session) Expire(ctx context.Context) (bool, error) {
	if s.finished || s.opts.Mode != ModeSprint || s.deadline.IsZero() {
		return false, nil
	}
	now := s.clock()
	if now.Before(s.deadline) {
		return false, nil
	}
	return true, s.finish(ctx, now)
}

func (s *Session) over(now time.Time) bool {
	if s.opts.Mode == ModeSprint {
		return !now.Before(s.deadline)
	}
	return s.asked >= s.opts.Questions
}

func (s *Session) next() (*quizgen.Question, error) {
	q, err := s.gen.Generate(s.opts.Generator)
	if err != nil {
		return nil, err
	}
	s.current = q
	s.choices = nil
	if s.opts.AnswerMode == AnswerChoices {
		s.choices = s.gen.Choices(q.Answer)
	}
	s.questionAt = s.clock()
	return q, nil
}

// finish ends the game, persists the summary, and emits the finished
// event. A save failure is returned but the session still counts as
// finished.
func (s *Session) finish(ctx context.Context, now time.Time) error {
	s.finished = true
	s.current = nil
	s.choices = nil

	result := s.Summary(now)
	s.emit.Emit(analytics.EventGameFinished,
		zap.String("profile_id", s.opts.ProfileID),
		zap.String("mode", string(s.opts.Mode)),
		zap.Int("questions", result.Questions),
		zap.Int("correct", result.Correct),
		zap.Int("best_streak", result.BestStreak),
	)

	if s.games == nil {
		return nil
	}
	if err := s.games.Save(ctx, result); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// Summary builds the persistable result for the game so far.
func (s *Session) Summary(now time.Time) *store.GameResult {
	return &store.GameResult{
		ProfileID:  s.opts.ProfileID,
		Mode:       string(s.opts.Mode),
		SkillID:    s.opts.SkillID,
		Questions:  s.asked,
		Correct:    s.correct,
		BestStreak: s.bestStreak,
		DurationMs: now.Sub(s.startedAt).Milliseconds(),
		PlayedAt:   now,
	}
}
