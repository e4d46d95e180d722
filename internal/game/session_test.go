package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/quizgen"
	"github.com/mathdash/mathdash/internal/store"
)

type recordedAttempt struct {
	fact       string
	correct    bool
	responseMs int
}

type fakeFacts struct {
	attempts []recordedAttempt
	err      error
}

func (f *fakeFacts) RecordAttempt(ctx context.Context, profileID, fact string, op curriculum.Operation, correct bool, responseMs int, at time.Time, th config.Mastery) (mastery.FactRecord, error) {
	if f.err != nil {
		return mastery.FactRecord{}, f.err
	}
	f.attempts = append(f.attempts, recordedAttempt{fact: fact, correct: correct, responseMs: responseMs})
	r := mastery.NewFactRecord(profileID, fact, op)
	r.Apply(correct, responseMs, at, th)
	return r, nil
}

type fakeGames struct {
	saved []*store.GameResult
}

func (f *fakeGames) Save(ctx context.Context, g *store.GameResult) error {
	f.saved = append(f.saved, g)
	return nil
}

func tableOptions(n int) Options {
	return Options{
		ProfileID: "p1",
		SkillID:   "TT_CORE",
		Generator: quizgen.Config{
			Operations:      []curriculum.Operation{curriculum.OpMultiplication},
			SelectedNumbers: []int{n},
		},
	}
}

// fixedClock returns a clock that advances step per call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func newTestSession(t *testing.T, opts Options, facts *fakeFacts, games *fakeGames) *Session {
	t.Helper()
	s, err := New(opts, quizgen.NewSeeded(1), facts, games, config.Defaults(), nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.clock = fixedClock(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC), time.Second)
	return s
}

func TestSession_PracticeRunsToCompletion(t *testing.T) {
	facts := &fakeFacts{}
	games := &fakeGames{}
	s := newTestSession(t, tableOptions(7), facts, games)
	ctx := context.Background()

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}

	want := config.Defaults().Game.QuestionsPerGame
	for i := 0; i < want; i++ {
		if q == nil {
			t.Fatalf("no question at step %d", i)
		}
		out, err := s.Answer(ctx, q.Answer)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if !out.Correct {
			t.Fatalf("correct answer graded wrong at step %d", i)
		}
		if out.Streak != i+1 {
			t.Errorf("streak = %d at step %d", out.Streak, i)
		}
		q = s.Current()
	}

	if !s.Done() {
		t.Fatal("session should be finished")
	}
	if s.Current() != nil {
		t.Error("no question should be outstanding after the end")
	}
	if len(facts.attempts) != want {
		t.Errorf("recorded %d attempts, want %d", len(facts.attempts), want)
	}

	if len(games.saved) != 1 {
		t.Fatalf("saved %d games, want 1", len(games.saved))
	}
	g := games.saved[0]
	if g.Questions != want || g.Correct != want || g.BestStreak != want {
		t.Errorf("summary = %d/%d streak %d, want all %d", g.Correct, g.Questions, g.BestStreak, want)
	}
	if g.Mode != string(ModePractice) || g.SkillID != "TT_CORE" {
		t.Errorf("summary mode/skill = %q/%q", g.Mode, g.SkillID)
	}
	if g.DurationMs <= 0 {
		t.Error("duration should be positive")
	}
}

func TestSession_WrongAnswerResetsStreak(t *testing.T) {
	facts := &fakeFacts{}
	s := newTestSession(t, tableOptions(5), facts, &fakeGames{})
	ctx := context.Background()

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Answer(ctx, q.Answer); err != nil {
		t.Fatal(err)
	}
	q = s.Current()
	out, err := s.Answer(ctx, q.Answer+1)
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct {
		t.Error("wrong answer graded correct")
	}
	if out.Streak != 0 {
		t.Errorf("streak = %d after a miss, want 0", out.Streak)
	}
	if _, best := s.Streak(); best != 1 {
		t.Errorf("best streak = %d, want 1", best)
	}
	if facts.attempts[1].correct {
		t.Error("miss not recorded as incorrect")
	}
}

func TestSession_AttemptsMeasureResponseTime(t *testing.T) {
	facts := &fakeFacts{}
	s := newTestSession(t, tableOptions(3), facts, &fakeGames{})

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}
	// The fake clock steps one second per reading; Answer reads it once.
	if _, err := s.Answer(context.Background(), q.Answer); err != nil {
		t.Fatal(err)
	}
	if facts.attempts[0].responseMs != 1000 {
		t.Errorf("response = %dms, want 1000", facts.attempts[0].responseMs)
	}
}

func TestSession_SprintEndsAtDeadline(t *testing.T) {
	opts := tableOptions(4)
	opts.Mode = ModeSprint
	facts := &fakeFacts{}
	games := &fakeGames{}
	s := newTestSession(t, opts, facts, games)
	// Each clock reading advances 10s, so the 60s sprint allows a
	// handful of answers before the deadline passes.
	s.clock = fixedClock(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC), 10*time.Second)
	ctx := context.Background()

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; !s.Done() && i < 100; i++ {
		if _, err := s.Answer(ctx, q.Answer); err != nil {
			t.Fatal(err)
		}
		q = s.Current()
	}

	if !s.Done() {
		t.Fatal("sprint never ended")
	}
	if len(games.saved) != 1 {
		t.Fatalf("saved %d games, want 1", len(games.saved))
	}
	if games.saved[0].Questions == 0 {
		t.Error("sprint should have recorded some questions")
	}
	if s.TimeLeft() != 0 {
		t.Errorf("time left = %v after the end", s.TimeLeft())
	}
}

func TestSession_ExpireEndsSprintWithQuestionOpen(t *testing.T) {
	opts := tableOptions(9)
	opts.Mode = ModeSprint
	facts := &fakeFacts{}
	games := &fakeGames{}
	s := newTestSession(t, opts, facts, games)
	// 40s per clock reading: the deadline passes while the first
	// question is still waiting for an answer.
	s.clock = fixedClock(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC), 40*time.Second)
	ctx := context.Background()

	if _, err := s.Start(); err != nil {
		t.Fatal(err)
	}
	ended, err := s.Expire(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !ended {
		t.Fatal("sprint past its deadline should end on expiry")
	}
	if !s.Done() {
		t.Error("session should be finished")
	}
	if s.Current() != nil {
		t.Error("the open question should be discarded")
	}
	if len(facts.attempts) != 0 {
		t.Errorf("recorded %d attempts, want none", len(facts.attempts))
	}
	if len(games.saved) != 1 {
		t.Fatalf("saved %d games, want 1", len(games.saved))
	}
	if games.saved[0].Questions != 0 {
		t.Errorf("summary questions = %d, want 0", games.saved[0].Questions)
	}
	if _, err := s.Answer(ctx, 0); err == nil {
		t.Error("expected error answering an expired game")
	}
}

func TestSession_ExpireLeavesLiveGamesAlone(t *testing.T) {
	ctx := context.Background()

	sprint := tableOptions(9)
	sprint.Mode = ModeSprint
	s := newTestSession(t, sprint, &fakeFacts{}, &fakeGames{})
	if _, err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if ended, err := s.Expire(ctx); err != nil || ended {
		t.Errorf("sprint with time left expired: ended=%v err=%v", ended, err)
	}
	if s.Done() || s.Current() == nil {
		t.Error("live sprint should keep its open question")
	}

	p := newTestSession(t, tableOptions(9), &fakeFacts{}, &fakeGames{})
	if _, err := p.Start(); err != nil {
		t.Fatal(err)
	}
	if ended, err := p.Expire(ctx); err != nil || ended {
		t.Errorf("practice game expired: ended=%v err=%v", ended, err)
	}
}

func TestSession_AnswerAfterEndFails(t *testing.T) {
	opts := tableOptions(2)
	opts.Questions = 1
	s := newTestSession(t, opts, &fakeFacts{}, &fakeGames{})
	ctx := context.Background()

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Answer(ctx, q.Answer); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Answer(ctx, 0); err == nil {
		t.Error("expected error answering a finished game")
	}
}

func TestSession_FactWriteErrorPropagates(t *testing.T) {
	boom := errors.New("write failed")
	s := newTestSession(t, tableOptions(6), &fakeFacts{err: boom}, &fakeGames{})

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Answer(context.Background(), q.Answer); !errors.Is(err, boom) {
		t.Errorf("got %v, want the store error", err)
	}
}

func TestSession_ChoicesMode(t *testing.T) {
	opts := tableOptions(8)
	opts.AnswerMode = AnswerChoices
	s := newTestSession(t, opts, &fakeFacts{}, &fakeGames{})

	q, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}
	choices := s.Choices()
	if len(choices) != 6 {
		t.Fatalf("got %d choices, want 6", len(choices))
	}
	var found bool
	for _, c := range choices {
		if c == q.Answer {
			found = true
		}
	}
	if !found {
		t.Error("choices must contain the correct answer")
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	cfg := config.Defaults()

	if _, err := New(Options{Generator: tableOptions(2).Generator}, nil, &fakeFacts{}, nil, cfg, nil); err == nil {
		t.Error("expected error for missing profile ID")
	}
	if _, err := New(Options{ProfileID: "p1"}, nil, &fakeFacts{}, nil, cfg, nil); err == nil {
		t.Error("expected error for empty generator config")
	}
}
