package recommend

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/quizgen"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screens/play"
	"github.com/mathdash/mathdash/internal/tracker"
)

func testRecs() []tracker.RecommendedSkill {
	return []tracker.RecommendedSkill{
		{
			SkillID:     "NB10",
			Label:       "Number bonds to 10",
			Proficiency: mastery.NotStarted,
			Reason:      tracker.ReasonNotStarted,
			Action:      quizgen.Config{Topic: curriculum.TopicBonds, BondTarget: 10},
		},
		{
			SkillID:     "TABLE_4",
			Label:       "4 times table",
			Proficiency: mastery.Proficient,
			Coverage:    80,
			Accuracy:    75,
			Reason:      tracker.ReasonNearlyThere,
			Action: quizgen.Config{
				Operations:      []curriculum.Operation{curriculum.OpMultiplication},
				SelectedNumbers: []int{4},
			},
		},
	}
}

func loadedScreen(recs []tracker.RecommendedSkill) *RecommendScreen {
	s := New(nil, "p1", play.Deps{})
	s.Update(recsLoadedMsg{recs: recs})
	return s
}

func TestView_Loading(t *testing.T) {
	s := New(nil, "p1", play.Deps{})
	if !strings.Contains(s.View(80, 24), "Looking at your scores") {
		t.Error("expected the loading message before data arrives")
	}
}

func TestView_ListsSuggestions(t *testing.T) {
	s := loadedScreen(testRecs())
	view := s.View(80, 24)

	if !strings.Contains(view, "Number bonds to 10") {
		t.Error("view should list the first suggestion")
	}
	if !strings.Contains(view, "(new!)") {
		t.Error("a not-started skill should be tagged as new")
	}
	if !strings.Contains(view, "(nearly there)") {
		t.Error("a proficient skill should be tagged as nearly there")
	}
}

func TestView_AllMastered(t *testing.T) {
	s := loadedScreen(nil)
	if !strings.Contains(s.View(80, 24), "All mastered!") {
		t.Error("an empty list should celebrate instead of showing nothing")
	}
}

func TestEnterLaunchesPractice(t *testing.T) {
	s := loadedScreen(testRecs())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("Enter should push the play screen")
	}
	if _, ok := msg.Screen.(*play.PlayScreen); !ok {
		t.Errorf("pushed screen is %T, want *play.PlayScreen", msg.Screen)
	}
}

func TestEscPops(t *testing.T) {
	s := loadedScreen(testRecs())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command from Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Esc should pop the recommendations screen")
	}
}
