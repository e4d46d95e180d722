package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/store"
)

func testDeps() Deps {
	return Deps{
		Profile: store.Profile{ID: "p1", Name: "Ana", Country: "NZ", YearGrade: "y3"},
	}
}

func TestHomeScreen_Greeting(t *testing.T) {
	h := New(testDeps())
	view := h.View(80, 24)
	if !strings.Contains(view, "Ana") {
		t.Error("view should greet the profile by name")
	}
	if !strings.Contains(view, "New Zealand") {
		t.Error("view should show the curriculum placement")
	}
}

func TestHomeScreen_NoPlacementHint(t *testing.T) {
	deps := testDeps()
	deps.Profile.Country = ""
	deps.Profile.YearGrade = ""
	view := New(deps).View(80, 24)
	if !strings.Contains(view, "Set a country and year") {
		t.Error("an unplaced profile should see the setup hint")
	}
}

func TestHomeScreen_EnterPushesScreen(t *testing.T) {
	h := New(testDeps())
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from selecting the first item")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("selecting Practice should push a screen")
	}
}

func TestHomeScreen_QuitItem(t *testing.T) {
	h := New(testDeps())
	// Walk to the last item (Quit) and select it.
	for i := 0; i < 4; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from selecting Quit")
	}
}
