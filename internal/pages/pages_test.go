package pages

import (
	"errors"
	"slices"
	"testing"

	"github.com/wesen/nudgebud/internal/chips"
)

func labelsOf(p Page, selectedOnly bool) []string {
	var out []string
	for _, c := range p.Chips.Chips() {
		if !selectedOnly || c.Selected {
			out = append(out, c.Label)
		}
	}
	return out
}

func TestOnboardingOrder(t *testing.T) {
	ps := Onboarding(DefaultPickLimit)
	if len(ps) != OnboardingSteps {
		t.Fatalf("expected %d pages, got %d", OnboardingSteps, len(ps))
	}
	for i, p := range ps {
		if p.Step != i+1 {
			t.Errorf("page %s: expected step %d, got %d", p.ID, i+1, p.Step)
		}
		if p.Title == "" || p.Primary == "" {
			t.Errorf("page %s: missing title or primary action", p.ID)
		}
	}
}

func TestFocusAreasPreselection(t *testing.T) {
	p := Onboarding(3)[1]
	if p.Chips.Limit != 3 {
		t.Errorf("limit: expected 3, got %d", p.Chips.Limit)
	}
	want := []string{"Wellness", "Deep work", "Budgeting"}
	if got := labelsOf(p, true); !slices.Equal(got, want) {
		t.Errorf("preselected: expected %v, got %v", want, got)
	}
	if c, _ := p.Chips.Find("Home"); c.Selected {
		t.Error("Home must start deselected")
	}
	if p.ChipHint != "Pick 3 to get started" {
		t.Errorf("hint: %q", p.ChipHint)
	}
}

func TestSeedSelections(t *testing.T) {
	for _, limit := range []int{1, 2, 3, 6} {
		for _, p := range All(limit) {
			if p.Chips == nil {
				continue
			}
			want := min(limit, 3)
			switch p.ID {
			case "together":
				want = p.Chips.Len()
			case "home":
				want = 1
			}
			if got := len(p.Chips.Selected()); got != want {
				t.Errorf("limit %d, page %s: expected %d preselected, got %d", limit, p.ID, want, got)
			}
		}
	}
}

func TestMustPanicsOnSeedError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an unknown seed label")
		}
	}()
	g := chips.NewGroup("x", 0, "a")
	err := g.SelectLabels("renamed")
	if !errors.Is(err, chips.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	must(err)
}

func TestPickLimitFromConfig(t *testing.T) {
	tests := []struct {
		limit, wantLimit, wantSelected int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{5, 5, 3},
		{0, DefaultPickLimit, 3},
		{-4, DefaultPickLimit, 3},
	}
	for _, tc := range tests {
		p := Onboarding(tc.limit)[1]
		if p.Chips.Limit != tc.wantLimit {
			t.Errorf("Onboarding(%d): limit %d, want %d", tc.limit, p.Chips.Limit, tc.wantLimit)
		}
		if n := len(p.Chips.Selected()); n != tc.wantSelected {
			t.Errorf("Onboarding(%d): %d selected, want %d", tc.limit, n, tc.wantSelected)
		}
	}
}

func TestFreshGroupsPerCall(t *testing.T) {
	a := Onboarding(3)[2]
	b := Onboarding(3)[2]
	if a.Chips == b.Chips {
		t.Fatal("each call must build its own chip groups")
	}
	first := a.Chips.At(0)
	if err := a.Chips.Toggle(first.ID); err != nil {
		t.Fatal(err)
	}
	if !b.Chips.At(0).Selected {
		t.Error("mutating one page's group leaked into another")
	}
}

func TestHomeVibes(t *testing.T) {
	h := Home()
	if h.Chips.Limit != 1 {
		t.Errorf("home vibes must be single-choice, limit %d", h.Chips.Limit)
	}
	sel := h.Chips.Selected()
	if len(sel) != 1 || sel[0].Label != "Calm focus" {
		t.Fatalf("expected Calm focus selected, got %+v", sel)
	}
	v, ok := h.Vibe(sel[0].Label)
	if !ok || v.Headline != "Settle into calm focus" {
		t.Errorf("vibe lookup: %+v %v", v, ok)
	}
	if _, ok := h.Vibe("Sleepy"); ok {
		t.Error("unknown vibe should not be found")
	}
	if !slices.Equal(labelsOf(h, false), []string{"Calm focus", "Joyful momentum", "Gentle reset", "Bold sprint"}) {
		t.Errorf("vibe order: %v", labelsOf(h, false))
	}
}

func TestAllAndIndex(t *testing.T) {
	ps := All(3)
	if len(ps) != OnboardingSteps+1 {
		t.Fatalf("expected %d pages, got %d", OnboardingSteps+1, len(ps))
	}
	if Index(ps, "home") != 3 || Index(ps, "focus") != 1 || Index(ps, "nope") != -1 {
		t.Error("Index returned unexpected positions")
	}
}
