package chips

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func focusAreas() *Group {
	return NewGroup("Focus areas", 3,
		"Wellness", "Deep work", "Budgeting", "Home", "Relationships", "Learning")
}

func selectedLabels(g *Group) []string {
	var out []string
	for _, c := range g.Selected() {
		out = append(out, c.Label)
	}
	return out
}

func TestNewGroup(t *testing.T) {
	g := focusAreas()
	if g.Len() != 6 {
		t.Fatalf("expected 6 chips, got %d", g.Len())
	}
	seen := map[uuid.UUID]bool{}
	for i, c := range g.Chips() {
		if c.Selected || c.Custom {
			t.Errorf("chip %d: expected unselected built-in, got %+v", i, c)
		}
		if seen[c.ID] {
			t.Errorf("chip %d: duplicate ID %s", i, c.ID)
		}
		seen[c.ID] = true
		if g.Index(c.ID) != i {
			t.Errorf("Index(%s): expected %d, got %d", c.Label, i, g.Index(c.ID))
		}
	}
	if g.Index(uuid.New()) != -1 {
		t.Error("unknown ID should have index -1")
	}
}

func TestChipsReturnsCopy(t *testing.T) {
	g := focusAreas()
	cs := g.Chips()
	cs[0].Selected = true
	if g.At(0).Selected {
		t.Error("mutating the Chips() result must not affect the group")
	}
}

func TestTogglePickLimit(t *testing.T) {
	g := focusAreas()
	for _, l := range []string{"Wellness", "Deep work", "Budgeting"} {
		c, _ := g.Find(l)
		if err := g.Toggle(c.ID); err != nil {
			t.Fatalf("toggle %s: %v", l, err)
		}
	}
	if g.Remaining() != 0 {
		t.Errorf("Remaining: expected 0, got %d", g.Remaining())
	}

	home, _ := g.Find("Home")
	err := g.Toggle(home.ID)
	if !errors.Is(err, ErrPickLimit) {
		t.Fatalf("expected ErrPickLimit, got %v", err)
	}
	if g.At(g.Index(home.ID)).Selected {
		t.Error("chip over the limit must stay unselected")
	}

	// Deselecting frees a slot.
	well, _ := g.Find("Wellness")
	if err := g.Toggle(well.ID); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if err := g.Toggle(home.ID); err != nil {
		t.Fatalf("select after freeing a slot: %v", err)
	}
	want := []string{"Deep work", "Budgeting", "Home"}
	if got := selectedLabels(g); !slices.Equal(got, want) {
		t.Errorf("selected: expected %v, got %v", want, got)
	}
}

func TestToggleUnlimited(t *testing.T) {
	g := NewGroup("Features", 0, "Shared schedules", "Gentle reminders", "Celebrate wins")
	for _, c := range g.Chips() {
		if err := g.Toggle(c.ID); err != nil {
			t.Fatalf("toggle %s: %v", c.Label, err)
		}
	}
	if len(g.Selected()) != 3 {
		t.Errorf("expected all 3 selected, got %d", len(g.Selected()))
	}
	if g.Remaining() != -1 {
		t.Errorf("unlimited Remaining: expected -1, got %d", g.Remaining())
	}
}

func TestToggleUnknown(t *testing.T) {
	g := focusAreas()
	if err := g.Toggle(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := g.Select(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSingleChoiceReplaces(t *testing.T) {
	g := NewGroup("Vibe", 1, "Calm focus", "Joyful momentum", "Gentle reset")
	calm, _ := g.Find("Calm focus")
	joy, _ := g.Find("Joyful momentum")

	if err := g.Select(calm.ID); err != nil {
		t.Fatal(err)
	}
	if err := g.Toggle(joy.ID); err != nil {
		t.Fatalf("single choice toggle should replace, got %v", err)
	}
	if got := selectedLabels(g); !slices.Equal(got, []string{"Joyful momentum"}) {
		t.Errorf("selected: expected [Joyful momentum], got %v", got)
	}

	// Selecting the current choice again is a no-op, toggling clears it.
	if err := g.Select(joy.ID); err != nil {
		t.Fatal(err)
	}
	if err := g.Toggle(joy.ID); err != nil {
		t.Fatal(err)
	}
	if len(g.Selected()) != 0 {
		t.Errorf("expected empty selection, got %v", selectedLabels(g))
	}
}

func TestSelectLabels(t *testing.T) {
	g := focusAreas()
	if err := g.SelectLabels("Wellness", "Budgeting"); err != nil {
		t.Fatal(err)
	}
	if got := selectedLabels(g); !slices.Equal(got, []string{"Wellness", "Budgeting"}) {
		t.Errorf("selected: %v", got)
	}
	if err := g.SelectLabels("Gardening"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := g.SelectLabels("Home", "Learning"); !errors.Is(err, ErrPickLimit) {
		t.Errorf("expected ErrPickLimit, got %v", err)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		label   string
		want    string
		wantErr error
	}{
		{"  Fitness ", "Fitness", nil},
		{"", "", ErrEmptyLabel},
		{"   ", "", ErrEmptyLabel},
		{"home", "", ErrDuplicate},
		{"Wellnes", "", ErrDuplicate},
		{"Learnings", "", ErrDuplicate},
		{"Hobby", "Hobby", nil},
		{strings.Repeat("x", MaxLabelLen+10), strings.Repeat("x", MaxLabelLen), nil},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			g := focusAreas()
			c, err := g.Add(tc.label)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if g.Len() != 6 {
					t.Errorf("rejected add must not grow the group, len %d", g.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Label != tc.want || !c.Custom || c.Selected {
				t.Errorf("added chip: %+v", c)
			}
			if g.Len() != 7 || g.At(6).ID != c.ID {
				t.Errorf("added chip should be appended last")
			}
		})
	}
}

func TestAddThenDuplicateOfAdded(t *testing.T) {
	g := focusAreas()
	if _, err := g.Add("Fitness"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Add("FITNESS"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	g := focusAreas()
	c, err := g.Add("Fitness")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Remove(c.ID); err != nil {
		t.Fatalf("remove custom: %v", err)
	}
	if g.Len() != 6 {
		t.Errorf("expected 6 chips after remove, got %d", g.Len())
	}
	if err := g.Remove(g.At(0).ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("built-in chips cannot be removed, got %v", err)
	}
}
