// Package chips models a titled group of selectable chips: stable
// identities, selection bounded by an optional pick limit, and user-added
// chips with near-duplicate rejection.
package chips

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

var (
	ErrEmptyLabel = errors.New("chip label is empty")
	ErrDuplicate  = errors.New("chip label duplicates an existing chip")
	ErrPickLimit  = errors.New("pick limit reached")
	ErrNotFound   = errors.New("chip not found")
)

// MaxLabelLen bounds user-added labels, in runes.
const MaxLabelLen = 24

// Chip is one selectable label.
type Chip struct {
	ID       uuid.UUID
	Label    string
	Selected bool
	Custom   bool // added by the user rather than shipped with the page
}

// Group is an ordered set of chips. A Limit of zero means unlimited; a
// Limit of one makes the group single-choice.
type Group struct {
	Title string
	Limit int

	chips []Chip
}

// NewGroup creates a group with one unselected chip per label.
func NewGroup(title string, limit int, labels ...string) *Group {
	g := &Group{Title: title, Limit: max(limit, 0)}
	for _, l := range labels {
		g.chips = append(g.chips, Chip{ID: uuid.New(), Label: l})
	}
	return g
}

// Chips returns a copy of the chips in display order.
func (g *Group) Chips() []Chip {
	return slices.Clone(g.chips)
}

func (g *Group) Len() int {
	return len(g.chips)
}

// At returns the i-th chip. It panics if i is out of range.
func (g *Group) At(i int) Chip {
	return g.chips[i]
}

// Index returns the position of the chip with the given ID, or -1.
func (g *Group) Index(id uuid.UUID) int {
	return slices.IndexFunc(g.chips, func(c Chip) bool { return c.ID == id })
}

// Find looks a chip up by its exact label.
func (g *Group) Find(label string) (Chip, bool) {
	i := slices.IndexFunc(g.chips, func(c Chip) bool { return c.Label == label })
	if i < 0 {
		return Chip{}, false
	}
	return g.chips[i], true
}

// Selected returns the selected chips in display order.
func (g *Group) Selected() []Chip {
	var out []Chip
	for _, c := range g.chips {
		if c.Selected {
			out = append(out, c)
		}
	}
	return out
}

func (g *Group) selectedCount() int {
	n := 0
	for _, c := range g.chips {
		if c.Selected {
			n++
		}
	}
	return n
}

// Remaining returns how many more chips may be selected, or -1 when the
// group has no limit.
func (g *Group) Remaining() int {
	if g.Limit == 0 {
		return -1
	}
	return max(g.Limit-g.selectedCount(), 0)
}

// Toggle flips the selection of a chip. Deselecting always succeeds;
// selecting past the limit returns ErrPickLimit, except in single-choice
// groups where the previous choice is replaced.
func (g *Group) Toggle(id uuid.UUID) error {
	i := g.Index(id)
	if i < 0 {
		return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	if g.chips[i].Selected {
		g.chips[i].Selected = false
		return nil
	}
	return g.selectAt(i)
}

// Select marks a chip selected. Selecting an already selected chip is a
// no-op.
func (g *Group) Select(id uuid.UUID) error {
	i := g.Index(id)
	if i < 0 {
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	if g.chips[i].Selected {
		return nil
	}
	return g.selectAt(i)
}

func (g *Group) selectAt(i int) error {
	if g.Limit == 1 {
		for j := range g.chips {
			g.chips[j].Selected = false
		}
	} else if g.Limit > 0 && g.selectedCount() >= g.Limit {
		return fmt.Errorf("select %q: %w (%d)", g.chips[i].Label, ErrPickLimit, g.Limit)
	}
	g.chips[i].Selected = true
	return nil
}

// SelectLabels selects the chips with the given labels, in order.
func (g *Group) SelectLabels(labels ...string) error {
	for _, l := range labels {
		c, ok := g.Find(l)
		if !ok {
			return fmt.Errorf("select %q: %w", l, ErrNotFound)
		}
		if err := g.Select(c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Add appends a user-defined chip. The label is trimmed and truncated to
// MaxLabelLen runes; empty labels and labels within one edit of an
// existing label (ignoring case) are rejected.
func (g *Group) Add(label string) (Chip, error) {
	label = strings.TrimSpace(label)
	if r := []rune(label); len(r) > MaxLabelLen {
		label = strings.TrimSpace(string(r[:MaxLabelLen]))
	}
	if label == "" {
		return Chip{}, ErrEmptyLabel
	}
	folded := strings.ToLower(label)
	for _, c := range g.chips {
		if levenshtein.ComputeDistance(folded, strings.ToLower(c.Label)) <= 1 {
			return Chip{}, fmt.Errorf("add %q: %w %q", label, ErrDuplicate, c.Label)
		}
	}
	c := Chip{ID: uuid.New(), Label: label, Custom: true}
	g.chips = append(g.chips, c)
	return c, nil
}

// Remove deletes a user-added chip. Built-in chips cannot be removed.
func (g *Group) Remove(id uuid.UUID) error {
	i := g.Index(id)
	if i < 0 || !g.chips[i].Custom {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	g.chips = slices.Delete(g.chips, i, i+1)
	return nil
}
