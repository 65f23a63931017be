// Package pages holds the static content of the NudgeBud onboarding flow
// and home screen. Every call builds fresh chip groups so callers may
// mutate selection freely.
package pages

import (
	"fmt"

	"github.com/wesen/nudgebud/internal/chips"
)

// OnboardingSteps is the number of onboarding pages.
const OnboardingSteps = 3

const DefaultPickLimit = 3

type Feature struct {
	Title  string
	Detail string
}

// Vibe is one of the home screen moods. Title doubles as the chip label.
type Vibe struct {
	Title    string
	Headline string
	Detail   string
}

type Task struct {
	Title    string
	Subtitle string
}

// Page is one screen of content.
type Page struct {
	ID    string
	Step  int // 1-based onboarding step, 0 outside onboarding
	Title string
	Body  string

	Features []Feature
	Chips    *chips.Group
	ChipHint string
	Note     string

	Vibes []Vibe
	Tasks []Task

	Primary   string
	Secondary string
}

// Vibe returns the vibe backing a chip label.
func (p Page) Vibe(label string) (Vibe, bool) {
	for _, v := range p.Vibes {
		if v.Title == label {
			return v, true
		}
	}
	return Vibe{}, false
}

// must panics on a seed selection error: page content is static, so a
// failure means a label was renamed without updating the selection.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("pages: %v", err))
	}
}

var focusAreas = []string{"Wellness", "Deep work", "Budgeting", "Home", "Relationships", "Learning"}

// Onboarding returns the onboarding pages in order. pickLimit bounds the
// focus-area selection; values below one fall back to DefaultPickLimit.
func Onboarding(pickLimit int) []Page {
	if pickLimit < 1 {
		pickLimit = DefaultPickLimit
	}

	focus := chips.NewGroup("Focus areas", pickLimit, focusAreas...)
	// Preselect from the front of the list, never past the limit. "Home"
	// always starts deselected.
	must(focus.SelectLabels(focusAreas[:min(pickLimit, 3)]...))

	together := chips.NewGroup("Highlights", 0, "Shared schedules", "Gentle reminders", "Celebrate wins")
	for _, c := range together.Chips() {
		must(together.Select(c.ID))
	}

	return []Page{
		{
			ID:    "welcome",
			Step:  1,
			Title: "All your nudges in one calm place",
			Body:  "Plan gentle reminders, share progress with your accountability crew, and celebrate wins without the noise.",
			Features: []Feature{
				{"Thoughtful nudges", "Schedule reminders that respect focus time and avoid overload."},
				{"Shared journeys", "Loop in friends for accountability and see progress at a glance."},
				{"Celebrate growth", "Capture reflections so every tiny win gets the spotlight it deserves."},
			},
			Primary:   "Create my first nudge",
			Secondary: "I’ll explore first",
		},
		{
			ID:        "focus",
			Step:      2,
			Title:     "Tune your nudges",
			Body:      "Choose what you want gentle reminders for and we'll keep the momentum going.",
			Chips:     focus,
			ChipHint:  fmt.Sprintf("Pick %d to get started", pickLimit),
			Note:      "We’ll only nudge you during the hours you choose.",
			Primary:   "Continue",
			Secondary: "I'll do this later",
		},
		{
			ID:      "together",
			Step:    3,
			Title:   "Stay accountable together",
			Body:    "NudgeBud keeps partners in sync with gentle prompts, shared wins, and encouragement that matches your energy.",
			Chips:   together,
			Note:    "Win logged! You both completed the daily walk.",
			Primary: "Jump in",
		},
	}
}

var vibes = []Vibe{
	{
		Title:    "Calm focus",
		Headline: "Settle into calm focus",
		Detail:   "Soft instrumental playlists, gentle reminder cadence, and breathing breaks keep you centered while nudging projects forward.",
	},
	{
		Title:    "Joyful momentum",
		Headline: "Ride joyful momentum",
		Detail:   "Pair high-energy check-ins with celebratory cues so your accountability pod feels the wins as much as the progress.",
	},
	{
		Title:    "Gentle reset",
		Headline: "Give yourself a gentle reset",
		Detail:   "Pause, tidy up loose threads, and spotlight care tasks that help future-you feel supported.",
	},
	{
		Title:    "Bold sprint",
		Headline: "Go all-in on a bold sprint",
		Detail:   "Dial up the urgency, loop in collaborators, and schedule bite-sized milestones to keep momentum blazing.",
	},
}

// Home returns the home page with "Calm focus" chosen.
func Home() Page {
	labels := make([]string, len(vibes))
	for i, v := range vibes {
		labels[i] = v.Title
	}
	g := chips.NewGroup("Pick a vibe", 1, labels...)
	must(g.SelectLabels(vibes[0].Title))

	return Page{
		ID:    "home",
		Title: "Good afternoon, Kai 👋",
		Body:  "Pick a vibe to set the tone for today’s nudges.",
		Chips: g,
		Vibes: append([]Vibe(nil), vibes...),
		Tasks: []Task{
			{"Publish weekly check-in", "Accountability pod • Due tonight"},
			{"Prep progress snapshot", "Share your wins • Due tomorrow"},
			{"Plan playful micro-break", "Joy queue • Friday"},
		},
		Primary: "Open task picker",
	}
}

// All returns the onboarding pages followed by the home page.
func All(pickLimit int) []Page {
	return append(Onboarding(pickLimit), Home())
}

// Index returns the position of the page with the given ID in ps, or -1.
func Index(ps []Page, id string) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}
