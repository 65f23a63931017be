package cellbuf

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

// Test style keys
const (
	testBG   StyleKey = 0
	testRed  StyleKey = 1
	testBlue StyleKey = 2
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

func TestNew(t *testing.T) {
	b := New(10, 5, testBG)
	if b.W != 10 || b.H != 5 {
		t.Fatalf("expected 10x5, got %dx%d", b.W, b.H)
	}
	if b.Bounds() != image.Rect(0, 0, 10, 5) {
		t.Errorf("bounds: expected (0,0)-(10,5), got %v", b.Bounds())
	}
	for y := 0; y < 5; y++ {
		if len(b.Cells[y]) != 10 {
			t.Fatalf("row %d: expected 10 cols, got %d", y, len(b.Cells[y]))
		}
		for x := 0; x < 10; x++ {
			c := b.Cells[y][x]
			if c.Ch != ' ' || c.Style != testBG {
				t.Fatalf("cell (%d,%d): expected space/testBG, got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
	if b.Render(testStyles()) != "" {
		t.Error("empty buffer should render as empty string")
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(10, 5, testBG)
	b.Set(-1, 0, 'X', testRed)
	b.Set(0, -1, 'X', testRed)
	b.Set(10, 0, 'X', testRed)
	b.Set(0, 5, 'X', testRed)
	if strings.ContainsRune(b.Plain(), 'X') {
		t.Fatal("out-of-bounds Set modified the buffer")
	}
}

func TestSetStringCountsRunes(t *testing.T) {
	b := New(8, 1, testBG)
	b.SetString(1, 0, "·é·", testBlue)
	if got := b.Plain(); got != " ·é·    " {
		t.Fatalf("expected one cell per rune, got %q", got)
	}
}

func TestSetStringClipsAtBounds(t *testing.T) {
	b := New(5, 1, testBG)
	b.SetString(3, 0, "Hello", testRed)
	if got := b.Plain(); got != "   He" {
		t.Errorf("expected clipped %q, got %q", "   He", got)
	}
}

func TestFill(t *testing.T) {
	b := New(5, 3, testBG)
	b.Set(2, 1, 'X', testRed)
	b.Fill(testBlue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if c := b.Cells[y][x]; c.Ch != ' ' || c.Style != testBlue {
				t.Fatalf("Fill: cell (%d,%d) = %q/%d, want space/testBlue", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestBox(t *testing.T) {
	b := New(6, 4, testBG)
	b.Box(image.Rect(0, 0, 5, 3), RoundedBox, testRed)
	want := strings.Join([]string{
		"╭───╮ ",
		"│   │ ",
		"╰───╯ ",
		"      ",
	}, "\n")
	if got := b.Plain(); got != want {
		t.Fatalf("Box:\n%s\nwant:\n%s", got, want)
	}
	if b.Cells[0][0].Style != testRed || b.Cells[1][1].Style != testBG {
		t.Error("Box should style the outline only")
	}
}

func TestBoxDegenerate(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
		want string
	}{
		{"single row", image.Rect(0, 0, 4, 1), "────\n    "},
		{"single column", image.Rect(1, 0, 2, 2), " │  \n │  "},
		{"empty", image.Rect(2, 1, 2, 1), "    \n    "},
	}
	for _, tc := range tests {
		b := New(4, 2, testBG)
		b.Box(tc.r, RoundedBox, testRed)
		if got := b.Plain(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBoxClipsAtBounds(t *testing.T) {
	b := New(3, 2, testBG)
	b.Box(image.Rect(1, 0, 6, 4), DashedBox, testRed) // should not panic
	if b.Cells[0][1].Ch != '┌' {
		t.Errorf("expected top-left corner at (1,0), got %q", b.Cells[0][1].Ch)
	}
}

func TestRenderLineCount(t *testing.T) {
	b := New(20, 5, testBG)
	lines := strings.Split(b.Render(testStyles()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestRenderContent(t *testing.T) {
	b := New(10, 1, testBG)
	b.SetString(2, 0, "Hi", testRed)
	if result := b.Render(testStyles()); !strings.Contains(result, "Hi") {
		t.Fatalf("rendered output doesn't contain 'Hi': %q", result)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, testBG).Render(styles)

	alt := New(50, 1, testBG)
	for x := 0; x < 50; x++ {
		if x%2 == 0 {
			alt.Set(x, 0, '.', testRed)
		} else {
			alt.Set(x, 0, '.', testBlue)
		}
	}
	alternating := alt.Render(styles)

	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	if result := b.Render(testStyles()); result != "plain" {
		t.Fatalf("missing style should render as plain text, got %q", result)
	}
}

func BenchmarkRender120x40(b *testing.B) {
	styles := testStyles()
	buf := New(120, 40, testBG)
	for y := 0; y < 40; y += 4 {
		for x := 0; x < 120; x += 14 {
			buf.Box(image.Rect(x, y, x+12, y+3), RoundedBox, testRed)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}
