package wireframe

import (
	"strings"
	"testing"

	"github.com/wesen/nudgebud/pkg/cellbuf"
	"github.com/wesen/nudgebud/pkg/flowlayout"
)

func arrange(width float64, sizes ...flowlayout.Size) flowlayout.Arrangement {
	items := make([]flowlayout.Item, len(sizes))
	for i, s := range sizes {
		items[i] = flowlayout.Fixed(s.W, s.H)
	}
	return flowlayout.Arrange(width, items, flowlayout.Spacing{Horizontal: 1, Vertical: 1})
}

func TestDrawTwoRows(t *testing.T) {
	arr := arrange(12, flowlayout.Size{W: 5, H: 3}, flowlayout.Size{W: 6, H: 3}, flowlayout.Size{W: 4, H: 3})
	buf := Draw(arr, Options{Labels: []string{"ab", "cde", "f"}})

	want := strings.Join([]string{
		"╭───╮╌╭────╮",
		"│ab │ │cde │",
		"╰───╯ ╰────╯",
		"╎          ╎",
		"╭──╮       ╎",
		"│f │       ╎",
		"╰──╯╌╌╌╌╌╌╌┘",
	}, "\n")
	if got := buf.Plain(); got != want {
		t.Fatalf("Draw:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawOverflowStyle(t *testing.T) {
	arr := arrange(4, flowlayout.Size{W: 7, H: 3})
	buf := Draw(arr, Options{})

	if buf.W != 7 || buf.H != 3 {
		t.Fatalf("expected buffer to grow to 7x3, got %dx%d", buf.W, buf.H)
	}
	if buf.Cells[0][0].Style != StyleOverflow {
		t.Errorf("overflowing item should use StyleOverflow, got %d", buf.Cells[0][0].Style)
	}
	if buf.Cells[1][1].Ch != '0' || buf.Cells[1][1].Style != StyleLabel {
		t.Errorf("expected index label '0', got %q/%d", buf.Cells[1][1].Ch, buf.Cells[1][1].Style)
	}
}

func TestDrawEmpty(t *testing.T) {
	buf := Draw(flowlayout.Arrange(40, nil, flowlayout.Spacing{}), Options{GridX: 2, GridY: 2})
	if buf.W != 0 || buf.H != 0 {
		t.Fatalf("expected empty buffer, got %dx%d", buf.W, buf.H)
	}
}

func TestDrawGrid(t *testing.T) {
	buf := cellbuf.New(5, 3, StyleBG)
	DrawGrid(buf, 2, 2, StyleGrid)
	want := "· · ·\n     \n· · ·"
	if got := buf.Plain(); got != want {
		t.Fatalf("grid: got %q, want %q", got, want)
	}

	off := cellbuf.New(3, 1, StyleBG)
	DrawGrid(off, 0, 1, StyleGrid)
	if off.Plain() != "   " {
		t.Error("zero spacing should disable the grid")
	}
}

func TestDrawLabelClipped(t *testing.T) {
	arr := arrange(40, flowlayout.Size{W: 5, H: 3})
	buf := Draw(arr, Options{Labels: []string{"Wellness"}})
	if row := strings.Split(buf.Plain(), "\n")[1]; row != "│Wel│" {
		t.Errorf("expected clipped label row %q, got %q", "│Wel│", row)
	}
}
