package tokens

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour with straight (non-premultiplied) alpha.
type Color struct {
	RGB   colorful.Color
	Alpha float64
}

var white = Color{RGB: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1}

// ParseHex converts strings such as "#5B6EFF" or "FFF" into a Color.
// Surrounding punctuation is ignored and three-digit forms are expanded.
// Only the leading hex digits are read, so "12ZZZZ" is 0x000012 and
// "GGGGGG" is black. Any length other than three or six yields white.
func ParseHex(s string) Color {
	rs := []rune(strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
	if len(rs) == 3 {
		rs = []rune{rs[0], rs[0], rs[1], rs[1], rs[2], rs[2]}
	}
	if len(rs) != 6 {
		return white
	}
	v := leadingHex(rs)
	return Color{
		RGB: colorful.Color{
			R: float64(v>>16&0xff) / 255,
			G: float64(v>>8&0xff) / 255,
			B: float64(v&0xff) / 255,
		},
		Alpha: 1,
	}
}

// leadingHex parses the hex digits at the start of rs and stops at the
// first non-hex rune.
func leadingHex(rs []rune) uint64 {
	var v uint64
	for _, r := range rs {
		d, ok := hexDigit(r)
		if !ok {
			break
		}
		v = v<<4 | d
	}
	return v
}

func hexDigit(r rune) (uint64, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint64(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint64(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint64(r-'A') + 10, true
	}
	return 0, false
}

// parseColor is the strict form used for token files: "#RRGGBB" or
// "#RRGGBB/alpha".
func parseColor(text string) (Color, error) {
	hex, alphaText, hasAlpha := strings.Cut(strings.TrimSpace(text), "/")
	hex = strings.TrimSpace(hex)
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB", text)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", text, err)
	}
	alpha := 1.0
	if hasAlpha {
		alpha, err = strconv.ParseFloat(strings.TrimSpace(alphaText), 64)
		if err != nil {
			return Color{}, fmt.Errorf("color %q alpha: %w", text, err)
		}
		if alpha < 0 || alpha > 1 {
			return Color{}, fmt.Errorf("color %q: alpha %v outside [0, 1]", text, alpha)
		}
	}
	return Color{RGB: c, Alpha: alpha}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := parseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return c.RGB.Clamped().Hex()
}

// String returns the token-file form.
func (c Color) String() string {
	if c.Alpha >= 1 {
		return c.Hex()
	}
	return c.Hex() + "/" + strconv.FormatFloat(c.Alpha, 'f', -1, 64)
}

// Faded multiplies the colour's alpha by opacity.
func (c Color) Faded(opacity float64) Color {
	c.Alpha *= min(max(opacity, 0), 1)
	return c
}

// Over composites c on top of an opaque background. Terminals have no
// alpha channel, so translucent tokens must be flattened before use.
func (c Color) Over(bg Color) Color {
	return Color{RGB: bg.RGB.BlendRgb(c.RGB, c.Alpha).Clamped(), Alpha: 1}
}

// RGBA implements color.Color with premultiplied alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	r, g, b, _ = c.RGB.Clamped().RGBA()
	a = uint32(min(max(c.Alpha, 0), 1) * 0xffff)
	return r * a / 0xffff, g * a / 0xffff, b * a / 0xffff, a
}

var _ color.Color = Color{}
