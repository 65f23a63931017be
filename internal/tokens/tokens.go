// Package tokens holds the NudgeBud design tokens: the light and dark
// palettes, corner radii and the card shadow. The defaults live in an
// embedded TOML file; a user file may override any subset of keys.
package tokens

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed tokens.toml
var defaultTokens []byte

// ErrUnknownScheme is returned by ParseScheme for anything other than
// "light" or "dark".
var ErrUnknownScheme = errors.New("unknown color scheme")

// Scheme selects the light or dark palette.
type Scheme int

const (
	Light Scheme = iota
	Dark
)

func (s Scheme) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other scheme.
func (s Scheme) Toggle() Scheme {
	if s == Dark {
		return Light
	}
	return Dark
}

// ParseScheme accepts "light" or "dark" in any case.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// Palette is the set of semantic colours for one scheme.
type Palette struct {
	Surface                Color `toml:"surface"`
	ElevatedSurface        Color `toml:"elevated_surface"`
	Primary                Color `toml:"primary"`
	OnPrimary              Color `toml:"on_primary"`
	OnSurface              Color `toml:"on_surface"`
	Outline                Color `toml:"outline"`
	ChipSelectedBackground Color `toml:"chip_selected_background"`
}

type Radii struct {
	Medium float64 `toml:"medium"`
}

// CardShadow describes the drop shadow under elevated cards. The base
// colour is shared; only the opacity depends on the scheme.
type CardShadow struct {
	Color        Color   `toml:"color"`
	LightOpacity float64 `toml:"light_opacity"`
	DarkOpacity  float64 `toml:"dark_opacity"`
	Radius       float64 `toml:"radius"`
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
}

type Shadows struct {
	Card CardShadow `toml:"card"`
}

// Tokens is the full token set.
type Tokens struct {
	Light   Palette `toml:"light"`
	Dark    Palette `toml:"dark"`
	Radii   Radii   `toml:"radii"`
	Shadows Shadows `toml:"shadows"`
}

// Shadow is a card shadow resolved for one scheme.
type Shadow struct {
	Color  Color
	Radius float64
	X, Y   float64
}

// Palette returns the palette for the scheme.
func (t Tokens) Palette(s Scheme) Palette {
	if s == Dark {
		return t.Dark
	}
	return t.Light
}

// CardShadow resolves the card shadow for the scheme.
func (t Tokens) CardShadow(s Scheme) Shadow {
	c := t.Shadows.Card
	opacity := c.LightOpacity
	if s == Dark {
		opacity = c.DarkOpacity
	}
	return Shadow{Color: c.Color.Faded(opacity), Radius: c.Radius, X: c.X, Y: c.Y}
}

var defaults = sync.OnceValues(func() (Tokens, error) {
	var t Tokens
	if err := decode(bytes.NewReader(defaultTokens), &t); err != nil {
		return Tokens{}, fmt.Errorf("embedded tokens: %w", err)
	}
	return t, nil
})

// Default returns the built-in token set.
func Default() Tokens {
	t, err := defaults()
	if err != nil {
		panic(err)
	}
	return t
}

// Load decodes a token file on top of the defaults. Unknown keys and
// malformed colours are errors.
func Load(r io.Reader) (Tokens, error) {
	t := Default()
	if err := decode(r, &t); err != nil {
		return Tokens{}, err
	}
	return t, nil
}

// LoadFile is Load for a path. An empty path returns the defaults.
func LoadFile(path string) (Tokens, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Tokens{}, fmt.Errorf("open tokens: %w", err)
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return Tokens{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func decode(r io.Reader, t *Tokens) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("decode tokens: %s", strict.String())
		}
		return fmt.Errorf("decode tokens: %w", err)
	}
	return nil
}

// Theme pairs the token set with the active scheme.
type Theme struct {
	Scheme Scheme
	Tokens Tokens
}

func (th Theme) Palette() Palette { return th.Tokens.Palette(th.Scheme) }

func (th Theme) Card() Shadow { return th.Tokens.CardShadow(th.Scheme) }

// Toggled returns the theme with the other scheme.
func (th Theme) Toggled() Theme {
	th.Scheme = th.Scheme.Toggle()
	return th
}
