// Package theme provides the color themes of the daygrid TUI.
//
// A theme only colors the chrome around the grid. Activity colors come from
// the plan and are drawn on top of whatever theme is active.
package theme

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "mocha"

// ErrUnknownTheme is returned by Load for a name with no embedded file.
var ErrUnknownTheme = errors.New("unknown theme")

//go:embed embedded/*.toml
var embeddedThemes embed.FS

var names = []string{"mocha", "macchiato", "frappe", "latte", "light"}

// Theme is one embedded theme file.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // unfilled cells, unit chips
	BgSelection string `toml:"bg_selection"` // selected activity row
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // hour labels, disabled buttons
	Accent      string `toml:"accent"`   // title, active unit, borders
	Full        string `toml:"full"`     // full-day badge
	Warning     string `toml:"warning"`  // over-allocation badge, status line

	Modal ModalTheme `toml:"modal"`
}

// ModalTheme holds optional modal overrides. Empty fields follow the base
// colors.
type ModalTheme struct {
	Bg     string `toml:"bg"`
	Border string `toml:"border"`
}

// Load reads the embedded theme called name. An empty name loads
// DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}
	if !IsAvailable(name) {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("reading theme %q: %w", name, err)
	}
	t, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return t, nil
}

func parse(data []byte) (*Theme, error) {
	var t Theme
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// validate checks that every required role is a hex color and that the
// optional modal overrides are hex when set.
func (t *Theme) validate() error {
	required := []struct {
		key, value string
	}{
		{"bg", t.Bg},
		{"bg_highlight", t.BgHighlight},
		{"bg_selection", t.BgSelection},
		{"fg", t.Fg},
		{"fg_muted", t.FgMuted},
		{"accent", t.Accent},
		{"full", t.Full},
		{"warning", t.Warning},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing %s", r.key)
		}
		if _, err := colorful.Hex(r.value); err != nil {
			return fmt.Errorf("%s: %q is not a hex color", r.key, r.value)
		}
	}
	for key, value := range map[string]string{"modal.bg": t.Modal.Bg, "modal.border": t.Modal.Border} {
		if value == "" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%s: %q is not a hex color", key, value)
		}
	}
	return nil
}

// Available returns the embedded theme names in display order.
func Available() []string {
	return slices.Clone(names)
}

// IsAvailable reports whether name is an embedded theme. Case is ignored.
func IsAvailable(name string) bool {
	return slices.Contains(names, strings.ToLower(name))
}
