package model

import (
	"fmt"
	"strings"
)

// ThemeID identifies one of the built-in color themes.
type ThemeID string

const (
	ThemeBlue    ThemeID = "blue"
	ThemeEmerald ThemeID = "emerald"
	ThemeRose    ThemeID = "rose"
	ThemeViolet  ThemeID = "violet"
	ThemeAmber   ThemeID = "amber"
)

// DefaultTheme is selected when nothing valid is stored.
const DefaultTheme = ThemeBlue

// Theme describes a theme: a display name plus four style tokens. The tokens
// are hex colors; the terminal UI turns them into lipgloss styles.
type Theme struct {
	ID      ThemeID
	Name    string
	Primary string
	Bg      string
	Text    string
	Shadow  string
}

var themes = map[ThemeID]Theme{
	ThemeBlue: {
		ID: ThemeBlue, Name: "Ocean Blue",
		Primary: "#2563eb", Bg: "#eff6ff", Text: "#2563eb", Shadow: "#bfdbfe",
	},
	ThemeEmerald: {
		ID: ThemeEmerald, Name: "Emerald Forest",
		Primary: "#059669", Bg: "#ecfdf5", Text: "#059669", Shadow: "#a7f3d0",
	},
	ThemeRose: {
		ID: ThemeRose, Name: "Sunset Rose",
		Primary: "#f43f5e", Bg: "#fff1f2", Text: "#f43f5e", Shadow: "#fecdd3",
	},
	ThemeViolet: {
		ID: ThemeViolet, Name: "Royal Violet",
		Primary: "#7c3aed", Bg: "#f5f3ff", Text: "#7c3aed", Shadow: "#ddd6fe",
	},
	ThemeAmber: {
		ID: ThemeAmber, Name: "Golden Amber",
		Primary: "#f59e0b", Bg: "#fffbeb", Text: "#f59e0b", Shadow: "#fde68a",
	},
}

func init() {
	for _, id := range ThemeIDs() {
		t, ok := themes[id]
		if !ok || t.ID != id {
			panic(fmt.Sprintf("model: theme %q has no descriptor", id))
		}
	}
}

// ThemeIDs returns every theme id in presentation order.
func ThemeIDs() []ThemeID {
	return []ThemeID{ThemeBlue, ThemeEmerald, ThemeRose, ThemeViolet, ThemeAmber}
}

// Valid reports whether id is a member of the closed theme set.
func (id ThemeID) Valid() bool {
	_, ok := themes[id]
	return ok
}

// Theme returns the descriptor for id.
func (id ThemeID) Theme() (Theme, error) {
	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, string(id))
	}
	return t, nil
}

// MustTheme returns the descriptor for id, falling back to the default theme.
func (id ThemeID) MustTheme() Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ParseThemeID resolves a theme id, case-insensitively.
func ParseThemeID(s string) (ThemeID, error) {
	id := ThemeID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return id, nil
}
