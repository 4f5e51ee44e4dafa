package display

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorScheme is the requested initial color scheme.
type ColorScheme string

const (
	SchemeAuto  ColorScheme = "auto"
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// ParseColorScheme accepts "auto", "light" or "dark" in any case. The empty
// string means auto.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch ColorScheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeAuto:
		return SchemeAuto, nil
	case SchemeLight:
		return SchemeLight, nil
	case SchemeDark:
		return SchemeDark, nil
	default:
		return "", fmt.Errorf("display: unknown color scheme %q", s)
	}
}

// PrefersDark resolves the scheme to the system preference. For auto it
// inspects the desktop environment through lookup: a GTK theme ending in
// ":dark", or a COLORFGBG background color in the dark range.
func (c ColorScheme) PrefersDark(lookup func(string) (string, bool)) bool {
	switch c {
	case SchemeDark:
		return true
	case SchemeLight:
		return false
	}
	if lookup == nil {
		return false
	}
	if theme, ok := lookup("GTK_THEME"); ok && strings.HasSuffix(strings.ToLower(theme), ":dark") {
		return true
	}
	if fgbg, ok := lookup("COLORFGBG"); ok {
		parts := strings.Split(fgbg, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			return bg < 7 || bg == 8
		}
	}
	return false
}
