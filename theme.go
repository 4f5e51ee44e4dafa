package folio

// ThemeMode selects the light or dark color scheme.
type ThemeMode uint8

const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

// String returns "light" or "dark".
func (m ThemeMode) String() string {
	if m == ThemeDark {
		return "dark"
	}
	return "light"
}

// DarkClass is the document-level class applied while the dark theme is
// active.
const DarkClass = "dark"

// ClassTarget receives the document-level theme marker.
type ClassTarget interface {
	SetClass(name string, on bool)
}

// ThemeController holds the page's color scheme. It is seeded once from the
// system preference and afterwards changes only through Toggle. Nothing is
// persisted; a fresh controller derives the mode from the preference again.
type ThemeController struct {
	mode        ThemeMode
	target      ClassTarget
	initialized bool
}

// NewThemeController creates a light-mode controller that marks target.
func NewThemeController(target ClassTarget) *ThemeController {
	return &ThemeController{target: target}
}

// Init applies the system preference and marks the target to match. Only
// the first call has an effect.
func (c *ThemeController) Init(prefersDark bool) {
	if c.initialized {
		return
	}
	c.initialized = true
	if prefersDark {
		c.set(ThemeDark)
	} else {
		c.set(ThemeLight)
	}
}

// Initialized reports whether Init has run.
func (c *ThemeController) Initialized() bool {
	return c.initialized
}

// Mode returns the current mode.
func (c *ThemeController) Mode() ThemeMode {
	return c.mode
}

// Toggle flips between light and dark and returns the new mode.
func (c *ThemeController) Toggle() ThemeMode {
	if c.mode == ThemeDark {
		c.set(ThemeLight)
	} else {
		c.set(ThemeDark)
	}
	return c.mode
}

func (c *ThemeController) set(m ThemeMode) {
	c.mode = m
	if c.target != nil {
		c.target.SetClass(DarkClass, m == ThemeDark)
	}
}
