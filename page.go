package folio

import (
	"fmt"
	"os"
)

// DefaultNavSolidAt is the scroll offset past which the navigation bar gets
// a solid background.
const DefaultNavSolidAt = 50

const scrollIntoViewDuration = 0.6

// PageConfig describes the page's fixed structure.
type PageConfig struct {
	// Sections are the navigation sections in declaration order.
	Sections []SectionDescriptor
	// InitialSection is the active section before the first evaluation.
	// Defaults to the first section's id.
	InitialSection string
	// HeroID is the element moved by the parallax effect.
	HeroID string
	// NavSolidAt overrides DefaultNavSolidAt when positive.
	NavSolidAt int
	// Navigator follows external project links. May be nil.
	Navigator Navigator
}

// Preferences are the environment settings read once at mount.
type Preferences struct {
	PrefersDark bool
}

// ViewState is a snapshot of everything the rendering layer needs from the
// engine for one frame.
type ViewState struct {
	ScrollY       int
	Pointer       PointerPosition
	ActiveSection string
	NavSolid      bool
	Parallax      Parallax
	Theme         ThemeMode
	Modal         ModalState
	Project       *ProjectRecord
	ModalFade     float64
}

// Page owns all view state for one mounted page. Components receive the
// page's document and window explicitly; nothing is shared across pages.
type Page struct {
	doc *Document
	win *Window
	cfg PageConfig

	Tracker  *ViewportTracker
	Sections *SectionActivator
	Parallax *ParallaxAnimator
	Reveal   *RevealAnimator
	Theme    *ThemeController
	Modal    *ModalController

	// OnError receives failures from project selection. Defaults to
	// printing on stderr.
	OnError func(error)

	mounted bool
}

// NewPage creates an unmounted page over doc.
func NewPage(doc *Document, cfg PageConfig) *Page {
	if cfg.NavSolidAt <= 0 {
		cfg.NavSolidAt = DefaultNavSolidAt
	}
	initial := cfg.InitialSection
	if initial == "" && len(cfg.Sections) > 0 {
		initial = cfg.Sections[0].ID
	}
	p := &Page{
		doc:      doc,
		cfg:      cfg,
		Sections: NewSectionActivator(initial, cfg.Sections...),
		Parallax: NewParallaxAnimator(cfg.HeroID),
		Reveal:   NewRevealAnimator(),
		Theme:    NewThemeController(doc),
	}
	p.Tracker = NewViewportTracker(p.recompute)
	return p
}

// Document returns the page's document.
func (p *Page) Document() *Document {
	return p.doc
}

// Window returns the window the page is mounted in, or nil.
func (p *Page) Window() *Window {
	return p.win
}

// Mounted reports whether the page is mounted.
func (p *Page) Mounted() bool {
	return p.mounted
}

// Mount attaches the page to w: a fresh theme controller is seeded from
// prefs, the viewport tracker acquires its listeners, and one evaluation runs
// so that content already in view is highlighted and revealed. Mounting twice
// is a no-op.
func (p *Page) Mount(w *Window, prefs Preferences) {
	if p.mounted {
		return
	}
	p.mounted = true
	p.win = w
	p.Modal = NewModalController(w, p.cfg.Navigator)
	p.Modal.OnChange = func(state ModalState, project *ProjectRecord) {
		if project != nil {
			w.debugf("modal %s %q", state, project.Title)
			return
		}
		w.debugf("modal %s (%s)", state, p.Modal.LastCloseReason())
	}
	p.Theme = NewThemeController(p.doc)
	p.Theme.Init(prefs.PrefersDark)
	p.Tracker.Mount(w)
	p.evaluate()
	w.debugf("mounted: theme=%s section=%q", p.Theme.Mode(), p.Sections.Active())
}

// Unmount releases every listener the page holds: the viewport tracker's
// subscriptions and, if the overlay is open, the Escape listener.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.Modal.Close(CloseUnmount)
	p.Tracker.Unmount()
	p.win.debugf("unmounted")
	p.mounted = false
}

// Update advances presentation tweens by dt seconds.
func (p *Page) Update(dt float32) {
	p.Reveal.Update(dt)
	if p.Modal != nil {
		p.Modal.Update(dt)
	}
}

// Refresh re-runs every scroll-driven computation, e.g. after the document
// was laid out again.
func (p *Page) Refresh() {
	if p.mounted {
		p.evaluate()
	}
}

// recompute is the tracker's change callback.
func (p *Page) recompute(event EventType) {
	switch event {
	case EventScroll, EventResize:
		p.evaluate()
	}
}

func (p *Page) evaluate() {
	scrollY := p.Tracker.ScrollY()
	vh := p.Tracker.ViewportHeight()
	if p.Sections.Evaluate(p.doc, scrollY, vh) {
		p.win.debugf("active section %q at scroll %d", p.Sections.Active(), scrollY)
	}
	p.Parallax.Evaluate(p.doc, scrollY)
	for _, id := range p.Reveal.Evaluate(p.doc, scrollY, vh) {
		p.win.debugf("revealed %q", id)
	}
}

// State returns the current view state.
func (p *Page) State() ViewState {
	vs := ViewState{
		ScrollY:       p.Tracker.ScrollY(),
		Pointer:       p.Tracker.Pointer(),
		ActiveSection: p.Sections.Active(),
		Parallax:      p.Parallax.Current(),
		Theme:         p.Theme.Mode(),
	}
	vs.NavSolid = vs.ScrollY > p.cfg.NavSolidAt
	if p.Modal != nil {
		vs.Modal = p.Modal.State()
		vs.Project = p.Modal.Project()
		vs.ModalFade = p.Modal.Fade()
	}
	return vs
}

// Revealed reports whether the element with the given id has been revealed.
// Elements that are not tracked count as revealed.
func (p *Page) Revealed(id string) bool {
	return p.Reveal.Visible(id)
}

// Presence returns the reveal presentation values of id.
func (p *Page) Presence(id string) Presence {
	return p.Reveal.Presence(id)
}

// ScrollToSection smooth-scrolls to the section with the given id. It
// reports false when the section is not mounted.
func (p *Page) ScrollToSection(id string) bool {
	if !p.mounted {
		return false
	}
	return p.win.ScrollIntoView(id, scrollIntoViewDuration)
}

// SelectProject handles a click on a project card. Navigation failures go
// to OnError and are otherwise ignored.
func (p *Page) SelectProject(project ProjectRecord) {
	if !p.mounted {
		return
	}
	if err := p.Modal.Select(project); err != nil {
		p.report(err)
	}
}

func (p *Page) report(err error) {
	if p.OnError != nil {
		p.OnError(err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[folio] %v\n", err)
}

// ShowProjectDetails opens the overlay for project.
func (p *Page) ShowProjectDetails(project ProjectRecord) {
	if !p.mounted {
		return
	}
	p.Modal.ShowDetails(project)
}

// ToggleTheme flips the color scheme.
func (p *Page) ToggleTheme() ThemeMode {
	m := p.Theme.Toggle()
	p.win.debugf("theme %s", m)
	return m
}
