package folio

import (
	"strings"
	"testing"
)

func mountTestPage(prefs Preferences) (*Page, *Window) {
	doc := newTestDocument()
	w := NewWindow(doc, 1280, 800)
	p := newTestPage(doc)
	p.Mount(w, prefs)
	return p, w
}

func TestPageMount(t *testing.T) {
	p, w := mountTestPage(Preferences{PrefersDark: true})

	st := p.State()
	if st.Theme != ThemeDark || !p.Document().HasClass(DarkClass) {
		t.Errorf("theme = %s class = %v, want dark", st.Theme, p.Document().HasClass(DarkClass))
	}
	if st.ActiveSection != "home" {
		t.Errorf("ActiveSection = %q, want home", st.ActiveSection)
	}
	if st.NavSolid {
		t.Error("NavSolid should be false at the top")
	}
	if st.Parallax.Opacity != 1 || st.Parallax.Offset != 0 {
		t.Errorf("Parallax = %+v, want identity", st.Parallax)
	}
	if st.Modal != ModalClosed || st.Project != nil {
		t.Error("overlay should start closed")
	}
	for _, ev := range []EventType{EventScroll, EventPointerMove, EventResize} {
		if n := w.HandlerCount(ev); n != 1 {
			t.Errorf("HandlerCount(%s) = %d, want 1", ev, n)
		}
	}
	if !p.Mounted() || p.Window() != w {
		t.Error("page should be mounted in w")
	}
}

func TestPageInitialSectionBeforeMount(t *testing.T) {
	p := newTestPage(newTestDocument())
	if got := p.Sections.Active(); got != "home" {
		t.Errorf("initial active = %q, want the first section", got)
	}

	custom := NewPage(newTestDocument(), PageConfig{Sections: testSections, InitialSection: "about"})
	if got := custom.Sections.Active(); got != "about" {
		t.Errorf("initial active = %q, want about", got)
	}
}

func TestPageScrollUpdatesState(t *testing.T) {
	p, w := mountTestPage(Preferences{})

	w.SetScroll(800)
	st := p.State()
	if st.ScrollY != 800 {
		t.Errorf("ScrollY = %d, want 800", st.ScrollY)
	}
	if st.ActiveSection != "about" {
		t.Errorf("ActiveSection = %q, want about", st.ActiveSection)
	}
	if !st.NavSolid {
		t.Error("NavSolid should be true past the threshold")
	}
	if !approxEqual(st.Parallax.Offset, 320, epsilon) || st.Parallax.Opacity != 0 {
		t.Errorf("Parallax = %+v, want offset 320 opacity 0", st.Parallax)
	}
}

func TestPageNavSolidThreshold(t *testing.T) {
	tests := []struct {
		scrollY int
		want    bool
	}{
		{0, false},
		{50, false},
		{51, true},
	}
	for _, tt := range tests {
		p, w := mountTestPage(Preferences{})
		w.SetScroll(tt.scrollY)
		if got := p.State().NavSolid; got != tt.want {
			t.Errorf("NavSolid at %d = %v, want %v", tt.scrollY, got, tt.want)
		}
	}
}

func TestPageRevealOnScroll(t *testing.T) {
	doc := newTestDocument()
	w := NewWindow(doc, 1280, 800)
	p := newTestPage(doc)
	p.Reveal.Track("hero", "about")
	p.Mount(w, Preferences{})

	if !p.Reveal.Visible("hero") {
		t.Error("content in view at mount should be revealed")
	}
	if p.Reveal.Visible("about") {
		t.Error("about is below the threshold at mount")
	}
	if pr := p.Presence("about"); pr.Alpha != 0 {
		t.Errorf("hidden presence alpha = %f, want 0", pr.Alpha)
	}
	w.SetScroll(200)
	if !p.Revealed("about") {
		t.Error("about should be revealed once its top crosses the threshold")
	}
	p.Update(1)
	if pr := p.Presence("about"); !approxEqual(pr.Alpha, 1, epsilon) {
		t.Errorf("presence alpha after fade = %f, want 1", pr.Alpha)
	}
	if !p.Revealed("untracked") {
		t.Error("untracked ids count as revealed")
	}
}

func TestPageMountTwice(t *testing.T) {
	p, w := mountTestPage(Preferences{})
	modal := p.Modal
	p.Mount(w, Preferences{PrefersDark: true})

	if n := w.HandlerCount(EventScroll); n != 1 {
		t.Errorf("HandlerCount = %d after second mount, want 1", n)
	}
	if p.Modal != modal {
		t.Error("second mount must not replace the modal controller")
	}
	if p.Theme.Mode() != ThemeLight {
		t.Error("second mount must not re-seed the theme")
	}
}

func TestPageRemountRederivesTheme(t *testing.T) {
	p, w := mountTestPage(Preferences{})
	p.ToggleTheme()
	p.Unmount()

	p.Mount(w, Preferences{PrefersDark: true})
	if p.Theme.Mode() != ThemeDark || !p.Document().HasClass(DarkClass) {
		t.Errorf("remount with a dark preference: mode %s class %v, want dark", p.Theme.Mode(), p.Document().HasClass(DarkClass))
	}
	p.Unmount()

	p.Mount(w, Preferences{})
	if p.Theme.Mode() != ThemeLight || p.Document().HasClass(DarkClass) {
		t.Errorf("remount with a light preference: mode %s class %v, want light", p.Theme.Mode(), p.Document().HasClass(DarkClass))
	}
}

func TestPageUnmountReleasesEverything(t *testing.T) {
	p, w := mountTestPage(Preferences{})
	p.ShowProjectDetails(linkless)
	if w.HandlerCount(EventKeyDown) != 1 {
		t.Fatal("open overlay should hold the Escape listener")
	}

	p.Unmount()

	for _, ev := range []EventType{EventScroll, EventPointerMove, EventResize, EventKeyDown} {
		if n := w.HandlerCount(ev); n != 0 {
			t.Errorf("HandlerCount(%s) = %d after unmount, want 0", ev, n)
		}
	}
	if p.Modal.State() != ModalClosed || p.Modal.LastCloseReason() != CloseUnmount {
		t.Errorf("overlay state %s reason %s, want closed by unmount", p.Modal.State(), p.Modal.LastCloseReason())
	}

	w.SetScroll(900)
	if p.State().ScrollY != 0 {
		t.Error("unmounted page must not follow scrolling")
	}
}

func TestPageScrollToSection(t *testing.T) {
	p, w := mountTestPage(Preferences{})

	if p.ScrollToSection("missing") {
		t.Error("ScrollToSection should report false for an unknown id")
	}
	if !p.ScrollToSection("skills") {
		t.Fatal("ScrollToSection(skills) = false")
	}
	w.Update(scrollIntoViewDuration)

	if w.ScrollY() != 1400 {
		t.Errorf("ScrollY = %d, want 1400", w.ScrollY())
	}
	if got := p.State().ActiveSection; got != "skills" {
		t.Errorf("ActiveSection = %q, want skills", got)
	}
}

func TestPageSelectProject(t *testing.T) {
	p, w := mountTestPage(Preferences{})

	var reported []error
	p.OnError = func(err error) { reported = append(reported, err) }

	// No navigator: the error is reported and the page keeps working.
	p.SelectProject(linked)
	if p.State().Modal != ModalClosed {
		t.Error("a linked project must not open the overlay")
	}
	if len(reported) != 1 || !strings.Contains(reported[0].Error(), linked.Link) {
		t.Errorf("reported %v, want one error naming %s", reported, linked.Link)
	}

	p.SelectProject(linkless)
	st := p.State()
	if st.Modal != ModalOpen || st.Project == nil || st.Project.Title != linkless.Title {
		t.Errorf("state = %+v, want the overlay open on %q", st, linkless.Title)
	}
	if len(reported) != 1 {
		t.Errorf("reported %d errors after a link-less select, want 1", len(reported))
	}
	w.KeyDown(KeyEscape, 0)
	if p.State().Modal != ModalClosed {
		t.Error("Escape should close the overlay")
	}
}

func TestPageOverlayHoldsScroll(t *testing.T) {
	p, w := mountTestPage(Preferences{})
	p.ShowProjectDetails(linkless)

	w.KeyDown(KeyEnd, 0)
	w.KeyDown(KeyPageDown, 0)
	st := p.State()
	if st.ScrollY != 0 || st.ActiveSection != "home" {
		t.Errorf("scroll %d section %q behind the overlay, want 0 and home", st.ScrollY, st.ActiveSection)
	}

	w.KeyDown(KeyEscape, 0)
	w.KeyDown(KeyEnd, 0)
	st = p.State()
	if st.ScrollY != 2000 || st.ActiveSection != "projects" {
		t.Errorf("scroll %d section %q after close, want 2000 and projects", st.ScrollY, st.ActiveSection)
	}
}

func TestPageSelectProjectNavigates(t *testing.T) {
	doc := newTestDocument()
	w := NewWindow(doc, 1280, 800)
	nav := &fakeNavigator{}
	p := NewPage(doc, PageConfig{Sections: testSections, Navigator: nav})
	p.Mount(w, Preferences{})

	p.SelectProject(linked)
	if len(nav.urls) != 1 || nav.urls[0] != linked.Link {
		t.Errorf("navigated to %v, want [%s]", nav.urls, linked.Link)
	}
}

func TestPageUnmountedOperations(t *testing.T) {
	p := newTestPage(newTestDocument())
	if p.ScrollToSection("about") {
		t.Error("ScrollToSection should fail before mount")
	}
	p.SelectProject(linkless)
	p.ShowProjectDetails(linkless)
	p.Unmount()
	p.Refresh()
	p.Update(0.1)
	if p.State().Modal != ModalClosed {
		t.Error("an unmounted page has no open overlay")
	}
}

func TestPageToggleTheme(t *testing.T) {
	p, _ := mountTestPage(Preferences{})
	if m := p.ToggleTheme(); m != ThemeDark {
		t.Errorf("ToggleTheme = %s, want dark", m)
	}
	if p.State().Theme != ThemeDark {
		t.Error("State should report the toggled theme")
	}
}

func TestPageRefreshAfterRelayout(t *testing.T) {
	p, w := mountTestPage(Preferences{})
	w.SetScroll(900)
	if p.State().ActiveSection != "about" {
		t.Fatalf("ActiveSection = %q, want about", p.State().ActiveSection)
	}

	// Move skills up so it spans the band line without any scroll.
	skills, _ := p.Document().ElementByID("skills")
	about, _ := p.Document().ElementByID("about")
	about.Bounds.Height = 100
	skills.Bounds.Y = 900
	p.Refresh()

	if got := p.State().ActiveSection; got != "skills" {
		t.Errorf("ActiveSection after refresh = %q, want skills", got)
	}
}
