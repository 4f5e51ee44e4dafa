package display

import (
	"fmt"
	"os"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/content"
)

// Element ids shared between the layout and the page configuration.
const (
	IDNav          = "nav"
	IDHome         = "home"
	IDAbout        = "about"
	IDSkills       = "skills"
	IDProjects     = "projects"
	IDFooter       = "footer"
	IDHero         = "hero-content"
	IDThemeToggle  = "theme-toggle"
	IDModal        = "modal"
	IDModalBack    = "modal-backdrop"
	IDModalPanel   = "modal-panel"
	IDModalBody    = "modal-body"
	IDModalClose   = "modal-close"
	IDModalDone    = "modal-done"
	navLinkPrefix  = "nav-"
	projectPrefix  = "project-"
	aboutHeading   = "About Me"
	skillsHeading  = "Core Skills"
	projectHeading = "Featured Projects"
)

// Sections are the navigation sections in page order.
var Sections = []folio.SectionDescriptor{
	{ID: IDHome, Label: "Home"},
	{ID: IDAbout, Label: "About"},
	{ID: IDSkills, Label: "Skills"},
	{ID: IDProjects, Label: "Projects"},
}

// PageConfig returns the page configuration matching the layout's ids.
func PageConfig(nav folio.Navigator) folio.PageConfig {
	return folio.PageConfig{
		Sections:  Sections,
		HeroID:    IDHero,
		Navigator: nav,
	}
}

const (
	navHeight     = 64.0
	sectionPad    = 80.0
	headingGap    = 48.0
	cardPad       = 24.0
	gridGap       = 32.0
	pillHeight    = 40.0
	tagHeight     = 28.0
	navLinkGap    = 32.0
	toggleWidth   = 72.0
	toggleHeight  = 36.0
	panelMaxWidth = 896.0
	panelFooter   = 68.0
)

// textRun is one line of text positioned relative to its element.
type textRun struct {
	X, Y      float64
	Text      string
	Style     TextStyle
	Role      Role
	HoverRole Role
}

// visual is the drawing description attached to an element's UserData.
type visual struct {
	fill      Role
	hoverFill Role
	border    bool
	runs      []textRun

	// section marks a navigation link; it is highlighted while that section
	// is active.
	section string

	// clip restricts runs to the element's rectangle; scroll shifts them up.
	clip   bool
	scroll float64
}

// Layout turns site content into document elements sized for the current
// viewport. It is rebuilt on every resize; reveal latches survive because
// the animator keys them by element id.
type Layout struct {
	m    Measurer
	site *content.Site
	page *folio.Page
	nav  folio.Navigator

	// OnError receives navigation failures. Defaults to printing on stderr.
	OnError func(error)

	width, height float64

	heroBase map[*folio.Element]folio.Rect
	toggle   *folio.Element
	overlay  *folio.Element
	panelEl  *folio.Element
	panel    folio.Rect
	body     *visual
	bodyMax  float64
	bodyView float64
	shownGen uint64
	reveal   []string
}

// NewLayout creates a layout for site on page's document.
func NewLayout(m Measurer, site *content.Site, page *folio.Page, nav folio.Navigator) *Layout {
	return &Layout{m: m, site: site, page: page, nav: nav}
}

// Size returns the viewport size of the last build.
func (l *Layout) Size() (width, height float64) {
	return l.width, l.height
}

// Panel returns the detail panel's client rectangle, or the zero Rect when
// the overlay is hidden.
func (l *Layout) Panel() folio.Rect {
	if !l.OverlayShown() {
		return folio.Rect{}
	}
	return l.panel
}

// OverlayShown reports whether the detail overlay is displayed.
func (l *Layout) OverlayShown() bool {
	return l.overlay != nil && l.overlay.IsShown()
}

// Build clears the document and lays out every section for a viewport of
// the given size.
func (l *Layout) Build(width, height float64) {
	doc := l.page.Document()
	doc.Clear()
	l.width, l.height = width, height
	l.heroBase = make(map[*folio.Element]folio.Rect)
	l.reveal = l.reveal[:0]
	l.panelEl, l.body, l.shownGen = nil, nil, 0
	l.panel = folio.Rect{}

	root := doc.Root()
	pad := sidePadding(width)
	y := l.buildHome(root, pad)
	y = l.buildAbout(root, y, pad)
	y = l.buildSkills(root, y, pad)
	y = l.buildProjects(root, y, pad)
	y = l.buildFooter(root, y)
	doc.SetHeight(y)

	l.buildNav(root, pad)
	l.buildOverlay(root)
	l.page.Reveal.Track(l.reveal...)
}

// Sync brings theme- and overlay-dependent elements in line with the page
// state. Called once per frame after the page has processed input.
func (l *Layout) Sync() {
	if l.overlay == nil {
		return
	}
	if l.toggle != nil {
		label := "Dark"
		if l.page.Theme.Mode() == folio.ThemeDark {
			label = "Light"
		}
		if l.toggle.Text != label {
			l.toggle.Text = label
			l.toggle.UserData = l.buttonVisual(label, StyleButton, l.toggle.Bounds, RoleToggle, RoleToggleHover, RoleText)
		}
	}

	var open *folio.ProjectRecord
	if l.page.Modal != nil {
		open = l.page.Modal.Project()
	}
	if open == nil {
		if l.overlay.Visible {
			l.overlay.Visible = false
			l.removePanel()
		}
		return
	}
	if gen := l.page.Modal.Generation(); !l.overlay.Visible || gen != l.shownGen {
		l.buildPanel(*open)
		l.overlay.Visible = true
		l.shownGen = gen
	}
}

// ApplyParallax moves the hero subtree by the computed offset so drawing and
// hit testing agree.
func (l *Layout) ApplyParallax(p folio.Parallax) {
	for el, base := range l.heroBase {
		el.Bounds = base.Offset(0, p.Offset)
	}
}

// ScrollPanel scrolls the detail panel body by dy pixels, clamped to its
// content.
func (l *Layout) ScrollPanel(dy float64) {
	if l.body == nil {
		return
	}
	l.body.scroll = max(0, min(l.body.scroll+dy, l.bodyMax))
}

// PanelKey scrolls the detail panel body for a navigation key and reports
// whether the key was one. Keys mirror the page's keyboard scrolling, with
// the panel body as the viewport.
func (l *Layout) PanelKey(k folio.Key, mods folio.KeyModifiers) bool {
	if l.body == nil {
		return false
	}
	page := l.bodyView * 0.9
	switch k {
	case folio.KeyArrowDown:
		l.ScrollPanel(40)
	case folio.KeyArrowUp:
		l.ScrollPanel(-40)
	case folio.KeyPageDown:
		l.ScrollPanel(page)
	case folio.KeyPageUp:
		l.ScrollPanel(-page)
	case folio.KeySpace:
		if mods&folio.ModShift != 0 {
			l.ScrollPanel(-page)
		} else {
			l.ScrollPanel(page)
		}
	case folio.KeyHome:
		l.ScrollPanel(-l.bodyMax)
	case folio.KeyEnd:
		l.ScrollPanel(l.bodyMax)
	default:
		return false
	}
	return true
}

// PanelScroll returns the detail panel body's scroll offset.
func (l *Layout) PanelScroll() float64 {
	if l.body == nil {
		return 0
	}
	return l.body.scroll
}

func sidePadding(width float64) float64 {
	switch {
	case width < 640:
		return 16
	case width < 1024:
		return 24
	default:
		return 32
	}
}

func textInset(style TextStyle) float64 {
	return style.Size() * 0.15
}

// block positions lines top to bottom starting at (x, y). Centered lines are
// centered within width.
func (l *Layout) block(lines []string, style TextStyle, role Role, x, y, width float64, center bool) ([]textRun, float64) {
	lh := style.LineHeight()
	runs := make([]textRun, 0, len(lines))
	for i, line := range lines {
		rx := x
		if center {
			rx = x + (width-l.m.Advance(line, style))/2
		}
		runs = append(runs, textRun{
			X:     rx,
			Y:     y + float64(i)*lh + textInset(style),
			Text:  line,
			Style: style,
			Role:  role,
		})
	}
	return runs, float64(len(lines)) * lh
}

func (l *Layout) buttonVisual(label string, style TextStyle, r folio.Rect, fill, hover, textRole Role) *visual {
	adv := l.m.Advance(label, style)
	return &visual{
		fill:      fill,
		hoverFill: hover,
		runs: []textRun{{
			X:     (r.Width - adv) / 2,
			Y:     (r.Height-style.LineHeight())/2 + textInset(style),
			Text:  label,
			Style: style,
			Role:  textRole,
		}},
	}
}

func (l *Layout) button(id, kind, label string, style TextStyle, r folio.Rect, fill, hover, textRole Role) *folio.Element {
	el := folio.NewElement(id, kind, r)
	el.Interactable = true
	el.Text = label
	el.UserData = l.buttonVisual(label, style, r, fill, hover, textRole)
	return el
}

// pillWidths returns the width of a padded pill for each label.
func (l *Layout) pillWidths(labels []string, style TextStyle, padX float64) []float64 {
	widths := make([]float64, len(labels))
	for i, s := range labels {
		widths[i] = l.m.Advance(s, style) + 2*padX
	}
	return widths
}

func rowsHeight(rows int, rowHeight, gap float64) float64 {
	if rows == 0 {
		return 0
	}
	return float64(rows)*(rowHeight+gap) - gap
}

func (l *Layout) section(root *folio.Element, id string, y float64, fill Role) *folio.Element {
	sec := folio.NewElement(id, "section", folio.Rect{Y: y, Width: l.width})
	sec.UserData = &visual{fill: fill}
	root.AddChild(sec)
	return sec
}

func (l *Layout) heading(parent *folio.Element, id, label string, y, pad float64) float64 {
	w := l.width - 2*pad
	lines := wrapText(l.m, label, StyleHeading, w)
	runs, h := l.block(lines, StyleHeading, RoleText, 0, 0, w, true)
	el := folio.NewElement(id, "heading", folio.Rect{X: pad, Y: y, Width: w, Height: h})
	el.Text = label
	el.UserData = &visual{runs: runs}
	parent.AddChild(el)
	l.reveal = append(l.reveal, id)
	return y + h + headingGap
}

func (l *Layout) buildHome(root *folio.Element, pad float64) float64 {
	inner := l.width - 2*pad
	var runs []textRun

	y := 0.0
	r, h := l.block(wrapText(l.m, l.site.Name, StyleHero, inner), StyleHero, RoleText, 0, y, inner, true)
	runs = append(runs, r...)
	y += h + 16
	r, h = l.block(wrapText(l.m, l.site.Tagline, StyleLead, min(inner, 900)), StyleLead, RoleMuted, 0, y, inner, true)
	runs = append(runs, r...)
	y += h

	labels := make([]string, len(l.site.Links))
	for i, link := range l.site.Links {
		labels[i] = link.Label
	}
	items, rows := flowRows(l.pillWidths(labels, StyleButton, 20), 16, pillHeight, inner, true)
	linksY := y + 32
	if rows > 0 {
		y = linksY + rowsHeight(rows, pillHeight, 16)
	}

	homeH := max(l.height, y+navHeight+2*sectionPad)
	home := l.section(root, IDHome, 0, RoleHero)
	home.Bounds.Height = homeH

	hero := folio.NewElement(IDHero, "group", folio.Rect{
		X:      pad,
		Y:      navHeight + (homeH-navHeight-y)/2,
		Width:  inner,
		Height: y,
	})
	hero.UserData = &visual{runs: runs}
	home.AddChild(hero)
	l.heroBase[hero] = hero.Bounds

	for i, link := range l.site.Links {
		it := items[i]
		b := l.button(fmt.Sprintf("link-%d", i), "button", link.Label, StyleButton, folio.Rect{
			X:      hero.Bounds.X + it.X,
			Y:      hero.Bounds.Y + linksY + it.Y,
			Width:  it.Width,
			Height: pillHeight,
		}, RoleAccent, RoleAccentHover, RoleOnAccent)
		url := link.URL
		b.OnClick = func(folio.ClickContext) { l.open(url) }
		hero.AddChild(b)
		l.heroBase[b] = b.Bounds
	}
	return homeH
}

func (l *Layout) buildAbout(root *folio.Element, y, pad float64) float64 {
	sec := l.section(root, IDAbout, y, RoleBackground)
	cy := l.heading(sec, "about-heading", aboutHeading, y+sectionPad, pad)

	colW := min(768, l.width-2*pad)
	colX := (l.width - colW) / 2
	for i, para := range l.site.About {
		if i > 0 {
			cy += 24
		}
		runs, h := l.block(wrapText(l.m, para, StyleLead, colW), StyleLead, RoleMuted, 0, 0, colW, false)
		el := folio.NewElement(fmt.Sprintf("about-%d", i), "text", folio.Rect{X: colX, Y: cy, Width: colW, Height: h})
		el.UserData = &visual{runs: runs}
		sec.AddChild(el)
		l.reveal = append(l.reveal, el.ID)
		cy += h
	}
	cy += sectionPad
	sec.Bounds.Height = cy - y
	return cy
}

// gridColumns returns 1 below the first breakpoint and one more column per
// breakpoint reached.
func gridColumns(width float64, breakpoints ...float64) int {
	cols := 1
	for _, bp := range breakpoints {
		if width >= bp {
			cols++
		}
	}
	return cols
}

// placeGrid arranges cells of the given content heights into rows of cols
// cells. Every cell in a row takes the row's tallest height. It returns the
// cell rectangles and the y coordinate below the last row.
func placeGrid(heights []float64, cols int, x0, y0, cellW, gap float64) ([]folio.Rect, float64) {
	rects := make([]folio.Rect, len(heights))
	y := y0
	for start := 0; start < len(heights); start += cols {
		end := min(start+cols, len(heights))
		rowH := 0.0
		for _, h := range heights[start:end] {
			rowH = max(rowH, h)
		}
		for i := start; i < end; i++ {
			rects[i] = folio.Rect{
				X:      x0 + float64(i-start)*(cellW+gap),
				Y:      y,
				Width:  cellW,
				Height: rowH,
			}
		}
		y += rowH + gap
	}
	if len(heights) > 0 {
		y -= gap
	}
	return rects, y
}

func (l *Layout) buildSkills(root *folio.Element, y, pad float64) float64 {
	sec := l.section(root, IDSkills, y, RoleBackgroundAlt)
	cy := l.heading(sec, "skills-heading", skillsHeading, y+sectionPad, pad)

	gridW := min(1024, l.width-2*pad)
	gridX := (l.width - gridW) / 2
	cols := gridColumns(l.width, 768)
	if cols > 1 {
		cols = 3
	}
	cardW := (gridW - gridGap*float64(cols-1)) / float64(cols)
	inner := cardW - 2*cardPad

	runs := make([][]textRun, len(l.site.Skills))
	heights := make([]float64, len(l.site.Skills))
	for i, s := range l.site.Skills {
		ty := cardPad
		r, h := l.block(wrapText(l.m, s.Name, StyleCardTitle, inner), StyleCardTitle, RoleText, cardPad, ty, inner, false)
		runs[i] = append(runs[i], r...)
		ty += h + 8
		r, h = l.block(wrapText(l.m, s.Description, StyleBody, inner), StyleBody, RoleMuted, cardPad, ty, inner, false)
		runs[i] = append(runs[i], r...)
		heights[i] = ty + h + cardPad
	}
	rects, bottom := placeGrid(heights, cols, gridX, cy, cardW, gridGap)
	for i, s := range l.site.Skills {
		el := folio.NewElement(fmt.Sprintf("skill-%d", i), "card", rects[i])
		el.Text = s.Name
		el.UserData = &visual{fill: RoleSurface, border: true, runs: runs[i]}
		sec.AddChild(el)
		l.reveal = append(l.reveal, el.ID)
	}
	cy = bottom

	if len(l.site.Tech) > 0 {
		cy += headingGap
		items, rows := flowRows(l.pillWidths(l.site.Tech, StyleBody, 16), 16, pillHeight, gridW, true)
		chips := folio.NewElement("tech", "group", folio.Rect{X: gridX, Y: cy, Width: gridW, Height: rowsHeight(rows, pillHeight, 16)})
		sec.AddChild(chips)
		l.reveal = append(l.reveal, chips.ID)
		for i, t := range l.site.Tech {
			it := items[i]
			r := folio.Rect{X: gridX + it.X, Y: cy + it.Y, Width: it.Width, Height: pillHeight}
			chip := folio.NewElement(fmt.Sprintf("tech-%d", i), "chip", r)
			chip.Text = t
			v := l.buttonVisual(t, StyleBody, r, RoleChip, RoleNone, RoleChipText)
			v.border = true
			chip.UserData = v
			chips.AddChild(chip)
		}
		cy += chips.Bounds.Height
	}

	cy += sectionPad
	sec.Bounds.Height = cy - y
	return cy
}

type projectCard struct {
	runs   []textRun
	tags   []flowItem
	tagsY  float64
	height float64
}

func (l *Layout) measureProject(p folio.ProjectRecord, inner float64) projectCard {
	var c projectCard
	y := cardPad
	r, h := l.block(wrapText(l.m, p.Title, StyleTitle, inner), StyleTitle, RoleText, cardPad, y, inner, false)
	c.runs = append(c.runs, r...)
	y += h
	if p.Subtitle != "" {
		y += 4
		r, h = l.block(wrapText(l.m, p.Subtitle, StyleSmall, inner), StyleSmall, RoleMuted, cardPad, y, inner, false)
		c.runs = append(c.runs, r...)
		y += h
	}
	y += 12
	r, h = l.block(wrapText(l.m, p.Description, StyleBody, inner), StyleBody, RoleMuted, cardPad, y, inner, false)
	c.runs = append(c.runs, r...)
	y += h
	if len(p.Tags) > 0 {
		y += 16
		var rows int
		c.tags, rows = flowRows(l.pillWidths(p.Tags, StyleSmall, 12), 8, tagHeight, inner, false)
		c.tagsY = y
		y += rowsHeight(rows, tagHeight, 8)
	}
	// action row
	y += 16 + StyleButton.LineHeight() + cardPad
	c.height = y
	return c
}

func (l *Layout) buildProjects(root *folio.Element, y, pad float64) float64 {
	sec := l.section(root, IDProjects, y, RoleBackground)
	cy := l.heading(sec, "projects-heading", projectHeading, y+sectionPad, pad)

	gridW := min(1200, l.width-2*pad)
	gridX := (l.width - gridW) / 2
	cols := gridColumns(l.width, 768, 1024)
	cardW := (gridW - gridGap*float64(cols-1)) / float64(cols)
	inner := cardW - 2*cardPad

	cards := make([]projectCard, len(l.site.Projects))
	heights := make([]float64, len(l.site.Projects))
	for i, p := range l.site.Projects {
		cards[i] = l.measureProject(p, inner)
		heights[i] = cards[i].height
	}
	rects, bottom := placeGrid(heights, cols, gridX, cy, cardW, gridGap)

	for i, p := range l.site.Projects {
		r := rects[i]
		c := cards[i]
		id := fmt.Sprintf("%s%d", projectPrefix, i)
		card := folio.NewElement(id, "card", r)
		card.Text = p.Title
		card.Interactable = true
		card.UserData = &visual{fill: RoleCard, hoverFill: RoleCardHover, runs: c.runs}
		card.OnClick = func(folio.ClickContext) { l.page.SelectProject(p) }
		sec.AddChild(card)
		l.reveal = append(l.reveal, id)

		for j, tag := range p.Tags {
			it := c.tags[j]
			tr := folio.Rect{X: r.X + cardPad + it.X, Y: r.Y + c.tagsY + it.Y, Width: it.Width, Height: tagHeight}
			t := folio.NewElement(fmt.Sprintf("%s-tag-%d", id, j), "tag", tr)
			t.Text = tag
			t.UserData = l.buttonVisual(tag, StyleSmall, tr, RoleTag, RoleNone, RoleTagText)
			card.AddChild(t)
		}

		ay := r.Y + r.Height - cardPad - StyleButton.LineHeight()
		label := "View Details"
		if p.HasLink() {
			label = "View Project →"
		}
		ax := r.X + cardPad
		aw := l.m.Advance(label, StyleButton)
		action := l.link(id+"-open", label, StyleButton, folio.Rect{X: ax, Y: ay, Width: aw, Height: StyleButton.LineHeight()}, RoleAccent, RoleAccentHover)
		if p.HasLink() {
			action.OnClick = func(folio.ClickContext) { l.page.SelectProject(p) }
		} else {
			action.OnClick = func(folio.ClickContext) { l.page.ShowProjectDetails(p) }
		}
		card.AddChild(action)

		if p.HasLink() && p.Details != nil {
			dw := l.m.Advance("Details", StyleButton)
			details := l.link(id+"-details", "Details", StyleButton, folio.Rect{X: ax + aw + 24, Y: ay, Width: dw, Height: StyleButton.LineHeight()}, RoleMuted, RoleAccent)
			details.OnClick = func(folio.ClickContext) { l.page.ShowProjectDetails(p) }
			card.AddChild(details)
		}
	}

	cy = bottom + sectionPad
	sec.Bounds.Height = cy - y
	return cy
}

// link creates a text-only interactive element.
func (l *Layout) link(id, label string, style TextStyle, r folio.Rect, role, hover Role) *folio.Element {
	el := folio.NewElement(id, "link", r)
	el.Interactable = true
	el.Text = label
	el.UserData = &visual{runs: []textRun{{
		Y:         textInset(style),
		Text:      label,
		Style:     style,
		Role:      role,
		HoverRole: hover,
	}}}
	return el
}

func (l *Layout) buildFooter(root *folio.Element, y float64) float64 {
	sec := l.section(root, IDFooter, y, RoleFooter)
	cy := y + 48

	title := "Let's Connect"
	tw := l.m.Advance(title, StyleLead)
	t := folio.NewElement("footer-title", "text", folio.Rect{X: (l.width - tw) / 2, Y: cy, Width: tw, Height: StyleLead.LineHeight()})
	t.UserData = &visual{runs: []textRun{{Y: textInset(StyleLead), Text: title, Style: StyleLead, Role: RoleFooterText}}}
	sec.AddChild(t)
	cy += StyleLead.LineHeight() + 16

	labels := make([]string, len(l.site.Links))
	for i, link := range l.site.Links {
		labels[i] = link.Label
	}
	rowW := l.width - 2*sidePadding(l.width)
	x0 := (l.width - rowW) / 2
	items, rows := flowRows(l.pillWidths(labels, StyleBody, 0), 24, StyleBody.LineHeight(), rowW, true)
	for i, link := range l.site.Links {
		it := items[i]
		el := l.link(fmt.Sprintf("footer-link-%d", i), link.Label, StyleBody, folio.Rect{
			X:      x0 + it.X,
			Y:      cy + it.Y,
			Width:  it.Width,
			Height: StyleBody.LineHeight(),
		}, RoleFooterText, RoleAccentHover)
		url := link.URL
		el.OnClick = func(folio.ClickContext) { l.open(url) }
		sec.AddChild(el)
	}
	cy += rowsHeight(rows, StyleBody.LineHeight(), 24) + 48
	sec.Bounds.Height = cy - y
	return cy
}

func (l *Layout) buildNav(root *folio.Element, pad float64) {
	nav := folio.NewElement(IDNav, "nav", folio.Rect{Width: l.width, Height: navHeight})
	nav.Fixed = true
	nav.Interactable = true
	nav.UserData = &visual{
		fill: RoleNav,
		runs: []textRun{{
			X:     pad,
			Y:     (navHeight-StyleLogo.LineHeight())/2 + textInset(StyleLogo),
			Text:  l.site.Initials,
			Style: StyleLogo,
			Role:  RoleAccent,
		}},
	}
	root.AddChild(nav)

	tr := folio.Rect{X: l.width - pad - toggleWidth, Y: (navHeight - toggleHeight) / 2, Width: toggleWidth, Height: toggleHeight}
	l.toggle = l.button(IDThemeToggle, "toggle", "", StyleButton, tr, RoleToggle, RoleToggleHover, RoleText)
	l.toggle.OnClick = func(folio.ClickContext) { l.page.ToggleTheme() }
	nav.AddChild(l.toggle)

	if l.width < 768 {
		return
	}
	lh := StyleBody.LineHeight()
	x := tr.X - navLinkGap
	for i := len(Sections) - 1; i >= 0; i-- {
		s := Sections[i]
		w := l.m.Advance(s.Label, StyleButton)
		x -= w
		el := folio.NewElement(navLinkPrefix+s.ID, "navlink", folio.Rect{X: x, Y: (navHeight - lh) / 2, Width: w, Height: lh})
		el.Interactable = true
		el.Text = s.Label
		el.UserData = &visual{
			section: s.ID,
			runs: []textRun{{
				Y:         textInset(StyleBody),
				Text:      s.Label,
				Style:     StyleBody,
				Role:      RoleMuted,
				HoverRole: RoleAccent,
			}},
		}
		id := s.ID
		el.OnClick = func(folio.ClickContext) { l.page.ScrollToSection(id) }
		nav.AddChild(el)
		x -= navLinkGap
	}
}

func (l *Layout) buildOverlay(root *folio.Element) {
	l.overlay = folio.NewElement(IDModal, "overlay", folio.Rect{Width: l.width, Height: l.height})
	l.overlay.Fixed = true
	l.overlay.Visible = false
	root.AddChild(l.overlay)

	back := folio.NewElement(IDModalBack, "backdrop", folio.Rect{Width: l.width, Height: l.height})
	back.Interactable = true
	back.UserData = &visual{fill: RoleBackdrop}
	back.OnClick = func(ctx folio.ClickContext) {
		if l.page.Modal != nil {
			l.page.Modal.BackdropClick(ctx.X, ctx.Y, l.panel)
		}
	}
	l.overlay.AddChild(back)
}

func (l *Layout) removePanel() {
	if l.panelEl != nil {
		l.panelEl.RemoveFromParent()
	}
	l.panelEl, l.body, l.shownGen = nil, nil, 0
	l.panel = folio.Rect{}
}

// panelBody lays out the scrollable part of the detail panel.
func (l *Layout) panelBody(p folio.ProjectRecord, inner float64) ([]textRun, float64) {
	var runs []textRun
	y := 24.0
	add := func(text string, style TextStyle, role Role, x, width float64) float64 {
		r, h := l.block(wrapText(l.m, text, style, width), style, role, x, y, width, false)
		runs = append(runs, r...)
		return h
	}

	d := p.Details
	if d == nil || (len(d.Overview) == 0 && len(d.Sections) == 0) {
		y += add(p.Description, StyleBody, RoleMuted, 24, inner)
		return runs, y + 24
	}
	for i, para := range d.Overview {
		if i > 0 {
			y += 12
		}
		y += add(para, StyleBody, RoleMuted, 24, inner)
	}
	if len(d.Overview) > 0 && len(d.Sections) > 0 {
		y += 32
	}
	for i, s := range d.Sections {
		if i > 0 {
			y += 24
		}
		y += add(s.Title, StyleCardTitle, RoleText, 24, inner) + 8
		for _, para := range s.Body {
			y += add(para, StyleBody, RoleMuted, 24, inner) + 8
		}
		for _, b := range s.Bullets {
			runs = append(runs, textRun{X: 28, Y: y + textInset(StyleBody), Text: "•", Style: StyleBody, Role: RoleAccent})
			y += add(b, StyleBody, RoleMuted, 48, inner-24) + 4
		}
	}
	return runs, y + 24
}

func (l *Layout) buildPanel(p folio.ProjectRecord) {
	l.removePanel()

	pw := min(panelMaxWidth, l.width-32)
	px := (l.width - pw) / 2
	inner := pw - 48
	closeW := l.m.Advance("Close", StyleButton) + 24
	headW := inner - closeW - 16

	var head []textRun
	hy := 20.0
	r, h := l.block(wrapText(l.m, p.Title, StyleTitle, headW), StyleTitle, RoleText, 24, hy, headW, false)
	head = append(head, r...)
	hy += h
	if p.Subtitle != "" {
		hy += 4
		r, h = l.block(wrapText(l.m, p.Subtitle, StyleBody, headW), StyleBody, RoleMuted, 24, hy, headW, false)
		head = append(head, r...)
		hy += h
	}
	var tags []flowItem
	tagsY := 0.0
	if len(p.Tags) > 0 {
		hy += 16
		var rows int
		tags, rows = flowRows(l.pillWidths(p.Tags, StyleSmall, 12), 8, tagHeight, inner, false)
		tagsY = hy
		hy += rowsHeight(rows, tagHeight, 8)
	}
	headerH := hy + 20

	body, contentH := l.panelBody(p, inner)
	maxH := l.height * 0.9
	bodyH := max(0, min(contentH, maxH-headerH-panelFooter))
	ph := headerH + bodyH + panelFooter
	py := (l.height - ph) / 2
	l.panel = folio.Rect{X: px, Y: py, Width: pw, Height: ph}

	panel := folio.NewElement(IDModalPanel, "panel", l.panel)
	panel.Interactable = true
	panel.Text = p.Title
	panel.UserData = &visual{fill: RolePanel, border: true, runs: head}

	for j, tag := range p.Tags {
		it := tags[j]
		tr := folio.Rect{X: px + 24 + it.X, Y: py + tagsY + it.Y, Width: it.Width, Height: tagHeight}
		t := folio.NewElement(fmt.Sprintf("modal-tag-%d", j), "tag", tr)
		t.Text = tag
		t.UserData = l.buttonVisual(tag, StyleSmall, tr, RoleTag, RoleNone, RoleTagText)
		panel.AddChild(t)
	}

	closeBtn := l.button(IDModalClose, "button", "Close", StyleButton,
		folio.Rect{X: px + pw - 24 - closeW, Y: py + 16, Width: closeW, Height: toggleHeight},
		RoleNone, RoleSurfaceHover, RoleMuted)
	closeBtn.OnClick = func(folio.ClickContext) { l.page.Modal.Close(folio.CloseButton) }
	panel.AddChild(closeBtn)

	rule := func(y float64) {
		panel.AddChild(&folio.Element{
			Kind:     "rule",
			Bounds:   folio.Rect{X: px, Y: y, Width: pw, Height: 1},
			Visible:  true,
			UserData: &visual{fill: RoleBorder},
		})
	}
	rule(py + headerH)

	bodyEl := folio.NewElement(IDModalBody, "scroll", folio.Rect{X: px, Y: py + headerH, Width: pw, Height: bodyH})
	l.body = &visual{runs: body, clip: true}
	l.bodyMax = max(0, contentH-bodyH)
	l.bodyView = bodyH
	bodyEl.UserData = l.body
	panel.AddChild(bodyEl)

	rule(py + headerH + bodyH)

	doneW := l.m.Advance("Done", StyleButton) + 32
	done := l.button(IDModalDone, "button", "Done", StyleButton,
		folio.Rect{X: px + pw - 24 - doneW, Y: py + headerH + bodyH + (panelFooter-toggleHeight)/2, Width: doneW, Height: toggleHeight},
		RoleAccent, RoleAccentHover, RoleOnAccent)
	done.OnClick = func(folio.ClickContext) { l.page.Modal.Close(folio.CloseButton) }
	panel.AddChild(done)

	l.overlay.AddChild(panel)
	l.panelEl = panel
}

func (l *Layout) open(url string) {
	if l.nav == nil {
		return
	}
	if err := l.nav.Navigate(url); err != nil {
		l.report(fmt.Errorf("display: open %s: %w", url, err))
	}
}

func (l *Layout) report(err error) {
	if l.OnError != nil {
		l.OnError(err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[folio] %v\n", err)
}
