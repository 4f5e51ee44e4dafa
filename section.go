package folio

// Geometry reports live client rectangles by element id. A false result
// means the element is not mounted; callers skip it for the current event.
type Geometry interface {
	ClientRect(id string, scrollY int) (Rect, bool)
}

// SectionDescriptor names one navigation section. Its geometry is read from
// the Geometry at evaluation time, never cached.
type SectionDescriptor struct {
	ID    string
	Label string
}

// activationBand is the fraction of the viewport height at which a section
// must span the horizontal line to become active.
const activationBand = 1.0 / 3.0

// SectionActivator decides which navigation section is highlighted.
type SectionActivator struct {
	sections []SectionDescriptor
	active   string
}

// NewSectionActivator creates an activator over sections, evaluated in the
// given order. initial is the active id before any evaluation ("" for none).
func NewSectionActivator(initial string, sections ...SectionDescriptor) *SectionActivator {
	return &SectionActivator{
		sections: append([]SectionDescriptor(nil), sections...),
		active:   initial,
	}
}

// Sections returns the descriptors in declaration order. The returned slice
// MUST NOT be mutated.
func (a *SectionActivator) Sections() []SectionDescriptor {
	return a.sections
}

// Active returns the highlighted section id, or "" for none.
func (a *SectionActivator) Active() string {
	return a.active
}

// Evaluate runs the band test for the current scroll offset and stores the
// result. It reports whether the active section changed.
func (a *SectionActivator) Evaluate(geom Geometry, scrollY int, viewportHeight float64) bool {
	next := ActiveSection(a.sections, geom, scrollY, viewportHeight, a.active)
	if next == a.active {
		return false
	}
	a.active = next
	return true
}

// ActiveSection returns the id of the first section whose client rect spans
// the line at one third of the viewport height (top ≤ H/3 ≤ bottom). When no
// section matches, prev is returned unchanged. Missing sections are skipped.
func ActiveSection(sections []SectionDescriptor, geom Geometry, scrollY int, viewportHeight float64, prev string) string {
	line := viewportHeight * activationBand
	for _, s := range sections {
		r, ok := geom.ClientRect(s.ID, scrollY)
		if !ok {
			continue
		}
		if r.Top() <= line && r.Bottom() >= line {
			return s.ID
		}
	}
	return prev
}
