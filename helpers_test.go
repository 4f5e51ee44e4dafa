package folio

import "math"

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// geomMap is a Geometry over fixed page-space rectangles.
type geomMap map[string]Rect

func (g geomMap) ClientRect(id string, scrollY int) (Rect, bool) {
	r, ok := g[id]
	if !ok {
		return Rect{}, false
	}
	return r.Offset(0, -float64(scrollY)), true
}

var testSections = []SectionDescriptor{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "skills", Label: "Skills"},
	{ID: "projects", Label: "Projects"},
}

// newTestDocument returns a 1280 wide page of four stacked sections:
// home 0-800, about 800-1400, skills 1400-2000, projects 2000-2800, with a
// hero element inside home and a fixed nav bar.
func newTestDocument() *Document {
	doc := NewDocument()
	tops := []float64{0, 800, 1400, 2000}
	heights := []float64{800, 600, 600, 800}
	for i, s := range testSections {
		doc.Root().AddChild(NewElement(s.ID, "section", Rect{Y: tops[i], Width: 1280, Height: heights[i]}))
	}
	home, _ := doc.ElementByID("home")
	home.AddChild(NewElement("hero", "group", Rect{X: 100, Y: 300, Width: 1080, Height: 200}))

	nav := NewElement("nav", "nav", Rect{Width: 1280, Height: 64})
	nav.Fixed = true
	nav.Interactable = true
	doc.Root().AddChild(nav)

	doc.SetHeight(2800)
	return doc
}

func newTestPage(doc *Document) *Page {
	return NewPage(doc, PageConfig{Sections: testSections, HeroID: "hero"})
}

// fakeNavigator records navigation requests.
type fakeNavigator struct {
	urls []string
	err  error
}

func (n *fakeNavigator) Navigate(url string) error {
	n.urls = append(n.urls, url)
	return n.err
}

var (
	linkless = ProjectRecord{
		Title:       "Idaho SIF",
		Subtitle:    "Payroll reporting",
		Description: "Reporting pipeline.",
		Tags:        []string{"Go", "SQL"},
		Details: &ProjectDetails{
			Overview: []string{"Overview paragraph."},
		},
	}
	linkless2 = ProjectRecord{Title: "FORWARD", Description: "Capstone."}
	linked    = ProjectRecord{Title: "Planly", Description: "Planner.", Link: "https://github.com/andkob/Planly"}
)
