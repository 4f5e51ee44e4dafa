package folio

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 50, Y: 25, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"shared edge", Rect{X: 100, Y: 0, Width: 10, Height: 10}, true},
		{"left of", Rect{X: -20, Y: 0, Width: 10, Height: 10}, false},
		{"below", Rect{X: 0, Y: 60, Width: 10, Height: 10}, false},
		{"above", Rect{X: 0, Y: -30, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(r); got != tt.want {
				t.Errorf("reversed Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestElementIsShown(t *testing.T) {
	doc := newTestDocument()
	about, _ := doc.ElementByID("about")
	child := NewElement("about-text", "text", Rect{X: 0, Y: 820, Width: 100, Height: 20})
	about.AddChild(child)

	if !child.IsShown() {
		t.Error("child of a visible section should be shown")
	}
	about.Visible = false
	if child.IsShown() {
		t.Error("child of a hidden section should not be shown")
	}
	if !child.Visible {
		t.Error("IsShown must not change the element's own flag")
	}
}

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 0, Y: 0, Width: 20, Height: 10}
	if !r.Contains(20, 10) {
		t.Error("edge point should be inside")
	}
	if r.Contains(21, 5) {
		t.Error("point past the right edge should be outside")
	}
}

func TestElementClientRect(t *testing.T) {
	doc := newTestDocument()

	about, _ := doc.ElementByID("about")
	if got := about.ClientRect(300); got.Y != 500 {
		t.Errorf("about client Y = %v, want 500", got.Y)
	}

	nav, _ := doc.ElementByID("nav")
	if got := nav.ClientRect(300); got.Y != 0 {
		t.Errorf("fixed nav client Y = %v, want 0", got.Y)
	}

	child := NewElement("logo", "text", Rect{X: 10, Y: 10, Width: 40, Height: 40})
	nav.AddChild(child)
	if !child.IsFixed() {
		t.Error("child of a fixed element should be fixed")
	}
	if got := child.ClientRect(900); got.Y != 10 {
		t.Errorf("fixed child client Y = %v, want 10", got.Y)
	}
}

func TestDocumentClientRect(t *testing.T) {
	doc := newTestDocument()

	r, ok := doc.ClientRect("skills", 1000)
	if !ok {
		t.Fatal("skills should be attached")
	}
	if r.Top() != 400 || r.Bottom() != 1000 {
		t.Errorf("skills client rect = %+v, want top 400 bottom 1000", r)
	}
	if _, ok := doc.ClientRect("missing", 0); ok {
		t.Error("missing id should not resolve")
	}
}

func TestElementRemoveFromParentUnindexes(t *testing.T) {
	doc := newTestDocument()
	home, _ := doc.ElementByID("home")
	hero, _ := doc.ElementByID("hero")

	home.RemoveFromParent()

	if _, ok := doc.ElementByID("home"); ok {
		t.Error("removed element should not resolve")
	}
	if _, ok := doc.ElementByID("hero"); ok {
		t.Error("descendant of removed element should not resolve")
	}
	if !hero.IsRemoved() {
		t.Error("descendant should be marked removed")
	}

	doc.Root().AddChild(home)
	if _, ok := doc.ElementByID("hero"); !ok {
		t.Error("re-attached subtree should be indexed again")
	}
}

func TestDocumentClearKeepsClasses(t *testing.T) {
	doc := newTestDocument()
	doc.SetClass(DarkClass, true)
	doc.Clear()

	if len(doc.Root().Children()) != 0 {
		t.Errorf("root has %d children after Clear", len(doc.Root().Children()))
	}
	if doc.Height() != 0 {
		t.Errorf("Height = %v after Clear, want 0", doc.Height())
	}
	if !doc.HasClass(DarkClass) {
		t.Error("Clear should keep document classes")
	}
	doc.SetClass(DarkClass, false)
	if doc.HasClass(DarkClass) {
		t.Error("class should be removed")
	}
}

func TestHitTest(t *testing.T) {
	doc := NewDocument()
	back := NewElement("back", "box", Rect{Width: 100, Height: 100})
	back.Interactable = true
	front := NewElement("front", "box", Rect{X: 50, Y: 50, Width: 100, Height: 100})
	front.Interactable = true
	hidden := NewElement("hidden", "box", Rect{Width: 300, Height: 300})
	hidden.Interactable = true
	hidden.Visible = false
	doc.Root().AddChild(back)
	doc.Root().AddChild(front)
	doc.Root().AddChild(hidden)

	tests := []struct {
		name    string
		x, y    float64
		scrollY int
		want    string
	}{
		{"back only", 10, 10, 0, "back"},
		{"overlap picks topmost", 75, 75, 0, "front"},
		{"scrolled", 75, 25, 50, "front"},
		{"nothing", 250, 250, 0, ""},
	}
	var buf []*Element
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit *Element
			hit, buf = doc.HitTest(tt.x, tt.y, tt.scrollY, buf)
			if got := elementID(hit); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestCustomShape(t *testing.T) {
	doc := NewDocument()
	el := NewElement("btn", "button", Rect{X: 100, Y: 100, Width: 200, Height: 200})
	el.Interactable = true
	el.HitShape = HitRect{Width: 20, Height: 20}
	doc.Root().AddChild(el)

	if hit, _ := doc.HitTest(110, 110, 0, nil); hit != el {
		t.Error("point inside hit shape should hit")
	}
	if hit, _ := doc.HitTest(250, 250, 0, nil); hit != nil {
		t.Error("point outside hit shape should miss")
	}
}
