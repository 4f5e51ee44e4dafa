package folio

// HitShape is used for custom hit testing regions in client coordinates
// relative to the element's top-left corner.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Element is a node of the page document. Bounds are in page space: the
// scroll offset is subtracted when converting to client (viewport)
// coordinates, unless the element or one of its ancestors is Fixed.
type Element struct {
	// Identity
	ID   string
	Kind string

	// Hierarchy
	Parent   *Element
	children []*Element
	doc      *Document

	// Geometry
	Bounds Rect
	Fixed  bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Metadata
	Text     string
	UserData any

	// Per-element callbacks (nil by default)
	OnClick        func(ClickContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	removed bool
}

// NewElement creates a visible, detached element.
func NewElement(id, kind string, bounds Rect) *Element {
	return &Element{ID: id, Kind: kind, Bounds: bounds, Visible: true}
}

// AddChild appends child to e's children. If child already has a parent it
// is removed from that parent first.
func (e *Element) AddChild(child *Element) {
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	child.removed = false
	e.children = append(e.children, child)
	if e.doc != nil {
		e.doc.indexSubtree(child)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// RemoveFromParent detaches e (and its subtree) from the document.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.removeChildByPtr(e)
}

// RemoveChildren detaches every child of e.
func (e *Element) RemoveChildren() {
	for _, c := range e.children {
		c.Parent = nil
		if e.doc != nil {
			e.doc.unindexSubtree(c)
		}
	}
	e.children = e.children[:0]
}

// IsRemoved reports whether e has been detached from its document.
func (e *Element) IsRemoved() bool {
	return e.removed
}

// IsFixed reports whether e is positioned relative to the viewport, either
// directly or through an ancestor.
func (e *Element) IsFixed() bool {
	for p := e; p != nil; p = p.Parent {
		if p.Fixed {
			return true
		}
	}
	return false
}

// IsShown reports whether e and all of its ancestors are visible.
func (e *Element) IsShown() bool {
	for p := e; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// ClientRect returns e's bounds in viewport coordinates for the given scroll
// offset.
func (e *Element) ClientRect(scrollY int) Rect {
	if e.IsFixed() {
		return e.Bounds
	}
	return e.Bounds.Offset(0, -float64(scrollY))
}

func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			child.Parent = nil
			if e.doc != nil {
				e.doc.unindexSubtree(child)
			}
			return
		}
	}
}

// Document is the retained element tree of one page. Element ids are unique;
// adding a second element with an id that is already indexed replaces the
// index entry.
type Document struct {
	root    *Element
	byID    map[string]*Element
	classes map[string]bool
	height  float64
}

// NewDocument creates an empty document with a root element.
func NewDocument() *Document {
	d := &Document{
		byID:    make(map[string]*Element),
		classes: make(map[string]bool),
	}
	d.root = NewElement("", "root", Rect{})
	d.root.doc = d
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// ElementByID returns the attached element with the given id.
func (d *Document) ElementByID(id string) (*Element, bool) {
	e, ok := d.byID[id]
	if !ok || e.removed {
		return nil, false
	}
	return e, true
}

// ClientRect returns the viewport-relative bounds of the element with the
// given id, or false when no such element is attached.
func (d *Document) ClientRect(id string, scrollY int) (Rect, bool) {
	e, ok := d.ElementByID(id)
	if !ok {
		return Rect{}, false
	}
	return e.ClientRect(scrollY), true
}

// Height returns the scrollable height of the document.
func (d *Document) Height() float64 {
	return d.height
}

// SetHeight sets the scrollable height of the document.
func (d *Document) SetHeight(h float64) {
	if h < 0 {
		h = 0
	}
	d.height = h
}

// SetClass adds or removes a document-level class.
func (d *Document) SetClass(name string, on bool) {
	if on {
		d.classes[name] = true
		return
	}
	delete(d.classes, name)
}

// HasClass reports whether the document carries the given class.
func (d *Document) HasClass(name string) bool {
	return d.classes[name]
}

// Clear removes every element from the document. Classes are kept.
func (d *Document) Clear() {
	d.root.RemoveChildren()
	d.height = 0
}

func (d *Document) indexSubtree(e *Element) {
	e.doc = d
	e.removed = false
	if e.ID != "" {
		d.byID[e.ID] = e
	}
	for _, c := range e.children {
		d.indexSubtree(c)
	}
}

func (d *Document) unindexSubtree(e *Element) {
	e.removed = true
	if e.ID != "" && d.byID[e.ID] == e {
		delete(d.byID, e.ID)
	}
	for _, c := range e.children {
		d.unindexSubtree(c)
	}
	e.doc = nil
}

// --- Hit testing ---

// collectInteractable walks the tree in paint order, appending shown,
// interactable elements to buf.
func collectInteractable(e *Element, buf []*Element) []*Element {
	if !e.Visible {
		return buf
	}
	if e.Interactable {
		buf = append(buf, e)
	}
	for _, c := range e.children {
		buf = collectInteractable(c, buf)
	}
	return buf
}

// elementContains tests whether the client point (x, y) hits e.
func elementContains(e *Element, x, y float64, scrollY int) bool {
	r := e.ClientRect(scrollY)
	if e.HitShape != nil {
		return e.HitShape.Contains(x-r.X, y-r.Y)
	}
	return r.Contains(x, y)
}

// HitTest returns the topmost interactable element at the client point
// (x, y), or nil.
func (d *Document) HitTest(x, y float64, scrollY int, buf []*Element) (*Element, []*Element) {
	buf = collectInteractable(d.root, buf[:0])
	for i := len(buf) - 1; i >= 0; i-- {
		if elementContains(buf[i], x, y, scrollY) {
			return buf[i], buf
		}
	}
	return nil, buf
}
