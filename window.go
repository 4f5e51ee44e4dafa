package folio

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PointerPosition is the last known pointer location in client coordinates.
type PointerPosition struct {
	X, Y float64
}

const (
	// arrowScrollStep is the distance scrolled by the arrow keys.
	arrowScrollStep = 40
	// pageScrollFraction is the share of the viewport scrolled by PageUp,
	// PageDown and Space.
	pageScrollFraction = 0.9
)

// scrollAnim holds an active smooth-scroll tween.
type scrollAnim struct {
	tween *gween.Tween
}

// Window is the top-level event source for one page: it owns the scroll
// offset, pointer state, viewport size, and the callback registry. All
// events are dispatched synchronously, in registration order, from the
// method that produced them.
type Window struct {
	doc *Document

	width, height float64
	scrollY       int
	pointer       PointerPosition

	handlers handlerRegistry
	ptr      pointerState
	hitBuf   []*Element

	scrollTween *scrollAnim

	injectQueue     []syntheticEvent
	screenshotQueue []string
	testRunner      *TestRunner

	debug bool
}

// NewWindow creates a window over doc with the given viewport size.
func NewWindow(doc *Document, width, height float64) *Window {
	return &Window{doc: doc, width: width, height: height}
}

// Document returns the document the window displays.
func (w *Window) Document() *Document {
	return w.doc
}

// ScrollY returns the current vertical scroll offset in pixels.
func (w *Window) ScrollY() int {
	return w.scrollY
}

// Pointer returns the last known pointer position.
func (w *Window) Pointer() PointerPosition {
	return w.pointer
}

// Size returns the viewport size.
func (w *Window) Size() (width, height float64) {
	return w.width, w.height
}

// Hovered returns the element currently under the pointer, or nil.
func (w *Window) Hovered() *Element {
	if w.ptr.hoverElement != nil && w.ptr.hoverElement.IsRemoved() {
		return nil
	}
	return w.ptr.hoverElement
}

// MaxScroll returns the largest valid scroll offset.
func (w *Window) MaxScroll() int {
	m := int(math.Ceil(w.doc.Height() - w.height))
	if m < 0 {
		return 0
	}
	return m
}

// SetScroll jumps to the given offset, cancelling any smooth scroll.
func (w *Window) SetScroll(y int) {
	w.scrollTween = nil
	w.setScroll(y)
}

// ScrollBy scrolls relative to the current offset, cancelling any smooth
// scroll.
func (w *Window) ScrollBy(dy int) {
	w.SetScroll(w.scrollY + dy)
}

// setScroll clamps y, stores it, and fires scroll handlers when it changed.
func (w *Window) setScroll(y int) {
	y = max(0, min(y, w.MaxScroll()))
	if y == w.scrollY {
		return
	}
	prev := w.scrollY
	w.scrollY = y
	w.fireScroll(prev)
	w.refreshHover()
}

// ScrollTo animates the scroll offset to y over duration seconds. A
// non-positive duration jumps immediately.
func (w *Window) ScrollTo(y int, duration float32, easeFn ease.TweenFunc) {
	y = max(0, min(y, w.MaxScroll()))
	if duration <= 0 {
		w.SetScroll(y)
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutQuad
	}
	w.scrollTween = &scrollAnim{
		tween: gween.New(float32(w.scrollY), float32(y), duration, easeFn),
	}
}

// ScrollIntoView smooth-scrolls so the element's top aligns with the top of
// the viewport. It reports false, and does nothing, when no element with
// that id is attached or the element is fixed or hidden.
func (w *Window) ScrollIntoView(id string, duration float32) bool {
	el, ok := w.doc.ElementByID(id)
	if !ok || el.IsFixed() || !el.IsShown() {
		return false
	}
	w.ScrollTo(int(math.Round(el.Bounds.Y)), duration, ease.InOutQuad)
	return true
}

// Scrolling reports whether a smooth scroll is in progress.
func (w *Window) Scrolling() bool {
	return w.scrollTween != nil
}

// Resize sets a new viewport size, re-clamps the scroll offset, and fires
// resize handlers.
func (w *Window) Resize(width, height float64) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.debugf("resize %.0fx%.0f", width, height)
	w.fireResize()
	w.setScroll(w.scrollY)
	w.refreshHover()
}

// ContentChanged re-clamps the scroll offset and refreshes hover state after
// the document was laid out again.
func (w *Window) ContentChanged() {
	w.setScroll(w.scrollY)
	w.refreshHover()
}

// MovePointer reports a pointer position with no button change.
func (w *Window) MovePointer(x, y float64, mods KeyModifiers) {
	w.processPointer(x, y, w.ptr.down, w.ptr.button, mods)
}

// PointerDown reports a button press at (x, y).
func (w *Window) PointerDown(x, y float64, button MouseButton, mods KeyModifiers) {
	w.processPointer(x, y, true, button, mods)
}

// PointerUp reports a button release at (x, y).
func (w *Window) PointerUp(x, y float64, button MouseButton, mods KeyModifiers) {
	w.processPointer(x, y, false, button, mods)
}

// KeyDown dispatches a key press to the registered handlers, then applies
// the default keyboard scrolling for navigation keys unless a handler called
// PreventDefault.
func (w *Window) KeyDown(k Key, mods KeyModifiers) {
	if w.fireKey(k, mods) {
		return
	}

	page := int(w.height * pageScrollFraction)
	switch k {
	case KeyArrowDown:
		w.ScrollBy(arrowScrollStep)
	case KeyArrowUp:
		w.ScrollBy(-arrowScrollStep)
	case KeyPageDown:
		w.ScrollBy(page)
	case KeySpace:
		if mods&ModShift != 0 {
			w.ScrollBy(-page)
		} else {
			w.ScrollBy(page)
		}
	case KeyPageUp:
		w.ScrollBy(-page)
	case KeyHome:
		w.SetScroll(0)
	case KeyEnd:
		w.SetScroll(w.MaxScroll())
	}
}

// Update advances the window by one frame: the test runner steps, one
// synthetic event is consumed, and any smooth scroll advances by dt seconds.
func (w *Window) Update(dt float32) {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInjectedInput()

	if w.scrollTween != nil {
		val, done := w.scrollTween.tween.Update(dt)
		if done {
			w.scrollTween = nil
		}
		w.setScroll(int(math.Round(float64(val))))
	}
}
