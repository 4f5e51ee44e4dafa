package folio

// --- Event contexts ---

// ScrollContext carries scroll event data.
type ScrollContext struct {
	ScrollY        int
	PrevScrollY    int
	ViewportWidth  float64
	ViewportHeight float64
}

// PointerContext carries pointer event data. Element is the topmost
// interactable element under the pointer, or nil.
type PointerContext struct {
	Element   *Element
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// ClickContext carries click event data.
type ClickContext struct {
	Element   *Element
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// KeyContext carries key event data.
type KeyContext struct {
	Key       Key
	Modifiers KeyModifiers

	prevented *bool
}

// PreventDefault suppresses the window's built-in key scrolling for this
// event. Later handlers still run.
func (c KeyContext) PreventDefault() {
	if c.prevented != nil {
		*c.prevented = true
	}
}

// ResizeContext carries the new viewport size.
type ResizeContext struct {
	Width, Height float64
}

// --- Per-pointer state ---

type pointerState struct {
	down         bool
	lastX        float64
	lastY        float64
	hitElement   *Element
	hoverElement *Element
	button       MouseButton // button captured at press time
}

// --- Handler registry ---

type scrollHandler struct {
	id uint32
	fn func(ScrollContext)
}

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type keyHandler struct {
	id uint32
	fn func(KeyContext)
}

type resizeHandler struct {
	id uint32
	fn func(ResizeContext)
}

type handlerRegistry struct {
	scroll       []scrollHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []clickHandler
	keyDown      []keyHandler
	resize       []resizeHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered window-level callback. The zero
// value is inert.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventScroll:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id, func(x scrollHandler) uint32 { return x.id })
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id, pointerHandlerID)
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id, pointerHandlerID)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id, pointerHandlerID)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(x clickHandler) uint32 { return x.id })
	case EventKeyDown:
		h.reg.keyDown = removeHandler(h.reg.keyDown, h.id, func(x keyHandler) uint32 { return x.id })
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id, func(x resizeHandler) uint32 { return x.id })
	}
}

// Active reports whether the callback is still registered.
func (h CallbackHandle) Active() bool {
	if h.reg == nil {
		return false
	}
	for _, id := range h.reg.ids(h.event) {
		if id == h.id {
			return true
		}
	}
	return false
}

func pointerHandlerID(h pointerHandler) uint32 { return h.id }

// removeHandler deletes the entry with the given id, preserving order.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func collectIDs[T any](s []T, idOf func(T) uint32) []uint32 {
	ids := make([]uint32, len(s))
	for i := range s {
		ids[i] = idOf(s[i])
	}
	return ids
}

// ids returns the registered handler ids for an event type.
func (r *handlerRegistry) ids(event EventType) []uint32 {
	switch event {
	case EventScroll:
		return collectIDs(r.scroll, func(x scrollHandler) uint32 { return x.id })
	case EventPointerMove:
		return collectIDs(r.pointerMove, pointerHandlerID)
	case EventPointerEnter:
		return collectIDs(r.pointerEnter, pointerHandlerID)
	case EventPointerLeave:
		return collectIDs(r.pointerLeave, pointerHandlerID)
	case EventClick:
		return collectIDs(r.click, func(x clickHandler) uint32 { return x.id })
	case EventKeyDown:
		return collectIDs(r.keyDown, func(x keyHandler) uint32 { return x.id })
	case EventResize:
		return collectIDs(r.resize, func(x resizeHandler) uint32 { return x.id })
	}
	return nil
}

// --- Window-level event registration ---

// OnScroll registers a callback for scroll offset changes.
func (w *Window) OnScroll(fn func(ScrollContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.scroll = append(w.handlers.scroll, scrollHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventScroll}
}

// OnPointerMove registers a callback for pointer movement.
func (w *Window) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.pointerMove = append(w.handlers.pointerMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventPointerMove}
}

// OnPointerEnter registers a callback fired when the pointer moves onto a
// new element.
func (w *Window) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.pointerEnter = append(w.handlers.pointerEnter, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a callback fired when the pointer leaves an element.
func (w *Window) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.pointerLeave = append(w.handlers.pointerLeave, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventPointerLeave}
}

// OnClick registers a callback for clicks.
func (w *Window) OnClick(fn func(ClickContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.click = append(w.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventClick}
}

// OnKeyDown registers a callback for key presses.
func (w *Window) OnKeyDown(fn func(KeyContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.keyDown = append(w.handlers.keyDown, keyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventKeyDown}
}

// OnResize registers a callback for viewport size changes.
func (w *Window) OnResize(fn func(ResizeContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.resize = append(w.handlers.resize, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers, event: EventResize}
}

// HandlerCount returns the number of callbacks registered for an event type.
func (w *Window) HandlerCount(event EventType) int {
	return len(w.handlers.ids(event))
}

// --- Pointer processing ---

// processPointer runs the pointer state machine for the mouse pointer.
func (w *Window) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &w.ptr

	var target *Element
	target, w.hitBuf = w.doc.HitTest(x, y, w.scrollY, w.hitBuf)

	if target != ps.hoverElement {
		if ps.hoverElement != nil {
			w.firePointer(EventPointerLeave, ps.hoverElement, x, y, button, mods)
		}
		if target != nil {
			w.firePointer(EventPointerEnter, target, x, y, button, mods)
		}
		ps.hoverElement = target
	}

	moved := x != ps.lastX || y != ps.lastY
	ps.lastX, ps.lastY = x, y
	if moved {
		w.pointer = PointerPosition{X: x, Y: y}
		w.firePointer(EventPointerMove, target, x, y, button, mods)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitElement = target
	case !pressed && ps.down:
		if ps.hitElement != nil && ps.hitElement == target {
			w.fireClick(target, x, y, ps.button, mods)
		}
		ps.down = false
		ps.hitElement = nil
	}
}

// refreshHover re-runs hover detection after the content moved under a
// stationary pointer (scroll, resize).
func (w *Window) refreshHover() {
	ps := &w.ptr
	var target *Element
	target, w.hitBuf = w.doc.HitTest(ps.lastX, ps.lastY, w.scrollY, w.hitBuf)
	if target == ps.hoverElement {
		return
	}
	if ps.hoverElement != nil {
		w.firePointer(EventPointerLeave, ps.hoverElement, ps.lastX, ps.lastY, ps.button, 0)
	}
	if target != nil {
		w.firePointer(EventPointerEnter, target, ps.lastX, ps.lastY, ps.button, 0)
	}
	ps.hoverElement = target
}

// --- Event dispatch ---

func (w *Window) firePointer(event EventType, el *Element, x, y float64, button MouseButton, mods KeyModifiers) {
	ctx := PointerContext{Element: el, X: x, Y: y, Button: button, Modifiers: mods}
	var hs []pointerHandler
	switch event {
	case EventPointerMove:
		hs = w.handlers.pointerMove
	case EventPointerEnter:
		hs = w.handlers.pointerEnter
	case EventPointerLeave:
		hs = w.handlers.pointerLeave
	}
	for _, h := range snapshot(hs) {
		h.fn(ctx)
	}
	if el == nil {
		return
	}
	switch event {
	case EventPointerEnter:
		if el.OnPointerEnter != nil {
			el.OnPointerEnter(ctx)
		}
	case EventPointerLeave:
		if el.OnPointerLeave != nil {
			el.OnPointerLeave(ctx)
		}
	}
}

func (w *Window) fireClick(el *Element, x, y float64, button MouseButton, mods KeyModifiers) {
	ctx := ClickContext{Element: el, X: x, Y: y, Button: button, Modifiers: mods}
	w.debugf("click %q at (%.0f, %.0f)", elementID(el), x, y)
	for _, h := range snapshot(w.handlers.click) {
		h.fn(ctx)
	}
	if el != nil && el.OnClick != nil {
		el.OnClick(ctx)
	}
}

func (w *Window) fireScroll(prev int) {
	ctx := ScrollContext{
		ScrollY:        w.scrollY,
		PrevScrollY:    prev,
		ViewportWidth:  w.width,
		ViewportHeight: w.height,
	}
	for _, h := range snapshot(w.handlers.scroll) {
		h.fn(ctx)
	}
}

// fireKey dispatches a key-down and reports whether a handler prevented the
// default action.
func (w *Window) fireKey(k Key, mods KeyModifiers) bool {
	var prevented bool
	ctx := KeyContext{Key: k, Modifiers: mods, prevented: &prevented}
	for _, h := range snapshot(w.handlers.keyDown) {
		h.fn(ctx)
	}
	return prevented
}

func (w *Window) fireResize() {
	ctx := ResizeContext{Width: w.width, Height: w.height}
	for _, h := range snapshot(w.handlers.resize) {
		h.fn(ctx)
	}
}

// snapshot copies a handler slice so callbacks may register or remove
// handlers while an event is being dispatched.
func snapshot[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func elementID(el *Element) string {
	if el == nil {
		return ""
	}
	return el.ID
}
