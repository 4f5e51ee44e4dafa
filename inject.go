package folio

// syntheticKind distinguishes the queued synthetic events.
type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticScroll
	syntheticKey
)

// syntheticEvent represents a single injected input event. Pointer
// coordinates are client coordinates, identical to real mouse input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	button  MouseButton
	scrollY int
	key     Key
}

// InjectPress queues a pointer press at the given client coordinates (left
// button). The event is consumed on the next Update.
func (w *Window) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{
		kind: syntheticPointer,
		x:    x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given client coordinates.
func (w *Window) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{
		kind: syntheticPointer,
		x:    x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with no button held.
func (w *Window) InjectMove(x, y float64) {
	w.InjectRelease(x, y)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same client coordinates. Consumes two frames.
func (w *Window) InjectClick(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectScroll queues a jump to the given scroll offset.
func (w *Window) InjectScroll(y int) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{kind: syntheticScroll, scrollY: y})
}

// InjectKey queues a key press.
func (w *Window) InjectKey(k Key) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{kind: syntheticKey, key: k})
}

// Pending returns the number of queued synthetic events.
func (w *Window) Pending() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed.
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		w.processPointer(evt.x, evt.y, evt.pressed, evt.button, 0)
	case syntheticScroll:
		w.SetScroll(evt.scrollY)
	case syntheticKey:
		w.KeyDown(evt.key, 0)
	}
	return true
}
