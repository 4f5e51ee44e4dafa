package folio

// ViewportTracker follows the window's scroll offset and pointer position
// for the lifetime of a mounted page. Each event updates the signals and
// then calls the change callback synchronously; there is no batching.
type ViewportTracker struct {
	scrollY        int
	pointer        PointerPosition
	viewportHeight float64

	onChange func(EventType)

	mounted bool
	scroll  CallbackHandle
	move    CallbackHandle
	resize  CallbackHandle
}

// NewViewportTracker creates an unmounted tracker. onChange, if non-nil, is
// called after every signal update with the event that caused it.
func NewViewportTracker(onChange func(EventType)) *ViewportTracker {
	return &ViewportTracker{onChange: onChange}
}

// Mount subscribes to w's scroll, pointer-move and resize streams and seeds
// the signals from the window's current state. Mounting an already mounted
// tracker is a no-op.
func (t *ViewportTracker) Mount(w *Window) {
	if t.mounted {
		return
	}
	t.mounted = true
	t.scrollY = w.ScrollY()
	t.pointer = w.Pointer()
	_, t.viewportHeight = w.Size()

	t.scroll = w.OnScroll(func(ctx ScrollContext) {
		t.scrollY = ctx.ScrollY
		t.viewportHeight = ctx.ViewportHeight
		t.notify(EventScroll)
	})
	t.move = w.OnPointerMove(func(ctx PointerContext) {
		t.pointer = PointerPosition{X: ctx.X, Y: ctx.Y}
		t.notify(EventPointerMove)
	})
	t.resize = w.OnResize(func(ctx ResizeContext) {
		t.viewportHeight = ctx.Height
		t.notify(EventResize)
	})
}

// Unmount releases every subscription acquired by Mount. Unmounting an
// unmounted tracker is a no-op.
func (t *ViewportTracker) Unmount() {
	if !t.mounted {
		return
	}
	t.scroll.Remove()
	t.move.Remove()
	t.resize.Remove()
	t.scroll, t.move, t.resize = CallbackHandle{}, CallbackHandle{}, CallbackHandle{}
	t.mounted = false
}

// Mounted reports whether the tracker currently holds its subscriptions.
func (t *ViewportTracker) Mounted() bool {
	return t.mounted
}

// ScrollY returns the last observed scroll offset.
func (t *ViewportTracker) ScrollY() int {
	return t.scrollY
}

// Pointer returns the last observed pointer position.
func (t *ViewportTracker) Pointer() PointerPosition {
	return t.pointer
}

// ViewportHeight returns the last observed viewport height.
func (t *ViewportTracker) ViewportHeight() float64 {
	return t.viewportHeight
}

func (t *ViewportTracker) notify(event EventType) {
	if t.onChange != nil {
		t.onChange(event)
	}
}
