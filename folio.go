package folio

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// EventType identifies a kind of window event.
type EventType uint8

const (
	EventScroll       EventType = iota // fires when the scroll offset changes
	EventPointerMove                   // fires when the pointer moves
	EventClick                         // fires on press then release over the same element
	EventKeyDown                       // fires when a key is pressed
	EventResize                        // fires when the viewport size changes
	EventPointerEnter                  // fires when the pointer enters an element
	EventPointerLeave                  // fires when the pointer leaves an element
)

// String returns the lowercase event name used in logs and test scripts.
func (e EventType) String() string {
	switch e {
	case EventScroll:
		return "scroll"
	case EventPointerMove:
		return "pointermove"
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keydown"
	case EventResize:
		return "resize"
	case EventPointerEnter:
		return "pointerenter"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a keyboard key the page reacts to. Keys the page has no use
// for are reported as KeyOther.
type Key uint8

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

var keyNames = map[string]Key{
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"space":     KeySpace,
	"arrowup":   KeyArrowUp,
	"arrowdown": KeyArrowDown,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
	"home":      KeyHome,
	"end":       KeyEnd,
}

// ParseKey maps a lowercase key name ("escape", "pagedown", ...) to a Key.
// Unknown names map to KeyOther.
func ParseKey(name string) Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	return KeyOther
}
