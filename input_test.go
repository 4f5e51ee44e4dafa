package folio

import "testing"

func newButtonWindow() (*Window, *Element, *Element) {
	doc := NewDocument()
	a := NewElement("a", "button", Rect{X: 0, Y: 0, Width: 100, Height: 100})
	a.Interactable = true
	b := NewElement("b", "button", Rect{X: 200, Y: 0, Width: 100, Height: 100})
	b.Interactable = true
	doc.Root().AddChild(a)
	doc.Root().AddChild(b)
	doc.SetHeight(600)
	return NewWindow(doc, 400, 300), a, b
}

func TestCallbackHandleRemove(t *testing.T) {
	w := NewWindow(NewDocument(), 100, 100)

	calls := 0
	h := w.OnKeyDown(func(KeyContext) { calls++ })
	if !h.Active() {
		t.Fatal("handle should be active after registration")
	}
	w.KeyDown(KeyEscape, 0)

	h.Remove()
	h.Remove()
	w.KeyDown(KeyEscape, 0)

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if h.Active() {
		t.Error("handle should be inactive after Remove")
	}
	if n := w.HandlerCount(EventKeyDown); n != 0 {
		t.Errorf("HandlerCount = %d, want 0", n)
	}
}

func TestZeroCallbackHandleIsInert(t *testing.T) {
	var h CallbackHandle
	h.Remove()
	if h.Active() {
		t.Error("zero handle should not be active")
	}
}

func TestRemoveKeepsOtherHandlers(t *testing.T) {
	w := NewWindow(newTestDocument(), 1280, 800)

	var order []int
	h1 := w.OnScroll(func(ScrollContext) { order = append(order, 1) })
	w.OnScroll(func(ScrollContext) { order = append(order, 2) })
	w.OnScroll(func(ScrollContext) { order = append(order, 3) })

	h1.Remove()
	w.SetScroll(10)

	if len(order) != 2 || order[0] != 2 || order[1] != 3 {
		t.Errorf("order = %v, want [2 3]", order)
	}
}

func TestHandlerCount(t *testing.T) {
	w := NewWindow(NewDocument(), 100, 100)
	w.OnScroll(func(ScrollContext) {})
	w.OnPointerMove(func(PointerContext) {})
	w.OnPointerMove(func(PointerContext) {})
	w.OnResize(func(ResizeContext) {})

	tests := []struct {
		event EventType
		want  int
	}{
		{EventScroll, 1},
		{EventPointerMove, 2},
		{EventResize, 1},
		{EventClick, 0},
		{EventKeyDown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			if got := w.HandlerCount(tt.event); got != tt.want {
				t.Errorf("HandlerCount(%s) = %d, want %d", tt.event, got, tt.want)
			}
		})
	}
}

func TestClickRequiresSameElement(t *testing.T) {
	w, a, _ := newButtonWindow()

	var clicks []string
	w.OnClick(func(ctx ClickContext) { clicks = append(clicks, elementID(ctx.Element)) })
	elementClicks := 0
	a.OnClick = func(ClickContext) { elementClicks++ }

	w.PointerDown(50, 50, MouseButtonLeft, 0)
	w.PointerUp(55, 55, MouseButtonLeft, 0)

	w.PointerDown(50, 50, MouseButtonLeft, 0)
	w.PointerUp(250, 50, MouseButtonLeft, 0)

	if len(clicks) != 1 || clicks[0] != "a" {
		t.Errorf("clicks = %v, want [a]", clicks)
	}
	if elementClicks != 1 {
		t.Errorf("element OnClick called %d times, want 1", elementClicks)
	}
}

func TestClickOnEmptySpace(t *testing.T) {
	w, _, _ := newButtonWindow()
	var got []*Element
	w.OnClick(func(ctx ClickContext) { got = append(got, ctx.Element) })

	w.PointerDown(150, 250, MouseButtonLeft, 0)
	w.PointerUp(150, 250, MouseButtonLeft, 0)

	if len(got) != 0 {
		t.Errorf("click with no element fired %d times, want 0", len(got))
	}
}

func TestHoverEnterLeave(t *testing.T) {
	w, _, _ := newButtonWindow()

	var log []string
	w.OnPointerEnter(func(ctx PointerContext) { log = append(log, "enter "+ctx.Element.ID) })
	w.OnPointerLeave(func(ctx PointerContext) { log = append(log, "leave "+ctx.Element.ID) })

	w.MovePointer(10, 10, 0)
	w.MovePointer(20, 20, 0)
	w.MovePointer(210, 10, 0)
	w.MovePointer(150, 10, 0)

	want := []string{"enter a", "leave a", "enter b", "leave b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if w.Hovered() != nil {
		t.Error("nothing should be hovered")
	}
}

func TestHoverRefreshesOnScroll(t *testing.T) {
	w, a, _ := newButtonWindow()
	w.MovePointer(50, 50, 0)
	if w.Hovered() != a {
		t.Fatal("expected a hovered")
	}

	w.SetScroll(200)
	if w.Hovered() != nil {
		t.Error("scrolling a away from the pointer should clear hover")
	}
}

func TestPointerMoveOnlyOnPositionChange(t *testing.T) {
	w, _, _ := newButtonWindow()
	moves := 0
	w.OnPointerMove(func(PointerContext) { moves++ })

	w.MovePointer(10, 10, 0)
	w.MovePointer(10, 10, 0)
	w.MovePointer(12, 10, 0)

	if moves != 2 {
		t.Errorf("moves = %d, want 2", moves)
	}
	if p := w.Pointer(); p.X != 12 || p.Y != 10 {
		t.Errorf("Pointer = %+v, want (12, 10)", p)
	}
}

func TestHandlerRemovedDuringDispatch(t *testing.T) {
	w := NewWindow(NewDocument(), 100, 100)
	calls := 0
	var h CallbackHandle
	h = w.OnKeyDown(func(KeyContext) {
		calls++
		h.Remove()
	})

	w.KeyDown(KeyEnter, 0)
	w.KeyDown(KeyEnter, 0)

	if calls != 1 {
		t.Errorf("self-removing handler called %d times, want 1", calls)
	}
}
