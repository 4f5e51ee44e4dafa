package folio

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// ModalState is the detail overlay's state.
type ModalState uint8

const (
	ModalClosed ModalState = iota
	ModalOpen
)

// String returns "closed" or "open".
func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// CloseReason records what closed the overlay.
type CloseReason uint8

const (
	CloseButton   CloseReason = iota // explicit Close or Done action
	CloseBackdrop                    // click outside the panel
	CloseEscape                      // Escape key
	CloseUnmount                     // page teardown
)

// String returns the lowercase reason name.
func (r CloseReason) String() string {
	switch r {
	case CloseBackdrop:
		return "backdrop"
	case CloseEscape:
		return "escape"
	case CloseUnmount:
		return "unmount"
	default:
		return "button"
	}
}

// KeySource registers key-down listeners. *Window implements it.
type KeySource interface {
	OnKeyDown(fn func(KeyContext)) CallbackHandle
}

// Navigator performs outbound navigation for projects with an external link.
type Navigator interface {
	Navigate(url string) error
}

const modalFadeDuration = 0.2

// ModalController manages the single project detail overlay. The Escape
// listener is held exactly while the overlay is open: it is acquired on
// open, released on close, and re-acquired when the payload changes.
type ModalController struct {
	keys    KeySource
	nav     Navigator
	state   ModalState
	project ProjectRecord
	gen     uint64

	escape     CallbackHandle
	listening  bool
	lastReason CloseReason

	fade      float64
	fadeTween *TweenGroup

	// OnChange, if set, is called after every state transition.
	OnChange func(state ModalState, project *ProjectRecord)
}

// NewModalController creates a closed controller. nav may be nil, in which
// case linked projects cannot be followed and Select reports an error.
func NewModalController(keys KeySource, nav Navigator) *ModalController {
	return &ModalController{keys: keys, nav: nav}
}

// State returns the current state.
func (m *ModalController) State() ModalState {
	return m.state
}

// Project returns the open project, or nil when closed.
func (m *ModalController) Project() *ProjectRecord {
	if m.state != ModalOpen {
		return nil
	}
	p := m.project
	return &p
}

// Generation counts opens. It changes every time a payload is shown, even
// when the new project equals the previous one.
func (m *ModalController) Generation() uint64 {
	return m.gen
}

// Listening reports whether the Escape listener is registered.
func (m *ModalController) Listening() bool {
	return m.listening
}

// Fade returns the overlay's presentation opacity in [0, 1].
func (m *ModalController) Fade() float64 {
	return m.fade
}

// Select handles a click on a project card. A project with an external link
// is followed through the Navigator and the overlay is left untouched; a
// project without one opens the overlay.
func (m *ModalController) Select(p ProjectRecord) error {
	if !p.HasLink() {
		m.open(p)
		return nil
	}
	if m.nav == nil {
		return fmt.Errorf("folio: navigate %s: no navigator", p.Link)
	}
	if err := m.nav.Navigate(p.Link); err != nil {
		return fmt.Errorf("folio: navigate %s: %w", p.Link, err)
	}
	return nil
}

// ShowDetails opens the overlay for p regardless of its link.
func (m *ModalController) ShowDetails(p ProjectRecord) {
	m.open(p)
}

// Close closes the overlay. Closing a closed overlay is a no-op.
func (m *ModalController) Close(reason CloseReason) {
	if m.state != ModalOpen {
		return
	}
	m.release()
	m.state = ModalClosed
	m.project = ProjectRecord{}
	m.lastReason = reason
	m.fadeTween = nil
	m.fade = 0
	m.changed()
}

// LastCloseReason returns what closed the overlay most recently.
func (m *ModalController) LastCloseReason() CloseReason {
	return m.lastReason
}

// BackdropClick closes the overlay when (x, y) lies outside panel. Clicks
// inside the panel are ignored.
func (m *ModalController) BackdropClick(x, y float64, panel Rect) bool {
	if m.state != ModalOpen || panel.Contains(x, y) {
		return false
	}
	m.Close(CloseBackdrop)
	return true
}

// Update advances the fade-in tween by dt seconds.
func (m *ModalController) Update(dt float32) {
	if m.fadeTween == nil {
		return
	}
	m.fadeTween.Update(dt)
	if m.fadeTween.Done {
		m.fadeTween = nil
	}
}

func (m *ModalController) open(p ProjectRecord) {
	wasOpen := m.state == ModalOpen
	// Payload boundary: the listener bound to the previous project is
	// released before the new one is acquired.
	m.release()
	m.state = ModalOpen
	m.project = p
	m.gen++
	m.acquire()
	if !wasOpen {
		m.fade = 0
		m.fadeTween = TweenValue(&m.fade, 1, modalFadeDuration, ease.OutQuad)
	}
	m.changed()
}

func (m *ModalController) acquire() {
	if m.listening || m.keys == nil {
		return
	}
	m.escape = m.keys.OnKeyDown(func(ctx KeyContext) {
		// The page behind the overlay does not scroll while it is open.
		ctx.PreventDefault()
		if ctx.Key == KeyEscape {
			m.Close(CloseEscape)
		}
	})
	m.listening = true
}

func (m *ModalController) release() {
	if !m.listening {
		return
	}
	m.escape.Remove()
	m.escape = CallbackHandle{}
	m.listening = false
}

func (m *ModalController) changed() {
	if m.OnChange != nil {
		m.OnChange(m.state, m.Project())
	}
}
