package folio

import "github.com/tanema/gween/ease"

const (
	// revealThreshold is the fraction of the viewport height the top edge of
	// a tracked element must reach to be revealed.
	revealThreshold = 0.8

	revealDuration = 0.7
	revealShift    = 24.0
)

// Presence is the presentation state of a tracked element: how opaque it is
// and how far below its resting position it is drawn.
type Presence struct {
	Alpha  float64
	ShiftY float64
}

type revealEntry struct {
	id       string
	visible  bool
	presence Presence
	tween    *TweenGroup
}

// RevealAnimator latches a visibility flag per tracked element once the
// element's top edge reaches 80% of the viewport height. The latch never
// resets within a session.
type RevealAnimator struct {
	entries []*revealEntry
	byID    map[string]*revealEntry
	pending int

	// Animate controls whether a newly revealed element fades in. When false
	// the presence jumps straight to fully shown.
	Animate bool
}

// NewRevealAnimator creates an animator with no tracked elements.
func NewRevealAnimator() *RevealAnimator {
	return &RevealAnimator{byID: make(map[string]*revealEntry), Animate: true}
}

// Track adds element ids to the tracked set. Ids already tracked keep their
// current state.
func (r *RevealAnimator) Track(ids ...string) {
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			continue
		}
		e := &revealEntry{id: id, presence: Presence{Alpha: 0, ShiftY: revealShift}}
		r.entries = append(r.entries, e)
		r.byID[id] = e
		r.pending++
	}
}

// Tracked reports whether id is in the tracked set.
func (r *RevealAnimator) Tracked(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Visible reports whether the element with the given id has been revealed.
// Untracked ids are always visible.
func (r *RevealAnimator) Visible(id string) bool {
	e, ok := r.byID[id]
	if !ok {
		return true
	}
	return e.visible
}

// Presence returns the presentation state of id. Untracked ids are fully
// shown.
func (r *RevealAnimator) Presence(id string) Presence {
	e, ok := r.byID[id]
	if !ok {
		return Presence{Alpha: 1}
	}
	return e.presence
}

// Pending returns the number of tracked elements not yet revealed.
func (r *RevealAnimator) Pending() int {
	return r.pending
}

// Evaluate tests every unrevealed element against the threshold and latches
// the ones that pass. It returns the ids revealed by this call, in tracking
// order. Elements that are not mounted are skipped.
func (r *RevealAnimator) Evaluate(geom Geometry, scrollY int, viewportHeight float64) []string {
	if r.pending == 0 {
		return nil
	}
	line := viewportHeight * revealThreshold
	var revealed []string
	for _, e := range r.entries {
		if e.visible {
			continue
		}
		rect, ok := geom.ClientRect(e.id, scrollY)
		if !ok {
			continue
		}
		if rect.Top() <= line {
			r.latch(e)
			revealed = append(revealed, e.id)
		}
	}
	return revealed
}

func (r *RevealAnimator) latch(e *revealEntry) {
	e.visible = true
	r.pending--
	if !r.Animate {
		e.presence = Presence{Alpha: 1}
		return
	}
	e.tween = TweenValues(
		[]*float64{&e.presence.Alpha, &e.presence.ShiftY},
		[]float64{1, 0},
		revealDuration, ease.OutCubic,
	)
}

// Update advances the fade-in tweens by dt seconds.
func (r *RevealAnimator) Update(dt float32) {
	for _, e := range r.entries {
		if e.tween == nil {
			continue
		}
		e.tween.Update(dt)
		if e.tween.Done {
			e.tween = nil
		}
	}
}
