// Package folio is the view-state engine behind a single-page portfolio.
//
// It turns scroll, pointer, and key events into the values a renderer needs:
// the highlighted navigation section, the hero parallax pair, one-way reveal
// latches, the color scheme, and the project detail overlay. Computation is
// kept apart from drawing; the display package applies the values with
// [Ebitengine].
//
// # Quick start
//
//	doc := folio.NewDocument()
//	// ... lay out elements with ids "home", "about", ... ...
//	win := folio.NewWindow(doc, 1280, 800)
//	page := folio.NewPage(doc, folio.PageConfig{
//		Sections: []folio.SectionDescriptor{{ID: "home"}, {ID: "about"}},
//		HeroID:   "hero-content",
//	})
//	page.Mount(win, folio.Preferences{PrefersDark: true})
//	defer page.Unmount()
//
//	win.ScrollBy(400)         // handlers run synchronously
//	state := page.State()     // ActiveSection, Parallax, Theme, Modal, ...
//
// # Events and listener lifetimes
//
// A [Window] dispatches scroll, pointer, click, key, and resize events to
// callbacks registered with OnScroll, OnPointerMove, OnKeyDown and friends.
// Every registration returns a [CallbackHandle]; calling Remove is the
// matching release. The [ViewportTracker] holds its handles from Mount to
// Unmount, and the [ModalController] holds its Escape handle exactly while
// the overlay is open.
//
// # Geometry
//
// Elements of a [Document] carry page-space bounds. Components read client
// rectangles through the [Geometry] interface at evaluation time; an element
// that is not mounted is skipped for that event rather than reported as an
// error.
//
// [Ebitengine]: https://ebitengine.org
package folio
