package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/folio"
)

// wheelStep is the scroll distance of one wheel notch.
const wheelStep = 48.0

var keyMap = map[ebiten.Key]folio.Key{
	ebiten.KeyEscape:      folio.KeyEscape,
	ebiten.KeyEnter:       folio.KeyEnter,
	ebiten.KeyNumpadEnter: folio.KeyEnter,
	ebiten.KeySpace:       folio.KeySpace,
	ebiten.KeyArrowUp:     folio.KeyArrowUp,
	ebiten.KeyArrowDown:   folio.KeyArrowDown,
	ebiten.KeyPageUp:      folio.KeyPageUp,
	ebiten.KeyPageDown:    folio.KeyPageDown,
	ebiten.KeyHome:        folio.KeyHome,
	ebiten.KeyEnd:         folio.KeyEnd,
}

// mapKey converts an Ebitengine key. Keys the page ignores map to
// folio.KeyOther.
func mapKey(k ebiten.Key) folio.Key {
	if fk, ok := keyMap[k]; ok {
		return fk
	}
	return folio.KeyOther
}

var buttonMap = [...]struct {
	eb ebiten.MouseButton
	fb folio.MouseButton
}{
	{ebiten.MouseButtonLeft, folio.MouseButtonLeft},
	{ebiten.MouseButtonRight, folio.MouseButtonRight},
	{ebiten.MouseButtonMiddle, folio.MouseButtonMiddle},
}

// readModifiers returns the currently held modifier keys.
func readModifiers() folio.KeyModifiers {
	var mods folio.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= folio.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= folio.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= folio.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= folio.ModMeta
	}
	return mods
}

// wheelDelta converts a wheel offset into a scroll distance. Positive wheel
// values scroll up.
func wheelDelta(wy float64) float64 {
	return -wy * wheelStep
}

// pollInput feeds one frame of real input into the window. While the detail
// overlay is shown the wheel and the navigation keys scroll the panel
// instead of the page.
func (g *Game) pollInput() {
	mods := readModifiers()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	g.win.MovePointer(x, y, mods)
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.win.PointerDown(x, y, b.fb, mods)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.win.PointerUp(x, y, b.fb, mods)
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		d := wheelDelta(wy)
		if g.layout.OverlayShown() {
			g.layout.ScrollPanel(d)
		} else {
			g.win.ScrollBy(int(d))
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		fk := mapKey(k)
		if fk == folio.KeyOther {
			continue
		}
		shown := g.layout.OverlayShown()
		g.win.KeyDown(fk, mods)
		if shown {
			g.layout.PanelKey(fk, mods)
		}
	}
}
