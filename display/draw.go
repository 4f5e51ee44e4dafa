package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/folio"
)

// frame carries the per-frame inputs of a draw pass.
type frame struct {
	screen  *ebiten.Image
	pal     *Palette
	state   folio.ViewState
	page    *folio.Page
	hovered *folio.Element
	view    folio.Rect
}

// Renderer draws a laid-out document with the page's current view state.
type Renderer struct {
	fonts *Fonts
}

// NewRenderer creates a renderer that draws text with fonts.
func NewRenderer(fonts *Fonts) *Renderer {
	return &Renderer{fonts: fonts}
}

// Draw paints the page. Reveal presence and the overlay fade are applied
// here; the parallax offset is already part of the hero's bounds.
func (r *Renderer) Draw(screen *ebiten.Image, page *folio.Page) {
	state := page.State()
	f := frame{
		screen: screen,
		pal:    PaletteFor(state.Theme),
		state:  state,
		page:   page,
		view:   folio.Rect{Width: float64(screen.Bounds().Dx()), Height: float64(screen.Bounds().Dy())},
	}
	if w := page.Window(); w != nil {
		f.hovered = w.Hovered()
	}
	screen.Fill(toNRGBA(f.pal[RoleBackgroundAlt]))
	for _, c := range page.Document().Root().Children() {
		r.drawElement(&f, c, 1, 0)
	}
}

func (r *Renderer) drawElement(f *frame, el *folio.Element, alpha, shiftY float64) {
	if !el.Visible {
		return
	}
	if el.ID != "" {
		p := f.page.Presence(el.ID)
		alpha *= p.Alpha
		shiftY += p.ShiftY
	}
	switch el.ID {
	case IDHero:
		alpha *= f.state.Parallax.Opacity
	case IDModal:
		alpha *= f.state.ModalFade
	}
	if alpha <= 0 {
		return
	}

	rect := el.ClientRect(f.state.ScrollY).Offset(0, shiftY)
	if v, ok := el.UserData.(*visual); ok && f.onScreen(rect) {
		r.drawVisual(f, el, v, rect, alpha)
	}
	for _, c := range el.Children() {
		r.drawElement(f, c, alpha, shiftY)
	}
}

// onScreen reports whether rect, in viewport coordinates, touches the screen.
func (f *frame) onScreen(rect folio.Rect) bool {
	return rect.Intersects(f.view)
}

func (r *Renderer) drawVisual(f *frame, el *folio.Element, v *visual, rect folio.Rect, alpha float64) {
	hovered := f.hovered == el

	fill := v.fill
	if hovered && v.hoverFill != RoleNone {
		fill = v.hoverFill
	}
	if el.Kind == "nav" && !f.state.NavSolid {
		fill = RoleNone
	}
	if fill != RoleNone {
		vector.DrawFilledRect(f.screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
			toNRGBA(f.pal.Color(fill, alpha)), false)
	}
	if v.border {
		vector.StrokeRect(f.screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), 1,
			toNRGBA(f.pal.Color(RoleBorder, alpha)), false)
	}
	if len(v.runs) == 0 {
		return
	}

	dst := f.screen
	if v.clip {
		clip := image.Rect(int(rect.X), int(rect.Y), int(rect.X+rect.Width), int(rect.Y+rect.Height))
		dst = f.screen.SubImage(clip).(*ebiten.Image)
	}
	active := v.section != "" && v.section == f.state.ActiveSection
	for _, run := range v.runs {
		y := rect.Y + run.Y - v.scroll
		if v.clip && (y+run.Style.LineHeight() < rect.Y || y > rect.Bottom()) {
			continue
		}
		role := run.Role
		style := run.Style
		switch {
		case active:
			role = RoleAccent
			style = StyleButton
		case hovered && run.HoverRole != RoleNone:
			role = run.HoverRole
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(rect.X+run.X, y)
		op.ColorScale.ScaleWithColor(toNRGBA(f.pal.Color(role, alpha)))
		text.Draw(dst, run.Text, r.fonts.Face(style), op)
	}
}
