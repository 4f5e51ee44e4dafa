package display

import (
	"image/color"

	"github.com/phanxgames/folio"
)

// Role names a themed color slot. The zero Role draws nothing.
type Role uint8

const (
	RoleNone Role = iota
	RoleBackground
	RoleBackgroundAlt
	RoleHero
	RoleSurface
	RoleSurfaceHover
	RoleCard
	RoleCardHover
	RoleBorder
	RoleText
	RoleMuted
	RoleAccent
	RoleAccentHover
	RoleOnAccent
	RoleChip
	RoleChipText
	RoleTag
	RoleTagText
	RoleNav
	RoleToggle
	RoleToggleHover
	RoleFooter
	RoleFooterText
	RoleBackdrop
	RolePanel
	roleCount
)

// Palette maps every Role to a color for one theme mode.
type Palette [roleCount]folio.Color

func rgb(hex uint32) folio.Color {
	return folio.Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// LightPalette is used while the light theme is active.
var LightPalette = Palette{
	RoleBackground:    rgb(0xffffff),
	RoleBackgroundAlt: rgb(0xf9fafb),
	RoleHero:          rgb(0xeef2ff),
	RoleSurface:       rgb(0xffffff),
	RoleSurfaceHover:  rgb(0xf3f4f6),
	RoleCard:          rgb(0xf9fafb),
	RoleCardHover:     rgb(0xf3f4f6),
	RoleBorder:        rgb(0xe5e7eb),
	RoleText:          rgb(0x111827),
	RoleMuted:         rgb(0x4b5563),
	RoleAccent:        rgb(0x2563eb),
	RoleAccentHover:   rgb(0x1d4ed8),
	RoleOnAccent:      rgb(0xffffff),
	RoleChip:          rgb(0xffffff),
	RoleChipText:      rgb(0x374151),
	RoleTag:           rgb(0xdbeafe),
	RoleTagText:       rgb(0x2563eb),
	RoleNav:           rgb(0xffffff),
	RoleToggle:        rgb(0xe5e7eb),
	RoleToggleHover:   rgb(0xd1d5db),
	RoleFooter:        rgb(0x111827),
	RoleFooterText:    rgb(0xffffff),
	RoleBackdrop:      folio.Color{A: 0.6},
	RolePanel:         rgb(0xffffff),
}

// DarkPalette is used while the dark theme is active.
var DarkPalette = Palette{
	RoleBackground:    rgb(0x1f2937),
	RoleBackgroundAlt: rgb(0x111827),
	RoleHero:          rgb(0x1a2230),
	RoleSurface:       rgb(0x1f2937),
	RoleSurfaceHover:  rgb(0x374151),
	RoleCard:          rgb(0x374151),
	RoleCardHover:     rgb(0x4b5563),
	RoleBorder:        rgb(0x374151),
	RoleText:          rgb(0xffffff),
	RoleMuted:         rgb(0xd1d5db),
	RoleAccent:        rgb(0x2563eb),
	RoleAccentHover:   rgb(0x60a5fa),
	RoleOnAccent:      rgb(0xffffff),
	RoleChip:          rgb(0x1f2937),
	RoleChipText:      rgb(0xd1d5db),
	RoleTag:           rgb(0x1e3a8a),
	RoleTagText:       rgb(0x93c5fd),
	RoleNav:           rgb(0x1f2937),
	RoleToggle:        rgb(0x374151),
	RoleToggleHover:   rgb(0x4b5563),
	RoleFooter:        rgb(0x111827),
	RoleFooterText:    rgb(0xffffff),
	RoleBackdrop:      folio.Color{A: 0.6},
	RolePanel:         rgb(0x111827),
}

// PaletteFor returns the palette of mode.
func PaletteFor(mode folio.ThemeMode) *Palette {
	if mode == folio.ThemeDark {
		return &DarkPalette
	}
	return &LightPalette
}

// Color returns the color of role with its alpha scaled by alpha.
func (p *Palette) Color(role Role, alpha float64) folio.Color {
	if role >= roleCount {
		return folio.Color{}
	}
	return p[role].WithAlpha(alpha)
}

// toNRGBA converts a straight-alpha folio color for use with the vector
// package.
func toNRGBA(c folio.Color) color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
