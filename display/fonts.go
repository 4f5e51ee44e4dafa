package display

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TextStyle selects a font face and size.
type TextStyle uint8

const (
	StyleBody TextStyle = iota
	StyleSmall
	StyleLead
	StyleButton
	StyleCardTitle
	StyleTitle
	StyleHeading
	StyleLogo
	StyleHero
	styleCount
)

type styleSpec struct {
	size float64
	bold bool
}

var styleSpecs = [styleCount]styleSpec{
	StyleBody:      {16, false},
	StyleSmall:     {14, false},
	StyleLead:      {18, false},
	StyleButton:    {16, true},
	StyleCardTitle: {20, true},
	StyleTitle:     {24, true},
	StyleHeading:   {36, true},
	StyleLogo:      {24, true},
	StyleHero:      {56, true},
}

// Size returns the font size of s in pixels.
func (s TextStyle) Size() float64 {
	return styleSpecs[s].size
}

// LineHeight returns the distance between two baselines of s.
func (s TextStyle) LineHeight() float64 {
	return styleSpecs[s].size * 1.5
}

// Measurer reports the horizontal advance of a string.
type Measurer interface {
	Advance(s string, style TextStyle) float64
}

// Fonts holds one Go font face per TextStyle.
type Fonts struct {
	faces [styleCount]*text.GoTextFace
}

// LoadFonts parses the embedded Go Regular and Go Bold fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("display: load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("display: load bold font: %w", err)
	}
	f := &Fonts{}
	for i, spec := range styleSpecs {
		src := regular
		if spec.bold {
			src = bold
		}
		f.faces[i] = &text.GoTextFace{Source: src, Size: spec.size}
	}
	return f, nil
}

// Face returns the face for style.
func (f *Fonts) Face(style TextStyle) *text.GoTextFace {
	return f.faces[style]
}

// Advance implements Measurer.
func (f *Fonts) Advance(s string, style TextStyle) float64 {
	return text.Advance(s, f.faces[style])
}
