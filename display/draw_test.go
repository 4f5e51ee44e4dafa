package display

import (
	"testing"

	"github.com/phanxgames/folio"
)

func TestFrameOnScreen(t *testing.T) {
	f := frame{view: folio.Rect{Width: 1280, Height: 800}}

	tests := []struct {
		name string
		rect folio.Rect
		want bool
	}{
		{"inside", folio.Rect{X: 100, Y: 100, Width: 200, Height: 50}, true},
		{"straddles the bottom", folio.Rect{Y: 780, Width: 1280, Height: 100}, true},
		{"scrolled above", folio.Rect{Y: -300, Width: 1280, Height: 200}, false},
		{"below the fold", folio.Rect{Y: 900, Width: 1280, Height: 200}, false},
		{"off to the right", folio.Rect{X: 1400, Y: 100, Width: 50, Height: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.onScreen(tt.rect); got != tt.want {
				t.Errorf("onScreen(%+v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}
