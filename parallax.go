package folio

const (
	// ParallaxRate is the vertical offset applied per scrolled pixel.
	ParallaxRate = 0.4
	// ParallaxFadeRate is the opacity lost per scrolled pixel.
	ParallaxFadeRate = 0.002
)

// Parallax is the hero element's computed motion for one scroll offset.
type Parallax struct {
	Offset  float64 // downward translation in pixels
	Opacity float64 // in [0, 1]
}

// ComputeParallax returns offset = scrollY × 0.4 and
// opacity = 1 − scrollY × 0.002, with opacity clamped to [0, 1].
func ComputeParallax(scrollY int) Parallax {
	y := float64(scrollY)
	opacity := 1 - y*ParallaxFadeRate
	switch {
	case opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	return Parallax{Offset: y * ParallaxRate, Opacity: opacity}
}

// ParallaxAnimator computes the parallax pair for a single target element.
type ParallaxAnimator struct {
	target  string
	current Parallax
}

// NewParallaxAnimator creates an animator for the element with the given id.
func NewParallaxAnimator(target string) *ParallaxAnimator {
	return &ParallaxAnimator{target: target, current: Parallax{Opacity: 1}}
}

// Target returns the id of the animated element.
func (p *ParallaxAnimator) Target() string {
	return p.target
}

// Current returns the last computed pair.
func (p *ParallaxAnimator) Current() Parallax {
	return p.current
}

// Evaluate recomputes the pair for scrollY. When the target element is not
// mounted the computation is skipped and false is returned.
func (p *ParallaxAnimator) Evaluate(geom Geometry, scrollY int) bool {
	if _, ok := geom.ClientRect(p.target, scrollY); !ok {
		return false
	}
	p.current = ComputeParallax(scrollY)
	return true
}
