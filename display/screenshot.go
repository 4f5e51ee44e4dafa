package display

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// saveScreenshots writes the current frame once per label into dir and
// returns the paths written. Failures for individual labels are joined into
// the returned error; the remaining labels are still written.
func saveScreenshots(screen *ebiten.Image, dir string, labels []string, now time.Time) ([]string, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("display: screenshot: mkdir %s: %w", dir, err)
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := now.Format("20060102_150405")
	var (
		paths []string
		errs  []error
	)
	for i, label := range labels {
		path := filepath.Join(dir, fmt.Sprintf("%s_%02d_%s.png", stamp, i, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	if len(errs) > 0 {
		return paths, fmt.Errorf("display: screenshot: %w", errors.Join(errs...))
	}
	return paths, nil
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha
// image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces everything else
// with '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
