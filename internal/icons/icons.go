// Package icons renders the fixed toolbar icon catalog as square RGBA
// surfaces. Every icon is drawn procedurally as opaque white strokes on
// a transparent canvas; the consuming toolbar applies its own tint.
package icons

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/Mavwarf/icongen/internal/assets"
)

// DefaultSize is the toolbar icon dimension in pixels.
const DefaultSize = 24

// Icon pairs an emitted symbol name with its rendered surface.
type Icon struct {
	Name  string
	Image *image.NRGBA
}

// entry describes one catalog slot: the symbol name, the bitmap asset
// that overrides the renderer when present on disk, and the procedural
// fallback renderer.
type entry struct {
	name   string
	asset  string
	render func(size int) *image.NRGBA
}

// Catalog order is the emission order and assigns each icon's index in
// the generated lookup table.
var catalog = []entry{
	{"toolbar_icon_prev", "prev.png", renderChevronLeft},
	{"toolbar_icon_next", "next.png", renderChevronRight},
	{"toolbar_icon_rotate_cw", "rotate_cw.png", renderRotateCW},
	{"toolbar_icon_rotate_ccw", "rotate_ccw.png", renderRotateCCW},
	{"toolbar_icon_zoom_in", "zoom_in.png", renderZoomIn},
	{"toolbar_icon_zoom_out", "zoom_out.png", renderZoomOut},
	{"toolbar_icon_fit", "fit.png", renderFit},
	{"toolbar_icon_fullscreen", "fullscreen.png", renderFullscreen},
}

// Catalog renders every toolbar icon at the given size, in catalog
// order. Icons with an asset file in the current directory are decoded
// from it; all others are drawn procedurally.
func Catalog(size int) ([]Icon, error) {
	return CatalogDir(".", size)
}

// CatalogDir is Catalog with an explicit asset directory.
func CatalogDir(dir string, size int) ([]Icon, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}
	set := make([]Icon, 0, len(catalog))
	for _, e := range catalog {
		img, err := e.load(dir, size)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", e.name, err)
		}
		set = append(set, Icon{Name: e.name, Image: img})
	}
	return set, nil
}

// load decodes the entry's asset if it exists, otherwise falls back to
// the procedural renderer. An asset that exists but cannot be decoded
// is an error: a broken file should stop the build, not silently
// change the icon's look.
func (e entry) load(dir string, size int) (*image.NRGBA, error) {
	p := filepath.Join(dir, e.asset)
	if _, err := os.Stat(p); err != nil {
		return e.render(size), nil
	}
	return assets.Load(p, size)
}

func renderChevronLeft(size int) *image.NRGBA {
	c := newCanvas(size)
	cx, cy := float64(size/2), float64(size/2)
	c.strokePolyline(3,
		point{cx + 4, cy - 7}, point{cx - 4, cy}, point{cx + 4, cy + 7})
	return c.image()
}

func renderChevronRight(size int) *image.NRGBA {
	c := newCanvas(size)
	cx, cy := float64(size/2), float64(size/2)
	c.strokePolyline(3,
		point{cx - 4, cy - 7}, point{cx + 4, cy}, point{cx - 4, cy + 7})
	return c.image()
}

func renderRotateCW(size int) *image.NRGBA {
	c := newCanvas(size)
	s := float64(size)
	c.strokeArc(4, 4, s-4, s-4, 45, 315, 2)
	// Arrow head at the end of the arc.
	c.fillPolygon(point{s - 6, 6}, point{s - 3, 10}, point{s - 10, 8})
	return c.image()
}

func renderRotateCCW(size int) *image.NRGBA {
	c := newCanvas(size)
	s := float64(size)
	c.strokeArc(4, 4, s-4, s-4, 225, 495, 2)
	c.fillPolygon(point{6, 6}, point{10, 3}, point{8, 10})
	return c.image()
}

func renderZoomIn(size int) *image.NRGBA {
	c := newCanvas(size)
	cx, cy := float64(size/2), float64(size/2)
	c.strokePolyline(3, point{cx - 6, cy}, point{cx + 6, cy})
	c.strokePolyline(3, point{cx, cy - 6}, point{cx, cy + 6})
	return c.image()
}

func renderZoomOut(size int) *image.NRGBA {
	c := newCanvas(size)
	cx, cy := float64(size/2), float64(size/2)
	c.strokePolyline(3, point{cx - 6, cy}, point{cx + 6, cy})
	return c.image()
}

func renderFit(size int) *image.NRGBA {
	c := newCanvas(size)
	s := float64(size)
	c.strokeRect(4, 4, s-5, s-5, 2)
	// Diagonal arrows pointing inward.
	c.strokePolyline(2, point{4, 4}, point{10, 10})
	c.strokePolyline(2, point{s - 5, s - 5}, point{s - 11, s - 11})
	return c.image()
}

func renderFullscreen(size int) *image.NRGBA {
	c := newCanvas(size)
	s := float64(size)
	c.strokePolyline(2, point{2, 8}, point{2, 2}, point{8, 2})
	c.strokePolyline(2, point{s - 9, 2}, point{s - 3, 2}, point{s - 3, 8})
	c.strokePolyline(2, point{2, s - 9}, point{2, s - 3}, point{8, s - 3})
	c.strokePolyline(2, point{s - 9, s - 3}, point{s - 3, s - 3}, point{s - 3, s - 9})
	return c.image()
}
