package icons

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/Mavwarf/icongen/internal/assets"
)

// stroke color for every icon; the toolbar tints at render time.
var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// arcStepDeg is the flattening step for arcs. Small enough that the
// chord error is far below one pixel at toolbar sizes.
const arcStepDeg = 3.0

type point struct{ x, y float64 }

// canvas is a transparent square surface with stroke and fill
// primitives rasterized by rasterx onto an image.RGBA.
type canvas struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	size    int
}

func newCanvas(size int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	sc := rasterx.NewScannerGV(size, size, img, img.Bounds())
	sc.SetColor(white)
	return &canvas{img: img, scanner: sc, size: size}
}

// image returns the finished surface with independent (non-premultiplied)
// channels, the form the packed output encodes.
func (c *canvas) image() *image.NRGBA {
	return assets.Unpremultiply(c.img)
}

// strokePolyline strokes connected segments through pts with the given
// line width, round caps and round joins.
func (c *canvas) strokePolyline(width float64, pts ...point) {
	if len(pts) < 2 {
		return
	}
	st := c.newStroker(width)
	st.Start(fixedP(pts[0]))
	for _, p := range pts[1:] {
		st.Line(fixedP(p))
	}
	st.Stop(false)
	st.Draw()
	st.Clear()
}

// strokeClosed strokes pts as a closed loop (last point joins back to
// the first), for box outlines.
func (c *canvas) strokeClosed(width float64, pts ...point) {
	if len(pts) < 3 {
		return
	}
	st := c.newStroker(width)
	st.Start(fixedP(pts[0]))
	for _, p := range pts[1:] {
		st.Line(fixedP(p))
	}
	st.Stop(true)
	st.Draw()
	st.Clear()
}

// strokeArc strokes the arc of the ellipse inscribed in the bounding
// box (x0,y0)-(x1,y1), both corners inclusive. Angles are in degrees,
// measured from 3 o'clock increasing clockwise (y-down screen
// coordinates). The arc is flattened to short segments.
func (c *canvas) strokeArc(x0, y0, x1, y1, startDeg, endDeg, width float64) {
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	rx := (x1 - x0) / 2
	ry := (y1 - y0) / 2

	sweep := endDeg - startDeg
	steps := int(math.Ceil(math.Abs(sweep) / arcStepDeg))
	if steps < 1 {
		steps = 1
	}
	pts := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := (startDeg + sweep*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, point{cx + rx*math.Cos(t), cy + ry*math.Sin(t)})
	}
	c.strokePolyline(width, pts...)
}

// fillPolygon fills the polygon with vertices pts.
func (c *canvas) fillPolygon(pts ...point) {
	if len(pts) < 3 {
		return
	}
	fl := rasterx.NewFiller(c.size, c.size, c.scanner)
	fl.Start(fixedP(pts[0]))
	for _, p := range pts[1:] {
		fl.Line(fixedP(p))
	}
	fl.Stop(true)
	fl.Draw()
	fl.Clear()
}

// strokeRect outlines the rectangle (x0,y0)-(x1,y1), corners inclusive.
func (c *canvas) strokeRect(x0, y0, x1, y1, width float64) {
	c.strokeClosed(width,
		point{x0, y0}, point{x1, y0}, point{x1, y1}, point{x0, y1})
}

func (c *canvas) newStroker(width float64) *rasterx.Stroker {
	st := rasterx.NewStroker(c.size, c.size, c.scanner)
	st.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	return st
}

func fixedP(p point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.x, p.y)
}
