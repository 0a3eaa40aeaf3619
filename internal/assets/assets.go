// Package assets decodes icon source files (PNG bitmaps or SVG
// vectors) into square RGBA surfaces at a requested size.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// Load decodes the asset at path and returns it as a size×size
// non-premultiplied RGBA surface. Supported extensions: .png, .svg.
// Bitmaps that are not already size×size are rescaled.
func Load(path string, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("asset size must be positive, got %d", size)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return loadPNG(path, size)
	case ".svg":
		return loadSVG(path, size)
	default:
		return nil, fmt.Errorf("unsupported asset type %q", filepath.Ext(path))
	}
}

func loadPNG(path string, size int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return toSize(img, size), nil
}

func loadSVG(path string, size int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, rgba, rgba.Bounds()))
	icon.Draw(dc, 1.0)
	return Unpremultiply(rgba), nil
}

// Unpremultiply converts a rasterized (alpha-premultiplied) surface to
// the independent-channel form the packed output encodes.
func Unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.RGBAAt(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// toSize returns img as a size×size NRGBA image anchored at the
// origin, rescaling with CatmullRom when the dimensions differ.
func toSize(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
