package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, size int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
}

func TestLoadPNG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	writePNG(t, p, 24, want)

	img, err := Load(p, 24)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("bounds = %dx%d, want 24x24", b.Dx(), b.Dy())
	}
	if got := img.NRGBAAt(12, 12); got != want {
		t.Errorf("pixel = %+v, want %+v", got, want)
	}
}

func TestLoadPNGRescaled(t *testing.T) {
	p := filepath.Join(t.TempDir(), "big.png")
	want := color.NRGBA{R: 200, A: 255}
	writePNG(t, p, 48, want)

	img, err := Load(p, 24)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("bounds = %dx%d, want 24x24", b.Dx(), b.Dy())
	}
	if got := img.NRGBAAt(12, 12); got != want {
		t.Errorf("center pixel = %+v, want %+v", got, want)
	}
}

func TestLoadSVG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24">` +
		`<rect x="0" y="0" width="24" height="24" fill="#ff0000"/></svg>`
	if err := os.WriteFile(p, []byte(svg), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	img, err := Load(p, 24)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("bounds = %dx%d, want 24x24", b.Dx(), b.Dy())
	}
	want := color.NRGBA{R: 255, A: 255}
	if got := img.NRGBAAt(12, 12); got != want {
		t.Errorf("center pixel = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png"), 24); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestLoadUnsupportedType(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.gif")
	if err := os.WriteFile(p, []byte("GIF89a"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(p, 24); err == nil {
		t.Fatal("Load accepted an unsupported extension")
	}
}

func TestLoadBadSize(t *testing.T) {
	if _, err := Load("icon.png", 0); err == nil {
		t.Fatal("Load accepted size 0")
	}
}

func TestUnpremultiply(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 128, G: 128, B: 128, A: 128})
	// (1,0) stays the zero value.

	got := Unpremultiply(src)
	if px := got.NRGBAAt(0, 0); px != (color.NRGBA{R: 255, G: 255, B: 255, A: 128}) {
		t.Errorf("half-covered white = %+v, want {255 255 255 128}", px)
	}
	if px := got.NRGBAAt(1, 0); px != (color.NRGBA{}) {
		t.Errorf("untouched pixel = %+v, want zero", px)
	}
}
