// Package cheader serializes rendered icons into the C header the
// kernel GUI toolbar compiles in: one packed 32-bit ARGB array per
// icon, a lookup table, and per-icon index macros.
package cheader

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Mavwarf/icongen/internal/icons"
)

// Identifier names in the generated header. These are consumed by the
// toolbar code and must not change.
const (
	guardMacro  = "TOOLBAR_ICONS_H"
	sizeMacro   = "TOOLBAR_ICON_SIZE"
	tableName   = "toolbar_icons"
	includeFile = "types.h"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Pack encodes one pixel as (a<<24)|(r<<16)|(g<<8)|b. The layout is a
// binary compatibility contract with the toolbar blitter.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack is the inverse of Pack.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

// Write emits the complete header document for set to w. The document
// is assembled in memory first so a validation failure or write error
// never produces partial output.
func Write(w io.Writer, size int, set []icons.Icon) error {
	if err := validate(size, set); err != nil {
		return err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "/*\n * Toolbar Icons for vib-OS Image Viewer\n * Auto-generated %dx%d RGBA icons\n */\n\n", size, size)
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guardMacro, guardMacro)
	fmt.Fprintf(&b, "#include %q\n\n", includeFile)
	fmt.Fprintf(&b, "#define %s %d\n\n", sizeMacro, size)

	for _, ic := range set {
		writeArray(&b, ic)
		b.WriteByte('\n')
	}

	b.WriteString("/* Icon array for toolbar */\n")
	fmt.Fprintf(&b, "static const uint32_t* %s[] = {\n", tableName)
	for _, ic := range set {
		fmt.Fprintf(&b, "    %s,\n", ic.Name)
	}
	b.WriteString("};\n\n")

	// Index macros follow set order: icon k gets index k.
	for i, ic := range set {
		fmt.Fprintf(&b, "#define %s %d\n", strings.ToUpper(ic.Name), i)
	}
	fmt.Fprintf(&b, "\n#endif /* %s */\n", guardMacro)

	_, err := w.Write(b.Bytes())
	return err
}

// WriteArray emits the array declaration for a single icon.
func WriteArray(w io.Writer, ic icons.Icon) error {
	var b bytes.Buffer
	writeArray(&b, ic)
	_, err := w.Write(b.Bytes())
	return err
}

// writeArray emits one icon as a fixed-length uint32_t array, one
// pixel row per source line, row-major.
func writeArray(b *bytes.Buffer, ic icons.Icon) {
	bounds := ic.Image.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	fmt.Fprintf(b, "/* %s - %dx%d RGBA icon */\n", ic.Name, w, h)
	fmt.Fprintf(b, "static const uint32_t %s[%d] = {\n", ic.Name, w*h)
	for y := 0; y < h; y++ {
		b.WriteString("    ")
		for x := 0; x < w; x++ {
			if x > 0 {
				b.WriteString(", ")
			}
			px := ic.Image.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			fmt.Fprintf(b, "0x%08X", Pack(px.R, px.G, px.B, px.A))
		}
		b.WriteString(",\n")
	}
	b.WriteString("};\n")
}

// validate fails fast on malformed catalog entries before anything is
// emitted: non-positive or mismatched dimensions, invalid C symbol
// names, and duplicate identifiers (including macro-name collisions,
// since index macros are the uppercased icon names).
func validate(size int, set []icons.Icon) error {
	if size <= 0 {
		return fmt.Errorf("icon size must be positive, got %d", size)
	}
	seen := make(map[string]string, len(set))
	for _, ic := range set {
		if !identRe.MatchString(ic.Name) {
			return fmt.Errorf("icon name %q is not a valid C identifier", ic.Name)
		}
		if prev, ok := seen[strings.ToUpper(ic.Name)]; ok {
			return fmt.Errorf("duplicate icon name %q (collides with %q)", ic.Name, prev)
		}
		seen[strings.ToUpper(ic.Name)] = ic.Name
		if ic.Image == nil {
			return fmt.Errorf("icon %s has no surface", ic.Name)
		}
		b := ic.Image.Bounds()
		if b.Dx() != size || b.Dy() != size {
			return fmt.Errorf("icon %s is %dx%d, want %dx%d", ic.Name, b.Dx(), b.Dy(), size, size)
		}
	}
	return nil
}
