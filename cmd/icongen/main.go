// icongen renders the toolbar icon catalog and writes it to stdout as
// a C header of packed 32-bit ARGB pixel arrays for the vib-OS kernel
// build. Capturing stdout into a header file is the caller's job:
//
//	go run ./cmd/icongen > toolbar_icons.h
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/icongen/internal/cheader"
	"github.com/Mavwarf/icongen/internal/icons"
)

func main() {
	set, err := icons.Catalog(icons.DefaultSize)
	if err != nil {
		fatal(err)
	}
	if err := cheader.Write(os.Stdout, icons.DefaultSize, set); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
