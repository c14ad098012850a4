// mkicons renders the extension's face icon at 16, 48 and 128 pixels and
// writes icon-<size>.png into the current directory.
// Usage: go generate ./icons   (or: go run ../cmd/mkicons from inside icons/)
//
// The icons go to the working directory, so `go run ./cmd/mkicons` from the
// repository root writes them into the root, not icons/.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Mavwarf/faceicon/internal/icon"
	"github.com/Mavwarf/faceicon/internal/paths"
)

var sizes = []int{16, 48, 128}

// glyphs are the status prefixes for each kind of output line.
type glyphs struct {
	ok, done, missing string
}

var (
	emojiGlyphs = glyphs{ok: "✅", done: "🎉", missing: "❌"}
	plainGlyphs = glyphs{ok: "[ok]", done: "[done]", missing: "[missing]"}
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g := plainGlyphs
	if term.IsTerminal(int(os.Stdout.Fd())) {
		g = emojiGlyphs
	}

	if err := generate(os.Stdout, dir, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// generate writes every icon size into dir. Without a raster backend it
// prints manual instructions and writes nothing.
func generate(w io.Writer, dir string, g glyphs) error {
	if !icon.Available() {
		printFallback(w, dir, g)
		return nil
	}

	for _, size := range sizes {
		p := filepath.Join(dir, paths.IconFileName(size))
		if err := icon.Write(p, size); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
		fmt.Fprintf(w, "%s Created %s (%dx%d)\n", g.ok, p, size, size)
	}

	fmt.Fprintf(w, "\n%s All icons generated successfully!\n", g.done)
	fmt.Fprintf(w, "Icons are in %s\n", dir)
	return nil
}

func printFallback(w io.Writer, dir string, g glyphs) {
	fmt.Fprintf(w, "%s Icon rendering is not available (built with -tags noraster).\n", g.missing)
	fmt.Fprintf(w, "Rebuild without the tag: go generate ./icons\n")
	fmt.Fprintf(w, "Or create icons manually and place them in %s:\n", dir)
	for _, size := range sizes {
		fmt.Fprintf(w, "  - %s (%dx%d)\n", paths.IconFileName(size), size, size)
	}
}
