// Package iterm decodes iTerm2 .itermcolors property lists and extracts the
// ANSI palette and semantic colors from them.
package iterm

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsvensson/itermwarp/internal/color"
	"howett.net/plist"
)

// PaletteSize is the number of indexed ANSI colors in a theme.
const PaletteSize = 16

// Component keys inside a color entry.
const (
	RedComponent   = "Red Component"
	GreenComponent = "Green Component"
	BlueComponent  = "Blue Component"
)

// Source is the untyped top-level dictionary of an .itermcolors file.
type Source map[string]any

// Load reads and decodes an .itermcolors file.
func Load(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a binary, XML or OpenStep property list whose root is a
// dictionary.
func Decode(r io.ReadSeeker) (Source, error) {
	var src Source
	if err := plist.NewDecoder(r).Decode(&src); err != nil {
		return nil, fmt.Errorf("decoding property list: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("decoding property list: root is not a dictionary")
	}
	return src, nil
}

// ANSIKey returns the dictionary key holding ANSI color i, e.g. "Ansi 9 Color".
func ANSIKey(i int) string {
	return fmt.Sprintf("Ansi %d Color", i)
}

// Components holds the RGB components found in a color entry. A nil field
// means the component was absent or not a number.
type Components struct {
	Red, Green, Blue *float64
}

// Complete reports whether all three components are present.
func (c Components) Complete() bool {
	return c.Red != nil && c.Green != nil && c.Blue != nil
}

// Color converts complete components to a Color. The second result is false
// if any component is missing.
func (c Components) Color() (color.Color, bool) {
	if !c.Complete() {
		return color.Color{}, false
	}
	return color.FromComponents(*c.Red, *c.Green, *c.Blue), true
}

// ExtractRGB looks up the three component keys of a color entry. Values are
// not range checked. An entry that is not a dictionary yields no components.
func ExtractRGB(entry any) Components {
	dict, ok := entry.(map[string]any)
	if !ok {
		return Components{}
	}
	return Components{
		Red:   number(dict[RedComponent]),
		Green: number(dict[GreenComponent]),
		Blue:  number(dict[BlueComponent]),
	}
}

// number accepts the numeric types howett.net/plist decodes reals and
// integers into.
func number(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case int:
		f = float64(n)
	default:
		return nil
	}
	return &f
}
