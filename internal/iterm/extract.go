package iterm

import "github.com/jsvensson/itermwarp/internal/color"

// IndexedColor is an ANSI palette entry.
type IndexedColor struct {
	Index int
	Color color.Color
}

// Role names a semantic theme color.
type Role string

const (
	RoleBackground Role = "background"
	RoleForeground Role = "foreground"
	RoleAccent     Role = "accent"
)

// semanticKeys maps source dictionary keys to the role they fill.
var semanticKeys = []struct {
	key  string
	role Role
}{
	{"Background Color", RoleBackground},
	{"Foreground Color", RoleForeground},
	{"Link Color", RoleAccent},
}

// ExtractANSI returns the ANSI colors 0-15 found in src, in index order.
// Entries that are missing or lack a component are skipped. Only the plain
// "Ansi N Color" keys are read; appearance variants such as
// "Ansi 0 Color (Dark)" are ignored.
func ExtractANSI(src Source) []IndexedColor {
	var colors []IndexedColor
	for i := range PaletteSize {
		c, ok := ExtractRGB(src[ANSIKey(i)]).Color()
		if !ok {
			continue
		}
		colors = append(colors, IndexedColor{Index: i, Color: c})
	}
	return colors
}

// ExtractSemantic returns the background, foreground and link colors found in
// src, keyed by role. Missing or incomplete entries are omitted.
func ExtractSemantic(src Source) map[Role]color.Color {
	colors := make(map[Role]color.Color, len(semanticKeys))
	for _, sk := range semanticKeys {
		c, ok := ExtractRGB(src[sk.key]).Color()
		if !ok {
			continue
		}
		colors[sk.role] = c
	}
	return colors
}
