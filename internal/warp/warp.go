// Package warp builds Warp terminal themes and serializes them as YAML.
package warp

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsvensson/itermwarp/internal/color"
	"github.com/jsvensson/itermwarp/internal/iterm"
	"gopkg.in/yaml.v3"
)

// Default semantic colors, used when the source theme does not define them.
const (
	DefaultAccent     = "#6ba4f8"
	DefaultBackground = "#131418"
	DefaultForeground = "#e6e6e6"
)

// Details is the only value written for the details field.
const Details = "darker"

// Families are the ANSI color family names, in palette order. Index i and
// i+8 share a family.
var Families = []string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
}

// Theme is a Warp theme document.
type Theme struct {
	Name           string         `yaml:"name"`
	Accent         string         `yaml:"accent"`
	Background     string         `yaml:"background"`
	Foreground     string         `yaml:"foreground"`
	Details        string         `yaml:"details"`
	TerminalColors TerminalColors `yaml:"terminal_colors"`
}

// TerminalColors splits the ANSI palette into normal (0-7) and bright (8-15).
type TerminalColors struct {
	Normal Palette `yaml:"normal"`
	Bright Palette `yaml:"bright"`
}

// Palette maps a family name to a hex color.
type Palette map[string]string

// MarshalYAML emits the palette in family order rather than sorted.
func (p Palette) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range Families {
		hex, ok := p[name]
		if !ok {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: hex},
		)
	}
	return node, nil
}

// SortForTerminal groups ANSI colors by tier and family. Indices outside
// 0-15 are ignored; a repeated index keeps the last color seen.
func SortForTerminal(colors []iterm.IndexedColor) TerminalColors {
	tc := TerminalColors{
		Normal: make(Palette),
		Bright: make(Palette),
	}
	for _, ic := range colors {
		if ic.Index < 0 || ic.Index >= iterm.PaletteSize {
			continue
		}
		family := Families[ic.Index%len(Families)]
		if ic.Index < len(Families) {
			tc.Normal[family] = ic.Color.Hex()
		} else {
			tc.Bright[family] = ic.Color.Hex()
		}
	}
	return tc
}

// Assemble builds a Theme, filling missing semantic colors with defaults.
// The name is used verbatim.
func Assemble(name string, semantic map[iterm.Role]color.Color, tc TerminalColors) Theme {
	return Theme{
		Name:           name,
		Accent:         hexOr(semantic, iterm.RoleAccent, DefaultAccent),
		Background:     hexOr(semantic, iterm.RoleBackground, DefaultBackground),
		Foreground:     hexOr(semantic, iterm.RoleForeground, DefaultForeground),
		Details:        Details,
		TerminalColors: tc,
	}
}

func hexOr(semantic map[iterm.Role]color.Color, role iterm.Role, fallback string) string {
	if c, ok := semantic[role]; ok {
		return c.Hex()
	}
	return fallback
}

// BaseName derives the output file base from a theme name: lower-cased with
// spaces replaced by underscores.
func BaseName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// FileName returns the YAML file name for a theme name, e.g. "my_theme.yaml".
func FileName(name string) string {
	return BaseName(name) + ".yaml"
}

// Encode writes t as block-style YAML.
func Encode(w io.Writer, t Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	return nil
}
