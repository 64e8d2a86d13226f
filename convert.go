// Package itermwarp converts iTerm2 color themes into Warp terminal themes.
package itermwarp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsvensson/itermwarp/internal/iterm"
	"github.com/jsvensson/itermwarp/internal/prompt"
	"github.com/jsvensson/itermwarp/internal/pstheme"
	"github.com/jsvensson/itermwarp/internal/warp"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("itermwarp")

// NamePrompt is the question asked for the output theme name.
const NamePrompt = "\nEnter the theme name: "

// Format selects the output document type.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatPSTheme Format = "pstheme"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatPSTheme:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: yaml, pstheme)", s)
	}
}

// Converter reads an .itermcolors file and writes the converted theme.
type Converter struct {
	Prompter  prompt.Prompter
	OutputDir string // defaults to the current directory
	Format    Format // defaults to FormatYAML
}

// Result describes a completed conversion.
type Result struct {
	Theme warp.Theme
	Path  string
}

// Convert decodes inputPath, asks for the theme name and writes the output
// file. Nothing is written if any step fails.
func (c *Converter) Convert(inputPath string) (*Result, error) {
	src, err := iterm.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}

	theme, err := c.Build(src)
	if err != nil {
		return nil, err
	}

	data, name, err := c.render(theme)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(c.OutputDir, name)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing theme %s: %w", outPath, err)
	}
	log.Infof("wrote %s", outPath)

	return &Result{Theme: theme, Path: outPath}, nil
}

// Build extracts the palette from src, prompts for the theme name and
// assembles the Warp theme.
func (c *Converter) Build(src iterm.Source) (warp.Theme, error) {
	ansi := iterm.ExtractANSI(src)
	if len(ansi) < iterm.PaletteSize {
		log.Debugf("found %d of %d ANSI colors", len(ansi), iterm.PaletteSize)
	}
	semantic := iterm.ExtractSemantic(src)
	for _, role := range []iterm.Role{iterm.RoleAccent, iterm.RoleBackground, iterm.RoleForeground} {
		if _, ok := semantic[role]; !ok {
			log.Infof("no %s color in source, using default", role)
		}
	}
	terminal := warp.SortForTerminal(ansi)

	if c.Prompter == nil {
		return warp.Theme{}, fmt.Errorf("no prompter configured")
	}
	name, err := c.Prompter.Prompt(NamePrompt)
	if err != nil {
		return warp.Theme{}, fmt.Errorf("reading theme name: %w", err)
	}

	return warp.Assemble(name, semantic, terminal), nil
}

func (c *Converter) render(theme warp.Theme) ([]byte, string, error) {
	switch c.Format {
	case "", FormatYAML:
		var buf bytes.Buffer
		if err := warp.Encode(&buf, theme); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), warp.FileName(theme.Name), nil
	case FormatPSTheme:
		return pstheme.Render(theme), pstheme.FileName(theme.Name), nil
	default:
		return nil, "", fmt.Errorf("unknown format %q", c.Format)
	}
}
