// Package pstheme renders a converted theme as a paletteswap .pstheme HCL
// source file.
package pstheme

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/itermwarp/internal/warp"
	"github.com/tliron/commonlog"
	"github.com/zclconf/go-cty/cty"
)

var log = commonlog.GetLogger("itermwarp.pstheme")

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

type entry struct{ name, hex string }

// FileName returns the .pstheme file name for a theme name.
func FileName(name string) string {
	return warp.BaseName(name) + ".pstheme"
}

// Render returns t as a .pstheme document. Every color lives in the palette
// block; the theme and ansi blocks reference it. ANSI colors missing from t
// are left out, and paletteswap refuses to load such a file.
func Render(t warp.Theme) []byte {
	if missing := MissingANSI(t.TerminalColors); len(missing) > 0 {
		log.Warningf("ansi block incomplete, paletteswap will reject it: missing %s", strings.Join(missing, ", "))
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	meta := body.AppendNewBlock("meta", nil).Body()
	meta.SetAttributeValue("name", cty.StringVal(t.Name))
	body.AppendNewline()

	palette := body.AppendNewBlock("palette", nil).Body()
	semantic := []entry{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"accent", t.Accent},
	}
	for _, s := range semantic {
		palette.SetAttributeValue(s.name, cty.StringVal(s.hex))
	}
	ansi := ansiEntries(t.TerminalColors)
	for _, e := range ansi {
		palette.SetAttributeValue(e.name, cty.StringVal(e.hex))
	}
	body.AppendNewline()

	theme := body.AppendNewBlock("theme", nil).Body()
	for _, s := range semantic {
		theme.SetAttributeTraversal(s.name, paletteRef(s.name))
	}
	body.AppendNewline()

	ansiBody := body.AppendNewBlock("ansi", nil).Body()
	for _, e := range ansi {
		ansiBody.SetAttributeTraversal(e.name, paletteRef(e.name))
	}

	return tidy(f.Bytes())
}

// ansiEntries lists the palette in paletteswap naming: black..white, then
// bright_black..bright_white.
func ansiEntries(tc warp.TerminalColors) []entry {
	var entries []entry
	for _, family := range warp.Families {
		if hex, ok := tc.Normal[family]; ok {
			entries = append(entries, entry{family, hex})
		}
	}
	for _, family := range warp.Families {
		if hex, ok := tc.Bright[family]; ok {
			entries = append(entries, entry{"bright_" + family, hex})
		}
	}
	return entries
}

// MissingANSI returns the paletteswap names of the ANSI colors absent from tc.
func MissingANSI(tc warp.TerminalColors) []string {
	var missing []string
	for _, family := range warp.Families {
		if _, ok := tc.Normal[family]; !ok {
			missing = append(missing, family)
		}
	}
	for _, family := range warp.Families {
		if _, ok := tc.Bright[family]; !ok {
			missing = append(missing, "bright_"+family)
		}
	}
	return missing
}

func paletteRef(name string) hcl.Traversal {
	return hcl.Traversal{
		hcl.TraverseRoot{Name: "palette"},
		hcl.TraverseAttr{Name: name},
	}
}

// tidy applies HCL canonical formatting and collapses stray blank lines.
func tidy(src []byte) []byte {
	formatted := string(hclwrite.Format(src))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	formatted = blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
	return []byte(formatted)
}
