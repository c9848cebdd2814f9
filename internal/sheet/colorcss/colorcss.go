// Package colorcss derives the roll-template color rules from a palette
// CSV. Each named color yields custom-property blocks for the template
// header, inline roll results, and roll buttons, with the text color
// flipped to keep contrast against the chosen background.
package colorcss

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hermetic-games/sheetforge/internal/platform/errors"
)

//go:embed css_colors.csv
var defaultPalette embed.FS

// Definition is one named palette entry.
type Definition struct {
	Name string
	Hex  string
}

// lumaThreshold splits light backgrounds (black text) from dark ones
// (white roll text). Values exactly at the threshold keep the defaults.
const lumaThreshold = 0.5

// Defaults returns the palette embedded with the generator.
func Defaults() ([]Definition, error) {
	data, err := defaultPalette.ReadFile("css_colors.csv")
	if err != nil {
		return nil, fmt.Errorf("read embedded palette: %w", err)
	}
	return ParseCSV(bytes.NewReader(data))
}

// ParseCSV reads palette definitions from CSV with columns "color" and
// "hex". Malformed rows abort the parse.
func ParseCSV(r io.Reader) ([]Definition, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read palette header: %w", err)
	}

	colorCol, hexCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "color":
			colorCol = i
		case "hex":
			hexCol = i
		}
	}
	if colorCol < 0 || hexCol < 0 {
		return nil, fmt.Errorf("palette header must contain color and hex columns, got %v", header)
	}

	var defs []Definition
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read palette row: %w", err)
		}
		def := Definition{
			Name: strings.TrimSpace(record[colorCol]),
			Hex:  strings.TrimSpace(record[hexCol]),
		}
		if def.Name == "" {
			return nil, errors.New(errors.CodeColorEmptyName, "palette row has empty color name")
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Luma computes relative luminance from a #RRGGBB string using the sRGB
// weights 0.2126, 0.7152, 0.0722 on channels normalized to [0, 1].
func Luma(hex string) (float64, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return 0, errors.WithMetadata(errors.CodeColorInvalidHex,
			fmt.Sprintf("hex color must be #RRGGBB, got %q", hex),
			map[string]string{"hex": hex})
	}

	channels := make([]float64, 3)
	for i := range channels {
		v, err := strconv.ParseUint(trimmed[2*i:2*i+2], 16, 8)
		if err != nil {
			return 0, errors.WithMetadata(errors.CodeColorInvalidHex,
				fmt.Sprintf("hex color must be #RRGGBB, got %q", hex),
				map[string]string{"hex": hex})
		}
		channels[i] = float64(v) / 255
	}
	return 0.2126*channels[0] + 0.7152*channels[1] + 0.0722*channels[2], nil
}

// Rules builds the concatenated rule blocks for every definition, wrapped
// in comment delimiters so the result can replace a /* placeholder */ in
// the sheet CSS.
func Rules(defs []Definition) (string, error) {
	var blocks []string
	for _, def := range defs {
		luma, err := Luma(def.Hex)
		if err != nil {
			return "", fmt.Errorf("palette color %s: %w", def.Name, err)
		}

		header := []string{
			fmt.Sprintf(".sheet-rolltemplate-custom .sheet-crt-container.sheet-crt-color-%s {", def.Name),
			fmt.Sprintf("    --header-bg-color: %s;", def.Hex),
		}
		rolls := []string{
			fmt.Sprintf(".sheet-rolltemplate-custom .sheet-crt-container.sheet-crt-rlcolor-%s .inlinerollresult {", def.Name),
			fmt.Sprintf("    --roll-bg-color: %s;", def.Hex),
		}
		buttons := []string{
			fmt.Sprintf(".sheet-rolltemplate-custom .sheet-crt-container.sheet-crt-btcolor-%s a {", def.Name),
			fmt.Sprintf("    --button-bg-color: %s;", def.Hex),
		}

		darkText, lightRoll := overrides(luma)
		if darkText {
			header = append(header, "    --header-text-color: #000;")
			buttons = append(buttons, "    --button-text-color: #000;")
		}
		if lightRoll {
			rolls = append(rolls, "    --roll-text-color: #FFF;")
		}

		for _, lines := range [][]string{header, rolls, buttons} {
			blocks = append(blocks, strings.Join(lines, "\n")+"\n}")
		}
	}
	return "*/\n" + strings.Join(blocks, "\n") + "\n/*", nil
}

// overrides picks the text-color adjustments for a background luma.
// Light backgrounds get black header/button text, dark backgrounds get
// white roll text. Exactly at the threshold keeps both defaults.
func overrides(luma float64) (darkText, lightRoll bool) {
	return luma > lumaThreshold, luma < lumaThreshold
}
