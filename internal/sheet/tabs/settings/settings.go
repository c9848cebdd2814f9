// Package settings contributes the exports for the sheet options tab,
// including the roll-template color pickers fed by the palette.
package settings

import (
	"fmt"
	"strings"

	"github.com/hermetic-games/sheetforge/internal/sheet/colorcss"
	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
)

// Provider returns the sheet options exports for the given palette.
func Provider(palette []colorcss.Definition) exports.Provider {
	return exports.NewProvider("sheet", exports.Table{
		"color_select":    colorSelect("rolltemplate_color", palette),
		"wound_penalties": woundPenalties(),
	})
}

// colorSelect builds the template color picker from the palette names.
func colorSelect(attr string, palette []colorcss.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<select name=\"attr_%s\">\n", attr)
	for _, def := range palette {
		fmt.Fprintf(&b, "    <option value=\"%s\" data-i18n=\"color-%s\">%s</option>\n",
			def.Name, def.Name, def.Name)
	}
	b.WriteString("</select>")
	return b.String()
}

func woundPenalties() string {
	return strings.Join([]string{
		`<div class="wounds">`,
		`    <input type="number" name="attr_wound_light" value="0" min="0" />`,
		`    <input type="number" name="attr_wound_medium" value="0" min="0" />`,
		`    <input type="number" name="attr_wound_heavy" value="0" min="0" />`,
		`    <input type="hidden" name="attr_wound_penalty" value="0" />`,
		`</div>`,
	}, "\n")
}
