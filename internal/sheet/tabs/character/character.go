// Package character contributes the exports for the character tab:
// the characteristics grid, personality traits, and confidence block.
package character

import (
	"fmt"
	"strings"

	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
	"github.com/hermetic-games/sheetforge/internal/sheet/roll"
)

// characteristics in sheet display order.
var characteristics = []struct {
	Attr  string
	Label string
}{
	{"intelligence", "Intelligence"},
	{"perception", "Perception"},
	{"strength", "Strength"},
	{"stamina", "Stamina"},
	{"presence", "Presence"},
	{"communication", "Communication"},
	{"dexterity", "Dexterity"},
	{"quickness", "Quickness"},
}

// Provider returns the character tab exports.
func Provider() exports.Provider {
	return exports.NewProvider("character", exports.Table{
		"characteristics_grid": characteristicsGrid(),
		"personality_traits":   personalityTraits(),
		"confidence_block":     confidenceBlock(),
	})
}

func characteristicsGrid() string {
	var b strings.Builder
	b.WriteString("<div class=\"characteristics\">\n")
	for _, c := range characteristics {
		fmt.Fprintf(&b, "    <label data-i18n=\"%s\">%s</label>\n", c.Attr, c.Label)
		fmt.Fprintf(&b, "    <input type=\"number\" name=\"attr_%s\" value=\"0\" min=\"-3\" max=\"3\" />\n", c.Attr)
		fmt.Fprintf(&b, "    <button type=\"roll\" name=\"roll_%s\" value=\"%s\"></button>\n",
			c.Attr, roll.StressDie(c.Label, c.Attr))
	}
	b.WriteString("</div>")
	return b.String()
}

func personalityTraits() string {
	return strings.Join([]string{
		`<fieldset class="repeating_personality">`,
		`    <input type="text" name="attr_trait_name" />`,
		`    <input type="number" name="attr_trait_score" value="0" />`,
		`    <button type="roll" name="roll_trait" value="` + roll.StressDie("@{trait_name}", "trait_score") + `"></button>`,
		`</fieldset>`,
	}, "\n")
}

func confidenceBlock() string {
	return strings.Join([]string{
		`<div class="confidence">`,
		`    <input type="number" name="attr_confidence" value="0" min="0" />`,
		`    <input type="number" name="attr_confidence_points" value="0" min="0" />`,
		`</div>`,
	}, "\n")
}
