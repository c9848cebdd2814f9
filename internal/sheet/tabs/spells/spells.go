// Package spells contributes the exports for the spells tab.
package spells

import (
	"strings"

	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
	"github.com/hermetic-games/sheetforge/internal/sheet/roll"
)

// Provider returns the spells tab exports.
func Provider() exports.Provider {
	return exports.NewProvider("spells", exports.Table{
		"spell_rows":       spellRows(),
		"spell_roll":       spellRoll(),
		"mastery_xp_entry": roll.XPWidget("spell_mastery"),
	})
}

func spellRows() string {
	return strings.Join([]string{
		`<fieldset class="repeating_spells">`,
		`    <input type="text" name="attr_spell_name" />`,
		`    <input type="text" name="attr_spell_technique" />`,
		`    <input type="text" name="attr_spell_form" />`,
		`    <input type="number" name="attr_spell_level" value="0" min="0" />`,
		`    ` + roll.XPWidget("spell_mastery"),
		`    <button type="roll" name="roll_spell" value="` + spellRoll() + `"></button>`,
		`</fieldset>`,
	}, "\n")
}

// spellRoll casts a known spell against its level.
func spellRoll() string {
	return "&{template:custom} {{color=@{rolltemplate_color}}} {{title=@{spell_name}}} " +
		"{{result=[[@{casting_total} + 1d10cs10cf0! - @{spell_level}]]}}"
}
