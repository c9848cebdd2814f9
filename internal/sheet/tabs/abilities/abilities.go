// Package abilities contributes the exports for the abilities tab.
package abilities

import (
	"strings"

	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
	"github.com/hermetic-games/sheetforge/internal/sheet/roll"
)

// Provider returns the abilities tab exports.
func Provider() exports.Provider {
	return exports.NewProvider("abilities", exports.Table{
		"ability_rows":     abilityRows(),
		"ability_roll":     roll.StressDie("@{ability_name}", "ability_total"),
		"ability_xp_entry": roll.XPWidget("ability"),
	})
}

// abilityRows builds the repeating section for learned abilities. The
// total attribute is maintained by a worker from score and characteristic.
func abilityRows() string {
	return strings.Join([]string{
		`<fieldset class="repeating_abilities">`,
		`    <input type="text" name="attr_ability_name" />`,
		`    <input type="text" name="attr_ability_specialty" />`,
		`    <input type="number" name="attr_ability_score" value="0" min="0" />`,
		`    ` + roll.XPWidget("ability"),
		`    <input type="hidden" name="attr_ability_total" value="0" />`,
		`    <button type="roll" name="roll_ability" value="` + roll.StressDie("@{ability_name}", "ability_total") + `"></button>`,
		`</fieldset>`,
	}, "\n")
}
