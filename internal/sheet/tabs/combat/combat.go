// Package combat contributes the exports for the combat tab: weapon rows,
// soak, and the fatigue track.
package combat

import (
	"fmt"
	"strings"

	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
	"github.com/hermetic-games/sheetforge/internal/sheet/roll"
)

// fatigueLevels from fresh to unconscious.
var fatigueLevels = []string{"fresh", "winded", "weary", "tired", "dazed", "unconscious"}

// Provider returns the combat tab exports.
func Provider() exports.Provider {
	return exports.NewProvider("combat", exports.Table{
		"weapon_rows":   weaponRows(),
		"soak_block":    soakBlock(),
		"fatigue_track": fatigueTrack(),
	})
}

func weaponRows() string {
	return strings.Join([]string{
		`<fieldset class="repeating_weapons">`,
		`    <input type="text" name="attr_weapon_name" />`,
		`    <input type="number" name="attr_weapon_attack" value="0" />`,
		`    <input type="number" name="attr_weapon_defense" value="0" />`,
		`    <input type="number" name="attr_weapon_damage" value="0" />`,
		`    <button type="roll" name="roll_attack" value="` + roll.StressDie("@{weapon_name}", "weapon_attack") + `"></button>`,
		`</fieldset>`,
	}, "\n")
}

func soakBlock() string {
	return strings.Join([]string{
		`<div class="soak">`,
		`    <input type="number" name="attr_soak" value="0" />`,
		`    <input type="number" name="attr_armor_protection" value="0" min="0" />`,
		`</div>`,
	}, "\n")
}

func fatigueTrack() string {
	var b strings.Builder
	b.WriteString("<div class=\"fatigue\">\n")
	for i, level := range fatigueLevels {
		fmt.Fprintf(&b, "    <input type=\"radio\" name=\"attr_fatigue\" value=\"%d\" data-i18n-title=\"%s\" />\n", i, level)
	}
	b.WriteString("</div>")
	return b.String()
}
