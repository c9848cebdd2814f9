// Package magic contributes the exports for the magic tab: the arts grid
// and the casting total roll.
package magic

import (
	"fmt"
	"strings"

	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
	"github.com/hermetic-games/sheetforge/internal/sheet/roll"
)

// techniques and forms in canonical grid order.
var (
	techniques = []string{"creo", "intellego", "muto", "perdo", "rego"}
	forms      = []string{
		"animal", "aquam", "auram", "corpus", "herbam",
		"ignem", "imaginem", "mentem", "terram", "vim",
	}
)

// Provider returns the magic tab exports.
func Provider() exports.Provider {
	return exports.NewProvider("magic", exports.Table{
		"arts_grid":    artsGrid(),
		"casting_roll": castingRoll(),
	})
}

func artsGrid() string {
	var b strings.Builder
	b.WriteString("<div class=\"arts\">\n")
	for _, art := range append(append([]string{}, techniques...), forms...) {
		fmt.Fprintf(&b, "    <label data-i18n=\"%s\"></label>\n", art)
		fmt.Fprintf(&b, "    <input type=\"number\" name=\"attr_%s\" value=\"0\" min=\"0\" />\n", art)
		fmt.Fprintf(&b, "    %s\n", indentWidget(roll.XPWidget(art)))
	}
	b.WriteString("</div>")
	return b.String()
}

// castingRoll sums the selected technique and form with stamina on a
// stress die.
func castingRoll() string {
	return "&{template:custom} {{color=@{rolltemplate_color}}} {{title=^{casting-total}}} " +
		"{{result=[[@{casting_technique} + @{casting_form} + @{stamina} + 1d10cs10cf0!]]}}"
}

func indentWidget(widget string) string {
	return strings.ReplaceAll(widget, "\n", "\n    ")
}
