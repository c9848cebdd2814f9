// Package roll builds the roll strings and experience widgets shared by
// the sheet tabs.
package roll

import (
	"fmt"
	"strings"
)

// botchDiceMax is the largest botch pool offered by the roll query.
const botchDiceMax = 8

// BotchSeparate builds the grouped botch roll. The player picks a pool
// size and every die rolls separately so zeroes can be counted: a d10
// counts 10 as a failure and nothing as a success.
func BotchSeparate() string {
	options := make([]string, 0, botchDiceMax)
	for n := 1; n <= botchDiceMax; n++ {
		label := "Dice"
		if n == 1 {
			label = "Die"
		}
		dice := strings.TrimSuffix(strings.Repeat("[[1d10cf10cs0]] ", n), " ")
		options = append(options, fmt.Sprintf("%d %s,%s", n, label, dice))
	}
	query := "?{@{botch_num_i18n} | " + strings.Join(options, "|") + "}"
	return "&{template:botch} {{roll= " + query + " }} {{type=Grouped}}"
}

// StressDie builds the stress-die roll string for a named sheet button.
// The die explodes on repeated ones and the template flags a potential
// botch on a natural zero.
func StressDie(title, attr string) string {
	return fmt.Sprintf(
		"&{template:custom} {{color=@{rolltemplate_color}}} {{title=%s}} {{result=[[@{%s} + 1d10cs10cf0!]]}}",
		title, attr)
}

// XPWidget builds the experience tracker fragment paired with a score
// input. The goal attribute is maintained by a sheet worker from the
// current score.
func XPWidget(name string) string {
	var b strings.Builder
	b.WriteString("<div class=\"xp-tracker\">\n")
	fmt.Fprintf(&b, "    <input type=\"number\" class=\"xp-current\" name=\"attr_%s_exp\" value=\"0\" min=\"0\" />\n", name)
	b.WriteString("    <span class=\"xp-separator\">/</span>\n")
	fmt.Fprintf(&b, "    <input type=\"number\" class=\"xp-goal\" name=\"attr_%s_exp_goal\" value=\"5\" readonly />\n", name)
	b.WriteString("</div>")
	return b.String()
}
