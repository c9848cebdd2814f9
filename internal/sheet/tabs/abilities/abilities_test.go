package abilities

import (
	"strings"
	"testing"
)

func TestAbilityRowsAreRepeating(t *testing.T) {
	rows := Provider().Exports()["ability_rows"].(string)
	if !strings.Contains(rows, `class="repeating_abilities"`) {
		t.Fatalf("missing repeating section:\n%s", rows)
	}
	for _, attr := range []string{"ability_name", "ability_specialty", "ability_score", "ability_exp"} {
		if !strings.Contains(rows, "attr_"+attr) {
			t.Fatalf("missing attribute %s:\n%s", attr, rows)
		}
	}
}
