package combat

import (
	"strings"
	"testing"
)

func TestWeaponRowsAreRepeating(t *testing.T) {
	rows := Provider().Exports()["weapon_rows"].(string)
	if !strings.Contains(rows, `class="repeating_weapons"`) {
		t.Fatalf("missing repeating section:\n%s", rows)
	}
}

func TestFatigueTrackHasSixLevels(t *testing.T) {
	track := Provider().Exports()["fatigue_track"].(string)
	if got := strings.Count(track, `type="radio"`); got != 6 {
		t.Fatalf("expected 6 fatigue levels, got %d:\n%s", got, track)
	}
}
