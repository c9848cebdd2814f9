package alert

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/hermetic-games/sheetforge/internal/platform/errors"
)

func TestAlertContainsTitleTextAndHiddenInput(t *testing.T) {
	r := NewRegistry()
	got, err := r.Alert("Migration", "Soak scores moved to the combat tab.", WithLevel(LevelInfo))
	if err != nil {
		t.Fatalf("alert: %v", err)
	}
	if !strings.Contains(got, "Migration") {
		t.Fatalf("banner missing title: %q", got)
	}
	if !strings.Contains(got, "Soak scores moved to the combat tab.") {
		t.Fatalf("banner missing body: %q", got)
	}
	if !strings.Contains(got, `<input type="hidden" class="alert-hidder" name="attr_alert-0" value="0"/>`) {
		t.Fatalf("banner missing hidden input: %q", got)
	}
	if !strings.Contains(got, `class="alert alert-info"`) {
		t.Fatalf("banner missing level class: %q", got)
	}
	if !strings.Contains(got, "<h3> Info - Migration</h3>") {
		t.Fatalf("banner heading not title-cased: %q", got)
	}
}

func TestAlertDefaultsToWarning(t *testing.T) {
	r := NewRegistry()
	got, err := r.Alert("Heads up", "body")
	if err != nil {
		t.Fatalf("alert: %v", err)
	}
	if !strings.Contains(got, `class="alert alert-warning"`) {
		t.Fatalf("expected warning banner, got %q", got)
	}
}

func TestAlertAssignsSequentialIntegerIDs(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 3; i++ {
		if _, err := r.Alert("t", "x"); err != nil {
			t.Fatalf("alert %d: %v", i, err)
		}
	}
	ids := r.IDs()
	want := []string{"0", "1", "2"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestAlertIndentsMultilineBody(t *testing.T) {
	r := NewRegistry()
	got, err := r.Alert("t", "line one\nline two")
	if err != nil {
		t.Fatalf("alert: %v", err)
	}
	if !strings.Contains(got, "line one\n"+bodyIndent+"line two") {
		t.Fatalf("body lines not indented: %q", got)
	}
}

func TestAlertRejectsUnknownLevel(t *testing.T) {
	r := NewRegistry()
	_, err := r.Alert("t", "x", WithLevel("fatal"))
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !stderrors.Is(err, errors.New(errors.CodeAlertInvalidLevel, "")) {
		t.Fatalf("expected ALERT_INVALID_LEVEL, got %v", err)
	}
}

func TestDisableOldAlertsListsEveryIDOnce(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Alert("a", "x"); err != nil {
		t.Fatalf("alert: %v", err)
	}
	if _, err := r.Alert("b", "x", WithID("soak-migration")); err != nil {
		t.Fatalf("alert: %v", err)
	}
	if _, err := r.Alert("c", "x"); err != nil {
		t.Fatalf("alert: %v", err)
	}

	script, err := r.DisableOldAlerts("alerts-2026")
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	for _, want := range []string{`"alerts-2026": 1`, `"alert-0": 1`, `"alert-1": 1`, `"alert-soak-migration": 1`} {
		if strings.Count(script, want) != 1 {
			t.Fatalf("script should contain %q exactly once:\n%s", want, script)
		}
	}
	if !strings.HasPrefix(script, "setAttrs({") {
		t.Fatalf("script missing setAttrs call: %q", script)
	}
}

func TestAlertAfterDisableFails(t *testing.T) {
	r := NewRegistry()
	if _, err := r.DisableOldAlerts("m"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	_, err := r.Alert("late", "x")
	if err == nil {
		t.Fatal("expected error after DisableOldAlerts")
	}
	if !stderrors.Is(err, errors.New(errors.CodeAlertRegistryClosed, "")) {
		t.Fatalf("expected ALERT_REGISTRY_CLOSED, got %v", err)
	}
}

func TestDisableOldAlertsIsOneShot(t *testing.T) {
	r := NewRegistry()
	if _, err := r.DisableOldAlerts("m"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if _, err := r.DisableOldAlerts("m"); err == nil {
		t.Fatal("expected second DisableOldAlerts to fail")
	}
}
