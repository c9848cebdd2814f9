package i18nkeys

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractFindsAllReferenceForms(t *testing.T) {
	src := `<label data-i18n="strength"></label>
<input data-i18n-title="winded" />
<input name="attr_translation-botch-num" />
{{title=^{casting-total}}}
<label data-i18n="strength"></label>`

	keys := Extract(src)
	want := []string{"botch-num", "casting-total", "strength", "winded"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestRunWritesListAndJSON(t *testing.T) {
	dir := t.TempDir()
	sheetPath := filepath.Join(dir, "sheet.html")
	jsonPath := filepath.Join(dir, "keys.json")
	if err := os.WriteFile(sheetPath, []byte(`<label data-i18n="vim"></label>`), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}

	var out bytes.Buffer
	cfg := Config{SheetPath: sheetPath, JSONOut: jsonPath}
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "vim\n" {
		t.Fatalf("out = %q", out.String())
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rep.Keys) != 1 || rep.Keys[0] != "vim" {
		t.Fatalf("report keys = %v", rep.Keys)
	}
}

func TestRunFailsOnMissingSheet(t *testing.T) {
	cfg := Config{SheetPath: filepath.Join(t.TempDir(), "absent.html")}
	if err := Run(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}
