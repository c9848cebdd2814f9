package colorcss

import (
	"math"
	"strings"
	"testing"
)

func TestParseCSVReadsDefinitions(t *testing.T) {
	src := "color,hex\nred,#B22222\nblue,#1E90FF\n"
	defs, err := ParseCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Name != "red" || defs[0].Hex != "#B22222" {
		t.Fatalf("defs[0] = %+v", defs[0])
	}
}

func TestParseCSVRejectsMissingColumns(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("name,value\nred,#B22222\n")); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestParseCSVRejectsMalformedRow(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("color,hex\n\"red\n")); err == nil {
		t.Fatal("expected error for malformed row")
	}
}

func TestDefaultsLoadEmbeddedPalette(t *testing.T) {
	defs, err := Defaults()
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("expected embedded palette entries")
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		hex  string
		want float64
	}{
		{"#FFFFFF", 1.0},
		{"#000000", 0.0},
		{"#FF0000", 0.2126},
		{"#00FF00", 0.7152},
		{"#0000FF", 0.0722},
	}
	for _, tt := range tests {
		got, err := Luma(tt.hex)
		if err != nil {
			t.Fatalf("luma %s: %v", tt.hex, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("luma %s = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestLumaRejectsMalformedHex(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "#GGGGGG", "123456789"} {
		if _, err := Luma(hex); err == nil {
			t.Fatalf("expected error for %q", hex)
		}
	}
}

func TestRulesLightBackgroundForcesDarkText(t *testing.T) {
	css, err := Rules([]Definition{{Name: "white", Hex: "#FFFFFF"}})
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if !strings.Contains(css, "--header-text-color: #000;") {
		t.Fatalf("expected black header text:\n%s", css)
	}
	if !strings.Contains(css, "--button-text-color: #000;") {
		t.Fatalf("expected black button text:\n%s", css)
	}
	if strings.Contains(css, "--roll-text-color") {
		t.Fatalf("roll text must stay default for light background:\n%s", css)
	}
}

func TestRulesDarkBackgroundForcesLightRollText(t *testing.T) {
	css, err := Rules([]Definition{{Name: "black", Hex: "#000000"}})
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if !strings.Contains(css, "--roll-text-color: #FFF;") {
		t.Fatalf("expected white roll text:\n%s", css)
	}
	if strings.Contains(css, "--header-text-color") || strings.Contains(css, "--button-text-color") {
		t.Fatalf("header/button text must stay default for dark background:\n%s", css)
	}
}

func TestOverridesAtThreshold(t *testing.T) {
	darkText, lightRoll := overrides(0.5)
	if darkText || lightRoll {
		t.Fatalf("luma 0.5 must keep defaults, got darkText=%v lightRoll=%v", darkText, lightRoll)
	}
	if darkText, _ := overrides(0.51); !darkText {
		t.Fatal("luma above threshold must force dark text")
	}
	if _, lightRoll := overrides(0.49); !lightRoll {
		t.Fatal("luma below threshold must force light roll text")
	}
}

func TestRulesEmitsThreeBlocksPerColorWrappedInCommentDelimiters(t *testing.T) {
	css, err := Rules([]Definition{{Name: "red", Hex: "#B22222"}, {Name: "blue", Hex: "#1E90FF"}})
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if !strings.HasPrefix(css, "*/\n") || !strings.HasSuffix(css, "\n/*") {
		t.Fatalf("missing comment delimiters:\n%s", css)
	}
	for _, sel := range []string{
		".sheet-crt-color-red", ".sheet-crt-rlcolor-red", ".sheet-crt-btcolor-red",
		".sheet-crt-color-blue", ".sheet-crt-rlcolor-blue", ".sheet-crt-btcolor-blue",
	} {
		if !strings.Contains(css, sel) {
			t.Fatalf("missing selector %s:\n%s", sel, css)
		}
	}
}
