// Package compose assembles one sheet build: palette, color rules, alert
// registry, and the export table folded from every tab provider in the
// fixed merge order.
package compose

import (
	"fmt"
	"io"

	"github.com/hermetic-games/sheetforge/internal/sheet/alert"
	"github.com/hermetic-games/sheetforge/internal/sheet/colorcss"
	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
	"github.com/hermetic-games/sheetforge/internal/sheet/i18n"
	"github.com/hermetic-games/sheetforge/internal/sheet/tabs/abilities"
	"github.com/hermetic-games/sheetforge/internal/sheet/tabs/character"
	"github.com/hermetic-games/sheetforge/internal/sheet/tabs/combat"
	"github.com/hermetic-games/sheetforge/internal/sheet/tabs/magic"
	"github.com/hermetic-games/sheetforge/internal/sheet/tabs/settings"
	"github.com/hermetic-games/sheetforge/internal/sheet/tabs/spells"
)

// defaultTranslationKeys back the roll strings emitted by the tabs.
var defaultTranslationKeys = []string{"botch-num", "casting-total", "stress-die"}

// Warning records one export key overwritten during aggregation.
type Warning struct {
	Key  string
	Prev string
	Next string
}

// Options configures one build.
type Options struct {
	// PaletteCSV supplies the color palette; nil uses the embedded one.
	PaletteCSV io.Reader
	// Extensions are appended after the tabs, so they may override
	// tab exports.
	Extensions []exports.Provider
	// TranslationKeys extend the default worker translation keys.
	TranslationKeys []string
}

// Result is an assembled sheet build.
type Result struct {
	Table    exports.Table
	Palette  []colorcss.Definition
	Registry *alert.Registry
	Warnings []Warning
}

// Build assembles the export table. Tab providers merge in the fixed
// order character, abilities, magic, combat, spells, sheet; later
// providers win on duplicate keys and every collision is recorded.
func Build(opts Options) (*Result, error) {
	palette, err := loadPalette(opts.PaletteCSV)
	if err != nil {
		return nil, err
	}
	colorCSS, err := colorcss.Rules(palette)
	if err != nil {
		return nil, fmt.Errorf("build color rules: %w", err)
	}

	registry := alert.NewRegistry()
	keys := i18n.NewKeySet(defaultTranslationKeys...)
	keys.Add(opts.TranslationKeys...)

	providers := []exports.Provider{
		exports.Base(registry, keys, colorCSS),
		character.Provider(),
		abilities.Provider(),
		magic.Provider(),
		combat.Provider(),
		spells.Provider(),
		settings.Provider(palette),
	}
	providers = append(providers, opts.Extensions...)

	result := &Result{Palette: palette, Registry: registry}
	result.Table = exports.Aggregate(providers, func(key, prev, next string) {
		result.Warnings = append(result.Warnings, Warning{Key: key, Prev: prev, Next: next})
	})
	return result, nil
}

func loadPalette(r io.Reader) ([]colorcss.Definition, error) {
	if r == nil {
		return colorcss.Defaults()
	}
	defs, err := colorcss.ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	return defs, nil
}
