// Package exports builds the name-to-value table substituted into the
// sheet template. Providers contribute tables in a fixed order; later
// providers overwrite earlier keys, with every collision reported so a
// silent overwrite never ships unnoticed.
package exports

import (
	"github.com/hermetic-games/sheetforge/internal/platform/branding"
	"github.com/hermetic-games/sheetforge/internal/sheet/alert"
	"github.com/hermetic-games/sheetforge/internal/sheet/i18n"
	"github.com/hermetic-games/sheetforge/internal/sheet/markdown"
	"github.com/hermetic-games/sheetforge/internal/sheet/roll"
)

// Table maps export names to the strings and functions the template may
// reference.
type Table map[string]any

// Provider contributes one named table of exports.
type Provider interface {
	Name() string
	Exports() Table
}

// DuplicateFunc is invoked for every key a later provider overwrites.
type DuplicateFunc func(key, prevProvider, nextProvider string)

// Aggregate folds the providers into one table in order. Later providers
// win on duplicate keys; each collision is reported through onDuplicate.
func Aggregate(providers []Provider, onDuplicate DuplicateFunc) Table {
	merged := Table{}
	owner := map[string]string{}
	for _, p := range providers {
		for key, value := range p.Exports() {
			if prev, ok := owner[key]; ok && onDuplicate != nil {
				onDuplicate(key, prev, p.Name())
			}
			merged[key] = value
			owner[key] = p.Name()
		}
	}
	return merged
}

type tableProvider struct {
	name  string
	table Table
}

func (p tableProvider) Name() string   { return p.name }
func (p tableProvider) Exports() Table { return p.table }

// NewProvider wraps a static table as a named provider.
func NewProvider(name string, table Table) Provider {
	return tableProvider{name: name, table: table}
}

// Base builds the provider carrying the helpers and generated values every
// sheet build exposes: the markdown and xp helpers, the alert functions
// bound to this run's registry, the translation attribute fragments, the
// generated-file headers, the botch roll, and the roll-template color CSS.
func Base(reg *alert.Registry, keys *i18n.KeySet, colorCSS string) Provider {
	alertFn := func(title, text string, args ...string) (string, error) {
		var opts []alert.Option
		if len(args) > 0 && args[0] != "" {
			opts = append(opts, alert.WithLevel(alert.Level(args[0])))
		}
		if len(args) > 1 && args[1] != "" {
			opts = append(opts, alert.WithID(args[1]))
		}
		return reg.Alert(title, text, opts...)
	}

	return NewProvider("base", Table{
		"markdown":                markdown.Render,
		"xp":                      roll.XPWidget,
		"alert":                   alertFn,
		"disable_old_alerts":      reg.DisableOldAlerts,
		"translation_attrs":       keys.Attrs(),
		"translation_attrs_setup": keys.AttrsSetup(),
		"html_header":             branding.HTMLHeader,
		"css_header":              branding.CSSHeader,
		"botch_separate":          roll.BotchSeparate(),
		"custom_rt_color_css":     colorCSS,
	})
}
