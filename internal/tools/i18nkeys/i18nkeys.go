// Package i18nkeys extracts the translation keys a generated sheet
// references, producing the worklist translators start from.
package i18nkeys

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Config holds the extraction inputs.
type Config struct {
	SheetPath string
	JSONOut   string
}

// Report is the extracted key list.
type Report struct {
	SheetPath string   `json:"sheet_path"`
	Keys      []string `json:"keys"`
}

var keyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`data-i18n="([^"]+)"`),
	regexp.MustCompile(`data-i18n-title="([^"]+)"`),
	regexp.MustCompile(`attr_translation-([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`\^\{([A-Za-z0-9_-]+)\}`),
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.SheetPath, "sheet", "sheet.html", "generated sheet HTML path")
	fs.StringVar(&cfg.JSONOut, "json-out", "", "write the key list as JSON to this path (optional)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.SheetPath) == "" {
		return Config{}, fmt.Errorf("sheet path is required")
	}
	return cfg, nil
}

// Run extracts the keys and writes the report.
func Run(cfg Config, out io.Writer) error {
	src, err := os.ReadFile(cfg.SheetPath)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", cfg.SheetPath, err)
	}

	rep := Report{SheetPath: cfg.SheetPath, Keys: Extract(string(src))}
	for _, key := range rep.Keys {
		fmt.Fprintln(out, key)
	}

	if cfg.JSONOut != "" {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(cfg.JSONOut, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// Extract returns the sorted, deduplicated translation keys referenced in
// the sheet markup: data-i18n attributes, worker backing attributes, and
// ^{key} roll-string references.
func Extract(src string) []string {
	seen := map[string]struct{}{}
	for _, pattern := range keyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(src, -1) {
			seen[match[1]] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
