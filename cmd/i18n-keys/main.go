// Package main extracts the translation keys referenced by a generated
// sheet.
package main

import (
	"flag"
	"os"

	"github.com/hermetic-games/sheetforge/internal/platform/config"
	"github.com/hermetic-games/sheetforge/internal/tools/i18nkeys"
)

func main() {
	cfg, err := i18nkeys.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := i18nkeys.Run(cfg, os.Stdout); err != nil {
		config.Exitf("extract keys: %v", err)
	}
}
