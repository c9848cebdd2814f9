// Package main generates the character-sheet HTML and CSS from the sheet
// templates and the assembled export table.
package main

import (
	"flag"
	"os"

	"github.com/hermetic-games/sheetforge/internal/platform/config"
	"github.com/hermetic-games/sheetforge/internal/tools/sheetgen"
)

func main() {
	cfg, err := sheetgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sheetgen.Run(cfg, os.Stdout); err != nil {
		config.Exitf("generate sheet: %v", err)
	}
}
