// Package sheetgen renders the sheet HTML and CSS templates against the
// assembled export table.
package sheetgen

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hermetic-games/sheetforge/internal/platform/config"
	"github.com/hermetic-games/sheetforge/internal/sheet/compose"
	"github.com/hermetic-games/sheetforge/internal/sheet/extension"
	"github.com/hermetic-games/sheetforge/internal/sheet/preview"
	"github.com/hermetic-games/sheetforge/internal/sheet/render"
)

// Config holds the generator inputs and outputs.
type Config struct {
	TemplatePath    string `env:"SHEETFORGE_TEMPLATE" envDefault:"template.html"`
	CSSTemplatePath string `env:"SHEETFORGE_CSS_TEMPLATE"`
	PalettePath     string `env:"SHEETFORGE_PALETTE"`
	ExportsScript   string `env:"SHEETFORGE_EXPORTS_LUA"`
	OutHTML         string `env:"SHEETFORGE_OUT_HTML" envDefault:"sheet.html"`
	OutCSS          string `env:"SHEETFORGE_OUT_CSS" envDefault:"sheet.css"`
	PreviewPath     string `env:"SHEETFORGE_PREVIEW"`
	Verbose         bool
}

// ParseConfig loads env defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.TemplatePath, "template", cfg.TemplatePath, "sheet HTML template path")
	fs.StringVar(&cfg.CSSTemplatePath, "css-template", cfg.CSSTemplatePath, "sheet CSS template path (optional)")
	fs.StringVar(&cfg.PalettePath, "palette", cfg.PalettePath, "palette CSV path (default: embedded palette)")
	fs.StringVar(&cfg.ExportsScript, "exports-lua", cfg.ExportsScript, "Lua script contributing extra exports (optional)")
	fs.StringVar(&cfg.OutHTML, "out-html", cfg.OutHTML, "generated sheet HTML path")
	fs.StringVar(&cfg.OutCSS, "out-css", cfg.OutCSS, "generated sheet CSS path")
	fs.StringVar(&cfg.PreviewPath, "preview", cfg.PreviewPath, "write a standalone preview page to this path (optional)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.TemplatePath) == "" {
		return Config{}, fmt.Errorf("template path is required")
	}
	return cfg, nil
}

// Run assembles the export table, renders the templates, and writes the
// generated files. Duplicate-export collisions are reported on out.
func Run(cfg Config, out io.Writer) error {
	opts := compose.Options{}

	if cfg.PalettePath != "" {
		f, err := os.Open(cfg.PalettePath)
		if err != nil {
			return fmt.Errorf("open palette: %w", err)
		}
		defer f.Close()
		opts.PaletteCSV = f
	}

	if cfg.ExportsScript != "" {
		name := strings.TrimSuffix(filepath.Base(cfg.ExportsScript), filepath.Ext(cfg.ExportsScript))
		ext, err := extension.LoadFile(name, cfg.ExportsScript)
		if err != nil {
			return err
		}
		opts.Extensions = append(opts.Extensions, ext)
	}

	result, err := compose.Build(opts)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: export %q from %s overwrites %s\n", w.Key, w.Next, w.Prev)
	}

	sheetHTML, err := render.RenderFile(cfg.TemplatePath, result.Table)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.OutHTML, sheetHTML); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(out, "wrote %s\n", cfg.OutHTML)
	}

	sheetCSS := ""
	if cfg.CSSTemplatePath != "" {
		sheetCSS, err = render.RenderFile(cfg.CSSTemplatePath, result.Table)
		if err != nil {
			return err
		}
		if err := writeOutput(cfg.OutCSS, sheetCSS); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Fprintf(out, "wrote %s\n", cfg.OutCSS)
		}
	}

	if cfg.PreviewPath != "" {
		f, err := os.Create(cfg.PreviewPath)
		if err != nil {
			return fmt.Errorf("create preview: %w", err)
		}
		defer f.Close()
		if err := preview.Write(f, sheetHTML, sheetCSS); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		if cfg.Verbose {
			fmt.Fprintf(out, "wrote %s\n", cfg.PreviewPath)
		}
	}
	return nil
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
