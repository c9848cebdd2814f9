// Package preview wraps a rendered sheet into a standalone HTML document
// so authors can inspect generated output outside the platform.
package preview

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hermetic-games/sheetforge/internal/platform/branding"
)

// Document builds the preview page component. The sheet markup and CSS
// are embedded as-is; they are generator output, not user input.
func Document(sheetHTML, sheetCSS string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s preview</title>\n<style>\n",
			html.EscapeString(branding.AppName)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, sheetCSS); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n</style>\n</head>\n<body>\n"); err != nil {
			return err
		}
		if err := templ.Raw(sheetHTML).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}

// Write renders the preview page to w.
func Write(w io.Writer, sheetHTML, sheetCSS string) error {
	return Document(sheetHTML, sheetCSS).Render(context.Background(), w)
}
