// Package render evaluates the sheet template against an export table.
//
// Callable exports become template functions ({{alert "Title" "Body"}})
// and value exports become fields on the template data ({{.html_header}}).
// Any reference the table cannot satisfy aborts generation.
package render

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"text/template"

	"github.com/hermetic-games/sheetforge/internal/platform/errors"
	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
)

// Render evaluates src against the export table.
func Render(src string, table exports.Table) (string, error) {
	funcs := template.FuncMap{}
	data := map[string]any{}
	for key, value := range table {
		if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
			funcs[key] = value
			continue
		}
		data[key] = value
	}

	tmpl, err := template.New("sheet").Funcs(funcs).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", errors.Wrap(errors.CodeTemplateParse, "parse sheet template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(errors.CodeTemplateRender, "render sheet template", err)
	}
	return buf.String(), nil
}

// RenderFile evaluates the template at path against the export table.
func RenderFile(path string, table exports.Table) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return Render(string(src), table)
}
