package generator

import (
	"bytes"
	"embed"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/oasgen/oasgen/internal/naming"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote":       strconv.Quote,
	"join":        strings.Join,
	"cleanDesc":   cleanDescription,
	"toTypeName":  naming.ToTypeName,
	"toFieldName": naming.ToFieldName,
}

// cleanDescription collapses a schema description to a single doc-comment
// friendly line.
func cleanDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r\n", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")
	return strings.Join(strings.Fields(desc), " ")
}

// executeTemplate executes a template by name and returns the formatted bytes
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}

	formatted, err := imports.Process("generated.go", buf.Bytes(), nil)
	if err != nil {
		// If formatting fails, return unformatted but don't fail the generation
		// nolint:nilerr // intentional: formatting is optional, unformatted code is acceptable
		return buf.Bytes(), nil
	}
	return formatted, nil
}
