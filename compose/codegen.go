package compose

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

var templateFuncs = template.FuncMap{
	"quote":       strconv.Quote,
	"join":        strings.Join,
	"toTypeName":  naming.ToTypeName,
	"toFieldName": naming.ToFieldName,
}

// unionTemplateData is the payload both union templates render from.
type unionTemplateData struct {
	Package string
	Runtime string
	Union   *UnionType
}

// runtimeImport is the module the generated encode/decode helpers live in.
const runtimeImport = "github.com/oasgen/oasgen/union"

// RenderUnion emits the Go source for one union type: the tagged sum form
// when the union is discriminated, the lossy first-match wrapper otherwise.
// Output is formatted with import fixing; when formatting fails the raw
// render is returned so callers still get inspectable source.
func RenderUnion(packageName string, union *UnionType) ([]byte, error) {
	name := "union.go.tmpl"
	if !union.Discriminated() {
		name = "wrapper.go.tmpl"
	}
	data := unionTemplateData{
		Package: packageName,
		Runtime: runtimeImport,
		Union:   union,
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	formatted, err := imports.Process(union.Name+".go", buf.Bytes(), nil)
	if err != nil {
		// nolint:nilerr // formatting is optional, unformatted code is acceptable
		return buf.Bytes(), nil
	}
	return formatted, nil
}
