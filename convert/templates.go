package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"svgprops/config"
)

// Values holds variables available for output name template expansion.
type Values struct {
	Name   string // source file name without extension
	Ext    string // source file extension without dot
	Dir    string // source directory relative to processed path, slash separated
	Kind   string // svg, json or yaml
	Format string // output format
}

func newValues(src string, kind config.InputKind, format config.OutputFmt) Values {
	ext := filepath.Ext(src)
	dir := filepath.ToSlash(filepath.Dir(src))
	if dir == "." {
		dir = ""
	}
	return Values{
		Name:   strings.TrimSuffix(filepath.Base(src), ext),
		Ext:    strings.TrimPrefix(ext, "."),
		Dir:    dir,
		Kind:   kindName(kind),
		Format: format.String(),
	}
}

func kindName(kind config.InputKind) string {
	switch kind {
	case config.InputSVG:
		return "svg"
	case config.InputJSON:
		return "json"
	case config.InputYAML:
		return "yaml"
	}
	return ""
}

func expandTemplate(field string, values Values) (string, error) {
	tmpl, err := template.New("name_template").Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse output name template: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
