package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/amazon-ion/ion-go/ion"
	yaml "gopkg.in/yaml.v3"

	"svgprops/config"
	"svgprops/extract"
)

// Record is extracted properties of a single node together with its origin.
type Record struct {
	Source   string            `json:"source" yaml:"source" ion:"source"`
	Path     string            `json:"path,omitempty" yaml:"path,omitempty" ion:"path,omitempty"`
	Tag      string            `json:"tag,omitempty" yaml:"tag,omitempty" ion:"tag,omitempty"`
	Geometry map[string]string `json:"geometry,omitempty" yaml:"geometry,omitempty" ion:"geometry,omitempty"`
	Props    *extract.Props    `json:"props" yaml:"props" ion:"props"`
}

func encodeRecords(w io.Writer, records []Record, format config.OutputFmt, indent int) error {
	if records == nil {
		records = []Record{}
	}

	switch format {
	case config.OutputFmtJson:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("unable to encode json: %w", err)
		}
	case config.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("unable to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("unable to encode yaml: %w", err)
		}
	case config.OutputFmtIon:
		data, err := ion.MarshalText(records)
		if err != nil {
			return fmt.Errorf("unable to encode ion: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
	return nil
}
