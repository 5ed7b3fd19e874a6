package config

import (
	"fmt"
	"strings"
)

// Specification of requested record encoding.
type OutputFmt int

const (
	OutputFmtJson OutputFmt = iota
	OutputFmtYaml
	OutputFmtIon
)

var outputFmtNames = []string{"json", "yaml", "ion"}

// ErrInvalidOutputFmt is returned for unknown format names.
var ErrInvalidOutputFmt = fmt.Errorf("not a valid OutputFmt, try [%s]", strings.Join(outputFmtNames, ", "))

// OutputFmtNames returns list of possible string values of OutputFmt.
func OutputFmtNames() []string {
	names := make([]string, len(outputFmtNames))
	copy(names, outputFmtNames)
	return names
}

func (o OutputFmt) String() string {
	if o.IsValid() {
		return outputFmtNames[o]
	}
	return fmt.Sprintf("OutputFmt(%d)", int(o))
}

// IsValid reports whether value is one of defined formats.
func (o OutputFmt) IsValid() bool {
	return o >= OutputFmtJson && int(o) < len(outputFmtNames)
}

// ParseOutputFmt converts case insensitive name to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(n, name) {
			return OutputFmt(i), nil
		}
	}
	return OutputFmt(0), fmt.Errorf("%s is %w", name, ErrInvalidOutputFmt)
}

func (o OutputFmt) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%d is %w", int(o), ErrInvalidOutputFmt)
	}
	return []byte(o.String()), nil
}

func (o *OutputFmt) UnmarshalText(text []byte) error {
	v, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Ext returns file name extension for produced records.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtIon:
		return ".ion"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
