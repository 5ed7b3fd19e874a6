package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	InputConfig struct {
		SVG  []string `yaml:"svg" validate:"dive,startswith=."`
		JSON []string `yaml:"json" validate:"dive,startswith=."`
		YAML []string `yaml:"yaml" validate:"dive,startswith=."`
	}

	DocumentConfig struct {
		StylesheetPath string      `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		MergeStyles    bool        `yaml:"merge_styles"`
		Input          InputConfig `yaml:"input"`
	}

	OutputConfig struct {
		Format        OutputFmt `yaml:"format" validate:"gte=0,lte=2"`
		Indent        int       `yaml:"indent" validate:"min=0,max=8"`
		Geometry      bool      `yaml:"geometry"`
		Transliterate bool      `yaml:"transliterate"`
		NameTemplate  string    `yaml:"name_template"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// InputKind is kind of record source recognized by file name.
type InputKind int

const (
	InputUnknown InputKind = iota
	InputSVG
	InputJSON
	InputYAML
)

// Classify decides how to read file by its name.
func (c *InputConfig) Classify(name string) InputKind {
	lower := strings.ToLower(name)
	match := func(exts []string) bool {
		for _, ext := range exts {
			if strings.HasSuffix(lower, strings.ToLower(ext)) {
				return true
			}
		}
		return false
	}
	switch {
	case match(c.SVG):
		return InputSVG
	case match(c.JSON):
		return InputJSON
	case match(c.YAML):
		return InputYAML
	}
	return InputUnknown
}

// name templates are expanded when output is produced, never when
// configuration template is processed
var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField("name_template"),
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
