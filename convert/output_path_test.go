package convert

import (
	"path/filepath"
	"testing"

	"svgprops/config"
	"svgprops/state"
)

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		noDirs        bool
		transliterate bool
		format        config.OutputFmt
		template      string
		want          string
	}{
		{"simple", "icon.svg", false, false, config.OutputFmtJson, "", "out/icon.props.json"},
		{"keeps dirs", "a/b/icon.svg", false, false, config.OutputFmtYaml, "", "out/a/b/icon.props.yaml"},
		{"no dirs", "a/b/icon.svg", true, false, config.OutputFmtIon, "", "out/icon.props.ion"},
		{"transliterate", "Иконка Один.svg", false, true, config.OutputFmtJson, "", "out/ikonka-odin.props.json"},
		{"no transliterate", "Иконка.svg", false, false, config.OutputFmtJson, "", "out/Иконка.props.json"},
		{"attribute file", "dir/style.yml", false, false, config.OutputFmtJson, "", "out/dir/style.props.json"},
		{"template subdir", "a/icon.svg", false, false, config.OutputFmtJson, "{{ .Kind }}/{{ .Name | upper }}", "out/a/svg/ICON.props.json"},
		{"template no dirs", "a/icon.svg", true, false, config.OutputFmtJson, "{{ .Dir }}-{{ .Name }}", "out/a-icon.props.json"},
		{"template escape", "icon.svg", false, false, config.OutputFmtJson, "../../{{ .Name }}", "out/icon.props.json"},
		{"template transliterate", "icon.svg", false, true, config.OutputFmtJson, "Набор/{{ .Name }}", "out/nabor/icon.props.json"},
		{"template broken", "icon.svg", false, false, config.OutputFmtJson, "{{ .Title }}", "out/icon.props.json"},
		{"template empty", "icon.svg", false, false, config.OutputFmtJson, "{{ \"\" }}", "out/icon.props.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &state.LocalEnv{
				Cfg:    &config.Config{Output: config.OutputConfig{Transliterate: tt.transliterate, NameTemplate: tt.template}},
				NoDirs: tt.noDirs,
				Format: tt.format,
			}
			got := buildOutputPath(filepath.FromSlash(tt.src), "out", config.InputSVG, env)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
