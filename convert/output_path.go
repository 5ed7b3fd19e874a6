package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"svgprops/config"
	"svgprops/state"
)

const producedSuffix = ".props"

// buildOutputPath returns name of the file receiving records extracted from
// src. "src" is path relative to the processed directory or archive, it is
// kept under dst unless NoDirs is requested. Configured name template may
// replace file name and add subdirectories.
func buildOutputPath(src, dst string, kind config.InputKind, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}
	transliterate := env.Cfg.Output.Transliterate

	if tmpl := env.Cfg.Output.NameTemplate; tmpl != "" {
		name, err := expandTemplate(tmpl, newValues(src, kind, env.Format))
		if err == nil && name != "" {
			return assemblePath(outDir, name, env.Format, transliterate)
		}
		if env.Log != nil {
			env.Log.Warn("Unable to prepare output file name, using default", zap.String("source", src), zap.Error(err))
		}
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(outDir, cleanSegment(base, transliterate)+producedSuffix+env.Format.Ext())
}

// assemblePath places expanded name, which may contain subdirectories, under
// outDir cleaning every path segment.
func assemblePath(outDir, name string, format config.OutputFmt, transliterate bool) string {
	parts := []string{outDir}
	segments := splitPath(name)
	for i, s := range segments {
		s = cleanSegment(s, transliterate)
		if i == len(segments)-1 {
			s += producedSuffix + format.Ext()
		}
		parts = append(parts, s)
	}
	return filepath.Join(parts...)
}

// splitPath breaks slash or OS separated path into non empty segments
// dropping "." and "..".
func splitPath(name string) []string {
	var segments []string
	for s := range strings.FieldsFuncSeq(filepath.ToSlash(name), func(r rune) bool { return r == '/' }) {
		if s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func cleanSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
