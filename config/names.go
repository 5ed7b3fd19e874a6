package config

import "strings"

const badFileName = "_bad_file_name_"

// CleanFileName drops control characters and characters not allowed in file
// names on this platform. Leading dots and surrounding spaces are removed so
// produced files are never hidden.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < ' ' || strings.ContainsRune(forbiddenInNames, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimRight(strings.TrimLeft(out, ". "), " ")
	if len(out) == 0 {
		return badFileName
	}
	return out
}
