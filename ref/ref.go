// Package ref parses attribute values referencing other nodes of the scene,
// "#id" or "url(#id)", into bare identifiers.
package ref

import "regexp"

// pattern accepts "#id" optionally wrapped into url(...) with or without
// quotes. Identifier cannot contain white space, quotes or ")".
var pattern = regexp.MustCompile(`#([^\s)'"]+)['"]?\s*\)?$`)

// Parse extracts identifier from reference value. Values other than strings
// are never valid references.
func Parse(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
