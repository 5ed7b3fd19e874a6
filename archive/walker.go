// Package archive walks zip archives holding SVG documents and property
// records.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// Entry is regular file in archive.
type Entry struct {
	Archive string    // path to archive passed to Walk
	Name    string    // file name, decoded when archive does not use UTF-8
	File    *zip.File // archive entry
}

// WalkFunc is called for every entry visited by Walk. If an error is
// returned, processing stops.
type WalkFunc func(e Entry) error

// Walk visits regular files in archive which names start with prefix.
//
// Zip does not define file name encoding, entries not flagged as UTF-8 are
// decoded with cp when it is not nil. Entries with absolute names or ".."
// components make Walk fail.
func Walk(archive, prefix string, cp encoding.Encoding, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		name, err := decodeName(f, cp)
		if err != nil {
			return fmt.Errorf("zip entry %q: %w", f.Name, err)
		}
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(Entry{Archive: archive, Name: name, File: f}); err != nil {
			return err
		}
	}
	return nil
}

func decodeName(f *zip.File, cp encoding.Encoding) (string, error) {
	if cp == nil || !f.NonUTF8 {
		return f.Name, nil
	}
	name, err := cp.NewDecoder().String(f.Name)
	if err != nil {
		return "", fmt.Errorf("unable to decode name: %w", err)
	}
	return name, nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
