package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"svgprops/config"
)

// enough to recognize any archive signature known to filetype
const headerSize = 262

func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// isProduced reports whether file looks like output of previous run, so
// extracting into source directory does not pick records up again.
func isProduced(name string) bool {
	lower := strings.ToLower(filepath.Base(name))
	for _, f := range config.OutputFmtNames() {
		if strings.HasSuffix(lower, producedSuffix+"."+f) {
			return true
		}
	}
	return false
}

// selectReader decodes UTF-16 and UTF-8 byte order marks of record files. SVG
// documents are left alone, XML reader handles declared encodings itself.
func selectReader(r io.Reader, kind config.InputKind) io.Reader {
	if kind == config.InputSVG {
		return r
	}
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
