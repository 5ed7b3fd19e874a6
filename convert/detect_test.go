package convert

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"svgprops/config"
)

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	zipped := filepath.Join(dir, "icons.bin")
	writeZip(t, zipped, map[string]string{"a.svg": sampleSVG})

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"test.txt", "not a zip", false},
		{"test.zip", "not a real zip file", false},
		{"empty.zip", "", false},
		{"short", "PK", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			writeFile(t, path, tt.content)
			got, err := isArchiveFile(path)
			if err != nil {
				t.Fatalf("isArchiveFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isArchiveFile() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("zip without extension", func(t *testing.T) {
		got, err := isArchiveFile(zipped)
		if err != nil || !got {
			t.Errorf("isArchiveFile() = %v, %v, want true", got, err)
		}
	})

	t.Run("non existent", func(t *testing.T) {
		if _, err := isArchiveFile(filepath.Join(dir, "missing.zip")); err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}

func TestIsProduced(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"icon.props.json", true},
		{"dir/ICON.PROPS.YAML", true},
		{"icon.props.ion", true},
		{"icon.json", false},
		{"props.json", false},
		{"icon.props.svg", false},
	}
	for _, tt := range tests {
		if got := isProduced(tt.name); got != tt.want {
			t.Errorf("isProduced(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSelectReader(t *testing.T) {
	const text = `{"fill": "red"}`

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   []byte
		kind config.InputKind
		want string
	}{
		{"plain", []byte(text), config.InputJSON, text},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...), config.InputYAML, text},
		{"utf16 bom", utf16, config.InputJSON, text},
		{"svg untouched", append([]byte{0xEF, 0xBB, 0xBF}, text...), config.InputSVG, "\ufeff" + text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(selectReader(bytes.NewReader(tt.in), tt.kind))
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
