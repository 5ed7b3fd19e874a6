package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"svgprops/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty report.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	r := &Report{id: id, entries: make(map[string]entry)}

	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	r.file = f
	return r, nil
}

type entry struct {
	original string // path as it was given
	actual   string // absolute path, empty for data entries
	stamp    time.Time
	data     []byte
}

// Report accumulates files and data making up debug report: configuration,
// logs, offending input documents and produced records. All methods are safe
// to call on nil report, which means no report was requested.
type Report struct {
	id      uuid.UUID
	mu      sync.Mutex
	entries map[string]entry
	file    *os.File
}

// ID identifies report, it is recorded as archive comment.
func (r *Report) ID() string {
	if r == nil {
		return ""
	}
	return r.id.String()
}

// Close writes report archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finalize()
}

// Name returns name of report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file to be put into report when it is closed, so report
// gets file content at that time.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.entries[name]; exists && old.original != path {
		panic(fmt.Sprintf("attempt to overwrite report entry [%s]: was %s, now %s", name, old.original, path))
	}
	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[name] = e
}

// StoreData puts data into report under requested name. Repeated names are
// versioned with time stamps.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.add(name, entry{data: data, stamp: time.Now()})
}

// StoreCopy reads file content at the time of the call. Repeated names are
// versioned with time stamps.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	e := entry{original: path, stamp: time.Now(), data: data}
	if p, err := filepath.Abs(path); err == nil {
		e.original = p
	}
	r.add(name, e)
	return nil
}

func (r *Report) add(name string, e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for n := name; ; {
		if _, exists := r.entries[n]; !exists {
			r.entries[n] = e
			return
		}
		n = fmt.Sprintf("%s-%d", name, e.stamp.UnixNano())
		e.stamp = e.stamp.Add(time.Nanosecond)
	}
}

func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)
	if err := arc.SetComment(misc.GetAppName() + " report " + r.id.String()); err != nil {
		return err
	}

	names := make([]string, 0, len(r.entries))
	for k := range r.entries {
		names = append(names, k)
	}
	sort.Sort(natural.StringSlice(names))

	now := time.Now()
	manifest := new(bytes.Buffer)
	for _, name := range names {
		e := r.entries[name]
		stamp := e.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(manifest, "%s\t%s\t%s : %s\n", stamp.UTC().Format(time.UnixDate), name, e.original, e.actual)
	}
	if err := saveFile(arc, "MANIFEST", now, manifest); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]
		if e.actual == "" {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := saveStored(arc, name, e.actual); err != nil {
			return err
		}
	}
	return arc.Close()
}

func saveStored(arc *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		// ignoring absent files
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(arc, name, info.ModTime(), f)
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
