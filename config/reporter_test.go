package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	content := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		content[f.Name] = string(data)
	}
	return content
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "final.log")
	copied := filepath.Join(dir, "input.svg")
	if err := os.WriteFile(stored, []byte("early"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(copied, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("final.log", stored)
	r.StoreData("config.yaml", []byte("version: 1\n"))
	if err := r.StoreCopy("input.svg", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	r.Store("absent", filepath.Join(dir, "absent"))

	// stored file is read when report is closed, copy keeps old content
	if err := os.WriteFile(stored, []byte("late"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(copied, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content := readReport(t, r.Name())
	if content["final.log"] != "late" {
		t.Errorf("final.log = %q, want late", content["final.log"])
	}
	if content["input.svg"] != "<svg/>" {
		t.Errorf("input.svg = %q", content["input.svg"])
	}
	if content["config.yaml"] != "version: 1\n" {
		t.Errorf("config.yaml = %q", content["config.yaml"])
	}
	if _, ok := content["absent"]; ok {
		t.Error("absent files must be skipped")
	}
	if strings.Count(content["MANIFEST"], "\n") != 4 {
		t.Errorf("MANIFEST:\n%s", content["MANIFEST"])
	}
}

func TestReport_StoreCopyVersions(t *testing.T) {
	dir := t.TempDir()
	r := &Report{entries: make(map[string]entry)}

	src := filepath.Join(dir, "a.json")
	if err := os.WriteFile(src, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := r.StoreCopy("a.json", src); err != nil {
			t.Fatalf("StoreCopy() error = %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
	if err := r.StoreCopy("missing", filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReport_StoreConflicts(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("log", "a.log")
	r.Store("log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting entry")
		}
	}()
	r.Store("log", "b.log")
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report error = %v", err)
	}
	if r.Name() != "" || r.ID() != "" {
		t.Errorf("Name of nil report = %q, ID = %q", r.Name(), r.ID())
	}
}

func TestReport_OrderAndComment(t *testing.T) {
	conf := ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.ID() == "" {
		t.Fatal("report has no ID")
	}
	for _, name := range []string{"result/a10", "result/a2", "result/a1"} {
		r.StoreData(name, []byte(name))
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(r.Name())
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	if !strings.HasSuffix(zr.Comment, r.ID()) {
		t.Errorf("Comment = %q, want report ID %s", zr.Comment, r.ID())
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	want := "MANIFEST result/a1 result/a2 result/a10"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("entries = %q, want %q", got, want)
	}
}
