package installer

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// scriptedConfirmer answers every question with a fixed answer and counts
// how often it was asked.
type scriptedConfirmer struct {
	answer bool
	asked  int
}

func (c *scriptedConfirmer) Confirm(prompt string) bool {
	c.asked++
	return c.answer
}

// makeZip writes a zip archive whose entries all live under a single
// top-level directory, mirroring the command line tools layout.
func makeZip(t *testing.T, dir string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, "commandlinetools-win-11076708_latest.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestExtractFreshWithNestedRename(t *testing.T) {
	work := t.TempDir()
	archive := makeZip(t, work, map[string]string{
		"cmdline-tools/bin/sdkmanager.bat": "@echo off",
		"cmdline-tools/NOTICE.txt":         "notice",
	})
	target := filepath.Join(work, "Sdk", "cmdline-tools")

	confirm := &scriptedConfirmer{answer: true}
	err := ArchiveExtractor{Confirm: confirm}.Extract(archive, target, "latest")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if confirm.asked != 0 {
		t.Fatalf("expected no confirmation for a fresh target, asked %d times", confirm.asked)
	}

	renamed := filepath.Join(target, "latest", "bin", "sdkmanager.bat")
	if _, err := os.Stat(renamed); err != nil {
		t.Fatalf("expected renamed layout at %s: %v", renamed, err)
	}
	if _, err := os.Stat(filepath.Join(target, "cmdline-tools")); !os.IsNotExist(err) {
		t.Fatalf("expected nested dir to be renamed away, err=%v", err)
	}
}

func TestExtractDeclineLeavesTargetUntouched(t *testing.T) {
	work := t.TempDir()
	archive := makeZip(t, work, map[string]string{
		"cmdline-tools/bin/sdkmanager.bat": "@echo off",
	})
	target := filepath.Join(work, "cmdline-tools")
	keep := filepath.Join(target, "keep.txt")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatalf("mkdir target: %v", err)
	}
	if err := os.WriteFile(keep, []byte("precious"), 0644); err != nil {
		t.Fatalf("seed target: %v", err)
	}

	err := ArchiveExtractor{Confirm: &scriptedConfirmer{answer: false}}.Extract(archive, target, "latest")
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}

	got, err := os.ReadFile(keep)
	if err != nil || string(got) != "precious" {
		t.Fatalf("expected target untouched after decline, got %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(target, "latest")); !os.IsNotExist(err) {
		t.Fatalf("expected no extraction after decline")
	}
}

func TestExtractOverwriteReplacesTarget(t *testing.T) {
	work := t.TempDir()
	archive := makeZip(t, work, map[string]string{
		"cmdline-tools/bin/sdkmanager.bat": "@echo off",
	})
	target := filepath.Join(work, "cmdline-tools")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatalf("mkdir target: %v", err)
	}
	stale := filepath.Join(target, "stale.txt")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatalf("seed target: %v", err)
	}

	confirm := &scriptedConfirmer{answer: true}
	if err := (ArchiveExtractor{Confirm: confirm}).Extract(archive, target, "latest"); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if confirm.asked != 1 {
		t.Fatalf("expected one confirmation, got %d", confirm.asked)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale content removed")
	}
	if _, err := os.Stat(filepath.Join(target, "latest", "bin", "sdkmanager.bat")); err != nil {
		t.Fatalf("expected fresh extraction: %v", err)
	}
}

func TestExtractTarGz(t *testing.T) {
	work := t.TempDir()
	archive := filepath.Join(work, "tool.tar.gz")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	content := []byte("binary bits")
	if err := tw.WriteHeader(&tar.Header{
		Name:     "tool-1.0/tool.exe",
		Mode:     0755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}); err != nil {
		t.Fatalf("tar header: %v", err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatalf("tar write: %v", err)
	}
	tw.Close()
	gw.Close()
	f.Close()

	target := filepath.Join(work, "out")
	if err := (ArchiveExtractor{Confirm: &scriptedConfirmer{answer: true}}).Extract(archive, target, ""); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "tool-1.0", "tool.exe")); err != nil {
		t.Fatalf("expected tar contents extracted: %v", err)
	}
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	work := t.TempDir()
	archive := makeZip(t, work, map[string]string{
		"../evil.txt": "outside",
	})
	target := filepath.Join(work, "out")

	err := ArchiveExtractor{Confirm: &scriptedConfirmer{answer: true}}.Extract(archive, target, "")
	if err == nil {
		t.Fatalf("expected error for an entry escaping the target directory")
	}
	if _, err := os.Stat(filepath.Join(work, "evil.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written outside the target, err=%v", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	work := t.TempDir()
	archive := filepath.Join(work, "tool.rar")
	if err := os.WriteFile(archive, []byte("not really"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	err := ArchiveExtractor{}.Extract(archive, filepath.Join(work, "out"), "")
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
