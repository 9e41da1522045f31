package envpath

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0755); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}

func TestLocateAddsExecutableExtension(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "git.exe")

	got, ok := Locate("git", []string{dir})
	if !ok || got != want {
		t.Fatalf("expected %q, got %q (ok=%v)", want, got, ok)
	}
}

func TestLocateCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "GIT.EXE")

	if _, ok := Locate("git", []string{dir}); !ok {
		t.Fatalf("expected case-insensitive match for GIT.EXE")
	}
	if _, ok := Locate("SdkManager.BAT", []string{t.TempDir()}); ok {
		t.Fatalf("expected miss in empty directory")
	}
}

func TestLocateExplicitExtension(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "sdkmanager.bat")

	got, ok := Locate("sdkmanager.bat", []string{dir})
	if !ok || got != want {
		t.Fatalf("expected %q, got %q (ok=%v)", want, got, ok)
	}

	// A bare extensionless file is not executable on the target platform.
	touch(t, dir, "flutter")
	if _, ok := Locate("flutter", []string{dir}); ok {
		t.Fatalf("expected extensionless file to be skipped")
	}
}

func TestLocateFirstDirectoryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := touch(t, first, "git.exe")
	touch(t, second, "git.exe")

	got, ok := Locate("git", []string{first, second})
	if !ok || got != want {
		t.Fatalf("expected first-dir match %q, got %q", want, got)
	}
}

func TestLocateSkipsUnreadableDirectories(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "git.exe")

	got, ok := Locate("git", []string{filepath.Join(dir, "does-not-exist"), dir})
	if !ok || got != want {
		t.Fatalf("expected missing dir to be skipped, got %q (ok=%v)", got, ok)
	}
}
