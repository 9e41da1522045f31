package envpath

import (
	"os"
	"path/filepath"
	"strings"
)

// executableExts are the suffixes tried, in order, when locating an
// executable name given without an extension.
var executableExts = []string{".exe", ".bat", ".cmd"}

// Locate resolves an executable name against a search path snapshot and
// returns the first match. Resolution follows the Windows rules: names are
// matched case-insensitively, and a name without an extension tries each
// known executable suffix in order within a directory before moving to the
// next directory. Directories that cannot be read are skipped. No side
// effects; the snapshot passed in is the only input besides the filesystem.
func Locate(exe string, searchPath []string) (string, bool) {
	candidates := []string{exe}
	if filepath.Ext(exe) == "" {
		candidates = candidates[:0]
		for _, ext := range executableExts {
			candidates = append(candidates, exe+ext)
		}
	}

	for _, dir := range searchPath {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, want := range candidates {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if strings.EqualFold(entry.Name(), want) {
					return filepath.Join(dir, entry.Name()), true
				}
			}
		}
	}
	return "", false
}
