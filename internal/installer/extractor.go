package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"flutter-bootstrap/internal/logger"
)

// Extractor unpacks a downloaded archive into a target directory.
// If the target already exists, the confirmation policy applies before
// anything is removed; a decline returns ErrDeclined with the existing
// target left untouched.
type Extractor interface {
	Extract(archive, targetDir, renameTo string) error
}

// ArchiveExtractor extracts zip, 7z, and tar-family archives.
// Confirm answers the overwrite question when the target directory exists.
type ArchiveExtractor struct {
	Confirm Confirmer
}

// Extract unpacks archive into targetDir. An existing targetDir is removed
// entirely after confirmation, then the archive is extracted fresh. For
// layouts that nest an extra directory level (the Android command line
// tools zip contains a single cmdline-tools folder), the nested top-level
// directory is renamed to renameTo so downstream PATH entries land on a
// stable canonical path.
func (e ArchiveExtractor) Extract(archive, targetDir, renameTo string) error {
	if _, err := os.Stat(targetDir); err == nil {
		logger.Warn("[WARN] %s already exists, overwrite?\n", targetDir)
		if e.Confirm == nil || !e.Confirm.Confirm(targetDir+" already exists, overwrite?") {
			return fmt.Errorf("overwrite of %s: %w", targetDir, ErrDeclined)
		}
		if err := os.RemoveAll(targetDir); err != nil {
			return fmt.Errorf("failed to remove existing %s: %w", targetDir, err)
		}
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", targetDir, err)
	}

	logger.Debug("[DEBUG] Unzipping %s to %s\n", archive, targetDir)
	topLevel, err := extractArchive(archive, targetDir)
	if err != nil {
		return err
	}

	if renameTo == "" || topLevel == "" {
		return nil
	}
	nested := filepath.Join(targetDir, topLevel)
	canonical := filepath.Join(targetDir, renameTo)
	if info, err := os.Stat(nested); err != nil || !info.IsDir() || topLevel == renameTo {
		return nil
	}
	logger.Debug("[DEBUG] Renaming %s to %s\n", nested, canonical)
	if err := os.Rename(nested, canonical); err != nil {
		return fmt.Errorf("failed to rename %s: %w", nested, err)
	}
	return nil
}

// extractArchive routes to the appropriate extraction function based on
// archive type and returns the name of the archive's top-level entry.
func extractArchive(src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		return extractZip(src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is .7z\n")
		return extract7z(src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		return extractTarArchive(src, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// topLevelOf returns the first path segment of an archive entry name.
// Entry names use forward slashes in all supported formats.
func topLevelOf(name string) string {
	return strings.SplitN(strings.TrimLeft(name, "/"), "/", 2)[0]
}

// entryPath joins an archive entry name onto dest, rejecting names whose
// components would resolve outside dest (zip-slip).
func entryPath(dest, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if !filepath.IsLocal(clean) {
		return "", fmt.Errorf("archive entry %q escapes the target directory", name)
	}
	return filepath.Join(dest, clean), nil
}

// extractTarArchive handles tar and compressed tar variants.
func extractTarArchive(src, dest string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	var topLevel string

	// Iterate over each file in the archive
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break // End of archive
		}
		if err != nil {
			return "", err
		}

		if topLevel == "" {
			topLevel = topLevelOf(hdr.Name)
		}

		target, err := entryPath(dest, hdr.Name)
		if err != nil {
			return "", err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return "", err
			}
			outFile, err := os.Create(target)
			if err != nil {
				return "", err
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return "", err
			}
			outFile.Close()
		}
	}
	return topLevel, nil
}

// extractZip extracts a .zip archive
func extractZip(src, dest string) (string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var topLevel string
	for _, f := range r.File {
		path, err := entryPath(dest, f.Name)
		if err != nil {
			return "", err
		}
		if topLevel == "" {
			topLevel = topLevelOf(f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0755); err != nil {
				return "", err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		outFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			return "", err
		}
		rc, err := f.Open()
		if err != nil {
			outFile.Close()
			return "", err
		}
		_, err = io.Copy(outFile, rc)
		rc.Close()
		outFile.Close()
		if err != nil {
			return "", err
		}
	}
	return topLevel, nil
}

// extract7z handles .7z extraction using the sevenzip library
func extract7z(src, dest string) (string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	var topLevel string
	for _, f := range r.File {
		path, err := entryPath(dest, f.Name)
		if err != nil {
			return "", err
		}
		if topLevel == "" {
			topLevel = topLevelOf(f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, f.Mode()); err != nil {
				return "", err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		outFile, err := os.Create(path)
		if err != nil {
			rc.Close()
			return "", err
		}
		_, err = io.Copy(outFile, rc)
		rc.Close()
		outFile.Close()
		if err != nil {
			return "", err
		}
	}
	return topLevel, nil
}
