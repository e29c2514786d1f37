// Package fonts locates the overlay font on disk.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// DefaultDirs are searched for fonts named by family rather than path.
var DefaultDirs = []string{"assets/fonts", "static/fonts"}

// ErrNotFound is returned when no font matches.
var ErrNotFound = errors.New("font not found")

// Scan returns the font files under dir, relative to dir with forward slashes, sorted.
// A missing dir yields no files.
func Scan(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	slices.Sort(out)
	return out, err
}

// normalize lowercases and drops spaces, dashes and underscores.
func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
}

// Find resolves name to a font file. An existing file path is returned as is; otherwise name
// is matched as a family ("Inter", "Open Sans") against the files in dirs. When several files
// match, a "Regular" cut wins.
func Find(name string, dirs []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}
	want := normalize(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))

	var matches []string
	for _, dir := range dirs {
		files, err := Scan(dir)
		if err != nil {
			return "", fmt.Errorf("fonts: %w", err)
		}
		for _, rel := range files {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("fonts: %s: %w", name, ErrNotFound)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
