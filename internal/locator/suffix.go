package locator

import (
	"path/filepath"
	"strings"

	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

// HasMetadataSuffix reports whether name ends in one of the recognized
// metadata suffixes, ignoring letter case.
func HasMetadataSuffix(name string) bool {
	for _, suffix := range agdcmeta.MetadataSuffixes {
		if hasFoldSuffix(name, "."+suffix) {
			return true
		}
	}
	return false
}

// hasFoldSuffix is strings.HasSuffix with case folding. The suffix must be
// preceded by at least one character.
func hasFoldSuffix(name, suffix string) bool {
	if len(name) <= len(suffix) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(suffix):], suffix)
}

// FindWithAnySuffix returns the first existing path formed by appending
// "." and a recognized suffix to stem, trying agdcmeta.MetadataSuffixes in
// order. Absence is reported with ok == false and is not an error.
//
// For each candidate an exact-case match is tried first, then a
// case-insensitive match against the entries of the stem's directory. In the
// latter case the returned path carries the entry's actual name.
func (l *Locator) FindWithAnySuffix(stem string) (string, bool) {
	if stem == "" || strings.HasSuffix(stem, "/") || strings.HasSuffix(stem, string(filepath.Separator)) {
		return "", false
	}

	base := filepath.Base(stem)
	prefix := stem[:len(stem)-len(base)]

	var listing []filesystem.FileInfo
	listed := false

	for _, suffix := range agdcmeta.MetadataSuffixes {
		candidate := stem + "." + suffix
		l.logger.Verbose("Probing %s", candidate)

		if l.isDocument(candidate) {
			return candidate, true
		}

		if !listed {
			listing = l.listDir(filepath.Dir(stem))
			listed = true
		}
		if name, ok := matchFold(listing, base, "."+suffix); ok {
			return prefix + name, true
		}
	}

	l.logger.Verbose("No metadata document matches %s.*", stem)
	return "", false
}

// FindInListing is FindWithAnySuffix against entries, an existing listing
// of the stem's directory, instead of the filesystem. Candidates are tried in
// agdcmeta.MetadataSuffixes order, an exact-case name before a case-folded one.
// Callers that already hold a directory listing use it to probe many stems
// without listing the directory again.
func (l *Locator) FindInListing(stem string, entries []filesystem.FileInfo) (string, bool) {
	if stem == "" || strings.HasSuffix(stem, "/") || strings.HasSuffix(stem, string(filepath.Separator)) {
		return "", false
	}

	base := filepath.Base(stem)
	prefix := stem[:len(stem)-len(base)]

	for _, suffix := range agdcmeta.MetadataSuffixes {
		if name, ok := matchExact(entries, base+"."+suffix); ok {
			return prefix + name, true
		}
		if name, ok := matchFold(entries, base, "."+suffix); ok {
			return prefix + name, true
		}
	}
	return "", false
}

func matchExact(entries []filesystem.FileInfo, name string) (string, bool) {
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == name {
			return name, true
		}
	}
	return "", false
}

// matchFold returns the first entry named base followed by suffix in any
// letter case. Entries are sorted by name, so the lexically smallest wins.
func matchFold(entries []filesystem.FileInfo, base, suffix string) (string, bool) {
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) != len(base)+len(suffix) || !strings.HasPrefix(name, base) {
			continue
		}
		if strings.EqualFold(name[len(base):], suffix) {
			return name, true
		}
	}
	return "", false
}

func (l *Locator) isDocument(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// listDir lists dir, treating an unreadable directory as empty.
func (l *Locator) listDir(dir string) []filesystem.FileInfo {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		l.logger.Verbose("Cannot list %s: %v", dir, err)
		return nil
	}
	return entries
}
