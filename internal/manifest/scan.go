// Package manifest discovers skill manifests: one directory per skill, each
// holding a SKILL.md whose frontmatter names and describes the skill.
package manifest

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FileName is the manifest file expected in every skill directory.
const FileName = "SKILL.md"

// Entry is one discovered skill.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Path is relative to the project root and always uses "/".
	Path string `json:"path"`
}

// Skipped records a skill directory whose manifest could not be used.
type Skipped struct {
	Dir    string
	Reason string
}

// Scan returns the usable skills under dir, sorted by name.
// relBase is the project-relative form of dir used to build Entry.Path.
// A missing dir yields no entries.
func Scan(dir, relBase string) []Entry {
	entries, _ := Inspect(dir, relBase)
	return entries
}

// Inspect is Scan that also reports manifests it had to skip. Directories
// without a SKILL.md are not reported.
func Inspect(dir, relBase string) ([]Entry, []Skipped) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var (
		entries []Entry
		skipped []Skipped
	)
	for _, de := range dirents {
		if !isDir(dir, de) {
			continue
		}
		name := de.Name()
		data, err := os.ReadFile(filepath.Join(dir, name, FileName))
		if err != nil {
			if !os.IsNotExist(err) {
				skipped = append(skipped, Skipped{Dir: name, Reason: "unreadable: " + err.Error()})
			}
			continue
		}

		e, reason := entryFrom(name, relBase, ParseFrontmatter(string(data)))
		if reason != "" {
			skipped = append(skipped, Skipped{Dir: name, Reason: reason})
			continue
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return entries, skipped
}

func entryFrom(dirName, relBase string, fm Frontmatter) (Entry, string) {
	name, ok := fm["name"]
	if !ok {
		name = dirName
	}
	e := Entry{
		Name:        name,
		Description: fm["description"],
		Path:        path.Join(filepath.ToSlash(relBase), dirName, FileName),
	}
	switch {
	case fm == nil:
		// Without a header the description is necessarily missing.
		return e, "no frontmatter"
	case e.Name == "":
		return e, "empty name"
	case e.Description == "":
		return e, "missing description"
	}
	return e, ""
}

// isDir follows symlinks so that linked skill directories are scanned too.
func isDir(parent string, de os.DirEntry) bool {
	if de.IsDir() {
		return true
	}
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(parent, de.Name()))
	return err == nil && fi.IsDir()
}

// AbsPath resolves an entry's Path against the project directory.
func AbsPath(e Entry, projectDir string) string {
	p := filepath.FromSlash(e.Path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectDir, p)
}

// Find returns the entry with exactly the given name.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Suggest returns up to limit entry names that fuzzily match name, best first.
func Suggest(entries []Entry, name string, limit int) []string {
	matches := fuzzy.FindFrom(name, entrySource(entries))
	var out []string
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, entries[m.Index].Name)
	}
	return out
}
