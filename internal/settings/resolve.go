package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Layers names the project and local files of one settings pair.
type Layers struct {
	Project string
	Local   string
}

var (
	// CCKFiles hold the assistant's user preferences (language, workflow).
	CCKFiles = Layers{Project: "cck.json", Local: "cck.local.json"}
	// HostFiles are the host's own settings files.
	HostFiles = Layers{Project: "settings.json", Local: "settings.local.json"}
)

// LoadFile reads and parses one settings file.
// A missing file returns an error wrapping os.ErrNotExist.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Load reads one settings file. Missing, unreadable and malformed files are
// all reported as absent.
func Load(path string) (*Document, bool) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, false
	}
	return doc, true
}

// LoadLayers loads both files of a pair from dir. Either result may be nil.
func LoadLayers(dir string, l Layers) (project, local *Document) {
	project, _ = Load(filepath.Join(dir, l.Project))
	local, _ = Load(filepath.Join(dir, l.Local))
	return project, local
}

// Resolve merges the local file over the project file. It reports false when
// neither file yields any settings. An empty merge (e.g. both files hold {})
// also reports false, so callers cannot tell it apart from missing files;
// every caller renders both cases as nothing to inject.
func Resolve(dir string, l Layers) (*Document, bool) {
	project, local := LoadLayers(dir, l)
	if project == nil && local == nil {
		return nil, false
	}
	merged := DeepMerge(project, local)
	if merged.Len() == 0 {
		return nil, false
	}
	return merged, true
}

// Problem describes a settings file that exists but cannot be used.
type Problem struct {
	Path string
	Err  error
}

// Check returns a problem for every file of the pair that exists but fails
// to parse. Missing files are not problems.
func Check(dir string, l Layers) []Problem {
	var problems []Problem
	for _, name := range []string{l.Project, l.Local} {
		path := filepath.Join(dir, name)
		if _, err := LoadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			problems = append(problems, Problem{Path: path, Err: err})
		}
	}
	return problems
}
