package build

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// DocDiscovery finds source documents under the build root using glob
// patterns and ignore rules.
type DocDiscovery struct {
	rootDir        string
	docPatterns    []compiledPattern
	ignorePatterns []compiledPattern
}

// NewDocDiscovery creates a discovery instance for the given root.
func NewDocDiscovery(rootDir string, docPatterns, ignorePatterns []string) (*DocDiscovery, error) {
	d := &DocDiscovery{rootDir: rootDir}

	for _, pattern := range docPatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.docPatterns = append(d.docPatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Discover walks the root and returns matching document paths relative to it,
// in sorted order so every build scans documents deterministically.
func (d *DocDiscovery) Discover() ([]string, error) {
	var docs []string

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.shouldIgnore(relPath) {
			return nil
		}
		if d.matchesAnyPattern(relPath, d.docPatterns) {
			docs = append(docs, relPath)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(docs)
	return docs, nil
}

// Matches reports whether a root-relative path is a source document.
func (d *DocDiscovery) Matches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	return !d.shouldIgnore(relPath) && d.matchesAnyPattern(relPath, d.docPatterns)
}

// shouldIgnore checks if a path matches any ignore pattern.
func (d *DocDiscovery) shouldIgnore(relPath string) bool {
	// Always ignore the config directory.
	if strings.HasPrefix(relPath, ".snipdocs/") || relPath == ".snipdocs" {
		return true
	}

	if d.matchesAnyPattern(relPath, d.ignorePatterns) {
		return true
	}

	// A directory name should also match its /** pattern form, so that
	// "_build" is ignored under pattern "_build/**".
	return d.matchesAnyPattern(relPath+"/**", d.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func (d *DocDiscovery) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Root-level files should match "**/*.txt" style patterns the way users
	// expect, so retry with the **/ prefix removed.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
