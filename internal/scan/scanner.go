package scan

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// maxWarnings caps the warning list so a badly broken tree cannot grow it
// without bound.
const maxWarnings = 500

// Match is a dependency directory found during a scan. Path is relative to
// the scanned filesystem root, using forward slashes. Size is the recursive
// byte size of the directory's contents, computed best-effort.
type Match struct {
	Path     string
	Size     int64
	Language Language
}

// Scanner walks a filesystem looking for the selected language's dependency
// directories. A Scanner is single-use per Scan call but may be reused;
// warnings accumulate across calls.
type Scanner struct {
	fs       billy.Filesystem
	language Language
	targets  map[string]bool
	warnings []string
}

// NewScanner creates a Scanner for the given filesystem and language.
func NewScanner(fsys billy.Filesystem, language Language) *Scanner {
	targets := make(map[string]bool)
	for _, t := range language.Targets() {
		targets[t] = true
	}
	return &Scanner{
		fs:       fsys,
		language: language,
		targets:  targets,
	}
}

// Warnings returns the warnings accumulated during scanning.
func (s *Scanner) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

func (s *Scanner) addWarning(msg string) {
	if len(s.warnings) < maxWarnings {
		s.warnings = append(s.warnings, msg)
	}
}

// Scan performs a depth-first traversal from root and returns every matched
// dependency directory, sorted by size descending. An unreadable root is a
// fatal error; unreadable subtrees below it are skipped with a warning so one
// bad directory cannot block cleanup elsewhere.
func (s *Scanner) Scan(root string) ([]Match, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan: read root %q: %w", root, err)
	}

	var matches []Match
	s.visit(root, entries, &matches)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Size > matches[j].Size
	})

	return matches, nil
}

// walk reads one directory and descends. Read failures are recorded and the
// subtree is skipped.
func (s *Scanner) walk(dir string, matches *[]Match) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		s.addWarning("cannot read " + dir + ": " + err.Error())
		return
	}
	s.visit(dir, entries, matches)
}

func (s *Scanner) visit(dir string, entries []os.FileInfo, matches *[]Match) {
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		child := s.fs.Join(dir, e.Name())
		if s.targets[e.Name()] {
			// A matched directory is terminal: it will be deleted or
			// reported whole, so its contents are never visited.
			*matches = append(*matches, Match{
				Path:     child,
				Size:     s.dirSize(child),
				Language: s.language,
			})
			continue
		}
		s.walk(child, matches)
	}
}

// dirSize sums the file sizes under path. Unreadable entries count as zero;
// sizing is display-level information and must not fail the scan.
func (s *Scanner) dirSize(path string) int64 {
	entries, err := s.fs.ReadDir(path)
	if err != nil {
		return 0
	}
	var size int64
	for _, e := range entries {
		if e.IsDir() {
			size += s.dirSize(s.fs.Join(path, e.Name()))
		} else {
			size += e.Size()
		}
	}
	return size
}
