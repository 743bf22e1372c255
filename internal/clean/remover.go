// Package clean removes matched dependency directories. It is the only
// package that deletes anything; dry-run mode never constructs a Remover.
package clean

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/davidMuir/clean-deps/internal/scan"
)

// Result records the outcome of removing a single match.
type Result struct {
	Path    string
	Freed   int64
	Skipped bool // empty directory, nothing to remove
	Err     error
}

// Remover deletes matched directories from a filesystem.
type Remover struct {
	fs billy.Filesystem
}

// NewRemover creates a Remover over the given filesystem.
func NewRemover(fsys billy.Filesystem) *Remover {
	return &Remover{fs: fsys}
}

// Remove deletes the matched directory and everything under it. Empty matches
// are skipped rather than removed. A failed removal is reported in the Result
// and never aborts the caller's loop.
func (r *Remover) Remove(m scan.Match) Result {
	if m.Size == 0 {
		return Result{Path: m.Path, Skipped: true}
	}
	if err := util.RemoveAll(r.fs, m.Path); err != nil {
		return Result{Path: m.Path, Err: fmt.Errorf("remove %q: %w", m.Path, err)}
	}
	return Result{Path: m.Path, Freed: m.Size}
}

// RemoveAll removes every match in order, returning one Result per match.
func (r *Remover) RemoveAll(matches []scan.Match) []Result {
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, r.Remove(m))
	}
	return results
}
