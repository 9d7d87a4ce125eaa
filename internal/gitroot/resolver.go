// Package gitroot finds the canonical working-tree root of the git
// repository containing a folder, walking the folder's ancestor chain
// and reading git's own metadata instead of shelling out to a git
// binary. It understands both plain repositories (.git directory) and
// linked worktrees (.git file with a gitdir pointer and a commondir
// indirection), so every worktree of one repository resolves to the
// same root.
package gitroot

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/jimeh/vscode-glaze-sub003/internal/pathutil"
)

// Resolver resolves folders to git roots through an injected
// filesystem and cache.
type Resolver struct {
	fs    FS
	cache *Cache
}

// NewResolver returns a resolver reading through fs and memoizing into
// cache. A nil fs uses the local filesystem; a nil cache gets a fresh
// private one.
func NewResolver(fs FS, cache *Cache) *Resolver {
	if fs == nil {
		fs = OSFS{}
	}
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{fs: fs, cache: cache}
}

// Root returns the canonical working-tree root for the repository
// containing dir. ok is false when dir is not inside a repository or
// when resolution failed; err carries the underlying cause for I/O
// failures other than not-found. Concurrent calls for the same dir
// collapse into a single walk.
func (r *Resolver) Root(ctx context.Context, dir string) (root string, ok bool, err error) {
	key := cacheKey(dir)

	e, leader := r.cache.acquire(key)
	if !leader {
		select {
		case <-e.done:
			return e.root, e.ok, e.err
		case <-ctx.Done():
			return "", false, ctx.Err()
		}
	}

	root, ok, err = r.walk(ctx, dir)
	r.cache.complete(key, e, root, ok, err)
	return root, ok, err
}

// cacheKey canonicalizes dir so path spelling variants share an entry.
func cacheKey(dir string) string {
	k := strings.TrimRight(pathutil.Normalize(filepath.Clean(dir)), "/")
	if k == "" {
		return "/"
	}
	return k
}

// walk ascends from dir looking for a .git marker at each level.
func (r *Resolver) walk(ctx context.Context, dir string) (string, bool, error) {
	current := filepath.Clean(dir)
	for {
		marker := filepath.Join(current, ".git")
		typ, err := r.fs.Stat(ctx, marker)
		switch {
		case err == nil && typ == EntryDir:
			// Plain repository: this level is the root.
			return current, true, nil
		case err == nil && typ == EntryFile:
			// Linked worktree or submodule pointer. A marker file
			// that cannot be decoded fails resolution outright; it
			// does not fall through to directory handling or keep
			// ascending.
			return r.resolveMarkerFile(ctx, current, marker)
		case err != nil && !errors.Is(err, ErrNotExist):
			return "", false, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false, nil
		}
		current = parent
	}
}

// resolveMarkerFile decodes a .git pointer file at markerPath inside
// folder and derives the canonical working-tree root.
func (r *Resolver) resolveMarkerFile(ctx context.Context, folder, markerPath string) (string, bool, error) {
	data, err := r.fs.ReadFile(ctx, markerPath)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			// Raced with marker removal; treat as not a repository.
			return "", false, nil
		}
		return "", false, err
	}

	gitDir, ok := parseGitdirPointer(string(data))
	if !ok {
		return "", false, nil
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(folder, gitDir)
	}
	gitDir = filepath.Clean(gitDir)

	// A linked worktree's metadata directory carries a commondir file
	// pointing at the repository's common .git directory.
	commonDir, readErr := r.readCommonDir(ctx, gitDir)
	if readErr != nil {
		return "", false, readErr
	}
	if commonDir != "" {
		if root, ok := deriveWorkTreeRoot(commonDir); ok {
			return root, true, nil
		}
	}
	if root, ok := deriveWorkTreeRoot(gitDir); ok {
		return root, true, nil
	}
	return "", false, nil
}

// readCommonDir resolves the commondir indirection inside gitDir.
// Returns "" when no commondir file exists.
func (r *Resolver) readCommonDir(ctx context.Context, gitDir string) (string, error) {
	data, err := r.fs.ReadFile(ctx, filepath.Join(gitDir, "commondir"))
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	line := firstNonBlankLine(string(data))
	if line == "" {
		return "", nil
	}
	if !filepath.IsAbs(line) {
		line = filepath.Join(gitDir, line)
	}
	return filepath.Clean(line), nil
}

// parseGitdirPointer extracts the target of the first "gitdir:" line.
// The keyword is matched case-insensitively and the value trimmed.
func parseGitdirPointer(contents string) (string, bool) {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < len("gitdir:") {
			continue
		}
		if !strings.EqualFold(line[:len("gitdir:")], "gitdir:") {
			continue
		}
		target := strings.TrimSpace(line[len("gitdir:"):])
		if target == "" {
			return "", false
		}
		return target, true
	}
	return "", false
}

// worktreesSegment marks the metadata layout of linked worktrees.
const worktreesSegment = "/.git/worktrees/"

// deriveWorkTreeRoot maps a git metadata directory to its working-tree
// root: either the parent of a trailing .git segment, or the path
// truncated at the /.git/worktrees/ segment.
func deriveWorkTreeRoot(gitDir string) (string, bool) {
	n := pathutil.Normalize(gitDir)
	if pathutil.Basename(n) == ".git" {
		return filepath.Dir(filepath.Clean(gitDir)), true
	}
	if i := strings.Index(n, worktreesSegment); i > 0 {
		return filepath.Clean(gitDir[:i]), true
	}
	return "", false
}

func firstNonBlankLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
