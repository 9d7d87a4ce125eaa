package identity

import (
	"context"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jimeh/vscode-glaze-sub003/internal/pathutil"
)

// RootResolver is the piece of gitroot the identifier needs: folder
// path in, canonical working-tree root out.
type RootResolver interface {
	Root(ctx context.Context, dir string) (root string, ok bool, err error)
}

// Resolver turns a workspace description into its identifier string.
// Resolution is referentially transparent: the same config, folders,
// workspace file and git-root answers always yield the same string.
type Resolver struct {
	// Roots resolves folders to git repository roots. May be nil, in
	// which case UseGitRepoRoot is a no-op.
	Roots RootResolver

	// Home returns the local home directory. Defaults to
	// os.UserHomeDir; injectable for tests.
	Home func() (string, error)
}

// NewResolver returns a Resolver using the given git-root resolver.
func NewResolver(roots RootResolver) *Resolver {
	return &Resolver{Roots: roots, Home: os.UserHomeDir}
}

// folderPath is a folder with its effective path source decided:
// either the folder's own path or its resolved git root.
type folderPath struct {
	folder   Folder
	path     string
	fromRoot bool
}

// Resolve produces the canonical identifier for the workspace. ok is
// false only when folders is empty. Failures below this level (git
// resolution errors, missing home, bad base paths) degrade to less
// specific identifiers, never to an error.
func (r *Resolver) Resolve(ctx context.Context, cfg Config, folders []Folder, workspaceFile *URI) (string, bool) {
	if len(folders) == 0 {
		return "", false
	}

	source := cfg.normalizedSource()
	paths := r.folderPaths(ctx, cfg, folders)

	var id string
	usedWorkspaceFile := false
	if len(folders) == 1 {
		id = r.formatFolder(cfg, source, paths[0])
	} else {
		switch cfg.normalizedMultiRoot() {
		case MultiRootWorkspaceFile:
			if workspaceFile != nil && workspaceFile.pathValue() != "" {
				id = r.formatWorkspaceFile(cfg, source, *workspaceFile)
				usedWorkspaceFile = true
			} else {
				id = r.formatAllFolders(cfg, source, paths)
			}
		case MultiRootAllFolders:
			id = r.formatAllFolders(cfg, source, paths)
		default:
			id = r.formatFolder(cfg, source, paths[0])
		}
	}

	if prefix := remoteAuthorityPrefix(cfg, source, folders, workspaceFile, usedWorkspaceFile); prefix != "" {
		id = prefix + id
	}
	return id, true
}

// folderPaths decides each folder's path source, resolving git roots
// concurrently across folders when enabled. Results keep folder order.
func (r *Resolver) folderPaths(ctx context.Context, cfg Config, folders []Folder) []folderPath {
	paths := make([]folderPath, len(folders))
	if !cfg.UseGitRepoRoot || r.Roots == nil {
		for i, f := range folders {
			paths[i] = folderPath{folder: f, path: f.URI.pathValue()}
		}
		return paths
	}

	var wg sync.WaitGroup
	for i, f := range folders {
		wg.Add(1)
		go func(i int, f Folder) {
			defer wg.Done()
			// Any resolver failure falls back to the folder's own
			// path; a missing repository is not an error.
			root, ok, err := r.Roots.Root(ctx, f.URI.pathValue())
			if err != nil || !ok {
				paths[i] = folderPath{folder: f, path: f.URI.pathValue()}
				return
			}
			paths[i] = folderPath{folder: f, path: root, fromRoot: true}
		}(i, f)
	}
	wg.Wait()
	return paths
}

// formatFolder renders one folder according to the identifier source.
func (r *Resolver) formatFolder(cfg Config, source Source, fp folderPath) string {
	if source == SourceName {
		// Git-root mode overrides the display-name shortcut: all
		// worktrees of one repository share the root's basename.
		if fp.fromRoot {
			return pathutil.Basename(fp.path)
		}
		if fp.folder.Name != "" {
			return fp.folder.Name
		}
		return pathutil.Basename(fp.path)
	}
	return r.formatPath(cfg, source, fp.path, fp.folder.URI)
}

// formatWorkspaceFile renders the workspace file location with the
// same per-source rules; SourceName means the file's basename.
func (r *Resolver) formatWorkspaceFile(cfg Config, source Source, file URI) string {
	if source == SourceName {
		return pathutil.Basename(file.pathValue())
	}
	return r.formatPath(cfg, source, file.pathValue(), file)
}

// formatAllFolders renders every folder, sorts lexicographically and
// joins with newlines. Under git-root mode, folders that resolved to
// the same root collapse into one line.
func (r *Resolver) formatAllFolders(cfg Config, source Source, paths []folderPath) string {
	parts := make([]string, 0, len(paths))
	seenRoots := make(map[string]bool)
	for _, fp := range paths {
		if fp.fromRoot {
			if seenRoots[fp.path] {
				continue
			}
			seenRoots[fp.path] = true
		}
		parts = append(parts, r.formatFolder(cfg, source, fp))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}

// formatPath renders an absolute or relative path per source.
func (r *Resolver) formatPath(cfg Config, source Source, path string, uri URI) string {
	abs := pathutil.Normalize(path)
	switch source {
	case SourcePathRelativeToHome:
		if home, ok := r.homeFor(cfg, uri, path); ok {
			if rel, ok := pathutil.RelativeTo(home, path); ok {
				return rel
			}
		}
		return abs
	case SourcePathRelativeToCustom:
		base := pathutil.ExpandTilde(cfg.CustomBasePath)
		if base != "" {
			if rel, ok := pathutil.RelativeTo(base, path); ok {
				return rel
			}
		}
		return abs
	default: // SourcePathAbsolute
		return abs
	}
}

// homeFor determines the home directory for relative-to-home
// formatting. Local folders use the host home; remote folders prefer
// the configured remote home, then layout inference, and otherwise
// fail closed so the caller uses the absolute path.
func (r *Resolver) homeFor(cfg Config, uri URI, path string) (string, bool) {
	if !uri.Remote() {
		home := r.Home
		if home == nil {
			home = os.UserHomeDir
		}
		dir, err := home()
		if err != nil || dir == "" {
			return "", false
		}
		return dir, true
	}
	if cfg.RemoteHomeDirectory != "" {
		return cfg.RemoteHomeDirectory, true
	}
	return pathutil.InferRemoteHome(path)
}

// remoteAuthorityPrefix computes the "<authority>:" prefix. It applies
// only to path-based sources with the option enabled, taken from the
// workspace file when that was the formatting basis, otherwise from
// the first remote folder. Purely local workspaces get no prefix.
func remoteAuthorityPrefix(cfg Config, source Source, folders []Folder, workspaceFile *URI, usedWorkspaceFile bool) string {
	if !cfg.IncludeRemoteAuthority || source == SourceName {
		return ""
	}
	if usedWorkspaceFile && workspaceFile != nil && workspaceFile.Remote() {
		return workspaceFile.Authority + ":"
	}
	for _, f := range folders {
		if f.URI.Remote() {
			return f.URI.Authority + ":"
		}
	}
	return ""
}
