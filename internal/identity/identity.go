// Package identity resolves the canonical identifier string for a
// workspace: the stable name that all windows onto the same project
// (worktrees, remotes, multi-root setups) share, and from which the
// window tint's base hue is derived.
package identity

// Source selects what part of a folder feeds the identifier.
type Source string

const (
	// SourceName uses the folder's display name.
	SourceName Source = "name"
	// SourcePathAbsolute uses the folder's full normalized path.
	SourcePathAbsolute Source = "pathAbsolute"
	// SourcePathRelativeToHome uses the path relative to the home
	// directory, falling back to the absolute path outside home.
	SourcePathRelativeToHome Source = "pathRelativeToHome"
	// SourcePathRelativeToCustom uses the path relative to a
	// configured base, falling back to the absolute path outside it.
	SourcePathRelativeToCustom Source = "pathRelativeToCustom"
)

// MultiRootSource selects the strategy for multi-root workspaces.
type MultiRootSource string

const (
	// MultiRootFirstFolder formats only the first folder.
	MultiRootFirstFolder MultiRootSource = "firstFolder"
	// MultiRootAllFolders formats every folder, sorted and joined.
	MultiRootAllFolders MultiRootSource = "allFolders"
	// MultiRootWorkspaceFile formats the workspace file itself,
	// falling back to allFolders when no file is available.
	MultiRootWorkspaceFile MultiRootSource = "workspaceFile"
)

// URI is a read-only snapshot of a host folder or workspace-file
// location. A non-empty Authority together with a non-"file" Scheme
// marks a remote location.
type URI struct {
	FsPath    string
	Path      string
	Scheme    string
	Authority string
}

// Remote reports whether the URI points at a remote host.
func (u URI) Remote() bool {
	return u.Authority != "" && u.Scheme != "" && u.Scheme != "file"
}

// pathValue returns the best available path representation.
func (u URI) pathValue() string {
	if u.FsPath != "" {
		return u.FsPath
	}
	return u.Path
}

// Folder is one workspace folder as reported by the host.
type Folder struct {
	URI  URI
	Name string
}

// Config controls identifier resolution. It is immutable per call;
// unrecognized enum values degrade to their defensive defaults
// (SourceName, MultiRootFirstFolder) rather than erroring.
type Config struct {
	Source                 Source
	CustomBasePath         string
	MultiRootSource        MultiRootSource
	IncludeRemoteAuthority bool
	RemoteHomeDirectory    string
	UseGitRepoRoot         bool
}

// normalizedSource maps unknown values to SourceName.
func (c Config) normalizedSource() Source {
	switch c.Source {
	case SourceName, SourcePathAbsolute, SourcePathRelativeToHome, SourcePathRelativeToCustom:
		return c.Source
	default:
		return SourceName
	}
}

// normalizedMultiRoot maps unknown values to MultiRootFirstFolder.
func (c Config) normalizedMultiRoot() MultiRootSource {
	switch c.MultiRootSource {
	case MultiRootFirstFolder, MultiRootAllFolders, MultiRootWorkspaceFile:
		return c.MultiRootSource
	default:
		return MultiRootFirstFolder
	}
}
