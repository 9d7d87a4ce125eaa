package identity

import (
	"context"
	"errors"
	"testing"
)

// fakeRoots maps folder paths to repository roots without touching a
// filesystem.
type fakeRoots struct {
	roots map[string]string
	errs  map[string]error
}

func (f *fakeRoots) Root(_ context.Context, dir string) (string, bool, error) {
	if err, ok := f.errs[dir]; ok {
		return "", false, err
	}
	if root, ok := f.roots[dir]; ok {
		return root, true, nil
	}
	return "", false, nil
}

func testResolver(roots RootResolver) *Resolver {
	return &Resolver{
		Roots: roots,
		Home:  func() (string, error) { return "/home/user", nil },
	}
}

func localFolder(path, name string) Folder {
	return Folder{URI: URI{FsPath: path, Scheme: "file"}, Name: name}
}

func remoteFolder(path, name, authority string) Folder {
	return Folder{
		URI:  URI{FsPath: path, Scheme: "vscode-remote", Authority: authority},
		Name: name,
	}
}

func mustResolve(t *testing.T, r *Resolver, cfg Config, folders []Folder, wf *URI) string {
	t.Helper()
	id, ok := r.Resolve(context.Background(), cfg, folders, wf)
	if !ok {
		t.Fatal("Resolve returned absent")
	}
	return id
}

func TestResolveEmptyFolders(t *testing.T) {
	r := testResolver(nil)
	if id, ok := r.Resolve(context.Background(), Config{}, nil, nil); ok {
		t.Errorf("Resolve(no folders) = %q, want absent", id)
	}
}

func TestResolveSingleFolderSources(t *testing.T) {
	r := testResolver(nil)
	folder := localFolder("/home/user/dev/app", "My App")

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"name", Config{Source: SourceName}, "My App"},
		{"absolute", Config{Source: SourcePathAbsolute}, "/home/user/dev/app"},
		{"relative to home", Config{Source: SourcePathRelativeToHome}, "dev/app"},
		{"relative to custom", Config{Source: SourcePathRelativeToCustom, CustomBasePath: "/home/user/dev"}, "app"},
		{"custom base is the folder", Config{Source: SourcePathRelativeToCustom, CustomBasePath: "/home/user/dev/app"}, "."},
		{"empty custom base falls back", Config{Source: SourcePathRelativeToCustom}, "/home/user/dev/app"},
		{"unknown source degrades to name", Config{Source: Source("bogus")}, "My App"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustResolve(t, r, tt.cfg, []Folder{folder}, nil); got != tt.want {
				t.Errorf("identifier = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutsideHomeFallsBackToAbsolute(t *testing.T) {
	r := testResolver(nil)
	cfg := Config{Source: SourcePathRelativeToHome}
	got := mustResolve(t, r, cfg, []Folder{localFolder("/srv/deploys/app", "app")}, nil)
	if got != "/srv/deploys/app" {
		t.Errorf("identifier = %q, want absolute fallback", got)
	}
}

func TestResolveHomeUnavailableFallsBackToAbsolute(t *testing.T) {
	r := &Resolver{Home: func() (string, error) { return "", errors.New("no home") }}
	cfg := Config{Source: SourcePathRelativeToHome}
	got := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/dev/app", "app")}, nil)
	if got != "/home/user/dev/app" {
		t.Errorf("identifier = %q, want absolute fallback", got)
	}
}

func TestResolveCustomBaseTildeExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/user")
	r := testResolver(nil)
	cfg := Config{Source: SourcePathRelativeToCustom, CustomBasePath: "~/dev"}
	got := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/dev/app", "app")}, nil)
	if got != "app" {
		t.Errorf("identifier = %q, want %q", got, "app")
	}
}

func TestResolveRemoteHome(t *testing.T) {
	folder := remoteFolder("/home/alice/work/svc", "svc", "ssh-remote+box")

	t.Run("configured remote home wins", func(t *testing.T) {
		r := testResolver(nil)
		cfg := Config{Source: SourcePathRelativeToHome, RemoteHomeDirectory: "/home/alice/work"}
		if got := mustResolve(t, r, cfg, []Folder{folder}, nil); got != "svc" {
			t.Errorf("identifier = %q, want %q", got, "svc")
		}
	})

	t.Run("inferred remote home", func(t *testing.T) {
		r := testResolver(nil)
		cfg := Config{Source: SourcePathRelativeToHome}
		if got := mustResolve(t, r, cfg, []Folder{folder}, nil); got != "work/svc" {
			t.Errorf("identifier = %q, want %q", got, "work/svc")
		}
	})

	t.Run("uninferable remote home fails closed", func(t *testing.T) {
		r := testResolver(nil)
		cfg := Config{Source: SourcePathRelativeToHome}
		f := remoteFolder("/srv/app", "app", "ssh-remote+box")
		if got := mustResolve(t, r, cfg, []Folder{f}, nil); got != "/srv/app" {
			t.Errorf("identifier = %q, want absolute fallback", got)
		}
	})
}

func TestResolveRemoteAuthorityPrefix(t *testing.T) {
	remote := remoteFolder("/home/user/project", "project", "ssh-remote+host")
	local := localFolder("/home/user/project", "project")

	tests := []struct {
		name    string
		cfg     Config
		folders []Folder
		want    string
	}{
		{
			"prefix applied",
			Config{Source: SourcePathAbsolute, IncludeRemoteAuthority: true},
			[]Folder{remote},
			"ssh-remote+host:/home/user/project",
		},
		{
			"prefix disabled",
			Config{Source: SourcePathAbsolute},
			[]Folder{remote},
			"/home/user/project",
		},
		{
			"local folder never prefixed",
			Config{Source: SourcePathAbsolute, IncludeRemoteAuthority: true},
			[]Folder{local},
			"/home/user/project",
		},
		{
			"name source never prefixed",
			Config{Source: SourceName, IncludeRemoteAuthority: true},
			[]Folder{remote},
			"project",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testResolver(nil)
			if got := mustResolve(t, r, tt.cfg, tt.folders, nil); got != tt.want {
				t.Errorf("identifier = %q, want %q", got, tt.want)
			}
		})
	}

	// Disabled remote matches the local-folder identifier exactly.
	r := testResolver(nil)
	cfg := Config{Source: SourcePathAbsolute}
	if a, b := mustResolve(t, r, cfg, []Folder{remote}, nil), mustResolve(t, r, cfg, []Folder{local}, nil); a != b {
		t.Errorf("remote %q != local %q with prefixing disabled", a, b)
	}
}

func TestResolveMultiRootFirstFolder(t *testing.T) {
	r := testResolver(nil)
	cfg := Config{Source: SourcePathAbsolute, MultiRootSource: MultiRootFirstFolder}
	folders := []Folder{
		localFolder("/home/user/b", "b"),
		localFolder("/home/user/a", "a"),
	}
	wf := &URI{FsPath: "/home/user/all.code-workspace", Scheme: "file"}
	if got := mustResolve(t, r, cfg, folders, wf); got != "/home/user/b" {
		t.Errorf("identifier = %q, want first folder only", got)
	}
}

func TestResolveMultiRootAllFoldersSorted(t *testing.T) {
	r := testResolver(nil)
	cfg := Config{Source: SourcePathAbsolute, MultiRootSource: MultiRootAllFolders}
	folders := []Folder{
		localFolder("/home/user/zeta", "zeta"),
		localFolder("/home/user/alpha", "alpha"),
	}
	want := "/home/user/alpha\n/home/user/zeta"
	if got := mustResolve(t, r, cfg, folders, nil); got != want {
		t.Errorf("identifier = %q, want %q", got, want)
	}
}

func TestResolveMultiRootWorkspaceFile(t *testing.T) {
	r := testResolver(nil)
	cfg := Config{Source: SourcePathAbsolute, MultiRootSource: MultiRootWorkspaceFile}
	folders := []Folder{
		localFolder("/home/user/a", "a"),
		localFolder("/home/user/b", "b"),
	}

	wf := &URI{FsPath: "/home/user/proj.code-workspace", Scheme: "file"}
	if got := mustResolve(t, r, cfg, folders, wf); got != "/home/user/proj.code-workspace" {
		t.Errorf("identifier = %q, want workspace file path", got)
	}

	// Name source uses the file's basename.
	nameCfg := cfg
	nameCfg.Source = SourceName
	if got := mustResolve(t, r, nameCfg, folders, wf); got != "proj.code-workspace" {
		t.Errorf("identifier = %q, want file basename", got)
	}

	// Without a file the strategy falls back to allFolders.
	want := "/home/user/a\n/home/user/b"
	if got := mustResolve(t, r, cfg, folders, nil); got != want {
		t.Errorf("identifier = %q, want allFolders fallback %q", got, want)
	}
}

func TestResolveRemoteWorkspaceFileAuthority(t *testing.T) {
	r := testResolver(nil)
	cfg := Config{
		Source:                 SourcePathAbsolute,
		MultiRootSource:        MultiRootWorkspaceFile,
		IncludeRemoteAuthority: true,
	}
	folders := []Folder{
		remoteFolder("/home/u/a", "a", "ssh-remote+folderhost"),
		remoteFolder("/home/u/b", "b", "ssh-remote+folderhost"),
	}
	wf := &URI{Path: "/home/u/proj.code-workspace", Scheme: "vscode-remote", Authority: "ssh-remote+filehost"}
	want := "ssh-remote+filehost:/home/u/proj.code-workspace"
	if got := mustResolve(t, r, cfg, folders, wf); got != want {
		t.Errorf("identifier = %q, want %q", got, want)
	}
}

func TestResolveGitRootMode(t *testing.T) {
	roots := &fakeRoots{roots: map[string]string{
		"/home/user/worktrees/feature-x": "/home/user/dev/repo",
		"/home/user/worktrees/feature-y": "/home/user/dev/repo",
		"/home/user/dev/repo":            "/home/user/dev/repo",
	}}
	r := testResolver(roots)

	t.Run("worktrees share an identifier", func(t *testing.T) {
		cfg := Config{Source: SourcePathAbsolute, UseGitRepoRoot: true}
		x := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/worktrees/feature-x", "feature-x")}, nil)
		y := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/worktrees/feature-y", "feature-y")}, nil)
		if x != y {
			t.Errorf("worktree identifiers differ: %q vs %q", x, y)
		}
		if x != "/home/user/dev/repo" {
			t.Errorf("identifier = %q, want repo root", x)
		}
	})

	t.Run("worktrees differ without git root mode", func(t *testing.T) {
		cfg := Config{Source: SourcePathAbsolute}
		x := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/worktrees/feature-x", "feature-x")}, nil)
		y := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/worktrees/feature-y", "feature-y")}, nil)
		if x == y {
			t.Errorf("identifiers should differ, both %q", x)
		}
	})

	t.Run("name mode uses root basename", func(t *testing.T) {
		cfg := Config{Source: SourceName, UseGitRepoRoot: true}
		got := mustResolve(t, r, cfg, []Folder{localFolder("/home/user/worktrees/feature-x", "feature-x")}, nil)
		if got != "repo" {
			t.Errorf("identifier = %q, want %q", got, "repo")
		}
	})

	t.Run("resolver failure falls back to folder path", func(t *testing.T) {
		failing := &fakeRoots{errs: map[string]error{
			"/home/user/worktrees/feature-x": errors.New("disk on fire"),
		}}
		cfg := Config{Source: SourcePathAbsolute, UseGitRepoRoot: true}
		got := mustResolve(t, testResolver(failing), cfg, []Folder{localFolder("/home/user/worktrees/feature-x", "feature-x")}, nil)
		if got != "/home/user/worktrees/feature-x" {
			t.Errorf("identifier = %q, want folder path fallback", got)
		}
	})

	t.Run("allFolders dedupes shared roots", func(t *testing.T) {
		cfg := Config{
			Source:          SourcePathAbsolute,
			MultiRootSource: MultiRootAllFolders,
			UseGitRepoRoot:  true,
		}
		folders := []Folder{
			localFolder("/home/user/worktrees/feature-x", "feature-x"),
			localFolder("/home/user/worktrees/feature-y", "feature-y"),
			localFolder("/home/user/other", "other"),
		}
		want := "/home/user/dev/repo\n/home/user/other"
		if got := mustResolve(t, r, cfg, folders, nil); got != want {
			t.Errorf("identifier = %q, want %q", got, want)
		}
	})
}

func TestResolveIdempotent(t *testing.T) {
	roots := &fakeRoots{roots: map[string]string{
		"/home/user/dev/app": "/home/user/dev/app",
	}}
	r := testResolver(roots)
	cfg := Config{Source: SourcePathRelativeToHome, UseGitRepoRoot: true}
	folders := []Folder{localFolder("/home/user/dev/app", "app")}

	first := mustResolve(t, r, cfg, folders, nil)
	second := mustResolve(t, r, cfg, folders, nil)
	if first != second {
		t.Errorf("resolution not idempotent: %q vs %q", first, second)
	}
}
