package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jimeh/vscode-glaze-sub003/internal/config"
	"github.com/jimeh/vscode-glaze-sub003/internal/gitroot"
	"github.com/jimeh/vscode-glaze-sub003/internal/hue"
	"github.com/jimeh/vscode-glaze-sub003/internal/identity"
)

// loadConfig reads the effective configuration, honoring --config.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("locating config: %w", err)
		}
	}
	return config.Load(path)
}

// effectiveSeed resolves the hue seed for cfg, minting an install ID
// on first use. A seedOverride from a flag wins over everything.
func effectiveSeed(cfg config.Config, seedOverride uint64) (uint64, error) {
	if seedOverride != 0 {
		return seedOverride, nil
	}
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return 0, fmt.Errorf("locating state: %w", err)
		}
	}
	st, err := config.LoadState(filepath.Dir(path))
	if err != nil {
		return 0, err
	}
	return cfg.EffectiveSeed(st), nil
}

// foldersFromArgs maps positional folder arguments to workspace
// folders. No arguments means the current directory.
func foldersFromArgs(args []string) ([]identity.Folder, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	folders := make([]identity.Folder, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", arg, err)
		}
		folders = append(folders, identity.Folder{
			URI: identity.URI{FsPath: abs, Scheme: "file"},
		})
	}
	return folders, nil
}

// workspaceFileURI turns the --workspace-file flag into a URI, or nil
// when unset.
func workspaceFileURI(path string) (*identity.URI, error) {
	if path == "" {
		return nil, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace file %q: %w", path, err)
	}
	return &identity.URI{FsPath: abs, Scheme: "file"}, nil
}

// resolveIdentity computes the workspace identifier and its base hue
// for the given folders under cfg.
func resolveIdentity(ctx context.Context, cfg config.Config, folders []identity.Folder, workspaceFile *identity.URI, seedOverride uint64) (string, float64, error) {
	resolver := identity.NewResolver(gitroot.NewResolver(nil, nil))
	identifier, ok := resolver.Resolve(ctx, cfg.IdentityConfig(), folders, workspaceFile)
	if !ok {
		return "", 0, fmt.Errorf("no workspace folders to identify")
	}
	seed, err := effectiveSeed(cfg, seedOverride)
	if err != nil {
		return "", 0, err
	}
	return identifier, hue.BaseHue(identifier, seed), nil
}
