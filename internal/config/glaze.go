// Package config loads and validates glaze's configuration. Settings
// live in a TOML file under the user config directory, with defaults
// embedded in the binary; a small JSON state file alongside it holds
// the per-install identity that seeds hue derivation. Invalid values
// never abort: each one degrades to its documented default so a typo
// in the config can at worst change colors, not break the tool.
package config

import (
	_ "embed"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jimeh/vscode-glaze-sub003/internal/identity"
	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
)

//go:embed default.toml
var defaultTOML string

// IdentifierConfig is the TOML shape of identity.Config.
type IdentifierConfig struct {
	Source                 string `toml:"source"`
	CustomBasePath         string `toml:"custom_base_path"`
	MultiRootSource        string `toml:"multi_root_source"`
	IncludeRemoteAuthority bool   `toml:"include_remote_authority"`
	RemoteHomeDirectory    string `toml:"remote_home_directory"`
	UseGitRepoRoot         bool   `toml:"use_git_repo_root"`
}

// Config is the full glaze configuration.
type Config struct {
	// Scheme selects the tint scheme. Invalid names degrade to pastel.
	Scheme string `toml:"scheme"`

	// ThemeKind is the host theme family: dark, light, highContrast,
	// or highContrastLight (an alias of highContrast).
	ThemeKind string `toml:"theme_kind"`

	// Seed perturbs hue derivation; 0 means "use the install seed"
	// from the state file, so every machine gets its own palette
	// rotation unless the user pins one.
	Seed uint64 `toml:"seed"`

	Identifier IdentifierConfig `toml:"identifier"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var c Config
	// The embedded defaults are covered by tests; a decode failure
	// here is a build defect.
	if _, err := toml.Decode(defaultTOML, &c); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return c
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "glaze", "config.toml"), nil
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file yields the defaults; values in the
// file are layered over them and then normalized.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	c := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c.normalize()
		return c, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if _, err := toml.Decode(string(data), &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

// normalize applies defensive defaults to enum-valued fields.
func (c *Config) normalize() {
	if !scheme.Valid(c.Scheme) {
		c.Scheme = "pastel"
	}
	switch c.ThemeKind {
	case "dark", "light", "highContrast":
	case "highContrastLight":
		c.ThemeKind = "highContrast"
	default:
		c.ThemeKind = "dark"
	}
	switch identity.Source(c.Identifier.Source) {
	case identity.SourceName, identity.SourcePathAbsolute,
		identity.SourcePathRelativeToHome, identity.SourcePathRelativeToCustom:
	default:
		c.Identifier.Source = string(identity.SourceName)
	}
	switch identity.MultiRootSource(c.Identifier.MultiRootSource) {
	case identity.MultiRootFirstFolder, identity.MultiRootAllFolders,
		identity.MultiRootWorkspaceFile:
	default:
		c.Identifier.MultiRootSource = string(identity.MultiRootFirstFolder)
	}
}

// IdentityConfig converts the TOML shape into the resolver's config.
func (c Config) IdentityConfig() identity.Config {
	return identity.Config{
		Source:                 identity.Source(c.Identifier.Source),
		CustomBasePath:         c.Identifier.CustomBasePath,
		MultiRootSource:        identity.MultiRootSource(c.Identifier.MultiRootSource),
		IncludeRemoteAuthority: c.Identifier.IncludeRemoteAuthority,
		RemoteHomeDirectory:    c.Identifier.RemoteHomeDirectory,
		UseGitRepoRoot:         c.Identifier.UseGitRepoRoot,
	}
}

// Kind returns the theme kind as the scheme package's type.
func (c Config) Kind() scheme.ThemeKind {
	return scheme.ThemeKind(c.ThemeKind)
}

// EffectiveSeed resolves the hue seed: an explicit config seed wins,
// otherwise the install identity is hashed into one.
func (c Config) EffectiveSeed(st State) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	if st.InstallID == "" {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(st.InstallID))
	return h.Sum64()
}
