// Package settings reads and writes the editor's per-workspace
// settings file, managing only the color-customization keys glaze
// owns. Everything else in the file is preserved byte-for-byte at the
// JSON value level. Writes are atomic and serialized across processes
// with a sidecar flock, so two editor windows applying tints at once
// cannot corrupt the file.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
	"github.com/jimeh/vscode-glaze-sub003/internal/util"
)

// customizationsKey is the settings entry holding per-element colors.
const customizationsKey = "workbench.colorCustomizations"

// lockTimeout bounds how long a writer waits for a competing window.
const lockTimeout = 5 * time.Second

// ColorKeys maps chrome elements to their settings-store color keys.
var ColorKeys = map[scheme.Element]string{
	scheme.ElementTitleBar:    "titleBar.activeBackground",
	scheme.ElementActivityBar: "activityBar.background",
	scheme.ElementStatusBar:   "statusBar.background",
}

// Store manages one settings file.
type Store struct {
	path string
}

// NewStore returns a store over the given settings file path. The
// file and its parent directory need not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the underlying settings file path.
func (s *Store) Path() string {
	return s.path
}

// Colors returns the glaze-managed colors currently in the file,
// keyed by element. A missing file yields an empty map.
func (s *Store) Colors() (map[scheme.Element]string, error) {
	root, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make(map[scheme.Element]string)
	custom, ok := root[customizationsKey].(map[string]any)
	if !ok {
		return out, nil
	}
	for element, key := range ColorKeys {
		if hex, ok := custom[key].(string); ok {
			out[element] = hex
		}
	}
	return out, nil
}

// Apply writes the given element colors into the settings file,
// creating it (and its directory) if needed. Keys glaze does not own
// are left untouched.
func (s *Store) Apply(colors map[scheme.Element]string) error {
	return s.update(func(custom map[string]any) {
		for element, hex := range colors {
			if key, ok := ColorKeys[element]; ok {
				custom[key] = hex
			}
		}
	})
}

// Clear removes every glaze-managed color key. The customizations
// block itself is dropped when it ends up empty; a missing file is
// fine.
func (s *Store) Clear() error {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return s.update(func(custom map[string]any) {
		for _, key := range ColorKeys {
			delete(custom, key)
		}
	})
}

// update applies mutate to the customizations block under the file
// lock and writes the result atomically.
func (s *Store) update(mutate func(custom map[string]any)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	lock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer lock.Unlock() //nolint:errcheck

	root, err := s.read()
	if err != nil {
		return err
	}

	custom, ok := root[customizationsKey].(map[string]any)
	if !ok {
		custom = make(map[string]any)
	}
	mutate(custom)
	if len(custom) == 0 {
		delete(root, customizationsKey)
	} else {
		root[customizationsKey] = custom
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return util.AtomicWriteFile(s.path, append(data, '\n'), 0644)
}

// read parses the settings file into a generic JSON object. A missing
// file is an empty object; malformed JSON is an error, since blindly
// rewriting it would destroy the user's settings.
func (s *Store) read() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if root == nil {
		root = map[string]any{}
	}
	return root, nil
}

func (s *Store) acquireLock() (*flock.Flock, error) {
	lock := flock.New(s.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquiring settings lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("timeout waiting for settings lock")
	}
	return lock, nil
}
