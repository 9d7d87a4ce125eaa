package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jimeh/vscode-glaze-sub003/internal/util"
)

// State is the small per-install record kept next to the config file.
type State struct {
	// InstallID is a random UUID minted on first run. Hashing it
	// gives each install its own default hue seed.
	InstallID string `json:"install_id"`
}

// stateFile is the file name inside the config directory.
const stateFile = "state.json"

// LoadState reads the state file in dir, minting and persisting a new
// install ID when the file is missing or unreadable as JSON.
func LoadState(dir string) (State, error) {
	path := filepath.Join(dir, stateFile)

	data, err := os.ReadFile(path)
	if err == nil {
		var st State
		if jerr := json.Unmarshal(data, &st); jerr == nil && st.InstallID != "" {
			return st, nil
		}
		// Corrupt state: fall through and mint a fresh identity.
	} else if !os.IsNotExist(err) {
		return State{}, fmt.Errorf("reading state: %w", err)
	}

	st := State{InstallID: uuid.NewString()}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return State{}, fmt.Errorf("creating state directory: %w", err)
	}
	if err := util.AtomicWriteJSON(path, st); err != nil {
		return State{}, fmt.Errorf("writing state: %w", err)
	}
	return st, nil
}
