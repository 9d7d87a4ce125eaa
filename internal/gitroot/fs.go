package gitroot

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// EntryType classifies a filesystem entry.
type EntryType int

const (
	// EntryFile is a regular file.
	EntryFile EntryType = iota
	// EntryDir is a directory.
	EntryDir
)

// ErrNotExist reports that a path does not exist. Implementations must
// return it (possibly wrapped) for missing entries so the resolver can
// tell "marker absent" apart from real I/O failures.
var ErrNotExist = errors.New("no such file or directory")

// FS is the filesystem surface the resolver needs. Implementations
// outside tests wrap the host filesystem; tests supply fakes.
type FS interface {
	Stat(ctx context.Context, path string) (EntryType, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// OSFS implements FS over the local filesystem.
type OSFS struct{}

// Stat reports whether path is a file or a directory.
func (OSFS) Stat(_ context.Context, path string) (EntryType, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, mapNotExist(err)
	}
	if info.IsDir() {
		return EntryDir, nil
	}
	return EntryFile, nil
}

// ReadFile returns the contents of path.
func (OSFS) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapNotExist(err)
	}
	return data, nil
}

func mapNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotExist
	}
	return err
}
