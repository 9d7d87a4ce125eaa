package cmd

import (
	"path/filepath"
	"testing"
)

func TestFoldersFromArgs(t *testing.T) {
	folders, err := foldersFromArgs(nil)
	if err != nil {
		t.Fatalf("foldersFromArgs(nil): %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("got %d folders, want 1", len(folders))
	}
	if !filepath.IsAbs(folders[0].URI.FsPath) {
		t.Errorf("default folder %q is not absolute", folders[0].URI.FsPath)
	}
	if folders[0].URI.Scheme != "file" {
		t.Errorf("scheme = %q, want file", folders[0].URI.Scheme)
	}

	folders, err = foldersFromArgs([]string{"/a", "/b"})
	if err != nil {
		t.Fatalf("foldersFromArgs: %v", err)
	}
	if len(folders) != 2 || folders[0].URI.FsPath != "/a" || folders[1].URI.FsPath != "/b" {
		t.Errorf("folders = %+v", folders)
	}
}

func TestWorkspaceFileURI(t *testing.T) {
	uri, err := workspaceFileURI("")
	if err != nil || uri != nil {
		t.Errorf("empty flag = (%v, %v), want (nil, nil)", uri, err)
	}

	uri, err = workspaceFileURI("/ws/proj.code-workspace")
	if err != nil {
		t.Fatalf("workspaceFileURI: %v", err)
	}
	if uri.FsPath != "/ws/proj.code-workspace" || uri.Scheme != "file" {
		t.Errorf("uri = %+v", uri)
	}
}
