package pathutil

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{``, ``},
		{`/home/user/project`, `/home/user/project`},
		{`C:\Users\user\project`, `C:/Users/user/project`},
		{`mixed/path\with\both`, `mixed/path/with/both`},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	// idempotent
	once := Normalize(`a\b\c`)
	if twice := Normalize(once); twice != once {
		t.Errorf("Normalize not idempotent: %q -> %q", once, twice)
	}
}

func TestExpandTilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"~/projects/app", "/home/tester/projects/app"},
		{"$HOME/projects/app", "/home/tester/projects/app"},
		{"~", "/home/tester"},
		{"$HOME", "/home/tester"},
		{"/opt/~/weird", "/opt/~/weird"},
		{"/no/token/here", "/no/token/here"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandTilde(tt.in); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		base   string
		target string
		want   string
		ok     bool
	}{
		{"/home/user/projects", "/home/user/projects", ".", true},
		{"/home/user/projects", "/home/user/projects/app", "app", true},
		{"/home/user/projects", "/home/user/projects/app/sub", "app/sub", true},
		{"/home/user/projects", "/var/log", "", false},
		// prefix-sharing trap: not a true subdirectory
		{"/home/user", "/home/user-admin/projects", "", false},
		{`C:\Users\u\dev`, `C:\Users\u\dev\app`, "app", true},
		{"/base/", "/base/sub/", "sub", true},
		{"", "/anything", "", false},
	}
	for _, tt := range tests {
		got, ok := RelativeTo(tt.base, tt.target)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RelativeTo(%q, %q) = (%q, %v), want (%q, %v)",
				tt.base, tt.target, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/user/project", "project"},
		{"/home/user/project/", "project"},
		{`C:\repos\thing`, "thing"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Basename(tt.in); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInferRemoteHome(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"/home/alice/dev/app", "/home/alice", true},
		{"/Users/bob/dev/app", "/Users/bob", true},
		{"/root/scripts", "/root", true},
		{"/root", "/root", true},
		{"/srv/www/site", "", false},
		{"/homestead/app", "", false},
		{"relative/path", "", false},
	}
	for _, tt := range tests {
		got, ok := InferRemoteHome(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("InferRemoteHome(%q) = (%q, %v), want (%q, %v)",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
