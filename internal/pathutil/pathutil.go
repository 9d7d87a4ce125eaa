// Package pathutil provides the path manipulation primitives used by
// workspace identifier resolution. All operations are purely syntactic:
// no symlinks are resolved and nothing touches the filesystem, so the
// same inputs always produce the same outputs regardless of what is on
// disk.
package pathutil

import (
	"os"
	"regexp"
	"strings"
)

// Normalize converts all backslashes in p to forward slashes.
// Idempotent; an empty path stays empty.
func Normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// ExpandTilde replaces a leading "~" or "$HOME" token in p with the
// current user's home directory. A tilde anywhere else in the path is
// left alone. Paths without a leading token are returned unchanged,
// as is the input when the home directory cannot be determined.
func ExpandTilde(p string) string {
	var rest string
	switch {
	case p == "~" || p == "$HOME":
		rest = ""
	case strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\"):
		rest = p[1:]
	case strings.HasPrefix(p, "$HOME/") || strings.HasPrefix(p, "$HOME\\"):
		rest = p[len("$HOME"):]
	default:
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	return home + rest
}

// RelativeTo returns target's path relative to base using prefix
// containment on normalized paths. It returns "." when target equals
// base, and ok=false when target is not contained in base - including
// the case where target merely shares a string prefix with base
// without being a true subdirectory ("/home/user" vs
// "/home/user-admin").
func RelativeTo(base, target string) (string, bool) {
	b := strings.TrimRight(Normalize(base), "/")
	t := strings.TrimRight(Normalize(target), "/")
	if b == "" {
		return "", false
	}
	if t == b {
		return ".", true
	}
	if !strings.HasPrefix(t, b+"/") {
		return "", false
	}
	return t[len(b)+1:], true
}

// Basename returns the final segment of a normalized path. Trailing
// slashes are ignored; the root path yields itself.
func Basename(p string) string {
	n := strings.TrimRight(Normalize(p), "/")
	if n == "" {
		return Normalize(p)
	}
	if i := strings.LastIndex(n, "/"); i >= 0 {
		return n[i+1:]
	}
	return n
}

// remoteHomeRE matches the home directory prefix of common Unix
// layouts: /home/<user>, /Users/<user>, and /root.
var remoteHomeRE = regexp.MustCompile(`^(/home/[^/]+|/Users/[^/]+|/root)(/|$)`)

// InferRemoteHome guesses the home directory for a path on a remote
// host where the real home cannot be queried. Returns ok=false when
// the path does not match a recognized layout; callers are expected
// to fall back to the absolute path.
func InferRemoteHome(p string) (string, bool) {
	m := remoteHomeRE.FindStringSubmatch(Normalize(p))
	if m == nil {
		return "", false
	}
	return m[1], true
}
