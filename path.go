package gourl

import (
	stdpath "path"
	"strings"
)

// Path is a container for the path component of a URL, stored in its escaped
// (wire) form. Any string is accepted: the path carries no invariant beyond
// what [Path.Abs] establishes.
type Path struct {
	val string
}

// NewPath returns a Path holding the given string.
func NewPath(s string) Path { return Path{val: s} }

// Set replaces the path outright.
func (p *Path) Set(s string) { p.val = s }

// Append joins the current path, right-trimmed of '/', and s, left-trimmed
// of '/', with a single '/'.
func (p *Path) Append(s string) {
	p.val = strings.TrimRight(p.val, "/") + "/" + strings.TrimLeft(s, "/")
}

// Abs removes "." and ".." segments and collapses runs of '/'. A trailing
// '/' present in the input is preserved; one introduced by the reduction is
// stripped. An empty path stays empty, an absolute path stays absolute.
func (p *Path) Abs() {
	if p.val == "" {
		return
	}
	trailing := strings.HasSuffix(p.val, "/")
	cleaned := stdpath.Clean(p.val)
	if cleaned == "." {
		cleaned = ""
	}
	if trailing && cleaned != "" && cleaned != "/" {
		cleaned += "/"
	}
	p.val = cleaned
}

// String returns the path string.
func (p Path) String() string { return p.val }

// IsZero checks whether the path is empty.
func (p Path) IsZero() bool { return p.val == "" }
