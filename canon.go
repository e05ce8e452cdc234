package gourl

import (
	"github.com/ghettovoice/gourl/internal/util"
)

// Canonical returns a normalized deep copy of the URL suitable for
// comparison: parameters sorted, fragment dropped, path absolutized with a
// trailing slash, components escaped and the host converted to its ASCII
// form when possible.
func (u *URL) Canonical() *URL {
	if u == nil {
		return nil
	}
	u2 := u.Clone()
	u2.query.Sort()
	u2.params.Sort()
	u2.fragment = ""
	u2.path.Append("/")
	u2.path.Abs()
	u2.Escape()
	if !u2.host.IsZero() {
		// Best effort, a host that cannot be transcoded compares as-is.
		u2.host.Punycode() //nolint:errcheck
	}
	return u2
}

// Equal checks whether the URL is semantically equal to val.
// val can be a *URL, a URL or a raw URL string. Both sides are canonicalized
// before comparison, so query order, default ports, fragments and percent
// encoding variants do not affect the result.
func (u *URL) Equal(val any) bool {
	var u2 *URL
	switch v := val.(type) {
	case *URL:
		u2 = v
	case URL:
		u2 = &v
	case string:
		var err error
		if u2, err = Parse(v); err != nil {
			return false
		}
	default:
		return false
	}
	if u == nil || u2 == nil {
		return u == nil && u2 == nil
	}

	c1, c2 := u.Canonical(), u2.Canonical()
	return c1.user.Equal(c2.user) &&
		util.EqFold(c1.scheme, c2.scheme) &&
		util.EqFold(c1.host.Name(), c2.host.Name()) &&
		c1.port.Equal(c2.port) &&
		c1.path.String() == c2.path.String() &&
		c1.params.Equal(c2.params) &&
		c1.query.Equal(c2.query) &&
		c1.fragment == c2.fragment
}
