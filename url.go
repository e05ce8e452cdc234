package gourl

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/ioutil"
	"github.com/ghettovoice/gourl/internal/util"
)

// URL is a mutable aggregate of typed URL components: scheme, userinfo,
// host, port, path, matrix parameters, query parameters and fragment.
//
// Every mutator changes the URL in place and returns the same *URL, so
// calls can be chained:
//
//	u, _ := gourl.Parse("http://example.com")
//	u.SetPort("8080").AddPath("a/b").SetQuery("x", "1")
//
// Use [URL.Clone] when value semantics are needed. A URL is intended for
// single-owner mutation and is not safe for concurrent use.
type URL struct {
	scheme   string
	user     UserInfo
	host     Host
	port     Port
	path     Path
	params   *Params // matrix params, joined with ';'
	query    *Params // query params, joined with '&'
	fragment string
}

// New builds a URL from explicit component overrides.
func New(opts ...Option) *URL {
	u := &URL{
		params: NewParams(),
		query:  NewParams(),
	}
	for _, opt := range opts {
		opt.apply(u)
	}
	return u
}

// Parse tokenizes raw into URL components and applies the given overrides.
// The path and fragment are kept in their escaped (wire) form; userinfo and
// parameter keys/values are stored decoded. It fails with [ErrMalformedURL]
// when raw cannot be tokenized.
func Parse(raw string, opts ...Option) (*URL, error) {
	pu, err := url.Parse(raw)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedURLErr(err))
	}

	u := &URL{
		scheme:   pu.Scheme,
		host:     NewHost(pu.Hostname()),
		port:     NewPort(pu.Port(), pu.Scheme),
		fragment: pu.EscapedFragment(),
	}
	if pu.User != nil {
		if passwd, ok := pu.User.Password(); ok {
			u.user = UserPassword(pu.User.Username(), passwd)
		} else {
			u.user = User(pu.User.Username())
		}
	}
	path, matrix := splitMatrix(pu.EscapedPath())
	u.path = NewPath(path)
	u.params = ParseParams(matrix, ';')
	u.query = ParseParams(pu.RawQuery, '&')

	for _, opt := range opts {
		opt.apply(u)
	}
	return u, nil
}

// splitMatrix splits the matrix parameters off the last path segment at its
// first ';'.
func splitMatrix(path string) (string, string) {
	i := strings.LastIndexByte(path, '/')
	if j := strings.IndexByte(path[i+1:], ';'); j >= 0 {
		j += i + 1
		return path[:j], path[j+1:]
	}
	return path, ""
}

// Scheme methods
// ----------------------------------------------------------------------------

// Scheme returns the URL scheme.
func (u *URL) Scheme() string { return u.scheme }

// SetScheme replaces the scheme and refreshes the port's scheme context.
func (u *URL) SetScheme(scheme string) *URL {
	u.scheme = scheme
	u.port.setScheme(scheme)
	return u
}

// DelScheme clears the scheme, turning the URL into a protocol-relative one.
func (u *URL) DelScheme() *URL { return u.SetScheme("") }

var secureSchemes = map[string]bool{
	"https": true,
	"ssh":   true,
	"ftps":  true,
}

// IsSecure checks whether the scheme is a secure one (https, ssh or ftps).
func (u *URL) IsSecure() bool { return secureSchemes[util.LCase(u.scheme)] }

// Userinfo methods
// ----------------------------------------------------------------------------

// Username returns the username.
func (u *URL) Username() string { return u.user.Username() }

// Password returns the password, in case it is set, and a bool flag
// indicating whether it is set.
func (u *URL) Password() (string, bool) { return u.user.Password() }

// SetUsername replaces the username, keeping the password.
func (u *URL) SetUsername(username string) *URL {
	if passwd, ok := u.user.Password(); ok {
		u.user = UserPassword(username, passwd)
	} else {
		u.user = User(username)
	}
	return u
}

// SetPassword replaces the password, keeping the username.
func (u *URL) SetPassword(passwd string) *URL {
	u.user = UserPassword(u.user.Username(), passwd)
	return u
}

// DelPassword clears the password, keeping the username.
func (u *URL) DelPassword() *URL {
	u.user = User(u.user.Username())
	return u
}

// DelUserinfo clears both the username and the password.
func (u *URL) DelUserinfo() *URL {
	u.user = UserInfo{}
	return u
}

// Host methods
// ----------------------------------------------------------------------------

// Hostname returns the full hostname.
func (u *URL) Hostname() string { return u.host.Name() }

// SetHost replaces the hostname, trimmed of leading and trailing dots.
func (u *URL) SetHost(host string) *URL {
	u.host.Set(host)
	return u
}

// DelHost clears the hostname, turning the URL into a relative one.
func (u *URL) DelHost() *URL { return u.SetHost("") }

// IsAbsolute checks whether this is a fully-qualified URL with a hostname.
func (u *URL) IsAbsolute() bool { return !u.host.IsZero() }

// Subdomain returns everything left of the PLD.
func (u *URL) Subdomain() string { return u.host.Subdomain() }

// Domain returns the single label left of the TLD within the PLD.
func (u *URL) Domain() string { return u.host.Domain() }

// PLD returns the pay-level (registrable) domain of the host.
func (u *URL) PLD() string { return u.host.PLD() }

// TLD returns the public suffix of the host.
func (u *URL) TLD() string { return u.host.TLD() }

// SetSubdomain replaces the subdomain, keeping the PLD.
func (u *URL) SetSubdomain(subdomain string) *URL {
	u.host.SetSubdomain(subdomain)
	return u
}

// AddSubdomain prepends a subdomain to the full hostname.
func (u *URL) AddSubdomain(subdomain string) *URL {
	u.host.AddSubdomain(subdomain)
	return u
}

// DelSubdomain reduces the hostname to its PLD.
func (u *URL) DelSubdomain() *URL {
	u.host.DelSubdomain()
	return u
}

// SetDomain replaces the domain label, keeping the subdomain and TLD.
func (u *URL) SetDomain(domain string) *URL {
	u.host.SetDomain(domain)
	return u
}

// SetPLD replaces the pay-level domain, keeping the subdomain.
func (u *URL) SetPLD(pld string) *URL {
	u.host.SetPLD(pld)
	return u
}

// SetTLD replaces the trailing public suffix of the hostname.
func (u *URL) SetTLD(tld string) *URL {
	u.host.SetTLD(tld)
	return u
}

// Punycode converts the hostname to its ASCII (punycode) form.
// It fails with [ErrRelativeHost] when the URL has no host.
func (u *URL) Punycode() error { return errtrace.Wrap(u.host.Punycode()) }

// Unpunycode converts the hostname back to its Unicode form.
// It fails with [ErrRelativeHost] when the URL has no host.
func (u *URL) Unpunycode() error { return errtrace.Wrap(u.host.Unpunycode()) }

// Port methods
// ----------------------------------------------------------------------------

// Port returns the explicit port or an empty string when not set.
func (u *URL) Port() string { return u.port.Explicit() }

// EffectivePort returns the explicit port when set, otherwise the default
// port of the current scheme.
func (u *URL) EffectivePort() string { return u.port.Effective() }

// SetPort replaces the explicit port.
func (u *URL) SetPort(port string) *URL {
	u.port.Set(port)
	return u
}

// DelPort clears the explicit port.
func (u *URL) DelPort() *URL { return u.SetPort("") }

// Path methods
// ----------------------------------------------------------------------------

// Path returns the path string.
func (u *URL) Path() string { return u.path.String() }

// SetPath replaces the path outright.
func (u *URL) SetPath(path string) *URL {
	u.path.Set(path)
	return u
}

// AddPath joins the current path and the given one with a single '/'.
func (u *URL) AddPath(path string) *URL {
	u.path.Append(path)
	return u
}

// DelPath clears the path.
func (u *URL) DelPath() *URL {
	u.path.Set("")
	return u
}

// Abs clears out "." and ".." segments and excessive slashes from the path.
func (u *URL) Abs() *URL {
	u.path.Abs()
	return u
}

// Query params methods
// ----------------------------------------------------------------------------

// QueryParams returns the query parameter multimap owned by the URL.
func (u *URL) QueryParams() *Params { return u.queryParams() }

// Query returns the values of the named query parameter.
func (u *URL) Query(name string) []string { return u.query.Get(name) }

// SetQuery replaces the values of a query parameter.
func (u *URL) SetQuery(name string, values ...string) *URL {
	u.queryParams().Set(name, values...)
	return u
}

// AddQuery appends values to a query parameter.
func (u *URL) AddQuery(name string, values ...string) *URL {
	u.queryParams().Add(name, values...)
	return u
}

// DelQuery removes whole query parameters.
func (u *URL) DelQuery(names ...string) *URL {
	u.queryParams().Del(names...)
	return u
}

// DelQueryValues removes the given values of a query parameter.
func (u *URL) DelQueryValues(name string, values ...string) *URL {
	u.queryParams().DelValues(name, values...)
	return u
}

// FilterQuery keeps only the query pairs matched by pred.
func (u *URL) FilterQuery(pred func(name, value string) bool) *URL {
	u.queryParams().Filter(pred)
	return u
}

// SortQuery reorders the query parameter names into natural order.
func (u *URL) SortQuery() *URL {
	u.queryParams().Sort()
	return u
}

// Matrix params methods
// ----------------------------------------------------------------------------

// MatrixParams returns the matrix parameter multimap owned by the URL.
func (u *URL) MatrixParams() *Params { return u.matrixParams() }

// Param returns the values of the named matrix parameter.
func (u *URL) Param(name string) []string { return u.params.Get(name) }

// SetParams replaces the values of a matrix parameter.
func (u *URL) SetParams(name string, values ...string) *URL {
	u.matrixParams().Set(name, values...)
	return u
}

// AddParams appends values to a matrix parameter.
func (u *URL) AddParams(name string, values ...string) *URL {
	u.matrixParams().Add(name, values...)
	return u
}

// DelParams removes whole matrix parameters.
func (u *URL) DelParams(names ...string) *URL {
	u.matrixParams().Del(names...)
	return u
}

// DelParamValues removes the given values of a matrix parameter.
func (u *URL) DelParamValues(name string, values ...string) *URL {
	u.matrixParams().DelValues(name, values...)
	return u
}

// FilterParams keeps only the matrix pairs matched by pred.
func (u *URL) FilterParams(pred func(name, value string) bool) *URL {
	u.matrixParams().Filter(pred)
	return u
}

// SortParams reorders the matrix parameter names into natural order.
func (u *URL) SortParams() *URL {
	u.matrixParams().Sort()
	return u
}

func (u *URL) queryParams() *Params {
	if u.query == nil {
		u.query = NewParams()
	}
	return u.query
}

func (u *URL) matrixParams() *Params {
	if u.params == nil {
		u.params = NewParams()
	}
	return u.params
}

// Fragment methods
// ----------------------------------------------------------------------------

// Fragment returns the fragment.
func (u *URL) Fragment() string { return u.fragment }

// SetFragment replaces the fragment.
func (u *URL) SetFragment(fragment string) *URL {
	u.fragment = fragment
	return u
}

// DelFragment clears the fragment.
func (u *URL) DelFragment() *URL { return u.SetFragment("") }

// Escaping
// ----------------------------------------------------------------------------

// Escape percent-encodes the path, userinfo, query and matrix parameters
// against their RFC 3986 safe sets. Already-encoded triplets are normalized,
// not double-encoded, so Escape is idempotent.
func (u *URL) Escape() *URL {
	u.path.Set(grammar.Escape(u.path.String(), grammar.IsPathSafeChar))
	u.user = escapeUserInfo(u.user, grammar.Escape)
	u.query.escape(grammar.IsQuerySafeChar)
	u.params.escape(grammar.IsQuerySafeChar)
	return u
}

// Unescape percent-decodes the path, userinfo, query and matrix parameters.
func (u *URL) Unescape() *URL {
	u.path.Set(grammar.Unescape(u.path.String()))
	u.user = escapeUserInfo(u.user, func(s string, _ func(byte) bool) string {
		return grammar.Unescape(s)
	})
	u.query.unescape()
	u.params.unescape()
	return u
}

// Sanitize is a shortcut to Abs and Escape.
func (u *URL) Sanitize() *URL { return u.Abs().Escape() }

func escapeUserInfo(ui UserInfo, fn func(string, func(byte) bool) string) UserInfo {
	username := fn(ui.Username(), grammar.IsUserinfoSafeChar)
	if passwd, ok := ui.Password(); ok {
		return UserPassword(username, fn(passwd, grammar.IsUserinfoSafeChar))
	}
	return User(username)
}

// Rendering
// ----------------------------------------------------------------------------

// RenderTo writes the URL to the provided writer, composing
// "scheme://userinfo@host:port/path;params?query#fragment" and omitting each
// optional piece when empty.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.scheme != "" {
		cw.Fprint(u.scheme, ":")
	}
	path := u.path.String()
	if auth := u.authority(opts); auth != "" {
		cw.Fprint("//", auth)
	} else if strings.HasPrefix(path, "//") {
		// Keep an authority-less path re-parseable.
		cw.Fprint("/.")
	}
	cw.Fprint(path)
	if !u.params.IsZero() {
		cw.Fprint(";")
		cw.Call(func(w io.Writer) (int, error) { return u.params.RenderTo(w, ';') })
	}
	if !u.query.IsZero() {
		cw.Fprint("?")
		cw.Call(func(w io.Writer) (int, error) { return u.query.RenderTo(w, '&') })
	}
	if u.fragment != "" {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) authority(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if !u.user.IsZero() {
		sb.WriteString(u.user.String())
		sb.WriteString("@")
	}
	host := u.host.Name()
	if strings.ContainsRune(host, ':') {
		host = "[" + host + "]"
	}
	sb.WriteString(host)
	port := u.port.Explicit()
	if opts != nil && opts.EffectivePort {
		port = u.port.Effective()
	}
	if port != "" {
		sb.WriteString(":")
		sb.WriteString(port)
	}
	return sb.String()
}

// Render returns the string representation of the URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.params = u.params.Clone()
	u2.query = u.query.Clone()
	return &u2
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URL{params: NewParams(), query: NewParams()}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
