package gourl

// Option overrides a single URL component during construction with [New]
// or [Parse].
type Option interface {
	apply(u *URL)
}

type withScheme string

func (o withScheme) apply(u *URL) { u.SetScheme(string(o)) }

// WithScheme overrides the URL scheme.
func WithScheme(scheme string) Option { return withScheme(scheme) }

type withUsername string

func (o withUsername) apply(u *URL) { u.SetUsername(string(o)) }

// WithUsername overrides the URL username.
func WithUsername(username string) Option { return withUsername(username) }

type withPassword string

func (o withPassword) apply(u *URL) { u.SetPassword(string(o)) }

// WithPassword overrides the URL password.
func WithPassword(passwd string) Option { return withPassword(passwd) }

type withHost string

func (o withHost) apply(u *URL) { u.SetHost(string(o)) }

// WithHost overrides the URL hostname.
func WithHost(host string) Option { return withHost(host) }

type withPort string

func (o withPort) apply(u *URL) { u.SetPort(string(o)) }

// WithPort overrides the explicit URL port.
func WithPort(port string) Option { return withPort(port) }

type withPath string

func (o withPath) apply(u *URL) { u.SetPath(string(o)) }

// WithPath overrides the URL path.
func WithPath(path string) Option { return withPath(path) }

type withFragment string

func (o withFragment) apply(u *URL) { u.SetFragment(string(o)) }

// WithFragment overrides the URL fragment.
func WithFragment(fragment string) Option { return withFragment(fragment) }

type withQuery string

func (o withQuery) apply(u *URL) { u.query = ParseParams(string(o), '&') }

// WithQuery overrides the URL query with a raw "k=v&k=v" string.
func WithQuery(raw string) Option { return withQuery(raw) }

type withParams string

func (o withParams) apply(u *URL) { u.params = ParseParams(string(o), ';') }

// WithParams overrides the URL matrix parameters with a raw "k=v;k=v" string.
func WithParams(raw string) Option { return withParams(raw) }

type withSuffixClassifier struct {
	cls SuffixClassifier
}

func (o withSuffixClassifier) apply(u *URL) { u.host.cls = o.cls }

// WithSuffixClassifier overrides the public suffix classifier used by the
// host component.
func WithSuffixClassifier(cls SuffixClassifier) Option { return withSuffixClassifier{cls} }

type withHostCodec struct {
	codec HostCodec
}

func (o withHostCodec) apply(u *URL) { u.host.codec = o.codec }

// WithHostCodec overrides the punycode transcoder used by the host component.
func WithHostCodec(codec HostCodec) Option { return withHostCodec{codec} }
