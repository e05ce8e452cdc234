package gourl

import (
	"strconv"

	"github.com/ghettovoice/gourl/internal/util"
)

// defaultPorts maps a scheme to its well-known port.
var defaultPorts = map[string]string{
	"ftp":   "21",
	"ssh":   "22",
	"http":  "80",
	"https": "443",
}

// Port is a container for the explicit port of a URL together with the
// scheme context used to infer a default when no explicit port is set.
// The owning URL refreshes the scheme context on every scheme change, so
// the inferred value is always current.
type Port struct {
	explicit string
	scheme   string
}

// NewPort returns a Port with the given explicit value and scheme context.
func NewPort(explicit, scheme string) Port {
	return Port{explicit: explicit, scheme: scheme}
}

// Set stores the explicit port. An empty value clears it, falling back to
// the scheme-inferred default.
func (p *Port) Set(explicit string) { p.explicit = explicit }

func (p *Port) setScheme(scheme string) { p.scheme = scheme }

// Explicit returns the explicit port or an empty string when not set.
func (p Port) Explicit() string { return p.explicit }

// Effective returns the explicit port when set, otherwise the default port
// of the scheme context. Schemes without a well-known port yield an empty string.
func (p Port) Effective() string {
	if p.explicit != "" {
		return p.explicit
	}
	return defaultPorts[util.LCase(p.scheme)]
}

// String returns the explicit port. The inferred default is never rendered
// implicitly; see [RenderOptions].
func (p Port) String() string { return p.explicit }

// IsZero checks whether no explicit port is set.
func (p Port) IsZero() bool { return p.explicit == "" }

// Equal compares this port with another for equality. It accepts Port,
// *Port, a string or an int. Two ports are equal when their effective
// values match as strings.
func (p Port) Equal(val any) bool {
	switch v := val.(type) {
	case Port:
		return p.Effective() == v.Effective()
	case *Port:
		return v != nil && p.Effective() == v.Effective()
	case string:
		return p.Effective() == v
	case int:
		return p.Effective() == strconv.Itoa(v)
	default:
		return false
	}
}
