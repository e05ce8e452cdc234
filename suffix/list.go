// Package suffix classifies hostnames against the public suffix list.
package suffix

import (
	"log/slog"

	"golang.org/x/net/publicsuffix"

	"github.com/ghettovoice/gourl/internal/log"
	"github.com/ghettovoice/gourl/internal/types"
)

// List is a hostname classifier backed by the public suffix list embedded in
// golang.org/x/net/publicsuffix. It is loaded once at process start and is
// read-only afterwards, so a single List may be shared freely.
type List struct {
	log *slog.Logger
}

// NewList returns a classifier logging its diagnostics to the given logger.
// A nil logger disables diagnostics.
func NewList(logger *slog.Logger) *List {
	if logger == nil {
		logger = log.Noop
	}
	return &List{log: logger}
}

// Classify resolves the public and registrable suffixes of host.
// An empty host yields an empty classification.
func (l *List) Classify(host string) types.Suffix {
	if host == "" {
		return types.Suffix{}
	}

	var s types.Suffix
	var icann bool
	s.Public, icann = publicsuffix.PublicSuffix(host)
	if !icann {
		l.log.Debug("public suffix is not in the ICANN list",
			"host", host, "suffix", s.Public)
	}

	reg, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// The host is itself a public suffix or is malformed; there is
		// no registrable suffix to report.
		l.log.Debug("no registrable suffix", "host", host, "error", err)
		return s
	}
	s.Registrable = reg
	return s
}
