// Package punycode transcodes hostnames between their Unicode and ASCII
// (punycode) forms per the IDNA rules of RFC 5890.
package punycode

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
	"golang.org/x/net/idna"
)

// Codec transcodes hostnames through golang.org/x/net/idna.
// The zero value is ready to use.
type Codec struct{}

// ToASCII converts a Unicode hostname to its punycode form.
// Hostnames that are already ASCII pass through unchanged.
func (Codec) ToASCII(host string) (string, error) {
	return errtrace.Wrap2(idna.ToASCII(host))
}

// ToUnicode converts a punycode hostname back to its Unicode form.
func (Codec) ToUnicode(host string) (string, error) {
	return errtrace.Wrap2(idna.ToUnicode(host))
}
