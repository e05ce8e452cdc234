package gourl

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
)

// Host is a container for the hostname of a URL together with the
// collaborators deriving its public-suffix views. The stored name never has
// leading or trailing dots; an empty name means the URL is relative.
//
// The derived views follow the public suffix list convention: for
// "ru.example.com" the TLD is "com", the PLD (pay-level domain) is
// "example.com", the domain is "example" and the subdomain is "ru". As long
// as the domain and TLD are non-empty, joining subdomain, domain and TLD
// with dots reproduces the full hostname.
type Host struct {
	name  string
	cls   SuffixClassifier
	codec HostCodec
}

// NewHost returns a Host with the given name, trimmed of leading and
// trailing dots, using the package default collaborators.
func NewHost(name string) Host {
	var h Host
	h.Set(name)
	return h
}

// Set stores the hostname, trimmed of leading and trailing dots.
func (h *Host) Set(name string) { h.name = strings.Trim(name, ".") }

// Name returns the full hostname.
func (h Host) Name() string { return h.name }

// String returns the full hostname.
func (h Host) String() string { return h.name }

// IsZero checks whether the host is empty.
func (h Host) IsZero() bool { return h.name == "" }

func (h Host) classifier() SuffixClassifier {
	if h.cls != nil {
		return h.cls
	}
	return DefaultClassifier
}

func (h Host) transcoder() HostCodec {
	if h.codec != nil {
		return h.codec
	}
	return DefaultCodec
}

// TLD returns the public suffix of the host, or an empty string for an
// empty host.
func (h Host) TLD() string {
	if h.name == "" {
		return ""
	}
	return h.classifier().Classify(h.name).Public
}

// PLD returns the pay-level (registrable) domain of the host, or an empty
// string for an empty host or a host that is itself a public suffix.
func (h Host) PLD() string {
	if h.name == "" {
		return ""
	}
	return h.classifier().Classify(h.name).Registrable
}

// Domain returns the single label left of the TLD within the PLD,
// e.g. "example" for "ru.example.com".
func (h Host) Domain() string {
	return trimSuffixLabels(h.PLD(), h.TLD())
}

// Subdomain returns everything left of the PLD, e.g. "ru" for "ru.example.com".
func (h Host) Subdomain() string {
	return trimSuffixLabels(h.name, h.PLD())
}

// SetSubdomain replaces the subdomain: the new host is the given value
// joined with the current PLD.
func (h *Host) SetSubdomain(subdomain string) {
	h.name = joinLabels(subdomain, h.PLD())
}

// AddSubdomain prepends the given value to the full current hostname.
func (h *Host) AddSubdomain(subdomain string) {
	h.name = joinLabels(subdomain, h.name)
}

// DelSubdomain reduces the host to its PLD.
func (h *Host) DelSubdomain() { h.name = h.PLD() }

// SetDomain replaces the domain label, keeping the current subdomain and TLD.
func (h *Host) SetDomain(domain string) {
	h.name = joinLabels(h.Subdomain(), domain, h.TLD())
}

// SetPLD replaces the pay-level domain, keeping the current subdomain.
func (h *Host) SetPLD(pld string) {
	h.name = joinLabels(h.Subdomain(), pld)
}

// SetTLD replaces the trailing public suffix of the host with the given value.
func (h *Host) SetTLD(tld string) {
	h.name = joinLabels(trimSuffixLabels(h.name, h.TLD()), tld)
}

// Punycode converts the hostname to its ASCII (punycode) form.
// It fails with [ErrRelativeHost] when the host is empty; transcoding errors
// propagate unchanged.
func (h *Host) Punycode() error {
	if h.name == "" {
		return errtrace.Wrap(newRelativeHostErr("punycode"))
	}
	name, err := h.transcoder().ToASCII(h.name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	h.name = name
	return nil
}

// Unpunycode converts the hostname back to its Unicode form.
// It fails with [ErrRelativeHost] when the host is empty; transcoding errors
// propagate unchanged.
func (h *Host) Unpunycode() error {
	if h.name == "" {
		return errtrace.Wrap(newRelativeHostErr("unpunycode"))
	}
	name, err := h.transcoder().ToUnicode(h.name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	h.name = name
	return nil
}

// trimSuffixLabels drops the labels of suffix from the end of name.
// The arithmetic runs over dot-delimited label lists, never raw substrings,
// so empty labels cannot shift the cut point.
func trimSuffixLabels(name, suffix string) string {
	if name == "" || suffix == "" {
		return ""
	}
	labels := dns.SplitDomainName(name)
	n := dns.CountLabel(suffix)
	if len(labels) <= n {
		return ""
	}
	return strings.Join(labels[:len(labels)-n], ".")
}

// joinLabels joins the non-empty parts with dots, trimming stray dots from
// each part first.
func joinLabels(parts ...string) string {
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, "."); p != "" {
			labels = append(labels, p)
		}
	}
	return strings.Join(labels, ".")
}
