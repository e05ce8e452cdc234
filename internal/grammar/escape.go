// Package grammar implements the RFC 3986 character classes and the
// percent-encoding codec shared by URL components.
package grammar

import "bytes"

const upperhex = "0123456789ABCDEF"

// IsAlphanumChar checks the ALPHA / DIGIT rules.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsUnreservedChar checks the unreserved rule.
func IsUnreservedChar(c byte) bool {
	return IsAlphanumChar(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

var genDelimChars = map[byte]bool{
	':': true,
	'/': true,
	'?': true,
	'#': true,
	'[': true,
	']': true,
	'@': true,
}

// IsGenDelimChar checks the gen-delims rule.
func IsGenDelimChar(c byte) bool { return genDelimChars[c] }

var subDelimChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsSubDelimChar checks the sub-delims rule.
func IsSubDelimChar(c byte) bool { return subDelimChars[c] }

// IsReservedChar checks the reserved rule (gen-delims / sub-delims).
func IsReservedChar(c byte) bool { return genDelimChars[c] || subDelimChars[c] }

// IsPChar checks the pchar rule.
func IsPChar(c byte) bool {
	return IsUnreservedChar(c) || subDelimChars[c] || c == ':' || c == '@'
}

// IsPathSafeChar reports whether c may appear literally in a path component.
func IsPathSafeChar(c byte) bool { return IsPChar(c) || c == '/' }

// IsQuerySafeChar reports whether c may appear literally in a query or
// fragment component.
func IsQuerySafeChar(c byte) bool { return IsPChar(c) || c == '/' || c == '?' }

// IsUserinfoSafeChar reports whether c may appear literally in a userinfo component.
func IsUserinfoSafeChar(c byte) bool {
	return IsUnreservedChar(c) || subDelimChars[c] || c == ':'
}

// Escape percent-encodes every byte of s outside the safe set given by isSafe.
// An already-encoded "%HH" triplet is re-evaluated: when its decoded byte is
// in the safe set and not reserved it is emitted literally, otherwise the
// triplet is kept with upper-cased hex digits. Multi-byte runes are encoded
// byte by byte. A nil isSafe defaults to the unreserved set.
func Escape(s string, isSafe func(c byte) bool) string {
	if len(s) == 0 {
		return s
	}

	if isSafe == nil {
		isSafe = IsUnreservedChar
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			if c := unhex(s[i+1])<<4 | unhex(s[i+2]); isSafe(c) && !IsReservedChar(c) {
				b.WriteByte(c)
			} else {
				b.WriteByte('%')
				b.WriteByte(uphex(s[i+1]))
				b.WriteByte(uphex(s[i+2]))
			}
			i += 2
		case isSafe(s[i]):
			b.WriteByte(s[i])
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		}
	}
	return b.String()
}

// Unescape decodes every 3-byte "%HH" triplet of s into the hex-decoded byte.
// Malformed triplets pass through unchanged, so Unescape never fails.
func Unescape(s string) string {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func uphex(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}
