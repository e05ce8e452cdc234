package gourl

//go:generate go tool mockgen -destination internal/testutil/urlmock/mocks.go -package urlmock github.com/ghettovoice/gourl SuffixClassifier,HostCodec

import (
	"github.com/ghettovoice/gourl/internal/types"
	"github.com/ghettovoice/gourl/punycode"
	"github.com/ghettovoice/gourl/suffix"
)

// Suffix is the result of classifying a hostname against the public suffix list.
type Suffix = types.Suffix

// RenderOptions contains options for rendering URLs and their components.
type RenderOptions = types.RenderOptions

// SuffixClassifier resolves the public and registrable suffixes of a hostname.
// Implementations must treat an empty hostname as an empty classification and
// must be safe for concurrent use.
type SuffixClassifier interface {
	Classify(host string) Suffix
}

// HostCodec transcodes hostnames between their Unicode and ASCII (punycode) forms.
type HostCodec interface {
	ToASCII(host string) (string, error)
	ToUnicode(host string) (string, error)
}

var (
	// DefaultClassifier serves hosts constructed without an explicit classifier.
	DefaultClassifier SuffixClassifier = suffix.NewList(nil)
	// DefaultCodec serves hosts constructed without an explicit codec.
	DefaultCodec HostCodec = punycode.Codec{}
)

var (
	_ types.Renderer           = (*URL)(nil)
	_ types.Equalable          = (*URL)(nil)
	_ types.Cloneable[*URL]    = (*URL)(nil)
	_ types.Equalable          = (*Params)(nil)
	_ types.Cloneable[*Params] = (*Params)(nil)
	_ types.Equalable          = Port{}
	_ types.Equalable          = UserInfo{}
)
