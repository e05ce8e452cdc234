package gourl

import "github.com/ghettovoice/gourl/internal/errorutil"

const (
	// ErrRelativeHost is returned by host transcoding operations
	// when the URL has no host.
	ErrRelativeHost errorutil.Error = "relative host"
	// ErrMalformedURL is returned when the input cannot be tokenized into URL
	// components.
	ErrMalformedURL errorutil.Error = "malformed url"
)

func newRelativeHostErr(op string) error {
	return errorutil.NewWrapperError(ErrRelativeHost, "cannot %s a url without a host", op) //errtrace:skip
}

func newMalformedURLErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedURL, args...) //errtrace:skip
}
