// Package gourl provides a structured model for parsing, manipulating and
// rendering URLs, built around typed components instead of raw strings.
//
// # Overview
//
// The central type is [URL]. [Parse] splits a raw URL string into its
// components once, and from then on every part is owned by a dedicated value:
//
//   - [Params]: an order-preserving multimap shared by the query string
//     ("k=v&k=v") and the matrix parameters of the last path segment
//     ("k=v;k=v").
//
//   - [Host]: the hostname with public-suffix aware views (TLD, PLD, domain,
//     subdomain) and label-level mutators.
//
//   - [Port]: the explicit port plus scheme-based inference of the effective
//     port (http -> 80, https -> 443, ftp -> 21, ssh -> 22).
//
//   - [Path]: the hierarchical path with joining and normalization helpers.
//
//   - [UserInfo]: the username and optional password.
//
// # Mutation
//
// Every URL mutator changes the receiver in place and returns the same *URL,
// so edits chain naturally:
//
//	u, err := gourl.Parse("https://user@www.example.com/a/b?x=1#frag")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.SetSubdomain("api").AddPath("c").SetQuery("y", "2").DelFragment()
//	fmt.Println(u) // https://user@api.example.com/a/b/c?x=1&y=2
//
// Use [URL.Clone] when the original must survive the edit.
//
// # Construction
//
// [New] builds a URL from scratch and [Parse] accepts the same functional
// options to override parsed components:
//
//	u := gourl.New(
//	    gourl.WithScheme("https"),
//	    gourl.WithHost("example.com"),
//	    gourl.WithPath("/search"),
//	    gourl.WithQuery("q=gopher"),
//	)
//
// # Equality
//
// [URL.Equal] compares two URLs semantically: both sides are canonicalized
// first ([URL.Canonical]), so differences in query parameter order, default
// versus explicit ports, percent-encoding variants, trailing slashes and
// fragments do not break equality:
//
//	a, _ := gourl.Parse("http://example.com:80/a/?x=1&y=2")
//	b, _ := gourl.Parse("HTTP://EXAMPLE.COM/a?y=2&x=1#frag")
//	a.Equal(b) // true
//
// # Escaping
//
// [URL.Escape] percent-encodes each component against its RFC 3986 safe set.
// It re-evaluates existing %HH triplets instead of encoding their '%', so the
// operation is idempotent and never double-encodes. [URL.Unescape] is its
// lenient inverse: malformed triplets pass through unchanged.
//
// # Serialization
//
// URL implements [fmt.Stringer], [fmt.Formatter], [encoding.TextMarshaler]
// and [encoding.TextUnmarshaler], so it embeds cleanly into JSON/XML structs:
//
//	type Endpoint struct {
//	    Addr *gourl.URL `json:"addr,omitempty"`
//	}
//
// # Thread Safety
//
// URL values are not safe for concurrent modification. When sharing across
// goroutines, synchronize or hand out copies made with Clone.
package gourl
