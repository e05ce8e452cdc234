package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gourl/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		cb   func(byte) bool
		want string
	}{
		{"empty", "", nil, ""},
		{"unreserved only", "abc-12_3.xyz~", nil, "abc-12_3.xyz~"},
		{"non-safe chars", "a b<c>", nil, "a%20b%3Cc%3E"},
		{"path keeps slashes", "/a/b c", grammar.IsPathSafeChar, "/a/b%20c"},
		{"query keeps question mark", "a=1&b=?2", grammar.IsQuerySafeChar, "a=1&b=?2"},
		{"userinfo escapes at sign", "na@me:pass", grammar.IsUserinfoSafeChar, "na%40me:pass"},
		{"triplet hex upper-cased", "a%3fb", grammar.IsPathSafeChar, "a%3Fb"},
		{"safe unreserved triplet unescaped", "a%7Eb", grammar.IsPathSafeChar, "a~b"},
		{"reserved triplet kept encoded", "a%2Fb", grammar.IsPathSafeChar, "a%2Fb"},
		{"lone percent encoded", "100%", grammar.IsQuerySafeChar, "100%25"},
		{"multibyte rune encoded per byte", "д", grammar.IsPathSafeChar, "%D0%B4"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Escape(c.str, c.cb), c.want; got != want {
				t.Errorf("grammar.Escape(%q, %p) = %q, want %q", c.str, c.cb, got, want)
			}
		})
	}
}

func TestEscapeIdempotent(t *testing.T) {
	t.Parallel()

	safeSets := map[string]func(byte) bool{
		"path":     grammar.IsPathSafeChar,
		"query":    grammar.IsQuerySafeChar,
		"userinfo": grammar.IsUserinfoSafeChar,
		"default":  nil,
	}
	inputs := []string{"", "/a b/c", "при вет", "a%2Fb%3f", "100%", "x=1&y=2;z"}

	for name, isSafe := range safeSets {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, in := range inputs {
				once := grammar.Escape(in, isSafe)
				if twice := grammar.Escape(once, isSafe); twice != once {
					t.Errorf("grammar.Escape(grammar.Escape(%q)) = %q, want %q", in, twice, once)
				}
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "abc", "abc"},
		{"triplets", "a%20b%3fc", "a b?c"},
		{"malformed passes through", "abc%zx%", "abc%zx%"},
		{"truncated triplet", "a%2", "a%2"},
		{"multibyte", "%D0%B4%D0%B0", "да"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}
