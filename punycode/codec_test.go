package punycode_test

import (
	"testing"

	"github.com/ghettovoice/gourl/punycode"
)

func TestCodec_ToASCII(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
		want string
	}{
		{"ascii passthrough", "example.com", "example.com"},
		{"cyrillic", "кремль.рф", "xn--e1ajeds9e.xn--p1ai"},
		{"mixed labels", "пример.com", "xn--e1afmkfd.com"},
		{"empty", "", ""},
	}

	var c punycode.Codec
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToASCII(tc.host)
			if err != nil {
				t.Fatalf("codec.ToASCII(%q) error = %v, want nil", tc.host, err)
			}
			if got != tc.want {
				t.Errorf("codec.ToASCII(%q) = %q, want %q", tc.host, got, tc.want)
			}
		})
	}
}

func TestCodec_ToUnicode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
		want string
	}{
		{"ascii passthrough", "example.com", "example.com"},
		{"cyrillic", "xn--e1ajeds9e.xn--p1ai", "кремль.рф"},
		{"empty", "", ""},
	}

	var c punycode.Codec
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToUnicode(tc.host)
			if err != nil {
				t.Fatalf("codec.ToUnicode(%q) error = %v, want nil", tc.host, err)
			}
			if got != tc.want {
				t.Errorf("codec.ToUnicode(%q) = %q, want %q", tc.host, got, tc.want)
			}
		})
	}
}
