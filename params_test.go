package gourl_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gourl"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		sep  byte
		want string
	}{
		{"empty", "", '&', ""},
		{"single", "a=1", '&', "a=1"},
		{"pairs", "a=1&b=2", '&', "a=1&b=2"},
		{"repeated key groups", "a=1&b=2&a=3", '&', "a=1&a=3&b=2"},
		{"blank values kept", "a&b=", '&', "a=&b="},
		{"empty chunks skipped", "a=1&&b=2&", '&', "a=1&b=2"},
		{"percent decoded", "a=%D0%B0&sp=a%20b", '&', "a=а&sp=a b"},
		{"matrix separator", "a=1;b=2", ';', "a=1;b=2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := gourl.ParseParams(c.raw, c.sep).Render(c.sep); got != c.want {
				t.Errorf("gourl.ParseParams(%q, %q).Render(%q) = %q, want %q",
					c.raw, c.sep, c.sep, got, c.want)
			}
		})
	}
}

func TestParams_Get(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("a=1&b=2&a=3", '&')

	if diff := cmp.Diff(ps.Get("a"), []string{"1", "3"}); diff != "" {
		t.Errorf("ps.Get(\"a\") diff (-got +want):\n%v", diff)
	}
	if got := ps.Get("c"); got != nil {
		t.Errorf("ps.Get(\"c\") = %v, want nil", got)
	}
	if !ps.Has("b") {
		t.Errorf("ps.Has(\"b\") = false, want true")
	}
	if got, want := ps.Len(), 3; got != want {
		t.Errorf("ps.Len() = %v, want %v", got, want)
	}

	// The returned slice is a copy, mutating it must not leak back.
	vals := ps.Get("a")
	vals[0] = "changed"
	if diff := cmp.Diff(ps.Get("a"), []string{"1", "3"}); diff != "" {
		t.Errorf("ps.Get(\"a\") after mutating the copy diff (-got +want):\n%v", diff)
	}
}

func TestParams_Set(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		fn   func(ps *gourl.Params) *gourl.Params
		want string
	}{
		{
			"new key appends",
			"a=1",
			func(ps *gourl.Params) *gourl.Params { return ps.Set("b", "2") },
			"a=1&b=2",
		},
		{
			"existing key keeps position",
			"a=1&b=2&c=3",
			func(ps *gourl.Params) *gourl.Params { return ps.Set("b", "20") },
			"a=1&b=20&c=3",
		},
		{
			"replaces all values",
			"a=1&a=2&b=3",
			func(ps *gourl.Params) *gourl.Params { return ps.Set("a", "9") },
			"a=9&b=3",
		},
		{
			"no values removes key",
			"a=1&b=2",
			func(ps *gourl.Params) *gourl.Params { return ps.Set("a") },
			"b=2",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.fn(gourl.ParseParams(c.raw, '&')).Render('&'); got != c.want {
				t.Errorf("ps.Render('&') = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParams_Add(t *testing.T) {
	t.Parallel()

	ps := gourl.NewParams().
		Add("a", "1").
		Add("b", "2").
		Add("a", "3", "4")

	if got, want := ps.Render('&'), "a=1&a=3&a=4&b=2"; got != want {
		t.Errorf("ps.Render('&') = %q, want %q", got, want)
	}
}

func TestParams_Del(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		fn   func(ps *gourl.Params) *gourl.Params
		want string
	}{
		{
			"whole keys",
			"a=1&b=2&c=3",
			func(ps *gourl.Params) *gourl.Params { return ps.Del("a", "c") },
			"b=2",
		},
		{
			"missing key is noop",
			"a=1",
			func(ps *gourl.Params) *gourl.Params { return ps.Del("z") },
			"a=1",
		},
		{
			"single value",
			"a=1&a=2&a=3",
			func(ps *gourl.Params) *gourl.Params { return ps.DelValues("a", "2") },
			"a=1&a=3",
		},
		{
			"last value removes key",
			"a=1&b=2",
			func(ps *gourl.Params) *gourl.Params { return ps.DelValues("a", "1") },
			"b=2",
		},
		{
			"by predicate",
			"a=1&a=2&b=2",
			func(ps *gourl.Params) *gourl.Params {
				return ps.DelFunc(func(_, v string) bool { return v == "2" })
			},
			"a=1",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.fn(gourl.ParseParams(c.raw, '&')).Render('&'); got != c.want {
				t.Errorf("ps.Render('&') = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParams_Filter(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("a=1&b=2&a=3&c=4", '&').
		Filter(func(k, v string) bool { return k != "b" && v != "3" })

	if got, want := ps.Render('&'), "a=1&c=4"; got != want {
		t.Errorf("ps.Render('&') = %q, want %q", got, want)
	}
}

func TestParams_Sort(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("c=3&a=1&b=2&a=0", '&')

	if got, want := ps.Sort().Render('&'), "a=1&a=0&b=2&c=3"; got != want {
		t.Errorf("ps.Sort().Render('&') = %q, want %q", got, want)
	}
}

func TestParams_SortFunc(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("a=1&b=2&c=3", '&').
		SortFunc(func(k1 string, _ []string, k2 string, _ []string) int {
			return strings.Compare(k2, k1)
		})

	if got, want := ps.Render('&'), "c=3&b=2&a=1"; got != want {
		t.Errorf("ps.Render('&') = %q, want %q", got, want)
	}
}

func TestParams_RenderTo(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("a=1&b=2", '&')

	var sb strings.Builder
	num, err := ps.RenderTo(&sb, ';')
	if err != nil {
		t.Fatalf("ps.RenderTo(sb, ';') error = %v, want nil", err)
	}
	if got, want := sb.String(), "a=1;b=2"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	if num != len("a=1;b=2") {
		t.Errorf("ps.RenderTo(sb, ';') num = %v, want %v", num, len("a=1;b=2"))
	}
}

func TestParams_Clone(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("a=1&b=2", '&')
	ps2 := ps.Clone().Set("a", "9").Add("c", "3")

	if got, want := ps.Render('&'), "a=1&b=2"; got != want {
		t.Errorf("original ps.Render('&') = %q, want %q", got, want)
	}
	if got, want := ps2.Render('&'), "a=9&b=2&c=3"; got != want {
		t.Errorf("clone ps2.Render('&') = %q, want %q", got, want)
	}
	if (*gourl.Params)(nil).Clone() != nil {
		t.Errorf("nil.Clone() != nil")
	}
}

func TestParams_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ps   *gourl.Params
		val  any
		want bool
	}{
		{"nil to nil", (*gourl.Params)(nil), (*gourl.Params)(nil), true},
		{"nil to empty", (*gourl.Params)(nil), gourl.NewParams(), true},
		{"type mismatch", gourl.NewParams(), 42, false},
		{
			"same order",
			gourl.ParseParams("a=1&b=2", '&'),
			gourl.ParseParams("a=1&b=2", '&'),
			true,
		},
		{
			"key order ignored",
			gourl.ParseParams("b=2&a=1", '&'),
			gourl.ParseParams("a=1&b=2", '&'),
			true,
		},
		{
			"value order significant",
			gourl.ParseParams("a=1&a=2", '&'),
			gourl.ParseParams("a=2&a=1", '&'),
			false,
		},
		{
			"raw string",
			gourl.ParseParams("b=2&a=1", '&'),
			"a=1&b=2",
			true,
		},
		{
			"value type",
			gourl.ParseParams("a=1", '&'),
			*gourl.ParseParams("a=1", '&'),
			true,
		},
		{
			"different values",
			gourl.ParseParams("a=1", '&'),
			gourl.ParseParams("a=2", '&'),
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ps.Equal(c.val); got != c.want {
				t.Errorf("ps.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestParams_NilReceiver(t *testing.T) {
	t.Parallel()

	var ps *gourl.Params

	if got := ps.Get("a"); got != nil {
		t.Errorf("nil.Get(\"a\") = %v, want nil", got)
	}
	if ps.Has("a") {
		t.Errorf("nil.Has(\"a\") = true, want false")
	}
	if got := ps.Len(); got != 0 {
		t.Errorf("nil.Len() = %v, want 0", got)
	}
	if !ps.IsZero() {
		t.Errorf("nil.IsZero() = false, want true")
	}
	if got := ps.Del("a"); got != nil {
		t.Errorf("nil.Del(\"a\") = %v, want nil", got)
	}
	if got := ps.DelValues("a", "1"); got != nil {
		t.Errorf("nil.DelValues(\"a\", \"1\") = %v, want nil", got)
	}
	if got := ps.Filter(func(_, _ string) bool { return true }); got != nil {
		t.Errorf("nil.Filter(pred) = %v, want nil", got)
	}
	if got := ps.Sort(); got != nil {
		t.Errorf("nil.Sort() = %v, want nil", got)
	}
	if got := ps.SortFunc(func(_ string, _ []string, _ string, _ []string) int { return 0 }); got != nil {
		t.Errorf("nil.SortFunc(cmp) = %v, want nil", got)
	}
	if got := ps.Render('&'); got != "" {
		t.Errorf("nil.Render('&') = %q, want %q", got, "")
	}
	for k, v := range ps.Pairs() {
		t.Errorf("nil.Pairs() yielded %q=%q, want none", k, v)
	}
}

func TestParams_Pairs(t *testing.T) {
	t.Parallel()

	ps := gourl.ParseParams("a=1&b=2&a=3", '&')

	var got []string
	for k, v := range ps.Pairs() {
		got = append(got, k+"="+v)
	}
	if diff := cmp.Diff(got, []string{"a=1", "a=3", "b=2"}); diff != "" {
		t.Errorf("pairs diff (-got +want):\n%v", diff)
	}
}
