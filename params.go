package gourl

import (
	"io"
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/ioutil"
	"github.com/ghettovoice/gourl/internal/util"
)

// Params is an ordered multimap of string keys to lists of string values.
// It backs both the query ("a=1&b=2") and the matrix ("a=1;b=2") parameters
// of a URL. Key order is insertion order and survives Set/Add/Del; the value
// list of a key keeps the order the values were added in. A key never maps
// to an empty list: removing the last value of a key removes the key.
//
// Mutating methods return the receiver to allow chaining. Read, removal and
// reorder methods tolerate a nil receiver; Set and Add require an allocated
// Params, like assignment to a nil map.
type Params struct {
	keys []string
	vals map[string][]string
}

// NewParams returns an empty parameter multimap.
func NewParams() *Params { return &Params{} }

// ParseParams parses raw as a sep-separated list of key=value pairs.
// Keys and values are percent-decoded leniently, blank values are kept and
// empty chunks are skipped, so parsing never fails.
func ParseParams(raw string, sep byte) *Params {
	ps := NewParams()
	for chunk := range strings.SplitSeq(raw, string(sep)) {
		if chunk == "" {
			continue
		}
		k, v, _ := strings.Cut(chunk, "=")
		ps.Add(grammar.Unescape(k), grammar.Unescape(v))
	}
	return ps
}

func (ps *Params) init() {
	if ps.vals == nil {
		ps.vals = make(map[string][]string)
	}
}

// Get returns a copy of the values associated with key in insertion order,
// or nil when the key is absent.
func (ps *Params) Get(key string) []string {
	if ps == nil {
		return nil
	}
	return slices.Clone(ps.vals[key])
}

// Has checks whether the key is present.
func (ps *Params) Has(key string) bool {
	if ps == nil {
		return false
	}
	_, ok := ps.vals[key]
	return ok
}

// Len returns the total number of key-value pairs.
func (ps *Params) Len() int {
	if ps == nil {
		return 0
	}
	var n int
	for _, vs := range ps.vals {
		n += len(vs)
	}
	return n
}

// IsZero checks whether the multimap is empty.
func (ps *Params) IsZero() bool { return ps == nil || len(ps.keys) == 0 }

// Set replaces the value list of key. An existing key keeps its position in
// the key order, a new key is appended at the end. Set without values
// removes the key.
func (ps *Params) Set(key string, values ...string) *Params {
	if len(values) == 0 {
		return ps.Del(key)
	}
	ps.init()
	if _, ok := ps.vals[key]; !ok {
		ps.keys = append(ps.keys, key)
	}
	ps.vals[key] = slices.Clone(values)
	return ps
}

// Add appends values to the value list of key, creating the key at the end
// of the key order when absent. Existing keys are never reordered.
func (ps *Params) Add(key string, values ...string) *Params {
	if len(values) == 0 {
		return ps
	}
	ps.init()
	if _, ok := ps.vals[key]; !ok {
		ps.keys = append(ps.keys, key)
	}
	ps.vals[key] = append(ps.vals[key], values...)
	return ps
}

// Del removes the given keys with all their values.
func (ps *Params) Del(keys ...string) *Params {
	if ps == nil {
		return nil
	}
	for _, key := range keys {
		if _, ok := ps.vals[key]; !ok {
			continue
		}
		delete(ps.vals, key)
		ps.keys = slices.DeleteFunc(ps.keys, func(k string) bool { return k == key })
	}
	return ps
}

// DelValues removes the given values from the value list of key.
// Without values the whole key is removed.
func (ps *Params) DelValues(key string, values ...string) *Params {
	if len(values) == 0 {
		return ps.Del(key)
	}
	return ps.DelFunc(func(k, v string) bool {
		return k == key && slices.Contains(values, v)
	})
}

// DelFunc removes every key-value pair matched by pred.
func (ps *Params) DelFunc(pred func(key, value string) bool) *Params {
	return ps.Filter(func(k, v string) bool { return !pred(k, v) })
}

// Filter keeps only the key-value pairs matched by pred, preserving the
// relative order of the kept pairs. Keys left with no values are removed.
func (ps *Params) Filter(pred func(key, value string) bool) *Params {
	if ps == nil {
		return nil
	}
	keys := make([]string, 0, len(ps.keys))
	for _, k := range ps.keys {
		kept := make([]string, 0, len(ps.vals[k]))
		for _, v := range ps.vals[k] {
			if pred(k, v) {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(ps.vals, k)
			continue
		}
		ps.vals[k] = kept
		keys = append(keys, k)
	}
	ps.keys = keys
	return ps
}

// Sort reorders the keys into natural order. Value lists are not reordered.
func (ps *Params) Sort() *Params {
	if ps == nil {
		return nil
	}
	slices.Sort(ps.keys)
	return ps
}

// SortFunc reorders the keys by cmp over (key, value list) pairs.
// Value lists are not reordered.
func (ps *Params) SortFunc(cmp func(k1 string, v1 []string, k2 string, v2 []string) int) *Params {
	if ps == nil {
		return nil
	}
	slices.SortStableFunc(ps.keys, func(a, b string) int {
		return cmp(a, ps.vals[a], b, ps.vals[b])
	})
	return ps
}

// Pairs iterates over all key-value pairs in serialization order.
func (ps *Params) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if ps == nil {
			return
		}
		for _, k := range ps.keys {
			for _, v := range ps.vals[k] {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// RenderTo writes the parameters as "key=value<sep>key=value..." to w.
// Values are emitted as-is: percent-encoding is a separate explicit stage.
// A key with multiple values expands into repeated key=value pairs.
func (ps *Params) RenderTo(w io.Writer, sep byte) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	var i int
	for k, v := range ps.Pairs() {
		if i > 0 {
			cw.Write([]byte{sep})
		}
		cw.Fprint(k, "=", v)
		i++
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the parameters serialized with sep. See [Params.RenderTo].
func (ps *Params) Render(sep byte) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb, sep) //nolint:errcheck
	return sb.String()
}

// Clone returns a deep copy of the multimap.
func (ps *Params) Clone() *Params {
	if ps == nil {
		return nil
	}
	ps2 := &Params{keys: slices.Clone(ps.keys)}
	if ps.vals != nil {
		ps2.vals = make(map[string][]string, len(ps.vals))
		for k, vs := range ps.vals {
			ps2.vals[k] = slices.Clone(vs)
		}
	}
	return ps2
}

// Equal compares this multimap with another for equality. It accepts
// Params, *Params or a string parsed with the '&' separator. Both sides are
// sorted into natural key order before comparison, so equality ignores key
// order but not the order of a key's values.
func (ps *Params) Equal(val any) bool {
	var other *Params
	switch v := val.(type) {
	case *Params:
		other = v
	case Params:
		other = &v
	case string:
		other = ParseParams(v, '&')
	default:
		return false
	}

	if ps == other {
		return true
	}
	if ps == nil {
		ps = NewParams()
	}
	if other == nil {
		other = NewParams()
	}
	return ps.Clone().Sort().Render('&') == other.Clone().Sort().Render('&')
}

// escape percent-encodes every key and value against the given safe set.
// Keys that collapse into an existing key after encoding are merged.
func (ps *Params) escape(isSafe func(byte) bool) *Params {
	return ps.transform(func(s string) string { return grammar.Escape(s, isSafe) })
}

// unescape percent-decodes every key and value.
func (ps *Params) unescape() *Params {
	return ps.transform(grammar.Unescape)
}

func (ps *Params) transform(fn func(string) string) *Params {
	if ps == nil {
		return nil
	}
	ps2 := NewParams()
	for k, v := range ps.Pairs() {
		ps2.Add(fn(k), fn(v))
	}
	*ps = *ps2
	return ps
}
