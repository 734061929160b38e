// Package settings loads layered JSON settings from a project's .claude
// directory and merges them into one effective document.
//
// Two files form a layer pair: a project file that is usually committed and
// a local file that is not. The local file wins key by key, recursing into
// nested objects; lists and scalars are replaced outright. Key order is kept
// as written so that anything rendered from the result is deterministic.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrNotObject is returned when a settings file's top level is not a JSON object.
var ErrNotObject = errors.New("top level is not a JSON object")

// Document is an insertion-ordered JSON object. Nested objects are
// Documents; every other value is kept as its raw JSON.
type Document struct {
	keys   []string
	values map[string]any // *Document or gjson.Result
}

// New returns an empty document.
func New() *Document {
	return &Document{values: map[string]any{}}
}

// Parse decodes a JSON object, keeping key order. A repeated key keeps its
// first position and its last value.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, ErrNotObject
	}
	return fromResult(r), nil
}

func fromResult(r gjson.Result) *Document {
	d := New()
	r.ForEach(func(k, v gjson.Result) bool {
		d.set(k.String(), valueOf(v))
		return true
	})
	return d
}

func valueOf(v gjson.Result) any {
	if v.IsObject() {
		return fromResult(v)
	}
	return v
}

func (d *Document) set(key string, v any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Len returns the number of top-level keys. A nil document is empty.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// Doc returns the nested object at key, or nil if key is absent or holds
// something other than an object.
func (d *Document) Doc(key string) *Document {
	if d == nil {
		return nil
	}
	sub, _ := d.values[key].(*Document)
	return sub
}

// Value returns the value at key as a gjson result.
func (d *Document) Value(key string) (gjson.Result, bool) {
	if d == nil {
		return gjson.Result{}, false
	}
	switch v := d.values[key].(type) {
	case gjson.Result:
		return v, true
	case *Document:
		return gjson.ParseBytes(v.JSON()), true
	}
	return gjson.Result{}, false
}

// String returns the string at key, or "" if absent or not a string.
func (d *Document) String(key string) string {
	v, ok := d.Value(key)
	if !ok || v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// Clone returns a deep copy. Cloning nil yields an empty document.
func (d *Document) Clone() *Document {
	out := New()
	if d == nil {
		return out
	}
	for _, k := range d.keys {
		out.set(k, cloneValue(d.values[k]))
	}
	return out
}

func cloneValue(v any) any {
	if sub, ok := v.(*Document); ok {
		return sub.Clone()
	}
	return v
}

// MarshalJSON encodes the document compactly in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	if d != nil {
		for i, k := range d.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return fmt.Errorf("encode key %q: %w", k, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			switch v := d.values[k].(type) {
			case *Document:
				if err := v.encode(buf); err != nil {
					return err
				}
			case gjson.Result:
				buf.WriteString(v.Raw)
			}
		}
	}
	buf.WriteByte('}')
	return nil
}

// JSON returns the compact encoding. It cannot fail for parsed documents.
func (d *Document) JSON() []byte {
	b, _ := d.MarshalJSON()
	return b
}

// Indent returns the document as two-space indented JSON, keys unsorted.
func (d *Document) Indent() []byte {
	return pretty.PrettyOptions(d.JSON(), &pretty.Options{
		Width:  80,
		Indent: "  ",
	})
}
