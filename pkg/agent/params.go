package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Params is an insertion-ordered mapping of keys to scalar values, used for
// both query strings and JSON request bodies.
//
// Order matters twice over: the JSON body bytes dispatched must be the exact
// bytes folded into the request signature, and the exchange expects repeated
// query keys (status=open&status=pending) rather than bracketed arrays.
type Params struct {
	keys   []string
	values map[string][]any
}

// NewParams creates an empty Params
func NewParams() *Params {
	return &Params{values: make(map[string][]any)}
}

// Set assigns a single value to key, replacing any previous values. The key
// keeps its original insertion position.
func (p *Params) Set(key string, value any) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = []any{value}
	return p
}

// Add appends a value to key. Keys with multiple values are serialized as
// repeated query keys.
func (p *Params) Add(key string, value any) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = append(p.values[key], value)
	return p
}

// Len returns the number of distinct keys
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Encode serializes the params as a URL query string in insertion order.
// Multi-valued keys repeat: a=1&a=2. Bracket and JSON-array encodings are
// never produced.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var buf bytes.Buffer
	for _, key := range p.keys {
		for _, value := range p.values[key] {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(url.QueryEscape(key))
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(scalarString(value)))
		}
	}

	return buf.String()
}

// MarshalJSON serializes the params as a JSON object preserving insertion
// order. Keys added multiple times marshal as a JSON array.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal param key %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')

		values := p.values[key]
		if len(values) == 1 {
			raw, err := json.Marshal(values[0])
			if err != nil {
				return nil, fmt.Errorf("failed to marshal param %q: %w", key, err)
			}
			buf.Write(raw)
		} else {
			raw, err := json.Marshal(values)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal param %q: %w", key, err)
			}
			buf.Write(raw)
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// scalarString renders a scalar value for query-string use
func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
