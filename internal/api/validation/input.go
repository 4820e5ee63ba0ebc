package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"time"
)

// Input is the JSON body and path parameters of one request. Accessors
// assume the matching rule already passed and return zero values otherwise.
type Input struct {
	body   map[string]any
	params map[string]string
}

// ErrNotObject is returned by Parse when the body is not a JSON object.
var ErrNotObject = errors.New("request body must be a JSON object")

// Parse decodes a JSON object body. An empty body is an empty object.
func Parse(r io.Reader, params map[string]string) (*Input, error) {
	in := &Input{body: map[string]any{}, params: params}
	if in.params == nil {
		in.params = map[string]string{}
	}
	if r == nil {
		return in, nil
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return in, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, ErrNotObject
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	in.body = obj
	return in, nil
}

// NewInput builds an Input directly, for tests and internal callers.
func NewInput(body map[string]any, params map[string]string) *Input {
	if body == nil {
		body = map[string]any{}
	}
	if params == nil {
		params = map[string]string{}
	}
	return &Input{body: body, params: params}
}

// lookup returns the value a rule checks. present is false for absent or null
// fields. A nil value with present true is an object or array, which fails
// every check.
func (in *Input) lookup(r Rule) (value any, present bool) {
	if r.Source == Path {
		s, ok := in.params[r.Field]
		if !ok {
			return jsonAbsent(""), false
		}
		return s, true
	}

	raw, ok := in.body[r.Field]
	if !ok || raw == nil {
		return jsonAbsent(""), false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return jsonNumber(numberText(v)), true
	case bool:
		return jsonBool(strconv.FormatBool(v)), true
	default:
		return nil, true
	}
}

// numberText renders a JSON number in plain decimal. Integral values such as
// 30.0 or 1e5 become "30" and "100000" so the int and numeric checks see the
// value rather than its spelling.
func numberText(n json.Number) string {
	s := n.String()
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Has reports whether the body field is present and not null.
func (in *Input) Has(field string) bool {
	v, ok := in.body[field]
	return ok && v != nil
}

func (in *Input) text(field string) string {
	switch v := in.body[field].(type) {
	case string:
		return v
	case json.Number:
		return numberText(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// String returns the field's text form.
func (in *Input) String(field string) string {
	return in.text(field)
}

// OptString returns nil for an absent or null field.
func (in *Input) OptString(field string) *string {
	if !in.Has(field) {
		return nil
	}
	s := in.text(field)
	return &s
}

func (in *Input) Int(field string) int64 {
	n, _ := strconv.ParseInt(in.text(field), 10, 64)
	return n
}

func (in *Input) Float(field string) float64 {
	f, _ := strconv.ParseFloat(in.text(field), 64)
	return f
}

func (in *Input) Bool(field string) bool {
	b, _ := strconv.ParseBool(in.text(field))
	return b
}

func (in *Input) Time(field string) time.Time {
	t, _ := parseTime(in.text(field))
	return t
}

// ParamInt returns a path parameter as an integer.
func (in *Input) ParamInt(name string) int64 {
	n, _ := strconv.ParseInt(in.params[name], 10, 64)
	return n
}
