// Package validation checks JSON request bodies against explicit field
// schemas before they reach a handler.
//
// A Schema lists every accepted field with its type and rules. Keys that are
// not declared are rejected, numeric fields may arrive as numeric strings and
// are coerced, and every violation found in a body is reported at once.
// Rules use go-playground/validator tag syntax and are evaluated per value
// with Validate.Var, so no struct tags are involved.
package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind is the JSON type a field must carry.
type Kind int

const (
	String Kind = iota + 1
	Number
	Integer
)

// Field declares one accepted body field.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Rules is a validator tag list such as "min=5,max=100".
	Rules string
	// Messages overrides the default message of a rule, keyed by tag.
	Messages map[string]string
}

// Schema is an ordered set of fields. It is safe for concurrent use.
type Schema struct {
	fields   []Field
	declared map[string]struct{}
	validate *validator.Validate
}

var validate = validator.New()

// NewSchema builds a schema from fields. Violations are reported in the
// order the fields are given here.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{
		fields:   fields,
		declared: make(map[string]struct{}, len(fields)),
		validate: validate,
	}
	for _, f := range fields {
		s.declared[f.Name] = struct{}{}
	}
	return s
}

// Validate decodes body and checks it against the schema. On success the
// returned Values hold the present fields converted to string, float64 or
// int. On failure the error is an *Error.
func (s *Schema) Validate(body []byte) (Values, error) {
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
			return nil, &Error{Violations: []string{"request body must be a JSON object"}}
		}
	}

	var unknown []string
	for name := range raw {
		if _, ok := s.declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &Error{Unknown: unknown}
	}

	values := make(Values, len(raw))
	var violations []string
	for _, f := range s.fields {
		msg, val, present := s.checkField(f, raw[f.Name])
		if msg != "" {
			violations = append(violations, msg)
			continue
		}
		if present {
			values[f.Name] = val
		}
	}
	if len(violations) > 0 {
		return nil, &Error{Violations: violations}
	}
	return values, nil
}

// checkField returns a violation message, or the coerced value and whether
// the field was present at all.
func (s *Schema) checkField(f Field, raw json.RawMessage) (string, interface{}, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		if f.Required {
			return f.Name + " should not be empty", nil, false
		}
		return "", nil, false
	}

	var val interface{}
	switch f.Kind {
	case String:
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return f.Name + " must be a string", nil, false
		}
		if f.Required && str == "" {
			return f.Name + " should not be empty", nil, false
		}
		val = str
	case Number:
		num, ok := coerceNumber(raw)
		if !ok {
			return f.Name + " must be a number", nil, false
		}
		val = num
	case Integer:
		num, ok := coerceNumber(raw)
		if !ok || num != math.Trunc(num) || math.Abs(num) > math.MaxInt32 {
			return f.Name + " must be an integer number", nil, false
		}
		val = int(num)
	}

	if f.Rules != "" {
		if err := s.validate.Var(val, f.Rules); err != nil {
			return ruleMessage(f, err), nil, false
		}
	}
	return "", val, true
}

// coerceNumber accepts a JSON number or a string holding one.
func coerceNumber(raw json.RawMessage) (float64, bool) {
	var num float64
	if raw[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return 0, false
		}
		num = parsed
	} else if err := json.Unmarshal(raw, &num); err != nil {
		return 0, false
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}
