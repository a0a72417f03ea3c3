// Package validation checks untyped request payloads against fixed per-entity
// rule tables and coerces validated values into typed fields.
package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// FieldError is one failed field, keyed by its payload name.
type FieldError = apperrors.FieldError

// Result is the outcome of validating one payload. Errors lists every failure.
type Result struct {
	IsValid bool
	Errors  []FieldError
}

// Err returns a *apperrors.ValidationError for an invalid result, nil otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return &apperrors.ValidationError{Fields: r.Errors}
}

// Kind selects the type check applied to a present field.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindInteger
	KindDate
	KindEnum
	KindUUID
	KindBool
)

// Rule describes one payload field.
type Rule struct {
	Field    string
	Label    string
	Required bool
	Kind     Kind
	Min      *decimal.Decimal
	Max      *decimal.Decimal
	Options  []string
}

// Rules is an ordered rule table. Error order follows table order.
type Rules []Rule

var validate = validator.New()

// Validate checks p against rules. Missing required fields are reported first,
// then type, bound, date and enum failures of the fields that are present.
func Validate(rules Rules, p Payload) Result {
	var errs []FieldError

	for _, r := range rules {
		if r.Required && !p.Present(r.Field) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Label + " is required"})
		}
	}

	for _, r := range rules {
		if !p.Present(r.Field) {
			continue
		}
		if msg := checkValue(r, p[r.Field]); msg != "" {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Label + " " + msg})
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func checkValue(r Rule, v any) string {
	switch r.Kind {
	case KindText:
		if !isText(v) {
			return "must be text"
		}
	case KindNumber, KindInteger:
		d, ok := toDecimal(v)
		if !ok {
			return "must be a valid number"
		}
		if r.Kind == KindInteger && !d.IsInteger() {
			return "must be a whole number"
		}
		if r.Min != nil && d.LessThan(*r.Min) {
			return "must be at least " + r.Min.String()
		}
		if r.Max != nil && d.GreaterThan(*r.Max) {
			return "must be at most " + r.Max.String()
		}
	case KindDate:
		if _, ok := toDate(v); !ok {
			return "must be a valid date"
		}
	case KindEnum:
		s, ok := v.(string)
		if !ok || validate.Var(strings.TrimSpace(s), "oneof="+strings.Join(r.Options, " ")) != nil {
			return "must be one of: " + strings.Join(r.Options, ", ")
		}
	case KindUUID:
		s, ok := v.(string)
		if !ok || validate.Var(strings.TrimSpace(s), "uuid") != nil {
			return "must be a valid identifier"
		}
	case KindBool:
		if _, ok := toBool(v); !ok {
			return "must be true or false"
		}
	}
	return ""
}

// isText accepts strings and bare numbers, which are stored in their decimal form.
func isText(v any) bool {
	switch v.(type) {
	case string, json.Number, float64, int, int64:
		return true
	}
	return false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch v.(type) {
	case bool, map[string]any, []any:
		return decimal.Decimal{}, false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano}

func toDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func toBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func bound(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func options[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
