package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payload is a decoded JSON object. Numbers should be decoded as json.Number.
//
// A key is absent when it is missing, null or a blank string. The accessors
// below assume the payload already passed Validate and return zero values
// for anything they cannot coerce.
type Payload map[string]any

// Present reports whether key holds a usable value.
func (p Payload) Present(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

// Text returns the trimmed string form of key.
func (p Payload) Text(key string) string {
	if !p.Present(key) || !isText(p[key]) {
		return ""
	}
	if s, ok := p[key].(string); ok {
		return strings.TrimSpace(s)
	}
	d, ok := toDecimal(p[key])
	if ok {
		return d.String()
	}
	return ""
}

// OptionalString returns nil for an absent key so it is stored as NULL.
func (p Payload) OptionalString(key string) *string {
	if !p.Present(key) || !isText(p[key]) {
		return nil
	}
	s := p.Text(key)
	return &s
}

func (p Payload) Decimal(key string) decimal.Decimal {
	d, _ := toDecimal(p[key])
	return d
}

func (p Payload) OptionalDecimal(key string) decimal.NullDecimal {
	if !p.Present(key) {
		return decimal.NullDecimal{}
	}
	d, ok := toDecimal(p[key])
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}

func (p Payload) Int(key string) int {
	d, _ := toDecimal(p[key])
	return int(d.IntPart())
}

func (p Payload) Date(key string) time.Time {
	t, _ := toDate(p[key])
	return t
}

func (p Payload) OptionalDate(key string) *time.Time {
	if !p.Present(key) {
		return nil
	}
	t, ok := toDate(p[key])
	if !ok {
		return nil
	}
	return &t
}

// OptionalBool returns nil when key is absent.
func (p Payload) OptionalBool(key string) *bool {
	if !p.Present(key) {
		return nil
	}
	b, ok := toBool(p[key])
	if !ok {
		return nil
	}
	return &b
}
