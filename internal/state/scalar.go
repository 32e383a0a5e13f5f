package state

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Number is a JSON scalar that producers write either as a number or as a
// numeric string ("0.55"). Decoding never fails: values of any other shape
// are kept as text and reported as non-numeric.
type Number struct {
	raw     string
	value   float64
	present bool
	numeric bool
}

// NewNumber returns a present numeric value. Used by tests and fixtures.
func NewNumber(v float64) Number {
	return Number{
		raw:     strconv.FormatFloat(v, 'f', -1, 64),
		value:   v,
		present: true,
		numeric: true,
	}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	n.present = true
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.raw = string(data)
			return nil
		}
		n.raw = s
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.value = v
			n.numeric = true
		}
		return nil
	}

	n.raw = string(data)
	if v, err := strconv.ParseFloat(n.raw, 64); err == nil {
		n.value = v
		n.numeric = true
	}
	return nil
}

// Present reports whether the field was in the document and not null.
func (n Number) Present() bool { return n.present }

// Numeric reports whether the value parsed as a number.
func (n Number) Numeric() bool { return n.numeric }

// Float returns the numeric value, or 0.
func (n Number) Float() float64 { return n.FloatOr(0) }

// FloatOr returns the numeric value, or def when absent or non-numeric.
func (n Number) FloatOr(def float64) float64 {
	if !n.numeric {
		return def
	}
	return n.value
}

// NonZero reports whether the value is numeric and not zero. Producers use
// 0 and absence interchangeably for optional trade fields.
func (n Number) NonZero() bool {
	return n.numeric && n.value != 0
}

// Raw returns the literal text as written by the producer.
func (n Number) Raw() string { return n.raw }

// RawOr returns the literal text, or def when absent.
func (n Number) RawOr(def string) string {
	if !n.present {
		return def
	}
	return n.raw
}

// Text is a JSON scalar expected to be a string. Numbers and booleans are
// kept as their literal text; null and absence both mean "not set".
type Text struct {
	value   string
	present bool
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	t.present = true
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			t.value = s
			return nil
		}
	}
	t.value = string(data)
	return nil
}

// Present reports whether the field was set.
func (t Text) Present() bool { return t.present }

// String returns the value, empty when absent.
func (t Text) String() string { return t.value }

// Or returns the value, or def when absent.
func (t Text) Or(def string) string {
	if !t.present {
		return def
	}
	return t.value
}

// Positions is a list of our holdings. A value that is not a JSON array
// decodes as no positions.
type Positions []Position

// UnmarshalJSON implements json.Unmarshaler
func (p *Positions) UnmarshalJSON(data []byte) error {
	*p = decodeObjects[Position](data)
	return nil
}

// Targets is the list of watched wallets.
type Targets []Target

// UnmarshalJSON implements json.Unmarshaler
func (t *Targets) UnmarshalJSON(data []byte) error {
	*t = decodeObjects[Target](data)
	return nil
}

// WhalePositions is the holdings list of one watched wallet.
type WhalePositions []WhalePosition

// UnmarshalJSON implements json.Unmarshaler
func (w *WhalePositions) UnmarshalJSON(data []byte) error {
	*w = decodeObjects[WhalePosition](data)
	return nil
}

// tradeFields has the fields of Trade without its decoder.
type tradeFields Trade

// UnmarshalJSON implements json.Unmarshaler. Anything but an object leaves
// the trade empty, which callers treat as no trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	*t = Trade{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var fields tradeFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	*t = Trade(fields)
	return nil
}

// decodeObjects decodes a JSON array keeping only the elements that decode
// into T. Anything but an array yields nil.
func decodeObjects[T any](data []byte) []T {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var items []jsoniter.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
