package table

import (
	"fmt"
	"time"
)

// Value represents a canonical typed cell value after normalization.
type Value struct {
	Kind      ValueKind  `json:"kind"`
	NumberVal *float64   `json:"number_val,omitempty"`
	TextVal   *string    `json:"text_val,omitempty"`
	TimeVal   *time.Time `json:"time_val,omitempty"`
}

// ValueKind defines the storage shape of a normalized value. Currency,
// number and percentage all normalize to numbers (percentages as fractions).
type ValueKind string

const (
	KindNumber ValueKind = "number"
	KindText   ValueKind = "text"
	KindTime   ValueKind = "time"
)

// NewNumberValue creates a numeric value
func NewNumberValue(n float64) Value {
	return Value{Kind: KindNumber, NumberVal: &n}
}

// NewTextValue creates a text value
func NewTextValue(s string) Value {
	return Value{Kind: KindText, TextVal: &s}
}

// NewTimeValue creates a time value
func NewTimeValue(t time.Time) Value {
	return Value{Kind: KindTime, TimeVal: &t}
}

// IsNumber returns true if the value holds a number
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber && v.NumberVal != nil
}

// IsText returns true if the value holds text
func (v Value) IsText() bool {
	return v.Kind == KindText && v.TextVal != nil
}

// IsTime returns true if the value holds a time
func (v Value) IsTime() bool {
	return v.Kind == KindTime && v.TimeVal != nil
}

// AsFloat64 returns the numeric value, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumberVal != nil {
		return *v.NumberVal
	}
	return 0
}

// AsString returns the text value, or empty string if not text
func (v Value) AsString() string {
	if v.TextVal != nil {
		return *v.TextVal
	}
	return ""
}

// AsTime returns the time value, or the zero time if not a time
func (v Value) AsTime() time.Time {
	if v.TimeVal != nil {
		return *v.TimeVal
	}
	return time.Time{}
}

// String returns a display representation of the value
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		if v.NumberVal != nil {
			return fmt.Sprintf("%g", *v.NumberVal)
		}
	case KindText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case KindTime:
		if v.TimeVal != nil {
			return v.TimeVal.Format("2006-01-02")
		}
	}
	return "<invalid>"
}
