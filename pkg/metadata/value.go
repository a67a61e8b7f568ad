package metadata

import "time"

// Value is the closed set of runtime shapes a field value can take. Exactly
// one variant is legal per FieldType; SetValue enforces the pairing.
type Value interface {
	fieldValue()
}

// BoolValue backs boolean fields.
type BoolValue bool

// StringValue backs text, text_long, ordered_text and start_date fields.
type StringValue string

// StringListValue backs iterable_text and mixed_text fields. Order is
// significant.
type StringListValue []string

// LongValue backs long fields.
type LongValue int64

// MillisValue backs duration fields, counted in milliseconds.
type MillisValue int64

// DateValue backs date fields.
type DateValue struct {
	time.Time
}

func (BoolValue) fieldValue()       {}
func (StringValue) fieldValue()     {}
func (StringListValue) fieldValue() {}
func (LongValue) fieldValue()       {}
func (MillisValue) fieldValue()     {}
func (DateValue) fieldValue()       {}

func copyValue(v Value) Value {
	if list, ok := v.(StringListValue); ok {
		out := make(StringListValue, len(list))
		copy(out, list)
		return out
	}
	return v
}
