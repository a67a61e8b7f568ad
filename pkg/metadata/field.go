// Package metadata materializes typed, UI-consumable catalog field
// descriptors from field templates, raw string values and an optional list
// provider gateway.
package metadata

import (
	"fmt"
)

// FieldType enumerates the closed set of catalog field kinds.
type FieldType string

const (
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeDate         FieldType = "date"
	FieldTypeDuration     FieldType = "duration"
	FieldTypeIterableText FieldType = "iterable_text"
	FieldTypeMixedText    FieldType = "mixed_text"
	FieldTypeLong         FieldType = "long"
	FieldTypeText         FieldType = "text"
	FieldTypeTextLong     FieldType = "text_long"
	FieldTypeStartDate    FieldType = "start_date"
	FieldTypeOrderedText  FieldType = "ordered_text"
)

// DefaultDatePattern is the layout applied to date and start_date fields
// whose template does not declare one.
const DefaultDatePattern = "2006-01-02T15:04:05.000Z"

// fieldTypes is the closed set; anything outside it is a schema error.
var fieldTypes = map[FieldType]struct{}{
	FieldTypeBoolean:      {},
	FieldTypeDate:         {},
	FieldTypeDuration:     {},
	FieldTypeIterableText: {},
	FieldTypeMixedText:    {},
	FieldTypeLong:         {},
	FieldTypeText:         {},
	FieldTypeTextLong:     {},
	FieldTypeStartDate:    {},
	FieldTypeOrderedText:  {},
}

// Valid reports whether the type belongs to the closed set.
func (t FieldType) Valid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// MultiValued reports whether the type accepts more than one value.
func (t FieldType) MultiValued() bool {
	return t == FieldTypeIterableText || t == FieldTypeMixedText
}

// ParseFieldType maps a configuration string onto the closed type set.
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
	return t, nil
}

// Field describes a single catalog attribute: its identifiers, type, display
// metadata, optional vocabulary binding and, once materialized, its value.
type Field struct {
	InputID      string            `json:"id"`
	OutputID     string            `json:"outputId,omitempty"`
	Type         FieldType         `json:"type"`
	Label        string            `json:"label,omitempty"`
	Value        Value             `json:"value,omitempty"`
	Required     bool              `json:"required"`
	ReadOnly     bool              `json:"readOnly"`
	Order        *int              `json:"order,omitempty"`
	Namespace    string            `json:"namespace,omitempty"`
	Pattern      string            `json:"pattern,omitempty"`
	Delimiter    string            `json:"delimiter,omitempty"`
	ListProvider string            `json:"listProvider,omitempty"`
	CollectionID string            `json:"collectionId,omitempty"`
	Translatable *bool             `json:"translatable,omitempty"`
	Options      map[string]string `json:"collection,omitempty"`
}

// NewBooleanField returns an empty boolean field descriptor.
func NewBooleanField(inputID string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeBoolean}
}

// NewDateField returns an empty date field descriptor using the given layout
// pattern; an empty pattern falls back to DefaultDatePattern at
// materialization time.
func NewDateField(inputID, pattern string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeDate, Pattern: pattern}
}

// NewDurationField returns an empty duration field descriptor.
func NewDurationField(inputID string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeDuration}
}

// NewIterableTextField returns an empty multi-valued text field descriptor.
func NewIterableTextField(inputID, delimiter string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeIterableText, Delimiter: delimiter}
}

// NewMixedTextField returns an empty mixed text field descriptor, a
// multi-valued field whose UI accepts free text alongside vocabulary options.
func NewMixedTextField(inputID, delimiter string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeMixedText, Delimiter: delimiter}
}

// NewLongField returns an empty integer field descriptor.
func NewLongField(inputID string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeLong}
}

// NewTextField returns an empty single-line text field descriptor.
func NewTextField(inputID string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeText}
}

// NewTextLongField returns an empty multi-line text field descriptor.
func NewTextLongField(inputID string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeTextLong}
}

// NewStartDateField returns an empty temporal start date field descriptor.
// The raw value is stored verbatim; pattern describes its layout to the UI.
func NewStartDateField(inputID, pattern string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeStartDate, Pattern: pattern}
}

// NewOrderedTextField returns an empty ordered text field descriptor.
func NewOrderedTextField(inputID string) *Field {
	return &Field{InputID: inputID, Type: FieldTypeOrderedText}
}

// Output returns the identifier the field is published under: the explicit
// OutputID when set, otherwise the namespace-qualified InputID.
func (f *Field) Output() string {
	if f.OutputID != "" {
		return f.OutputID
	}
	if f.Namespace != "" {
		return f.Namespace + ":" + f.InputID
	}
	return f.InputID
}

// SetValue assigns a value after checking it matches the field's declared
// type. A nil value clears the field.
func (f *Field) SetValue(v Value) error {
	if v == nil {
		f.Value = nil
		return nil
	}
	if !shapeMatches(f.Type, v) {
		return fmt.Errorf("metadata: field %q: value %T does not match type %q", f.InputID, v, f.Type)
	}
	f.Value = v
	return nil
}

func shapeMatches(t FieldType, v Value) bool {
	switch t {
	case FieldTypeBoolean:
		_, ok := v.(BoolValue)
		return ok
	case FieldTypeDate:
		_, ok := v.(DateValue)
		return ok
	case FieldTypeDuration:
		_, ok := v.(MillisValue)
		return ok
	case FieldTypeLong:
		_, ok := v.(LongValue)
		return ok
	case FieldTypeIterableText, FieldTypeMixedText:
		_, ok := v.(StringListValue)
		return ok
	case FieldTypeText, FieldTypeTextLong, FieldTypeOrderedText, FieldTypeStartDate:
		_, ok := v.(StringValue)
		return ok
	default:
		return false
	}
}

// Copy returns an independent duplicate of the field. Mutating the copy's
// value, order or options never affects the original.
func (f *Field) Copy() *Field {
	out := *f
	if f.Order != nil {
		order := *f.Order
		out.Order = &order
	}
	if f.Translatable != nil {
		translatable := *f.Translatable
		out.Translatable = &translatable
	}
	if f.Options != nil {
		out.Options = make(map[string]string, len(f.Options))
		for k, v := range f.Options {
			out.Options[k] = v
		}
	}
	if f.Value != nil {
		out.Value = copyValue(f.Value)
	}
	return &out
}

// copyDescriptor duplicates the field without its value, the starting point
// for a materialized output field.
func (f *Field) copyDescriptor() *Field {
	out := f.Copy()
	out.Value = nil
	return out
}
