package metadata

import "encoding/json"

// Collection is an ordered set of materialized fields keyed by their output
// identifier. Insertion order determines display order upstream; fields with
// an explicit Order index are placed at that position instead.
type Collection struct {
	fields   []*Field
	byOutput map[string]*Field
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byOutput: make(map[string]*Field)}
}

// Add inserts a field. When the field carries an explicit non-negative Order
// it is placed at that index (clamped to the current size); otherwise it is
// appended. A field with the same output id replaces the earlier entry's
// index mapping.
func (c *Collection) Add(f *Field) {
	if f == nil {
		return
	}
	if c.byOutput == nil {
		c.byOutput = make(map[string]*Field)
	}
	idx := len(c.fields)
	if f.Order != nil && *f.Order >= 0 && *f.Order < idx {
		idx = *f.Order
	}
	c.fields = append(c.fields, nil)
	copy(c.fields[idx+1:], c.fields[idx:])
	c.fields[idx] = f
	c.byOutput[f.Output()] = f
}

// Fields returns the fields in display order. The slice is shared; callers
// must not modify it.
func (c *Collection) Fields() []*Field {
	return c.fields
}

// Get returns the field published under the given output identifier.
func (c *Collection) Get(outputID string) (*Field, bool) {
	f, ok := c.byOutput[outputID]
	return f, ok
}

// Len reports the number of fields.
func (c *Collection) Len() int {
	return len(c.fields)
}

// GetCopy returns a new collection in which every field is independently
// duplicated, preserving order. Mutating a copied field's value never
// affects the original.
func (c *Collection) GetCopy() *Collection {
	out := NewCollection()
	for _, f := range c.fields {
		copied := f.Copy()
		out.fields = append(out.fields, copied)
		out.byOutput[copied.Output()] = copied
	}
	return out
}

// MarshalJSON serialises the collection as an ordered array of fields, the
// shape the admin UI consumes.
func (c *Collection) MarshalJSON() ([]byte, error) {
	if c.fields == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.fields)
}
