package catalog

import (
	"fmt"
	"strings"

	"github.com/esnalabu/opencast/pkg/listprovider"
	"github.com/esnalabu/opencast/pkg/metadata"
)

// Adapter binds a catalog definition to a list provider service and
// materializes metadata collections from raw form values.
type Adapter struct {
	definition Definition
	providers  listprovider.Service
}

// NewAdapter constructs an adapter. providers may be nil, in which case
// fields proceed without vocabulary enrichment or defaults.
func NewAdapter(definition Definition, providers listprovider.Service) *Adapter {
	return &Adapter{definition: definition, providers: providers}
}

// Definition returns the catalog definition backing the adapter.
func (a *Adapter) Definition() Definition {
	return a.definition
}

// Materialize runs every field template through the materializer in
// definition order. values is keyed by field input id; a missing key
// materializes an empty field (which may still pick up a provider default).
// The first fatal field error aborts and is returned with the flavor for
// context.
func (a *Adapter) Materialize(values map[string][]string) (*metadata.Collection, error) {
	m := metadata.NewMaterializer(nil)
	for _, template := range a.definition.Fields {
		raw := expandDelimited(template, values[template.InputID])
		if err := m.AddField(template, raw, a.providers); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", a.definition.Flavor, err)
		}
	}
	return m.Collection(), nil
}

// expandDelimited splits raw entries of a multi-valued field on its declared
// delimiter, so a form may submit "a,b,c" as one string. Single-valued
// fields and fields without a delimiter pass through untouched.
func expandDelimited(template *metadata.Field, raw []string) []string {
	if !template.Type.MultiValued() || template.Delimiter == "" || len(raw) == 0 {
		return raw
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		out = append(out, strings.Split(entry, template.Delimiter)...)
	}
	return out
}
