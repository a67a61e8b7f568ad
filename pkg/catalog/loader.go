// Package catalog loads catalog definitions and materializes their metadata
// collections. A definition names a catalog flavor and an ordered list of
// field templates; raw values for those templates arrive separately, e.g.
// from an edited form.
package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/esnalabu/opencast/pkg/metadata"
)

// Definition describes one catalog: its flavor, display title and field
// templates in declaration order.
type Definition struct {
	Flavor string
	Title  string
	Fields []*metadata.Field
}

type definitionDoc struct {
	Flavor string     `yaml:"flavor"`
	Title  string     `yaml:"title"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	ID           string `yaml:"id"`
	OutputID     string `yaml:"output_id"`
	Type         string `yaml:"type"`
	Label        string `yaml:"label"`
	Required     bool   `yaml:"required"`
	ReadOnly     bool   `yaml:"read_only"`
	Order        *int   `yaml:"order"`
	Namespace    string `yaml:"namespace"`
	Pattern      string `yaml:"pattern"`
	Delimiter    string `yaml:"delimiter"`
	ListProvider string `yaml:"list_provider"`
	CollectionID string `yaml:"collection_id"`
}

// LoadFS walks the provided filesystem and parses every YAML catalog
// definition, returned sorted by flavor. When fsys is nil the result is
// empty.
func LoadFS(fsys fs.FS) ([]Definition, error) {
	var definitions []Definition
	if fsys == nil {
		return definitions, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		def, err := ParseDefinition(data, path)
		if err != nil {
			return err
		}
		definitions = append(definitions, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Flavor < definitions[j].Flavor
	})
	return definitions, nil
}

// ParseDefinition decodes and validates a single catalog definition. source
// names the file for error context.
func ParseDefinition(data []byte, source string) (Definition, error) {
	var doc definitionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	if strings.TrimSpace(doc.Flavor) == "" {
		return Definition{}, fmt.Errorf("catalog: file %s is missing a flavor", source)
	}
	if len(doc.Fields) == 0 {
		return Definition{}, fmt.Errorf("catalog: file %s defines no fields", source)
	}

	def := Definition{
		Flavor: strings.TrimSpace(doc.Flavor),
		Title:  strings.TrimSpace(doc.Title),
		Fields: make([]*metadata.Field, 0, len(doc.Fields)),
	}
	seen := make(map[string]struct{}, len(doc.Fields))
	for i, raw := range doc.Fields {
		field, err := raw.toField()
		if err != nil {
			return Definition{}, fmt.Errorf("catalog: file %s, field %d: %w", source, i, err)
		}
		if _, dup := seen[field.InputID]; dup {
			return Definition{}, fmt.Errorf("catalog: file %s declares field %q twice", source, field.InputID)
		}
		seen[field.InputID] = struct{}{}
		def.Fields = append(def.Fields, field)
	}
	return def, nil
}

func (d fieldDoc) toField() (*metadata.Field, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return nil, fmt.Errorf("empty field id")
	}
	fieldType, err := metadata.ParseFieldType(strings.TrimSpace(d.Type))
	if err != nil {
		return nil, err
	}
	return &metadata.Field{
		InputID:      id,
		OutputID:     strings.TrimSpace(d.OutputID),
		Type:         fieldType,
		Label:        d.Label,
		Required:     d.Required,
		ReadOnly:     d.ReadOnly,
		Order:        d.Order,
		Namespace:    strings.TrimSpace(d.Namespace),
		Pattern:      d.Pattern,
		Delimiter:    d.Delimiter,
		ListProvider: strings.TrimSpace(d.ListProvider),
		CollectionID: strings.TrimSpace(d.CollectionID),
	}, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
