package listprovider

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type providerDoc struct {
	Default      string            `yaml:"default"`
	Translatable bool              `yaml:"translatable"`
	Options      map[string]string `yaml:"options"`
}

// LoadRegistry builds a registry of static providers from a YAML document
// keyed by list id:
//
//	LANGUAGES:
//	  default: eng
//	  translatable: true
//	  options:
//	    eng: English
//	    ger: German
func LoadRegistry(data []byte) (*Registry, error) {
	var docs map[string]providerDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("listprovider: parse providers: %w", err)
	}
	registry := NewRegistry()
	for listID, doc := range docs {
		provider := StaticProvider{
			Options:      doc.Options,
			DefaultKey:   doc.Default,
			CanTranslate: doc.Translatable,
		}
		if err := registry.Register(listID, provider); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
