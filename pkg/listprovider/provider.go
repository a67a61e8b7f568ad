// Package listprovider exposes enumerated option vocabularies (list
// providers) to catalog metadata fields. A provider maps option keys to
// display labels and may carry a default key and a translatable flag.
package listprovider

import (
	"errors"
	"strings"
)

// ErrNotFound is wrapped by Service lookups when no provider is registered
// for the requested list id. Metadata construction treats it as "no
// vocabulary available" rather than a failure.
var ErrNotFound = errors.New("listprovider: provider not found")

// Query narrows a list lookup. The zero value requests the full list.
type Query struct {
	Limit  int
	Offset int
	Filter string
}

// Service is the gateway consumed by metadata materialization. Every method
// may be backed by network or storage and may fail; callers are expected to
// degrade gracefully when they do.
type Service interface {
	// GetList returns the option key to label mapping for the list id,
	// optionally translated into the active display language.
	GetList(listID string, query Query, translate bool) (map[string]string, error)

	// IsTranslatable reports whether the list's labels are translation keys.
	IsTranslatable(listID string) (bool, error)

	// GetDefault returns the list's default option key, or the empty string
	// when the list defines none.
	GetDefault(listID string) (string, error)
}

// Provider supplies the options for a single list id.
type Provider interface {
	List(query Query, translate bool) (map[string]string, error)
	Translatable() bool
	Default() string
}

// StaticProvider is a map-backed Provider for fixed vocabularies.
type StaticProvider struct {
	Options      map[string]string
	DefaultKey   string
	CanTranslate bool
}

// List returns the provider's options, applying the query filter and window.
func (p StaticProvider) List(query Query, _ bool) (map[string]string, error) {
	if query == (Query{}) {
		out := make(map[string]string, len(p.Options))
		for k, v := range p.Options {
			out[k] = v
		}
		return out, nil
	}
	out := make(map[string]string)
	skipped, taken := 0, 0
	for k, v := range p.Options {
		if query.Filter != "" && !matchesFilter(k, v, query.Filter) {
			continue
		}
		if skipped < query.Offset {
			skipped++
			continue
		}
		if query.Limit > 0 && taken >= query.Limit {
			break
		}
		out[k] = v
		taken++
	}
	return out, nil
}

func matchesFilter(key, label, filter string) bool {
	filter = strings.ToLower(filter)
	return strings.Contains(strings.ToLower(key), filter) ||
		strings.Contains(strings.ToLower(label), filter)
}

// Translatable reports the provider's translatable flag.
func (p StaticProvider) Translatable() bool { return p.CanTranslate }

// Default returns the provider's default option key.
func (p StaticProvider) Default() string { return p.DefaultKey }
