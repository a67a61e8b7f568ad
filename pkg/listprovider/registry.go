package listprovider

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Registry is an in-memory Service. Providers register under a list id;
// lookups against unknown ids fail with ErrNotFound. Labels returned by
// GetList are stripped of markup before they reach UI consumers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider

	sanitizer *bluemonday.Policy
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Register adds or replaces the provider for the given list id.
func (r *Registry) Register(listID string, provider Provider) error {
	listID = strings.TrimSpace(listID)
	if listID == "" {
		return fmt.Errorf("listprovider: register: empty list id")
	}
	if provider == nil {
		return fmt.Errorf("listprovider: register %q: nil provider", listID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[listID] = provider
	return nil
}

// Unregister removes the provider for the given list id, if any.
func (r *Registry) Unregister(listID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, listID)
}

// ListIDs returns the registered list ids in lexical order.
func (r *Registry) ListIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetList implements Service.
func (r *Registry) GetList(listID string, query Query, translate bool) (map[string]string, error) {
	provider, err := r.lookup(listID)
	if err != nil {
		return nil, err
	}
	options, err := provider.List(query, translate)
	if err != nil {
		return nil, fmt.Errorf("listprovider: list %q: %w", listID, err)
	}
	if options == nil {
		return nil, nil
	}
	out := make(map[string]string, len(options))
	for key, label := range options {
		out[key] = r.sanitizer.Sanitize(label)
	}
	return out, nil
}

// IsTranslatable implements Service.
func (r *Registry) IsTranslatable(listID string) (bool, error) {
	provider, err := r.lookup(listID)
	if err != nil {
		return false, err
	}
	return provider.Translatable(), nil
}

// GetDefault implements Service.
func (r *Registry) GetDefault(listID string) (string, error) {
	provider, err := r.lookup(listID)
	if err != nil {
		return "", err
	}
	return provider.Default(), nil
}

func (r *Registry) lookup(listID string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[listID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, listID)
	}
	return provider, nil
}
