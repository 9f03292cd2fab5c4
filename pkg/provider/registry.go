package provider

import (
	"errors"
	"fmt"
	"slices"
)

// Registry holds the configured provider descriptors. It is built once at
// startup and read-only afterwards, which makes unsynchronized concurrent
// reads safe.
type Registry struct {
	descriptors map[string]Descriptor
}

// NewRegistry builds a registry from the given descriptors.
// Every descriptor is validated; duplicate ids are rejected.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{descriptors: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("provider %q: %w", d.ID, err)
		}
		if _, exists := r.descriptors[d.ID]; exists {
			return nil, errors.Join(ErrDuplicateProvider, fmt.Errorf("id %q", d.ID))
		}
		r.descriptors[d.ID] = d
	}
	return r, nil
}

// Resolve returns the descriptor registered under id.
// Returns ErrUnknownProvider when the id has no registered descriptor.
func (r *Registry) Resolve(id string) (Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, errors.Join(ErrUnknownProvider, fmt.Errorf("id %q", id))
	}
	return d, nil
}

// IDs returns the registered provider ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.descriptors))
	for id := range r.descriptors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
