package model

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apimodel/pkg/convert"
)

var (
	// ErrUnknownModel is returned when a name has no registered descriptor.
	ErrUnknownModel = errors.New("model: unknown model")
	// ErrDuplicateModel is returned when a name is registered twice.
	ErrDuplicateModel = errors.New("model: model already registered")
	// ErrInvalidDescriptor is returned for descriptors missing a name or hydrator.
	ErrInvalidDescriptor = errors.New("model: invalid descriptor")
)

// Descriptor is the registry view of a generated model.
type Descriptor struct {
	Name    string
	Fields  []Field
	Schema  *openapi3.Schema
	Hydrate convert.HydrateFunc
}

// Type returns a converter descriptor referencing the model.
func (d Descriptor) Type() convert.Type {
	return convert.ModelOf(d.Name, d.Hydrate)
}

// Validate checks data against the model schema. Descriptors without a schema
// accept anything. Hydration never calls Validate; callers opt in.
func (d Descriptor) Validate(data map[string]any) error {
	if d.Schema == nil {
		return nil
	}
	if err := d.Schema.VisitJSON(data, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("model %s: validate: %w", d.Name, err)
	}
	return nil
}

// Registry indexes descriptors by model name. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Descriptor
}

// NewRegistry constructs a registry with the built-in models registered.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry without built-ins.
func NewEmptyRegistry() *Registry {
	return &Registry{models: make(map[string]Descriptor)}
}

func (r *Registry) registerBuiltins() {
	_ = r.Register(ListDescriptor())
}

// Register adds a descriptor. Names are trimmed and must be unique.
func (r *Registry) Register(desc Descriptor) error {
	if r == nil {
		return errors.New("model: registry is nil")
	}
	name := strings.TrimSpace(desc.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDescriptor)
	}
	if desc.Hydrate == nil {
		return fmt.Errorf("%w: %q has no hydrator", ErrInvalidDescriptor, name)
	}
	desc.Name = name
	desc.Fields = cloneFields(desc.Fields)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.models[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModel, name)
	}
	r.models[name] = desc
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.models[strings.TrimSpace(name)]
	if !ok {
		return Descriptor{}, false
	}
	desc.Fields = cloneFields(desc.Fields)
	return desc, true
}

// Names lists registered model names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Hydrate resolves name and builds a new instance from data. Nil data yields
// a nil result and no error.
func (r *Registry) Hydrate(ctx context.Context, name string, data map[string]any, conv convert.Converter) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	desc, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	if data == nil {
		return nil, nil
	}
	if conv == nil {
		conv = convert.Default()
	}
	return desc.Hydrate(data, conv)
}
