package host

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicateModel is returned when a slug is registered twice.
	ErrDuplicateModel = errors.New("duplicate model")
	// ErrUnknownModel is returned when a slug has no registered model.
	ErrUnknownModel = errors.New("unknown model")
)

// Model describes a module type.
type Model struct {
	Slug    string
	Name    string
	Version string
	Tags    []string
	New     Factory
}

// Registry maps model slugs to models. It is not safe for concurrent
// registration; populate it before starting the engine.
type Registry struct {
	models map[string]Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// Register adds a model.
func (r *Registry) Register(m Model) error {
	if m.Slug == "" {
		return errors.New("host: empty model slug")
	}

	if m.New == nil {
		return fmt.Errorf("host: model %s: nil factory", m.Slug)
	}

	if _, exists := r.models[m.Slug]; exists {
		return fmt.Errorf("host: %w: %s", ErrDuplicateModel, m.Slug)
	}

	r.models[m.Slug] = m

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(m Model) {
	err := r.Register(m)
	if err != nil {
		panic(err.Error())
	}
}

// Lookup returns the model registered under slug.
func (r *Registry) Lookup(slug string) (Model, error) {
	m, ok := r.models[slug]
	if !ok {
		return Model{}, fmt.Errorf("host: %w: %s", ErrUnknownModel, slug)
	}

	return m, nil
}

// Models returns all models sorted by slug.
func (r *Registry) Models() []Model {
	out := make([]Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}

	slices.SortFunc(out, func(a, b Model) int { return strings.Compare(a.Slug, b.Slug) })

	return out
}
