package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mhr-catalog/core/reconcile"
	"mhr-catalog/feature/catalog/source"
)

// Catalog kinds, also used as adapter names and route parameters.
const (
	KindSkills      = "skills"
	KindDecorations = "decorations"
	KindArmors      = "armors"
)

// Kinds lists the catalog kinds in report order.
var Kinds = [...]string{KindSkills, KindDecorations, KindArmors}

// Opener returns the source reading catalogs at a location.
type Opener func(location string) source.Source

// adapter implements reconcile.Adapter for one catalog kind.
type adapter[T any] struct {
	kind      string
	built     Opener
	published Opener
	load      func(context.Context, source.Source) ([]T, error)
	id        func(T) string
	name      func(T) string
	compare   func(built, published T) []string
}

func (a *adapter[T]) Name() string {
	return a.kind
}

func (a *adapter[T]) LoadBuiltIndex(ctx context.Context, location string) (map[string]reconcile.Item, error) {
	items, err := a.load(ctx, a.built(location))
	if err != nil {
		return nil, fmt.Errorf("failed to load built %s: %w", a.kind, err)
	}
	return a.index(items), nil
}

func (a *adapter[T]) LoadPublishedIndex(ctx context.Context, location string) (map[string]reconcile.Item, error) {
	items, err := a.load(ctx, a.published(location))
	if errors.Is(err, source.ErrNotFound) {
		return map[string]reconcile.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load published %s: %w", a.kind, err)
	}
	return a.index(items), nil
}

func (a *adapter[T]) index(items []T) map[string]reconcile.Item {
	index := make(map[string]reconcile.Item, len(items))
	for _, item := range items {
		index[a.id(item)] = item
	}
	return index
}

func (a *adapter[T]) ResolveName(built, published reconcile.Item) string {
	if built != nil {
		return a.name(built.(T))
	}
	if published != nil {
		return a.name(published.(T))
	}
	return ""
}

func (a *adapter[T]) CompareFields(built, published reconcile.Item) []string {
	return a.compare(built.(T), published.(T))
}

// NewAdapter returns the adapter of a catalog kind.
func NewAdapter(kind string, built, published Opener) (reconcile.Adapter, error) {
	switch kind {
	case KindSkills:
		return NewSkillAdapter(built, published), nil
	case KindDecorations:
		return NewDecorationAdapter(built, published), nil
	case KindArmors:
		return NewArmorAdapter(built, published), nil
	default:
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
}

// Specs returns one reconcile spec per catalog kind comparing the catalogs built in
// builtDir with the ones published under prefix.
func Specs(built, published Opener, builtDir, prefix string, opts ...SpecOption) []*reconcile.Spec {
	specs := make([]*reconcile.Spec, 0, len(Kinds))
	for _, kind := range Kinds {
		a, _ := NewAdapter(kind, built, published)
		spec := &reconcile.Spec{
			Adapter:           a,
			BuiltLocation:     builtDir,
			PublishedLocation: prefix,
		}
		for _, opt := range opts {
			opt(spec)
		}
		specs = append(specs, spec)
	}
	return specs
}

// SpecOption customizes the specs returned by Specs.
type SpecOption func(*reconcile.Spec)

// WithCacheTTL caches the loaded indexes of each spec for ttl.
func WithCacheTTL(ttl time.Duration) SpecOption {
	return func(s *reconcile.Spec) {
		s.CacheTTL = ttl
	}
}
