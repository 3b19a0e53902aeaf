package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll performs a full reconciliation of one catalog.
// It builds both indices, computes the union of ids, and returns a result for
// each id indicating presence and mismatches, sorted by id.
func ReconcileAll(ctx context.Context, spec *Spec) ([]ReconcileResult, error) {
	cache, err := BuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(cache, spec.Adapter), nil
}

// ReconcileOne reconciles a single id. Cached indices are used when caching is
// enabled; otherwise both indices are loaded.
func ReconcileOne(ctx context.Context, spec *Spec, id string) (*ReconcileResult, error) {
	var (
		cache *ReconcileCache
		err   error
	)
	if spec.CacheTTL > 0 {
		cache, err = GetOrBuildCache(ctx, spec)
	} else {
		cache, err = BuildCache(ctx, spec)
	}
	if err != nil {
		return nil, err
	}

	result := buildResult(id, cache.BuiltIndex, cache.PublishedIndex, spec.Adapter)
	return &result, nil
}

func reconcileFromCache(cache *ReconcileCache, adapter Adapter) []ReconcileResult {
	union := buildUnion(cache.BuiltIndex, cache.PublishedIndex)

	results := make([]ReconcileResult, 0, len(union))
	for id := range union {
		results = append(results, buildResult(id, cache.BuiltIndex, cache.PublishedIndex, adapter))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// buildUnion creates the union of the ids of both indices.
func buildUnion(built, published map[string]Item) map[string]struct{} {
	union := make(map[string]struct{}, len(built))
	for id := range built {
		union[id] = struct{}{}
	}
	for id := range published {
		union[id] = struct{}{}
	}
	return union
}

// buildResult creates a ReconcileResult for a single id.
func buildResult(id string, builtIndex, publishedIndex map[string]Item, adapter Adapter) ReconcileResult {
	built, builtPresent := builtIndex[id]
	published, publishedPresent := publishedIndex[id]

	result := ReconcileResult{
		ID:               id,
		BuiltPresent:     builtPresent,
		PublishedPresent: publishedPresent,
		Mismatch:         []string{},
	}

	if builtPresent || publishedPresent {
		result.Name = adapter.ResolveName(built, published)
	}

	if builtPresent && publishedPresent {
		result.Mismatch = adapter.CompareFields(built, published)
	}

	return result
}
