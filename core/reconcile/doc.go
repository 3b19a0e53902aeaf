// Package reconcile compares two versions of a catalog: the one freshly built by
// the pipeline and the one currently published to object storage.
//
// # Architecture
//
// 1. Engine: builds the union of ids from both indices, detects presence and
// absence, and collects field mismatches.
//
// 2. Adapter: catalog-specific logic loading each location, resolving display
// names and comparing fields. See feature/catalog/reconcile.
//
// 3. Cache: TTL-based caching of both indices with stampede protection, used by
// the HTTP diff endpoint.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:           catalogreconcile.NewSkillAdapter(source),
//	    BuiltLocation:     cfg.Pipeline.OutputDir,
//	    PublishedLocation: cfg.Pipeline.CatalogPrefix,
//	}
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, true)
package reconcile
