package reconcile

import "time"

// Item is a catalog entry as loaded by an adapter.
type Item any

// ReconcileResult is the reconciliation output for a single catalog id.
type ReconcileResult struct {
	// ID is the catalog id.
	ID string `json:"id"`

	// Name is the display name of the entry.
	Name string `json:"name"`

	// BuiltPresent indicates whether the entry exists in the freshly built catalog.
	BuiltPresent bool `json:"built_present"`

	// PublishedPresent indicates whether the entry exists in the published catalog.
	PublishedPresent bool `json:"published_present"`

	// Mismatch describes field differences, e.g. "rarity: built=9 published=8".
	Mismatch []string `json:"mismatch"`
}

// Status classifies a result.
type Status string

const (
	StatusAdded     Status = "added"
	StatusRemoved   Status = "removed"
	StatusChanged   Status = "changed"
	StatusUnchanged Status = "unchanged"
)

// Status returns how the entry changed between the published and built catalogs.
func (r ReconcileResult) Status() Status {
	switch {
	case r.BuiltPresent && !r.PublishedPresent:
		return StatusAdded
	case !r.BuiltPresent && r.PublishedPresent:
		return StatusRemoved
	case len(r.Mismatch) > 0:
		return StatusChanged
	default:
		return StatusUnchanged
	}
}

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Adapter provides catalog-specific reconciliation logic.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached indices.
	// If zero, caching is disabled.
	CacheTTL time.Duration

	// BuiltLocation identifies where built catalogs are read from (a directory).
	BuiltLocation string

	// PublishedLocation identifies where published catalogs are read from (a prefix).
	PublishedLocation string
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.BuiltLocation + "|" + s.PublishedLocation
}

// ReconcilePlan contains reconciliation results and their summary.
type ReconcilePlan struct {
	// Catalog is the adapter name.
	Catalog string `json:"catalog"`

	// Results contains per-id reconciliation data, sorted by id.
	Results []ReconcileResult `json:"results"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalItems is the total number of unique ids.
	TotalItems int `json:"total_items"`

	// Added counts ids only present in the built catalog.
	Added int `json:"added"`

	// Removed counts ids only present in the published catalog.
	Removed int `json:"removed"`

	// Changed counts ids present in both with field differences.
	Changed int `json:"changed"`

	// Unchanged counts ids present in both without differences.
	Unchanged int `json:"unchanged"`
}

// HasChanges reports whether publishing the built catalog would change anything.
func (s PlanSummary) HasChanges() bool {
	return s.Added+s.Removed+s.Changed > 0
}
