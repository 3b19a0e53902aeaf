package reconcile

import "context"

// ReconcileWithPlan performs a full reconciliation and summarizes it. With
// onlyChanges set, unchanged results are left out of the plan (they are still
// counted in the summary).
func ReconcileWithPlan(ctx context.Context, spec *Spec, onlyChanges bool) (*ReconcilePlan, error) {
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

	results := reconcileFromCache(cache, spec.Adapter)
	summary := Summarize(results)

	if onlyChanges {
		filtered := results[:0]
		for _, r := range results {
			if r.Status() != StatusUnchanged {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	return &ReconcilePlan{
		Catalog: spec.Adapter.Name(),
		Results: results,
		Summary: summary,
	}, nil
}

// Summarize counts results per status.
func Summarize(results []ReconcileResult) PlanSummary {
	summary := PlanSummary{TotalItems: len(results)}
	for _, r := range results {
		switch r.Status() {
		case StatusAdded:
			summary.Added++
		case StatusRemoved:
			summary.Removed++
		case StatusChanged:
			summary.Changed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}
