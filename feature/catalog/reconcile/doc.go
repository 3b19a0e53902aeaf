// Package reconcile provides the core/reconcile adapters of the three catalogs.
//
// Each adapter loads a catalog from the build output directory and from the
// published bucket prefix, and describes field differences per entry, e.g.
// "rarity: built=9 published=8" or `names.en: built="A" published=-`.
package reconcile
