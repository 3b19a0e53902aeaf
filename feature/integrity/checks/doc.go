// Package checks holds the catalog integrity checks.
//
// Catalog checks are pure functions over a catalog set returning issues; the
// published check inspects the bucket the catalogs are published to.
package checks
