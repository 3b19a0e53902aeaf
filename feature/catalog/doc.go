// Package catalog turns a raw Monster Hunter Rise extraction dump into the armor,
// skill and decoration catalogs, and serves built catalogs over HTTP.
//
// # Pipeline
//
// LoadDump extracts the configured sections with gjson. Pipeline.Run then builds
// the skill registry, the decorations and the armor catalog in that order; the
// subpackages hold the individual stages:
//
//   - extract: pattern-driven tables over localized text records
//   - skills: skill registry and per-tier id lookup
//   - decorations: decoration registry
//   - armor: normalization and duplicate id resolution
//   - source: catalog file encoding, local and bucket locations
//   - reconcile: built vs published diff adapters
//
// # HTTP
//
// The Feature registers read-only lookups (/skills, /decorations, /armors), the
// catalog diff (/diff/:kind) and a cache reload endpoint. Catalogs are served from
// a Store that caches them for the configured TTL.
package catalog
