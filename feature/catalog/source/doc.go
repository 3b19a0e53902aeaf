// Package source reads and writes the three catalog files (armor.json, skill.json,
// deco.json) in a local directory or under a bucket prefix.
//
// Catalogs are encoded with a four-space indent, struct field order and sorted map
// keys, without HTML escaping.
package source
