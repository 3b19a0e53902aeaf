// Package models defines the data shapes of the catalog pipeline.
//
// It holds both sides of the transformation:
//   - Raw records as they appear in the extraction dump (decoration params, skill
//     params, armor params and localized text entries), including the tagged
//     id variants that carry the base/extension tier of each numeric id.
//   - Final catalog records (Skill, Decoration, Armor) written to the output files.
//
// # Tiers
//
// The dump uses two overlapping numeric id spaces. Extension ids are stored with a
// +200 offset in the text keyspace; Tier centralizes the conversion between raw and
// semantic ids so no call site does the arithmetic itself.
//
// # Static tables
//
// The language index table and the armor part table are package-level read-only
// data, exposed through Languages, LanguageAt and PartByName.
package models
