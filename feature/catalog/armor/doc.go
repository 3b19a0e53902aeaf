// Package armor turns raw armor params into armor catalog entries.
//
// The Normalizer maps one raw record to one candidate entry (part, names, rarity,
// sex restriction, slots, skills, stats). The Resolver receives candidates in input
// order and enforces id uniqueness: identical duplicates are dropped, sex-restricted
// twins are merged into an "all" entry or split into "_male"/"_female" entries, and
// the stormsoul rule settles the one known same-sex conflict. Any other collision is
// fatal and reported as ErrDuplicateArmor.
package armor
