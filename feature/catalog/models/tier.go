package models

import "fmt"

// TierOffset is the distance between a semantic extension id and its raw storage id.
const TierOffset = 200

// Tier identifies one of the two overlapping numeric id spaces of the dump.
type Tier int

const (
	// TierBase is the original content generation.
	TierBase Tier = iota
	// TierExtension is the expansion content generation, stored offset by TierOffset.
	TierExtension
)

// Tiers lists the tiers in processing order.
var Tiers = [...]Tier{TierBase, TierExtension}

// String returns the tier name used in logs and errors.
func (t Tier) String() string {
	switch t {
	case TierBase:
		return "base"
	case TierExtension:
		return "extension"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// RawID returns the storage id for a semantic id of this tier.
func (t Tier) RawID(semantic int) int {
	if t == TierExtension {
		return semantic + TierOffset
	}
	return semantic
}

// SemanticID returns the tier-local id for a raw id of this tier.
// Extension ids below the offset are already tier-local and are returned unchanged.
func (t Tier) SemanticID(raw int) int {
	if t == TierExtension && raw >= TierOffset {
		return raw - TierOffset
	}
	return raw
}

// SplitDisplayIndex derives the tier of a display index from its value and returns
// the tier-local index.
func SplitDisplayIndex(raw int) (Tier, int) {
	if raw >= TierOffset {
		return TierExtension, raw - TierOffset
	}
	return TierBase, raw
}
