package skills

import "mhr-catalog/feature/catalog/models"

// Lookup resolves tier-local skill ids to skill slugs. It is filled once by the
// builder and read-only afterwards.
type Lookup struct {
	tables [len(models.Tiers)]map[int]string
}

// NewLookup creates a lookup from per-tier tables keyed by semantic id.
func NewLookup(base, extension map[int]string) *Lookup {
	l := &Lookup{}
	l.tables[models.TierBase] = copyTable(base)
	l.tables[models.TierExtension] = copyTable(extension)
	return l
}

func copyTable(src map[int]string) map[int]string {
	dst := make(map[int]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Slug returns the slug of the skill with the given semantic id in tier.
func (l *Lookup) Slug(tier models.Tier, semantic int) (string, bool) {
	slug, ok := l.tables[tier][semantic]
	return slug, ok
}

// Resolve returns the slug a tagged skill reference points to, using the tier
// carried by the reference itself.
func (l *Lookup) Resolve(ref models.SkillRef) (string, bool) {
	if !ref.Valid {
		return "", false
	}
	return l.Slug(ref.Tier, ref.SemanticID())
}

// Len returns the number of entries in tier.
func (l *Lookup) Len(tier models.Tier) int {
	return len(l.tables[tier])
}
