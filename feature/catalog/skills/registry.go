package skills

import (
	"errors"
	"fmt"

	"mhr-catalog/core/utils"
	"mhr-catalog/feature/catalog/extract"
	"mhr-catalog/feature/catalog/models"

	"go.uber.org/zap"
)

// ErrMissingMaxLevel is returned when a named skill has no level detail records.
var ErrMissingMaxLevel = errors.New("skill has no level details")

// Sources are the localized text lists the registry is built from.
type Sources struct {
	Names        models.TieredEntries
	Details      models.TieredEntries
	Explanations models.TieredEntries
}

// Result is the skill catalog plus the per-tier id lookup.
type Result struct {
	Skills []models.Skill
	Lookup *Lookup
}

// Builder builds the skill registry.
type Builder struct {
	extractor *extract.Extractor
	logger    *zap.Logger
}

// NewBuilder creates a skill registry builder.
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{
		extractor: extract.New(logger),
		logger:    logger,
	}
}

// Build extracts names, level counts and explanations for both tiers and emits the
// base-tier skills followed by the extension-tier skills.
func (b *Builder) Build(src Sources) (*Result, error) {
	levels := make(extract.LevelTable)
	for _, tier := range models.Tiers {
		b.extractor.MaxLevels(src.Details.ForTier(tier), extract.LevelPattern, levels)
	}

	var out []models.Skill
	tables := make([]map[int]string, len(models.Tiers))
	seen := make(map[string]models.Tier)

	for _, tier := range models.Tiers {
		names := b.extractor.Table(src.Names.ForTier(tier), extract.NamePattern)
		texts := b.extractor.Table(src.Explanations.ForTier(tier), extract.ExplainPattern)
		tables[tier] = make(map[int]string, len(names))

		for _, raw := range names.Keys() {
			maxLevel, ok := levels[raw]
			if !ok {
				return nil, fmt.Errorf("%w: raw id %d (%s tier)", ErrMissingMaxLevel, raw, tier)
			}

			content := names[raw]
			skill := models.Skill{
				ID:       utils.MakeID(models.TextEntry{Content: content}.English()),
				MaxLevel: maxLevel,
				Names:    models.LocalizedNames(content),
				Texts:    models.LocalizedNames(texts[raw]),
			}

			if prev, dup := seen[skill.ID]; dup {
				b.logger.Warn("Duplicate skill id",
					zap.String("id", skill.ID),
					zap.Int("raw_id", raw),
					zap.Stringer("tier", tier),
					zap.Stringer("previous_tier", prev),
				)
			}
			seen[skill.ID] = tier

			out = append(out, skill)
			tables[tier][tier.SemanticID(raw)] = skill.ID
		}

		b.logger.Debug("Skill tier extracted", zap.Stringer("tier", tier), zap.Int("count", len(tables[tier])))
	}

	return &Result{
		Skills: out,
		Lookup: NewLookup(tables[models.TierBase], tables[models.TierExtension]),
	}, nil
}
