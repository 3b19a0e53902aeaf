// Package decorations builds the decoration catalog from raw decoration params and
// their localized display names.
package decorations

import (
	"mhr-catalog/core/utils"
	"mhr-catalog/feature/catalog/extract"
	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/skills"

	"go.uber.org/zap"
)

// param is a decoration param indexed by its tier-local id.
type param struct {
	rawID      int
	slotSize   int
	skill      models.SkillRef
	skillLevel int
}

// Builder builds the decoration registry.
type Builder struct {
	extractor *extract.Extractor
	logger    *zap.Logger
}

// NewBuilder creates a decoration registry builder.
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{
		extractor: extract.New(logger),
		logger:    logger,
	}
}

// Build emits one decoration per valid display name that points at an indexed
// param: base-tier names first, then extension-tier names, each in input order.
func (b *Builder) Build(params []models.DecorationParam, names models.TieredEntries, lookup *skills.Lookup) []models.Decoration {
	index := b.index(params)

	var out []models.Decoration
	for _, listTier := range models.Tiers {
		for _, m := range b.extractor.Matches(names.ForTier(listTier), extract.DecorationNamePattern) {
			tier, idx := models.SplitDisplayIndex(m.ID)

			p, ok := index[tier][idx]
			if !ok {
				b.logger.Warn("Decoration name has no matching param",
					zap.String("name", m.Name),
					zap.Stringer("tier", tier),
					zap.Int("index", idx),
				)
				continue
			}

			skillID, ok := lookup.Resolve(p.skill)
			if !ok {
				b.logger.Warn("Decoration references unknown skill",
					zap.String("name", m.Name),
					zap.Int("param_id", p.rawID),
					zap.Stringer("skill_tier", p.skill.Tier),
					zap.Int("skill_id", p.skill.Value),
				)
				continue
			}

			if p.skill.Tier != tier {
				b.logger.Debug("Decoration skill tier differs from display tier",
					zap.String("name", m.Name),
					zap.Stringer("display_tier", tier),
					zap.Stringer("skill_tier", p.skill.Tier),
				)
			}

			out = append(out, models.Decoration{
				ID:         utils.MakeID(models.TextEntry{Content: m.Content}.English()),
				Names:      models.LocalizedNames(m.Content),
				SkillID:    skillID,
				SkillLevel: p.skillLevel,
				SlotSize:   p.slotSize,
			})
		}
	}

	return out
}

// index groups params by tier and tier-local id, dropping "None" ids and params
// without a skill reference.
func (b *Builder) index(params []models.DecorationParam) [len(models.Tiers)]map[int]param {
	var index [len(models.Tiers)]map[int]param
	for _, tier := range models.Tiers {
		index[tier] = make(map[int]param)
	}

	for _, p := range params {
		if !p.ID.Valid {
			continue
		}

		if len(p.SkillIDList) == 0 || !p.SkillIDList[0].Valid {
			b.logger.Debug("Skipping decoration without skill", zap.Int("raw_id", p.ID.Value), zap.Stringer("tier", p.ID.Tier))
			continue
		}

		level := 0
		if len(p.SkillLevelList) > 0 {
			level = p.SkillLevelList[0]
		}

		index[p.ID.Tier][p.ID.SemanticID()] = param{
			rawID:      p.ID.Value,
			slotSize:   p.DecorationLv,
			skill:      p.SkillIDList[0],
			skillLevel: level,
		}
	}

	return index
}
