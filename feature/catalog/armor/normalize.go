package armor

import (
	"strings"

	"mhr-catalog/core/utils"
	"mhr-catalog/feature/catalog/extract"
	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/skills"

	"go.uber.org/zap"
)

// overrideRarity is the catalog rarity at which series prefixes force the sex type.
const overrideRarity = 9

// seriesSexOverrides lists series whose rarity-10 pieces are authored with the
// wrong equip flag.
var seriesSexOverrides = [...]struct {
	prefix string
	sex    models.SexType
}{
	{"chaotic", models.SexMale},
	{"nephilim", models.SexFemale},
}

// Normalizer converts raw armor params into candidate catalog entries.
type Normalizer struct {
	names  map[models.RawPart]extract.Table
	lookup *skills.Lookup
	logger *zap.Logger
}

// NewNormalizer creates a normalizer resolving display names through names and skill
// references through lookup.
func NewNormalizer(names map[models.RawPart]extract.Table, lookup *skills.Lookup, logger *zap.Logger) *Normalizer {
	return &Normalizer{names: names, lookup: lookup, logger: logger}
}

// Normalize builds the candidate entry of raw. It returns false when the record
// has no body part or no display name.
func (n *Normalizer) Normalize(raw models.ArmorParam) (models.Armor, bool) {
	part, id, ok := raw.ID.Resolve()
	if !ok {
		return models.Armor{}, false
	}

	content, ok := n.names[part][id]
	if !ok {
		n.logger.Debug("Skipping armor without name", zap.String("part", string(part)), zap.Int("id", id))
		return models.Armor{}, false
	}

	armorID := utils.MakeID(models.TextEntry{Content: content}.English())
	rarity := raw.Rare - 1

	slots, natural := BuildSlots(raw.DecorationsNumList)
	if natural > models.SlotCount {
		n.logger.Warn("Armor has more slots than supported",
			zap.String("id", armorID),
			zap.Ints("decorations_num_list", raw.DecorationsNumList),
			zap.Int("slots", natural),
		)
	}

	return models.Armor{
		ID:      armorID,
		Part:    part.Output(),
		SexType: SexType(raw.SexualEquipable, armorID, rarity),
		Names:   models.LocalizedNames(content),
		Rarity:  rarity,
		Stat: models.ArmorStat{
			Defense:   raw.DefVal,
			FireRes:   raw.FireRegVal,
			WaterRes:  raw.WaterRegVal,
			IceRes:    raw.IceRegVal,
			ElecRes:   raw.ThunderRegVal,
			DragonRes: raw.DragonRegVal,
		},
		Skills: n.skills(armorID, raw),
		Slots:  slots,
	}, true
}

func (n *Normalizer) skills(armorID string, raw models.ArmorParam) map[string]models.ArmorSkill {
	out := make(map[string]models.ArmorSkill, len(raw.SkillList))
	for i, ref := range raw.SkillList {
		if !ref.Valid {
			continue
		}

		slug, ok := n.lookup.Resolve(ref)
		if !ok {
			n.logger.Warn("Armor references unknown skill",
				zap.String("id", armorID),
				zap.Stringer("skill_tier", ref.Tier),
				zap.Int("skill_id", ref.Value),
			)
			continue
		}

		level := 0
		if i < len(raw.SkillLevelList) {
			level = raw.SkillLevelList[i]
		}
		out[slug] = models.ArmorSkill{Level: level}
	}
	return out
}

// SexType maps the raw equip flag to a sex type, applying the series overrides for
// rarity-9 pieces.
func SexType(flag, armorID string, rarity int) models.SexType {
	sex := models.SexUnknown
	switch flag {
	case "Both":
		sex = models.SexAll
	case "MaleOnly":
		sex = models.SexMale
	case "FemaleOnly":
		sex = models.SexFemale
	}

	if rarity == overrideRarity {
		for _, o := range seriesSexOverrides {
			if strings.HasPrefix(armorID, o.prefix) {
				return o.sex
			}
		}
	}
	return sex
}

// BuildSlots expands per-size slot counts (index 0 = size 1) into slot sizes sorted
// descending and padded with zeros. It also returns the natural number of slots;
// when that exceeds SlotCount only the largest slots are kept.
func BuildSlots(counts []int) (models.Slots, int) {
	var slots models.Slots
	natural := 0
	for size := len(counts); size >= 1; size-- {
		for i := 0; i < counts[size-1]; i++ {
			if natural < models.SlotCount {
				slots[natural] = size
			}
			natural++
		}
	}
	return slots, natural
}
