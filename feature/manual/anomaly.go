package manual

import (
	"fmt"
	"io"
	"maps"
	"sort"

	"mhr-catalog/feature/catalog/models"

	"go.uber.org/zap"
)

const anomalyFields = 10

// ParseAnomalies reads anomaly rows
// `name,def,fire,water,elec,ice,dragon,slot1,slot2,slot3,(skill,level)*`. Every
// number is a difference applied to the named base armor piece.
func ParseAnomalies(r io.Reader, dict *Dictionary, logger *zap.Logger) ([]AnomalyArmor, error) {
	anomalies := []AnomalyArmor{}
	err := readRows(r, func(row int, record []string) error {
		if len(record) < anomalyFields {
			return fmt.Errorf("%w: expected at least %d fields, got %d", ErrMalformedRow, anomalyFields, len(record))
		}

		original, ok := dict.Armor(record[0])
		if !ok {
			return fmt.Errorf("%w: armor %q", ErrUnknownName, record[0])
		}

		stats := make([]int, 6)
		for i, field := range []string{"defense", "fire", "water", "elec", "ice", "dragon"} {
			v, err := atoi(record, i+1, field)
			if err != nil {
				return err
			}
			stats[i] = v
		}
		stat := models.ArmorStat{
			Defense:   stats[0],
			FireRes:   stats[1],
			WaterRes:  stats[2],
			ElecRes:   stats[3],
			IceRes:    stats[4],
			DragonRes: stats[5],
		}

		slotDiffs, err := slots(record, 7)
		if err != nil {
			return err
		}

		skillDiffs := make(map[string]int)
		for i := anomalyFields; i < len(record); i += 2 {
			name := record[i]
			if name == "" {
				continue
			}
			if i+1 >= len(record) {
				return fmt.Errorf("%w: skill %q has no level", ErrMalformedRow, name)
			}
			id, ok := dict.SkillID(name)
			if !ok {
				return fmt.Errorf("%w: skill %q", ErrUnknownName, name)
			}
			level, err := atoi(record, i+1, "level")
			if err != nil {
				return err
			}
			skillDiffs[id] = level
		}

		anomalies = append(anomalies, NewAnomalyArmor(original, stat, slotDiffs, skillDiffs))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Anomaly armors parsed", zap.Int("count", len(anomalies)))
	return anomalies, nil
}

// NewAnomalyArmor applies the differences to original. Skill levels never drop
// below zero and a negative difference on a skill the piece lacks is ignored.
// Slots are clamped to 0..MaxSlotSize and sorted descending; the recorded
// differences are the ones actually applied.
func NewAnomalyArmor(original models.Armor, stat models.ArmorStat, slotDiffs models.Slots, skillDiffs map[string]int) AnomalyArmor {
	affected := original
	affected.Skills = maps.Clone(original.Skills)
	if affected.Skills == nil {
		affected.Skills = make(map[string]models.ArmorSkill)
	}

	affected.Stat.Defense += stat.Defense
	affected.Stat.FireRes += stat.FireRes
	affected.Stat.WaterRes += stat.WaterRes
	affected.Stat.ElecRes += stat.ElecRes
	affected.Stat.IceRes += stat.IceRes
	affected.Stat.DragonRes += stat.DragonRes

	applied := make(map[string]models.ArmorSkill)
	for id, diff := range skillDiffs {
		if diff == 0 {
			continue
		}
		base, has := original.Skills[id]
		if diff < 0 && !has {
			continue
		}

		level := max(base.Level+diff, 0)
		applied[id] = models.ArmorSkill{Level: level - base.Level}
		if level == 0 {
			delete(affected.Skills, id)
		} else {
			affected.Skills[id] = models.ArmorSkill{Level: level}
		}
	}

	for i := range affected.Slots {
		affected.Slots[i] = min(max(affected.Slots[i]+slotDiffs[i], 0), MaxSlotSize)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(affected.Slots[:])))

	var realSlotDiffs models.Slots
	for i := range realSlotDiffs {
		realSlotDiffs[i] = affected.Slots[i] - original.Slots[i]
	}

	return AnomalyArmor{
		Original:   original,
		Affected:   affected,
		StatDiff:   stat,
		SlotDiffs:  realSlotDiffs,
		SkillDiffs: applied,
	}
}
