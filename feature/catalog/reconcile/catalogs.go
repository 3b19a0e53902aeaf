package reconcile

import (
	"fmt"
	"sort"

	"mhr-catalog/core/reconcile"
	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/source"
)

// NewSkillAdapter compares skill catalogs.
func NewSkillAdapter(built, published Opener) reconcile.Adapter {
	return &adapter[models.Skill]{
		kind:      KindSkills,
		built:     built,
		published: published,
		load:      source.Skills,
		id:        func(s models.Skill) string { return s.ID },
		name:      func(s models.Skill) string { return s.Names["en"] },
		compare: func(b, p models.Skill) []string {
			var out []string
			out = appendField(out, "maxLevel", b.MaxLevel, p.MaxLevel)
			out = append(out, compareStrings("names", b.Names, p.Names)...)
			out = append(out, compareStrings("texts", b.Texts, p.Texts)...)
			return nonNil(out)
		},
	}
}

// NewDecorationAdapter compares decoration catalogs.
func NewDecorationAdapter(built, published Opener) reconcile.Adapter {
	return &adapter[models.Decoration]{
		kind:      KindDecorations,
		built:     built,
		published: published,
		load:      source.Decorations,
		id:        func(d models.Decoration) string { return d.ID },
		name:      func(d models.Decoration) string { return d.Names["en"] },
		compare: func(b, p models.Decoration) []string {
			var out []string
			out = appendField(out, "skillId", b.SkillID, p.SkillID)
			out = appendField(out, "skillLevel", b.SkillLevel, p.SkillLevel)
			out = appendField(out, "slotSize", b.SlotSize, p.SlotSize)
			out = append(out, compareStrings("names", b.Names, p.Names)...)
			return nonNil(out)
		},
	}
}

// NewArmorAdapter compares armor catalogs.
func NewArmorAdapter(built, published Opener) reconcile.Adapter {
	return &adapter[models.Armor]{
		kind:      KindArmors,
		built:     built,
		published: published,
		load:      source.Armors,
		id:        func(a models.Armor) string { return a.ID },
		name:      func(a models.Armor) string { return a.Names["en"] },
		compare: func(b, p models.Armor) []string {
			var out []string
			out = appendField(out, "part", b.Part, p.Part)
			out = appendField(out, "sexType", b.SexType, p.SexType)
			out = appendField(out, "rarity", b.Rarity, p.Rarity)
			out = appendField(out, "stat.defense", b.Stat.Defense, p.Stat.Defense)
			out = appendField(out, "stat.fireRes", b.Stat.FireRes, p.Stat.FireRes)
			out = appendField(out, "stat.waterRes", b.Stat.WaterRes, p.Stat.WaterRes)
			out = appendField(out, "stat.iceRes", b.Stat.IceRes, p.Stat.IceRes)
			out = appendField(out, "stat.elecRes", b.Stat.ElecRes, p.Stat.ElecRes)
			out = appendField(out, "stat.dragonRes", b.Stat.DragonRes, p.Stat.DragonRes)
			out = appendField(out, "slots", b.Slots, p.Slots)
			out = append(out, compareSkills(b.Skills, p.Skills)...)
			out = append(out, compareStrings("names", b.Names, p.Names)...)
			return nonNil(out)
		},
	}
}

func appendField[V comparable](out []string, label string, built, published V) []string {
	if built == published {
		return out
	}
	return append(out, fmt.Sprintf("%s: built=%v published=%v", label, built, published))
}

func compareStrings(label string, built, published map[string]string) []string {
	var out []string
	for _, key := range unionKeys(built, published) {
		b, bok := built[key]
		p, pok := published[key]
		if bok && pok && b == p {
			continue
		}
		out = append(out, fmt.Sprintf("%s.%s: built=%s published=%s", label, key, orMissing(b, bok), orMissing(p, pok)))
	}
	return out
}

func compareSkills(built, published map[string]models.ArmorSkill) []string {
	var out []string
	for _, key := range unionKeys(built, published) {
		b, bok := built[key]
		p, pok := published[key]
		if bok && pok && b.Level == p.Level {
			continue
		}
		out = append(out, fmt.Sprintf("skills.%s: built=%s published=%s", key, levelOrMissing(b, bok), levelOrMissing(p, pok)))
	}
	return out
}

func unionKeys[V any](a, b map[string]V) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for _, m := range []map[string]V{a, b} {
		for k := range m {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func orMissing(v string, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%q", v)
}

func levelOrMissing(s models.ArmorSkill, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprint(s.Level)
}

func nonNil(out []string) []string {
	if out == nil {
		return []string{}
	}
	return out
}
