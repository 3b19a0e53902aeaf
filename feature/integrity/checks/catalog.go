package checks

import (
	"fmt"
	"strings"

	"mhr-catalog/feature/catalog/models"
)

// UniqueIDs reports ids used more than once within a catalog.
func UniqueIDs(c *models.Catalogs) []Issue {
	var issues []Issue
	report := func(catalog string, ids []string) {
		counts := make(map[string]int, len(ids))
		for _, id := range ids {
			counts[id]++
		}
		for _, id := range sortedKeys(counts) {
			if counts[id] > 1 {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Catalog:  catalog,
					ID:       id,
					Message:  fmt.Sprintf("id used %d times", counts[id]),
				})
			}
		}
	}

	ids := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		ids = append(ids, s.ID)
	}
	report("skills", ids)

	ids = ids[:0]
	for _, d := range c.Decorations {
		ids = append(ids, d.ID)
	}
	report("decorations", ids)

	ids = ids[:0]
	for _, a := range c.Armors {
		ids = append(ids, a.ID)
	}
	report("armors", ids)

	return issues
}

// SlotShape reports armor slots that are negative or not sorted descending, and
// decorations with a slot size outside 1..4.
func SlotShape(c *models.Catalogs) []Issue {
	var issues []Issue
	for _, a := range c.Armors {
		for i, size := range a.Slots {
			if size < 0 || (i > 0 && a.Slots[i-1] < size) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Catalog:  "armors",
					ID:       a.ID,
					Message:  fmt.Sprintf("slots %v are not sorted descending", a.Slots),
				})
				break
			}
		}
	}
	for _, d := range c.Decorations {
		if d.SlotSize < 1 || d.SlotSize > 4 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Catalog:  "decorations",
				ID:       d.ID,
				Message:  fmt.Sprintf("slot size %d out of range", d.SlotSize),
			})
		}
	}
	return issues
}

// DecorationSkills reports decorations pointing at unknown skills or granting more
// levels than the skill has.
func DecorationSkills(c *models.Catalogs) []Issue {
	maxLevels := skillLevels(c)

	var issues []Issue
	for _, d := range c.Decorations {
		maxLevel, ok := maxLevels[d.SkillID]
		switch {
		case !ok:
			issues = append(issues, Issue{
				Severity: SeverityError,
				Catalog:  "decorations",
				ID:       d.ID,
				Message:  fmt.Sprintf("unknown skill %q", d.SkillID),
			})
		case d.SkillLevel > maxLevel:
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Catalog:  "decorations",
				ID:       d.ID,
				Message:  fmt.Sprintf("skill %s level %d exceeds max level %d", d.SkillID, d.SkillLevel, maxLevel),
			})
		}
	}
	return issues
}

// ArmorSkills reports armor skill references to unknown skills (errors) and levels
// above the skill max level (warnings).
func ArmorSkills(c *models.Catalogs) []Issue {
	maxLevels := skillLevels(c)

	var issues []Issue
	for _, a := range c.Armors {
		for _, skillID := range sortedKeys(a.Skills) {
			level := a.Skills[skillID].Level
			maxLevel, ok := maxLevels[skillID]
			switch {
			case !ok:
				issues = append(issues, Issue{
					Severity: SeverityError,
					Catalog:  "armors",
					ID:       a.ID,
					Message:  fmt.Sprintf("unknown skill %q", skillID),
				})
			case level > maxLevel:
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Catalog:  "armors",
					ID:       a.ID,
					Message:  fmt.Sprintf("skill %s level %d exceeds max level %d", skillID, level, maxLevel),
				})
			}
		}
	}
	return issues
}

// ArmorEnums reports armor parts and sex types outside the catalog vocabulary. An
// empty sex type is a warning: the equip flag was not recognized.
func ArmorEnums(c *models.Catalogs) []Issue {
	var issues []Issue
	for _, a := range c.Armors {
		if !a.Part.Valid() {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Catalog:  "armors",
				ID:       a.ID,
				Message:  fmt.Sprintf("unknown part %q", a.Part),
			})
		}
		switch {
		case !a.SexType.Valid():
			issues = append(issues, Issue{
				Severity: SeverityError,
				Catalog:  "armors",
				ID:       a.ID,
				Message:  fmt.Sprintf("unknown sex type %q", a.SexType),
			})
		case a.SexType == models.SexUnknown:
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Catalog:  "armors",
				ID:       a.ID,
				Message:  "sex type is empty",
			})
		}
	}
	return issues
}

// DecorationGroups reports decorations sharing both skill and slot size. The
// catalog keeps every such decoration; consumers that expect one decoration per
// skill and slot size need to pick one.
func DecorationGroups(c *models.Catalogs) []Issue {
	groups := make(map[string][]string)
	for _, d := range c.Decorations {
		key := fmt.Sprintf("%s/%d", d.SkillID, d.SlotSize)
		groups[key] = append(groups[key], d.ID)
	}

	var issues []Issue
	for _, key := range sortedKeys(groups) {
		ids := groups[key]
		if len(ids) < 2 {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Catalog:  "decorations",
			ID:       ids[0],
			Message:  fmt.Sprintf("same skill and slot size (%s): %s", key, strings.Join(ids, ", ")),
		})
	}
	return issues
}

func skillLevels(c *models.Catalogs) map[string]int {
	levels := make(map[string]int, len(c.Skills))
	for _, s := range c.Skills {
		levels[s.ID] = s.MaxLevel
	}
	return levels
}
