package manual

import (
	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/catalog/models"

	"go.uber.org/zap"
)

// Dictionary maps display names in every language to catalog ids.
type Dictionary struct {
	index  *catalog.Index
	armors map[string]string
	skills map[string]string
}

// NewDictionary builds the name dictionaries of idx. When two entries share a
// display name the first one in catalog order keeps it.
func NewDictionary(idx *catalog.Index, logger *zap.Logger) *Dictionary {
	d := &Dictionary{
		index:  idx,
		armors: make(map[string]string),
		skills: make(map[string]string),
	}
	for _, a := range idx.Catalogs.Armors {
		d.add(d.armors, a.ID, a.Names, logger.With(zap.String("catalog", "armors")))
	}
	for _, s := range idx.Catalogs.Skills {
		d.add(d.skills, s.ID, s.Names, logger.With(zap.String("catalog", "skills")))
	}
	return d
}

func (d *Dictionary) add(dict map[string]string, id string, names map[string]string, logger *zap.Logger) {
	for _, name := range names {
		if existing, ok := dict[name]; ok {
			if existing != id {
				logger.Debug("Display name shared by several entries",
					zap.String("name", name), zap.String("kept", existing), zap.String("ignored", id))
			}
			continue
		}
		dict[name] = id
	}
}

// Armor returns the armor piece named name.
func (d *Dictionary) Armor(name string) (models.Armor, bool) {
	id, ok := d.armors[name]
	if !ok {
		return models.Armor{}, false
	}
	return d.index.Armor(id)
}

// SkillID returns the id of the skill named name.
func (d *Dictionary) SkillID(name string) (string, bool) {
	id, ok := d.skills[name]
	return id, ok
}
