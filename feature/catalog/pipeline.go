package catalog

import (
	"mhr-catalog/core/logger"
	"mhr-catalog/feature/catalog/armor"
	"mhr-catalog/feature/catalog/decorations"
	"mhr-catalog/feature/catalog/extract"
	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/skills"

	"go.uber.org/zap"
)

// Pipeline turns a parsed dump into the three catalogs. A run is single-threaded
// and deterministic for a given dump.
type Pipeline struct {
	logger *zap.Logger
}

// NewPipeline creates a pipeline logging through logger.
func NewPipeline(logger *zap.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Run builds the skill registry, then the decorations and the armor catalog, which
// both resolve their skill references through the registry lookup.
func (p *Pipeline) Run(dump *models.Dump) (*models.Catalogs, error) {
	skillLog := logger.WithStage(p.logger, "skills")
	result, err := skills.NewBuilder(skillLog).Build(skills.Sources{
		Names:        dump.SkillNames,
		Details:      dump.SkillDetails,
		Explanations: dump.SkillExplanations,
	})
	if err != nil {
		return nil, err
	}
	p.checkSkillParams(skillLog, dump.Skills, result.Lookup)

	decos := decorations.NewBuilder(logger.WithStage(p.logger, "decorations")).
		Build(dump.Decorations, dump.DecorationNames, result.Lookup)

	armors, err := p.armors(dump, result.Lookup)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Catalogs built",
		zap.Int("skills", len(result.Skills)),
		zap.Int("decorations", len(decos)),
		zap.Int("armors", len(armors)),
	)

	return &models.Catalogs{
		Armors:      armors,
		Skills:      result.Skills,
		Decorations: decos,
	}, nil
}

func (p *Pipeline) armors(dump *models.Dump, lookup *skills.Lookup) ([]models.Armor, error) {
	armorLog := logger.WithStage(p.logger, "armor")

	var entries []models.TextEntry
	for _, part := range models.RawParts {
		names := dump.ArmorNames[part]
		entries = append(entries, names.Base...)
		entries = append(entries, names.Extension...)
	}

	normalizer := armor.NewNormalizer(extract.New(armorLog).PartTables(entries), lookup, armorLog)
	resolver := armor.NewResolver(armorLog)

	for _, raw := range dump.Armors {
		candidate, ok := normalizer.Normalize(raw)
		if !ok {
			continue
		}
		if err := resolver.Add(candidate); err != nil {
			return nil, err
		}
	}
	return resolver.Results(), nil
}

// checkSkillParams reports equip skill params whose id has no named skill. The
// params carry no data the catalog uses.
func (p *Pipeline) checkSkillParams(l *zap.Logger, params []models.SkillParam, lookup *skills.Lookup) {
	unnamed := 0
	for _, param := range params {
		if !param.ID.Valid {
			continue
		}
		if _, ok := lookup.Resolve(param.ID); !ok {
			unnamed++
			l.Debug("Skill param has no named skill",
				zap.Stringer("tier", param.ID.Tier),
				zap.Int("id", param.ID.Value),
				zap.Int("max_level", param.MaxLevel),
			)
		}
	}
	if unnamed > 0 {
		l.Debug("Unnamed skill params", zap.Int("count", unnamed), zap.Int("total", len(params)))
	}
}
