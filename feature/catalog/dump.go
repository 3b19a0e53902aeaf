package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"mhr-catalog/feature/catalog/models"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidDump is returned when the dump is not valid JSON.
	ErrInvalidDump = errors.New("dump is not valid JSON")
	// ErrMissingSection is returned when a section the pipeline reads is absent.
	ErrMissingSection = errors.New("dump section missing")
)

// LoadDump extracts the sections named by sections from the raw dump and decodes
// them into the pipeline input.
func LoadDump(data []byte, sections Sections) (*models.Dump, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDump
	}

	d := &dumpReader{data: data}
	dump := &models.Dump{ArmorNames: make(map[models.RawPart]models.TieredEntries, len(models.RawParts))}

	d.section(sections.Decorations, &dump.Decorations)
	d.section(sections.DecorationNames, &dump.DecorationNames.Base)
	d.section(sections.DecorationNamesExtension, &dump.DecorationNames.Extension)

	d.section(sections.Skills, &dump.Skills)
	d.section(sections.SkillNames, &dump.SkillNames.Base)
	d.section(sections.SkillNamesExtension, &dump.SkillNames.Extension)
	d.section(sections.SkillDetails, &dump.SkillDetails.Base)
	d.section(sections.SkillDetailsExtension, &dump.SkillDetails.Extension)
	d.section(sections.SkillExplanations, &dump.SkillExplanations.Base)
	d.section(sections.SkillExplanationsExtension, &dump.SkillExplanations.Extension)

	d.section(sections.Armors, &dump.Armors)
	for _, part := range models.RawParts {
		var names models.TieredEntries
		d.section(fmt.Sprintf(sections.ArmorNames, part), &names.Base)
		d.section(fmt.Sprintf(sections.ArmorNamesExtension, part), &names.Extension)
		dump.ArmorNames[part] = names
	}

	if d.err != nil {
		return nil, d.err
	}
	return dump, nil
}

// dumpReader decodes sections until the first failure.
type dumpReader struct {
	data []byte
	err  error
}

func (d *dumpReader) section(path string, target any) {
	if d.err != nil {
		return
	}

	res := gjson.GetBytes(d.data, path)
	if !res.Exists() {
		d.err = fmt.Errorf("%w: %s", ErrMissingSection, path)
		return
	}
	if err := json.Unmarshal([]byte(res.Raw), target); err != nil {
		d.err = fmt.Errorf("failed to decode section %s: %w", path, err)
	}
}
