package manual

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

const talismanFields = 7

// ParseTalismans reads talisman rows `skill1,level1,skill2,level2,slot1,slot2,slot3`.
// Empty skill names are skipped.
func ParseTalismans(r io.Reader, dict *Dictionary, logger *zap.Logger) ([]Talisman, error) {
	talismans := []Talisman{}
	err := readRows(r, func(row int, record []string) error {
		if len(record) < talismanFields {
			return fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, talismanFields, len(record))
		}

		t := Talisman{
			ID:     fmt.Sprintf("talisman_file_%d", row-1),
			Skills: []SkillLevel{},
		}
		for i := 0; i < 4; i += 2 {
			name := record[i]
			if name == "" {
				continue
			}
			id, ok := dict.SkillID(name)
			if !ok {
				return fmt.Errorf("%w: skill %q", ErrUnknownName, name)
			}
			level, err := atoi(record, i+1, "level")
			if err != nil {
				return err
			}
			t.Skills = append(t.Skills, SkillLevel{ID: id, Level: level})
		}

		s, err := slots(record, 4)
		if err != nil {
			return err
		}
		t.Slots = s

		talismans = append(talismans, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Talismans parsed", zap.Int("count", len(talismans)))
	return talismans, nil
}
