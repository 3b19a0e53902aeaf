package manual

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"mhr-catalog/feature/catalog/models"
)

// MaxSlotSize is the largest decoration slot.
const MaxSlotSize = 4

var (
	// ErrMalformedRow is returned when a row has the wrong shape or a bad number.
	ErrMalformedRow = errors.New("malformed row")
	// ErrUnknownName is returned when a row names an unknown armor piece or skill.
	ErrUnknownName = errors.New("unknown name")
)

// SkillLevel is a skill granted at a level.
type SkillLevel struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
}

// Talisman is a charm granting up to two skills and three slots.
type Talisman struct {
	ID     string       `json:"id"`
	Skills []SkillLevel `json:"skills"`
	Slots  models.Slots `json:"slots"`
}

// AnomalyArmor is an augmented armor piece.
type AnomalyArmor struct {
	Original   models.Armor                 `json:"original"`
	Affected   models.Armor                 `json:"affected"`
	StatDiff   models.ArmorStat             `json:"statDiff"`
	SlotDiffs  models.Slots                 `json:"slotDiffs"`
	SkillDiffs map[string]models.ArmorSkill `json:"skillDiffs"`
}

type rowError struct {
	row int
	err error
}

func (e *rowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.row, e.err)
}

func (e *rowError) Unwrap() error {
	return e.err
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// readRows reads every record, calling fn with its 1-based row number.
func readRows(r io.Reader, fn func(row int, record []string) error) error {
	reader := newReader(r)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		if err := fn(row, record); err != nil {
			return &rowError{row: row, err: err}
		}
	}
}

func atoi(record []string, i int, field string) (int, error) {
	v, err := strconv.Atoi(record[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformedRow, field, record[i])
	}
	return v, nil
}

func slots(record []string, from int) (models.Slots, error) {
	var s models.Slots
	for i := range s {
		v, err := atoi(record, from+i, fmt.Sprintf("slot%d", i+1))
		if err != nil {
			return s, err
		}
		s[i] = v
	}
	return s, nil
}
