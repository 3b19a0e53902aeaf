package extract

import (
	"regexp"
	"sort"
	"strconv"

	"mhr-catalog/feature/catalog/models"

	"go.uber.org/zap"
)

// Table maps a raw numeric id to the content of its text record.
type Table map[int][]string

// Keys returns the ids of the table in ascending order.
func (t Table) Keys() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// LevelTable maps a raw numeric id to its level count (highest level index + 1).
type LevelTable map[int]int

// Match is a valid text record whose name matched a pattern.
type Match struct {
	// Name is the internal key of the record.
	Name string
	// ID is the numeric id parsed from the first capture group.
	ID int
	// Groups holds every capture group, Groups[0] being the whole match.
	Groups []string
	// Content is the localized content of the record.
	Content []string
}

// Extractor groups text records by their embedded ids.
type Extractor struct {
	logger *zap.Logger
}

// New creates an extractor that reports skipped records to logger.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Matches returns every valid record matching pattern in input order, with the id
// parsed from the first capture group.
func (e *Extractor) Matches(entries []models.TextEntry, pattern *regexp.Regexp) []Match {
	var out []Match
	for _, entry := range entries {
		groups, ok := e.match(entry, pattern)
		if !ok {
			continue
		}

		id, err := strconv.Atoi(groups[1])
		if err != nil {
			e.logger.Debug("Skipping text record with unparsable id", zap.String("name", entry.Name), zap.Error(err))
			continue
		}
		out = append(out, Match{Name: entry.Name, ID: id, Groups: groups, Content: entry.Content})
	}
	return out
}

// Table collects the content of every valid record matching pattern, keyed by the
// first capture group. Later records override earlier ones with the same id.
func (e *Extractor) Table(entries []models.TextEntry, pattern *regexp.Regexp) Table {
	table := make(Table)
	for _, m := range e.Matches(entries, pattern) {
		table[m.ID] = m.Content
	}
	return table
}

// MaxLevels folds every valid level record matching pattern into levels, keeping
// the running maximum of level index + 1 per id.
func (e *Extractor) MaxLevels(entries []models.TextEntry, pattern *regexp.Regexp, levels LevelTable) {
	for _, m := range e.Matches(entries, pattern) {
		level, err := strconv.Atoi(m.Groups[2])
		if err != nil {
			e.logger.Debug("Skipping level record with unparsable level", zap.String("name", m.Name), zap.Error(err))
			continue
		}

		if level+1 > levels[m.ID] {
			levels[m.ID] = level + 1
		}
	}
}

// PartTables groups armor name records by the body part captured from their name.
// Records naming an unknown part are skipped.
func (e *Extractor) PartTables(entries []models.TextEntry) map[models.RawPart]Table {
	tables := make(map[models.RawPart]Table, len(models.RawParts))
	for _, part := range models.RawParts {
		tables[part] = make(Table)
	}

	for _, entry := range entries {
		match, ok := e.match(entry, ArmorNamePattern)
		if !ok {
			continue
		}

		part, ok := models.PartByName(match[1])
		if !ok {
			e.logger.Debug("Skipping armor name with unknown part", zap.String("name", entry.Name))
			continue
		}
		id, err := strconv.Atoi(match[2])
		if err != nil {
			e.logger.Debug("Skipping armor name with unparsable id", zap.String("name", entry.Name), zap.Error(err))
			continue
		}
		tables[part][id] = entry.Content
	}
	return tables
}

func (e *Extractor) match(entry models.TextEntry, pattern *regexp.Regexp) ([]string, bool) {
	match := pattern.FindStringSubmatch(entry.Name)
	if match == nil {
		return nil, false
	}
	if !entry.Valid() {
		e.logger.Debug("Skipping invalid text record", zap.String("name", entry.Name))
		return nil, false
	}
	return match, true
}
