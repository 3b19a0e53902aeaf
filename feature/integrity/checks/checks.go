package checks

import (
	"sort"

	"mhr-catalog/feature/catalog/models"
)

// Severity grades an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Report statuses.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusFailed  = "failed"
)

// Issue is a single finding of a check.
type Issue struct {
	Severity Severity `json:"severity"`
	Catalog  string   `json:"catalog"`
	ID       string   `json:"id"`
	Message  string   `json:"message"`
}

// Report is the outcome of one check.
type Report struct {
	Check  string  `json:"check"`
	Status string  `json:"status"`
	Issues []Issue `json:"issues"`
}

// NewReport grades issues: failed on any error, warning on any warning.
func NewReport(check string, issues []Issue) Report {
	if issues == nil {
		issues = []Issue{}
	}
	status := StatusOK
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			status = StatusFailed
			break
		}
		status = StatusWarning
	}
	return Report{Check: check, Status: status, Issues: issues}
}

// Check is a named validation over a catalog set.
type Check struct {
	Name string
	Run  func(c *models.Catalogs) []Issue
}

// Catalog checks in report order.
var All = []Check{
	{Name: "unique_ids", Run: UniqueIDs},
	{Name: "slots", Run: SlotShape},
	{Name: "decoration_skills", Run: DecorationSkills},
	{Name: "armor_skills", Run: ArmorSkills},
	{Name: "armor_enums", Run: ArmorEnums},
	{Name: "decoration_groups", Run: DecorationGroups},
}

// ByName returns the catalog check with the given name.
func ByName(name string) (Check, bool) {
	for _, c := range All {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Names returns the names of the catalog checks.
func Names() []string {
	names := make([]string, len(All))
	for i, c := range All {
		names[i] = c.Name
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
