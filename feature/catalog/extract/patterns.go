package extract

import "regexp"

var (
	// NamePattern matches skill display names and captures the raw skill id.
	NamePattern = regexp.MustCompile(`^PlayerSkill_(\d+)_Name$`)
	// LevelPattern matches per-level skill details and captures the raw skill id and
	// the zero-based level index.
	LevelPattern = regexp.MustCompile(`^PlayerSkill_(\d+)_(\d+)_Detail`)
	// ExplainPattern matches skill explanations and captures the raw skill id.
	ExplainPattern = regexp.MustCompile(`^PlayerSkill_(\d+)_Explain`)
	// DecorationNamePattern matches decoration display names and captures the display index.
	DecorationNamePattern = regexp.MustCompile(`^Decorations_(\d+)_Name$`)
	// ArmorNamePattern matches armor display names and captures the part and the armor id.
	ArmorNamePattern = regexp.MustCompile(`A_(.+)_(\d+)_Name`)
)
