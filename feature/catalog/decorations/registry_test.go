package decorations_test

import (
	"encoding/json"
	"testing"

	"mhr-catalog/feature/catalog/decorations"
	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const paramsJSON = `[
	{"id": "None", "decoration_lv": 1, "skill_id_list": ["None"], "skill_lv_list": [0]},
	{"id": {"Deco": 1}, "decoration_lv": 1, "skill_id_list": [{"Skill": 1}], "skill_lv_list": [1]},
	{"id": {"Deco": 2}, "decoration_lv": 2, "skill_id_list": [{"Skill": 2}], "skill_lv_list": [1]},
	{"id": {"Deco": 3}, "decoration_lv": 1, "skill_id_list": ["None"], "skill_lv_list": [0]},
	{"id": {"MrDeco": 5}, "decoration_lv": 4, "skill_id_list": [{"MrSkill": 5}], "skill_lv_list": [2]},
	{"id": {"MrDeco": 6}, "decoration_lv": 4, "skill_id_list": [{"Skill": 1}], "skill_lv_list": [2]}
]`

func params(t *testing.T) []models.DecorationParam {
	t.Helper()
	var out []models.DecorationParam
	require.NoError(t, json.Unmarshal([]byte(paramsJSON), &out))
	return out
}

func lookup() *skills.Lookup {
	return skills.NewLookup(
		map[int]string{1: "attack_boost", 2: "critical_eye", 5: "guard"},
		map[int]string{5: "stormsoul"},
	)
}

func name(key string, content ...string) models.TextEntry {
	return models.TextEntry{Name: key, Content: content}
}

func names() models.TieredEntries {
	return models.TieredEntries{
		Base: []models.TextEntry{
			name("Decorations_2_Name", "達人珠", "Expert Jewel 2"),
			name("Decorations_1_Name", "攻撃珠", "Attack Jewel 1"),
			name("Decorations_3_Name", "", "Empty Jewel 1"),
			name("Decorations_9_Name", "?", "Missing Jewel 1"),
		},
		Extension: []models.TextEntry{
			name("Decorations_205_Name", "風雷珠", "Stormsoul Jewel 4"),
			name("Decorations_206_Name", "攻撃珠【４】", "Attack Jewel+ 4"),
		},
	}
}

func TestBuild(t *testing.T) {
	decos := decorations.NewBuilder(zap.NewNop()).Build(params(t), names(), lookup())

	require.Len(t, decos, 4)

	assert.Equal(t, "expert_jewel_2", decos[0].ID)
	assert.Equal(t, "critical_eye", decos[0].SkillID)
	assert.Equal(t, 2, decos[0].SlotSize)

	assert.Equal(t, "attack_jewel_1", decos[1].ID)
	assert.Equal(t, "attack_boost", decos[1].SkillID)
	assert.Equal(t, 1, decos[1].SkillLevel)
	assert.Equal(t, "攻撃珠", decos[1].Names["ja"])

	assert.Equal(t, "stormsoul_jewel_4", decos[2].ID)
	assert.Equal(t, "stormsoul", decos[2].SkillID)
	assert.Equal(t, 2, decos[2].SkillLevel)
	assert.Equal(t, 4, decos[2].SlotSize)
}

func TestBuildSkillTagIsAuthoritative(t *testing.T) {
	decos := decorations.NewBuilder(zap.NewNop()).Build(params(t), names(), lookup())

	require.Len(t, decos, 4)
	assert.Equal(t, "attack_jewel_4", decos[3].ID)
	assert.Equal(t, "attack_boost", decos[3].SkillID, "extension decoration pointing at a base skill resolves through the base table")
}

func TestBuildSkipsEmptyAndUnknownNames(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	decos := decorations.NewBuilder(zap.New(core)).Build(params(t), names(), lookup())

	for _, d := range decos {
		assert.NotEqual(t, "empty_jewel_1", d.ID)
		assert.NotEqual(t, "missing_jewel_1", d.ID)
	}

	missing := logs.FilterMessage("Decoration name has no matching param").All()
	require.Len(t, missing, 1)
	assert.Equal(t, "Decorations_9_Name", missing[0].ContextMap()["name"])
}

func TestBuildIDsAreUnique(t *testing.T) {
	decos := decorations.NewBuilder(zap.NewNop()).Build(params(t), names(), lookup())

	seen := make(map[string]struct{}, len(decos))
	for _, d := range decos {
		seen[d.ID] = struct{}{}
	}
	assert.Len(t, seen, len(decos))
}

func TestBuildUnknownSkill(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	empty := skills.NewLookup(nil, nil)

	decos := decorations.NewBuilder(zap.New(core)).Build(params(t), names(), empty)
	assert.Empty(t, decos)
	assert.Equal(t, 4, logs.FilterMessage("Decoration references unknown skill").Len())
}
