package armor_test

import (
	"encoding/json"
	"testing"

	"mhr-catalog/feature/catalog/armor"
	"mhr-catalog/feature/catalog/extract"
	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func partNames() map[models.RawPart]extract.Table {
	return map[models.RawPart]extract.Table{
		models.RawPartHead:  {1: {"カムラ", "Kamura Head Scarf"}},
		models.RawPartChest: {2: {"混沌", "Chaotic Armor"}, 3: {"ネフィリム", "Nephilim Mail"}},
		models.RawPartArm:   {},
		models.RawPartWaist: {},
		models.RawPartLeg:   {4: {"銀翼", "Silverwing Greaves"}},
	}
}

func skillLookup() *skills.Lookup {
	return skills.NewLookup(
		map[int]string{1: "attack_boost", 7: "guard"},
		map[int]string{1: "stormsoul"},
	)
}

func rawArmor(t *testing.T, js string) models.ArmorParam {
	t.Helper()
	var raw models.ArmorParam
	require.NoError(t, json.Unmarshal([]byte(js), &raw))
	return raw
}

func TestNormalize(t *testing.T) {
	n := armor.NewNormalizer(partNames(), skillLookup(), zap.NewNop())

	raw := rawArmor(t, `{
		"pl_armor_id": {"Head": 1},
		"rare": 3,
		"sexual_equipable": "Both",
		"def_val": 10, "fire_reg_val": 1, "water_reg_val": -1, "ice_reg_val": 2, "thunder_reg_val": 0, "dragon_reg_val": -3,
		"decorations_num_list": [1, 0, 1, 0],
		"skill_list": [{"Skill": 1}, {"MrSkill": 201}, "None"],
		"skill_lv_list": [2, 1, 0]
	}`)

	a, ok := n.Normalize(raw)
	require.True(t, ok)

	assert.Equal(t, "kamura_head_scarf", a.ID)
	assert.Equal(t, models.PartHelm, a.Part)
	assert.Equal(t, models.SexAll, a.SexType)
	assert.Equal(t, 2, a.Rarity)
	assert.Equal(t, models.ArmorStat{Defense: 10, FireRes: 1, WaterRes: -1, IceRes: 2, ElecRes: 0, DragonRes: -3}, a.Stat)
	assert.Equal(t, models.Slots{3, 1, 0}, a.Slots)
	assert.Equal(t, map[string]models.ArmorSkill{
		"attack_boost": {Level: 2},
		"stormsoul":    {Level: 1},
	}, a.Skills)
	assert.Equal(t, "Kamura Head Scarf", a.Names["en"])
}

func TestNormalizeSkips(t *testing.T) {
	n := armor.NewNormalizer(partNames(), skillLookup(), zap.NewNop())

	_, ok := n.Normalize(rawArmor(t, `{"pl_armor_id": {}, "rare": 1}`))
	assert.False(t, ok, "no part populated")

	_, ok = n.Normalize(rawArmor(t, `{"pl_armor_id": {"Arm": 99}, "rare": 1}`))
	assert.False(t, ok, "no name")
}

func TestNormalizeSexOverride(t *testing.T) {
	n := armor.NewNormalizer(partNames(), skillLookup(), zap.NewNop())

	chaotic, ok := n.Normalize(rawArmor(t, `{"pl_armor_id": {"Chest": 2}, "rare": 10, "sexual_equipable": "FemaleOnly"}`))
	require.True(t, ok)
	assert.Equal(t, "chaotic_armor", chaotic.ID)
	assert.Equal(t, 9, chaotic.Rarity)
	assert.Equal(t, models.SexMale, chaotic.SexType)

	nephilim, ok := n.Normalize(rawArmor(t, `{"pl_armor_id": {"Chest": 3}, "rare": 10, "sexual_equipable": "Both"}`))
	require.True(t, ok)
	assert.Equal(t, models.SexFemale, nephilim.SexType)

	lower, ok := n.Normalize(rawArmor(t, `{"pl_armor_id": {"Chest": 2}, "rare": 9, "sexual_equipable": "FemaleOnly"}`))
	require.True(t, ok)
	assert.Equal(t, models.SexFemale, lower.SexType, "override only applies at rarity 9")
}

func TestSexType(t *testing.T) {
	assert.Equal(t, models.SexAll, armor.SexType("Both", "x", 1))
	assert.Equal(t, models.SexMale, armor.SexType("MaleOnly", "x", 1))
	assert.Equal(t, models.SexFemale, armor.SexType("FemaleOnly", "x", 1))
	assert.Equal(t, models.SexUnknown, armor.SexType("Whatever", "x", 1))
	assert.Equal(t, models.SexMale, armor.SexType("Both", "chaoticarmor", 9))
}

func TestBuildSlots(t *testing.T) {
	cases := []struct {
		counts  []int
		slots   models.Slots
		natural int
	}{
		{nil, models.Slots{0, 0, 0}, 0},
		{[]int{1}, models.Slots{1, 0, 0}, 1},
		{[]int{0, 1, 1}, models.Slots{3, 2, 0}, 2},
		{[]int{2, 0, 0, 1}, models.Slots{4, 1, 1}, 3},
		{[]int{3, 0, 1}, models.Slots{3, 1, 1}, 4},
	}

	for _, tc := range cases {
		slots, natural := armor.BuildSlots(tc.counts)
		assert.Equal(t, tc.slots, slots, "counts %v", tc.counts)
		assert.Equal(t, tc.natural, natural, "counts %v", tc.counts)

		for i := 1; i < len(slots); i++ {
			assert.GreaterOrEqual(t, slots[i-1], slots[i])
			assert.GreaterOrEqual(t, slots[i], 0)
		}
	}
}

func TestNormalizeSlotOverflowIsReported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := armor.NewNormalizer(partNames(), skillLookup(), zap.New(core))

	a, ok := n.Normalize(rawArmor(t, `{"pl_armor_id": {"Head": 1}, "rare": 1, "decorations_num_list": [2, 2]}`))
	require.True(t, ok)
	assert.Equal(t, models.Slots{2, 2, 1}, a.Slots)
	assert.Equal(t, 1, logs.FilterMessage("Armor has more slots than supported").Len())
}

func TestNormalizeUnknownSkill(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := armor.NewNormalizer(partNames(), skillLookup(), zap.New(core))

	a, ok := n.Normalize(rawArmor(t, `{"pl_armor_id": {"Leg": 4}, "rare": 1, "skill_list": [{"Skill": 99}, {"Skill": 7}], "skill_lv_list": [1, 3]}`))
	require.True(t, ok)
	assert.Equal(t, map[string]models.ArmorSkill{"guard": {Level: 3}}, a.Skills)
	assert.Equal(t, 1, logs.FilterMessage("Armor references unknown skill").Len())
}
