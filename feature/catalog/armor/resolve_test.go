package armor_test

import (
	"testing"

	"mhr-catalog/feature/catalog/armor"
	"mhr-catalog/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func candidate(id string, sex models.SexType, skills map[string]int) models.Armor {
	s := make(map[string]models.ArmorSkill, len(skills))
	for k, lv := range skills {
		s[k] = models.ArmorSkill{Level: lv}
	}
	return models.Armor{
		ID:      id,
		Part:    models.PartFeet,
		SexType: sex,
		Names:   map[string]string{"en": "Silverwing Greaves", "ja": "銀翼"},
		Rarity:  9,
		Stat:    models.ArmorStat{Defense: 140, FireRes: 3},
		Skills:  s,
		Slots:   models.Slots{2, 1, 0},
	}
}

func TestResolverMergesSexVariants(t *testing.T) {
	r := armor.NewResolver(zap.NewNop())

	require.NoError(t, r.Add(candidate("silverwing", models.SexMale, map[string]int{"guard": 1})))
	require.NoError(t, r.Add(candidate("silverwing", models.SexFemale, map[string]int{"guard": 1})))

	results := r.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "silverwing", results[0].ID)
	assert.Equal(t, models.SexAll, results[0].SexType)
}

func TestResolverStormsoulWinsInAnyOrder(t *testing.T) {
	storm := func() models.Armor {
		return candidate("x", models.SexAll, map[string]int{"stormsoul": 1})
	}
	plain := func() models.Armor {
		return candidate("x", models.SexAll, map[string]int{"guard": 1})
	}

	orders := map[string][]func() models.Armor{
		"stormsoul first": {storm, plain},
		"stormsoul last":  {plain, storm},
	}

	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			r := armor.NewResolver(zap.NewNop())
			for _, c := range order {
				require.NoError(t, r.Add(c()))
			}

			results := r.Results()
			require.Len(t, results, 1)
			assert.Contains(t, results[0].Skills, armor.StormsoulSkill)
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestResolverFatalConflict(t *testing.T) {
	r := armor.NewResolver(zap.NewNop())

	require.NoError(t, r.Add(candidate("x", models.SexMale, map[string]int{"guard": 1})))
	err := r.Add(candidate("x", models.SexMale, map[string]int{"guard": 2}))
	assert.ErrorIs(t, err, armor.ErrDuplicateArmor)

	r = armor.NewResolver(zap.NewNop())
	require.NoError(t, r.Add(candidate("y", models.SexAll, map[string]int{"stormsoul": 1})))
	err = r.Add(candidate("y", models.SexAll, map[string]int{"stormsoul": 2}))
	assert.ErrorIs(t, err, armor.ErrDuplicateArmor)
}

func TestResolverIdenticalDuplicateWithDifferentNames(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := armor.NewResolver(zap.New(core))

	first := candidate("x", models.SexMale, nil)
	second := candidate("x", models.SexMale, nil)
	second.Names = map[string]string{"en": "Silverwing Greaves", "ja": "別名"}

	require.NoError(t, r.Add(first))
	require.NoError(t, r.Add(second))

	results := r.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "銀翼", results[0].Names["ja"])
	assert.Equal(t, 1, logs.FilterMessage("Armor id shared by records with different names").Len())
}

func TestResolverSplitsBySex(t *testing.T) {
	r := armor.NewResolver(zap.NewNop())

	male := candidate("x", models.SexMale, map[string]int{"guard": 1})
	female := candidate("x", models.SexFemale, map[string]int{"guard": 2})
	female.Names["ja"] = "銀翼・女"

	require.NoError(t, r.Add(candidate("before", models.SexAll, nil)))
	require.NoError(t, r.Add(male))
	require.NoError(t, r.Add(female))
	require.NoError(t, r.Add(candidate("after", models.SexAll, nil)))

	results := r.Results()
	require.Len(t, results, 4)

	ids := make([]string, len(results))
	for i, a := range results {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"before", "x_male", "x_female", "after"}, ids)

	assert.Equal(t, "Silverwing Greaves (male)", results[1].Names["en"])
	assert.Equal(t, "Silverwing Greaves (female)", results[2].Names["en"])
	assert.Equal(t, "銀翼", results[1].Names["ja"], "distinct names are kept")
	assert.Equal(t, "銀翼・女", results[2].Names["ja"])
}

func TestResolverRedirectsToSplitVariant(t *testing.T) {
	r := armor.NewResolver(zap.NewNop())

	require.NoError(t, r.Add(candidate("x", models.SexMale, map[string]int{"guard": 1})))
	require.NoError(t, r.Add(candidate("x", models.SexFemale, map[string]int{"guard": 2})))

	// Same data as the female variant: discarded as an identical duplicate.
	require.NoError(t, r.Add(candidate("x", models.SexFemale, map[string]int{"guard": 2})))
	assert.Equal(t, 2, r.Len())

	// Stormsoul variant of the male piece replaces it.
	require.NoError(t, r.Add(candidate("x", models.SexMale, map[string]int{"guard": 1, "stormsoul": 1})))
	results := r.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "x_female", results[0].ID)
	assert.Equal(t, "x_male", results[1].ID)
	assert.Contains(t, results[1].Skills, armor.StormsoulSkill)
	assert.Equal(t, "Silverwing Greaves (male)", results[1].Names["en"])

	// No variant for an all-sex candidate.
	err := r.Add(candidate("x", models.SexAll, nil))
	assert.ErrorIs(t, err, armor.ErrDuplicateArmor)
}

func TestResolverSplitIDTaken(t *testing.T) {
	r := armor.NewResolver(zap.NewNop())

	require.NoError(t, r.Add(candidate("x_male", models.SexAll, nil)))
	require.NoError(t, r.Add(candidate("x", models.SexMale, map[string]int{"guard": 1})))

	err := r.Add(candidate("x", models.SexFemale, map[string]int{"guard": 2}))
	assert.ErrorIs(t, err, armor.ErrDuplicateArmor)
}
