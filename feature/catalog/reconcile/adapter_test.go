package reconcile_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mhr-catalog/core/reconcile"
	"mhr-catalog/feature/catalog/models"
	catalogreconcile "mhr-catalog/feature/catalog/reconcile"
	"mhr-catalog/feature/catalog/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dirOpener(location string) source.Source {
	return source.NewDir(location)
}

func writeCatalogs(t *testing.T, dir string, c *models.Catalogs) {
	t.Helper()
	require.NoError(t, source.WriteDir(dir, c, zap.NewNop()))
}

func builtCatalogs() *models.Catalogs {
	return &models.Catalogs{
		Skills: []models.Skill{
			{ID: "guard", MaxLevel: 5, Names: map[string]string{"en": "Guard"}},
			{ID: "stormsoul", MaxLevel: 5, Names: map[string]string{"en": "Stormsoul"}},
		},
		Decorations: []models.Decoration{
			{ID: "guard_jewel_1", Names: map[string]string{"en": "Guard Jewel 1"}, SkillID: "guard", SkillLevel: 1, SlotSize: 2},
		},
		Armors: []models.Armor{
			{
				ID: "silverwing_greaves", Part: models.PartFeet, SexType: models.SexAll, Rarity: 9,
				Names:  map[string]string{"en": "Silverwing Greaves"},
				Skills: map[string]models.ArmorSkill{"guard": {Level: 2}},
				Slots:  models.Slots{3, 0, 0},
			},
		},
	}
}

func publishedCatalogs() *models.Catalogs {
	return &models.Catalogs{
		Skills: []models.Skill{
			{ID: "guard", MaxLevel: 5, Names: map[string]string{"en": "Guard"}},
			{ID: "old_skill", MaxLevel: 1, Names: map[string]string{"en": "Old"}},
		},
		Decorations: []models.Decoration{
			{ID: "guard_jewel_1", Names: map[string]string{"en": "Guard Jewel 1", "fr": "Joyau"}, SkillID: "guard", SkillLevel: 1, SlotSize: 1},
		},
		Armors: []models.Armor{
			{
				ID: "silverwing_greaves", Part: models.PartFeet, SexType: models.SexMale, Rarity: 8,
				Names:  map[string]string{"en": "Silverwing Greaves"},
				Skills: map[string]models.ArmorSkill{"guard": {Level: 1}, "stormsoul": {Level: 1}},
				Slots:  models.Slots{3, 0, 0},
			},
		},
	}
}

func TestSpecs(t *testing.T) {
	root := t.TempDir()
	builtDir := filepath.Join(root, "built")
	publishedDir := filepath.Join(root, "published")
	writeCatalogs(t, builtDir, builtCatalogs())
	writeCatalogs(t, publishedDir, publishedCatalogs())

	specs := catalogreconcile.Specs(dirOpener, dirOpener, builtDir, publishedDir)
	require.Len(t, specs, 3)

	plans := make(map[string]*reconcile.ReconcilePlan)
	for _, spec := range specs {
		plan, err := reconcile.ReconcileWithPlan(context.Background(), spec, true)
		require.NoError(t, err)
		plans[plan.Catalog] = plan
	}

	t.Run("Skills", func(t *testing.T) {
		plan := plans[catalogreconcile.KindSkills]
		assert.Equal(t, reconcile.PlanSummary{TotalItems: 3, Added: 1, Removed: 1, Unchanged: 1}, plan.Summary)
		require.Len(t, plan.Results, 2)
		assert.Equal(t, "old_skill", plan.Results[0].ID)
		assert.Equal(t, "Old", plan.Results[0].Name)
		assert.Equal(t, "stormsoul", plan.Results[1].ID)
	})

	t.Run("Decorations", func(t *testing.T) {
		plan := plans[catalogreconcile.KindDecorations]
		require.Len(t, plan.Results, 1)
		assert.Equal(t, []string{
			"slotSize: built=2 published=1",
			`names.fr: built=- published="Joyau"`,
		}, plan.Results[0].Mismatch)
	})

	t.Run("Armors", func(t *testing.T) {
		plan := plans[catalogreconcile.KindArmors]
		require.Len(t, plan.Results, 1)
		assert.Equal(t, []string{
			"sexType: built=all published=male",
			"rarity: built=9 published=8",
			"skills.guard: built=2 published=1",
			"skills.stormsoul: built=- published=1",
		}, plan.Results[0].Mismatch)
	})
}

func TestPublishedNotFoundIsEmpty(t *testing.T) {
	builtDir := t.TempDir()
	writeCatalogs(t, builtDir, builtCatalogs())

	adapter := catalogreconcile.NewSkillAdapter(dirOpener, dirOpener)
	index, err := adapter.LoadPublishedIndex(context.Background(), filepath.Join(builtDir, "never-published"))
	require.NoError(t, err)
	assert.Empty(t, index)

	_, err = adapter.LoadBuiltIndex(context.Background(), filepath.Join(builtDir, "missing"))
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestNewAdapter(t *testing.T) {
	for _, kind := range catalogreconcile.Kinds {
		a, err := catalogreconcile.NewAdapter(kind, dirOpener, dirOpener)
		require.NoError(t, err)
		assert.Equal(t, kind, a.Name())
	}

	_, err := catalogreconcile.NewAdapter("weapons", dirOpener, dirOpener)
	assert.Error(t, err)
}

func TestSpecsWithCacheTTL(t *testing.T) {
	specs := catalogreconcile.Specs(dirOpener, dirOpener, "built", "published", catalogreconcile.WithCacheTTL(time.Minute))
	for _, spec := range specs {
		assert.Equal(t, time.Minute, spec.CacheTTL)
		assert.Equal(t, "built", spec.BuiltLocation)
		assert.Equal(t, "published", spec.PublishedLocation)
	}
}
