package catalog_test

import (
	"context"
	"testing"
	"time"

	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceLookup(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStore(newCountingSource(), time.Minute, zap.NewNop())
	svc := catalog.NewService(store, nil, zap.NewNop())

	entry, err := svc.Lookup(ctx, "skills", "guard")
	require.NoError(t, err)
	assert.Equal(t, 5, entry.(models.Skill).MaxLevel)

	entry, err = svc.Lookup(ctx, "decorations", "guard_jewel_2")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.(models.Decoration).SlotSize)

	entry, err = svc.Lookup(ctx, "armors", "silverwing_greaves_male")
	require.NoError(t, err)
	assert.Equal(t, models.SexMale, entry.(models.Armor).SexType)

	_, err = svc.Lookup(ctx, "armors", "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.Lookup(ctx, "weapons", "x")
	assert.ErrorIs(t, err, catalog.ErrUnknownKind)
}

func TestArmorFilter(t *testing.T) {
	f, err := catalog.ParseArmorFilter("arm", "male")
	require.NoError(t, err)

	assert.True(t, f.Match(models.Armor{Part: models.PartArm, SexType: models.SexAll}))
	assert.True(t, f.Match(models.Armor{Part: models.PartArm, SexType: models.SexMale}))
	assert.False(t, f.Match(models.Armor{Part: models.PartArm, SexType: models.SexFemale}))
	assert.False(t, f.Match(models.Armor{Part: models.PartHelm, SexType: models.SexMale}))

	_, err = catalog.ParseArmorFilter("", "")
	assert.NoError(t, err)

	_, err = catalog.ParseArmorFilter("cape", "")
	assert.ErrorIs(t, err, catalog.ErrInvalidFilter)
}
