package service

import (
	"context"
	"testing"

	"github.com/Beka01247/cafe/internal/catalog"
	"github.com/Beka01247/cafe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMenuService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.menu.List(ctx, MenuFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bev, err := f.menu.List(ctx, MenuFilter{Category: "beverages"})
	require.NoError(t, err)
	require.Len(t, bev, 1)
	assert.Equal(t, "c1", bev[0].ID)

	found, err := f.menu.List(ctx, MenuFilter{Category: "All", Query: "FARM"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p1", found[0].ID)

	_, err = f.menu.List(ctx, MenuFilter{Category: "Soups"})
	assert.True(t, domain.IsValidation(err))
}

func TestMenuService_Popular(t *testing.T) {
	f := newFixture(t)

	items, err := f.menu.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestMenuService_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.menu.Create(ctx, domain.FoodItem{Name: "Brownie", Price: domain.MoneyFromInt(110), Category: domain.CategoryDesserts, Stock: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Options)

	created.Price = domain.MoneyFromInt(120)
	updated, err := f.menu.Update(ctx, created.ID, *created)
	require.NoError(t, err)
	assert.Equal(t, "120.00", updated.Price.String())

	_, err = f.menu.Update(ctx, "missing", *created)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.menu.Create(ctx, domain.FoodItem{Name: "", Category: domain.CategoryDesserts})
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, f.menu.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.menu.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestMenuService_ReadOnlySource(t *testing.T) {
	src, err := catalog.LoadStaticSource("")
	require.NoError(t, err)
	menu := NewMenuService(src, nil, zap.NewNop().Sugar())

	_, err = menu.Create(context.Background(), domain.FoodItem{Name: "X", Category: domain.CategoryPizza})
	assert.ErrorIs(t, err, domain.ErrReadOnlyCatalog)
	assert.ErrorIs(t, menu.Delete(context.Background(), "cold-coffee"), domain.ErrReadOnlyCatalog)

	n, err := menu.SeedIfEmpty(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMenuService_SeedOnlyWhenEmpty(t *testing.T) {
	f := newFixture(t)

	n, err := f.menu.SeedIfEmpty(context.Background(), []domain.FoodItem{coffeeItem()})
	require.NoError(t, err)
	assert.Zero(t, n)
}
