package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }

func newClothingFixture(t *testing.T) (*ClothingService, *memory.ClothingRepository, *entity.ClothingItem) {
	t.Helper()
	repo := memory.NewClothingRepository()
	svc := NewClothingService(repo, nil)
	item, err := svc.Create(context.Background(), 1, CreateItemInput{
		Name:     "Jeans",
		Category: entity.CategoryPants,
		Color:    "Blue",
		Brand:    strPtr("Levi's"),
	})
	require.NoError(t, err)
	return svc, repo, item
}

func TestCreateSetsOwner(t *testing.T) {
	_, _, item := newClothingFixture(t)
	assert.Equal(t, int64(1), item.OwnerID)
	assert.Positive(t, item.ID)
}

func TestListScopedToOwner(t *testing.T) {
	svc, _, _ := newClothingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 2, CreateItemInput{Name: "Cap", Category: entity.CategoryAccessory, Color: "Red"})
	require.NoError(t, err)

	mine, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Jeans", mine[0].Name)

	theirs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "Cap", theirs[0].Name)
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewClothingService(memory.NewClothingRepository(), nil)
	items, err := svc.List(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetEnforcesGuards(t *testing.T) {
	svc, _, item := newClothingFixture(t)
	ctx := context.Background()

	got, err := svc.Get(ctx, 1, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jeans", got.Name)

	_, err = svc.Get(ctx, 2, item.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Get(ctx, 1, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdatePartialKeepsOtherFields(t *testing.T) {
	svc, _, item := newClothingFixture(t)

	updated, err := svc.Update(context.Background(), 1, item.ID, UpdateItemInput{Color: strPtr("Black")})
	require.NoError(t, err)

	assert.Equal(t, "Black", updated.Color)
	assert.Equal(t, "Jeans", updated.Name)
	assert.Equal(t, entity.CategoryPants, updated.Category)
	require.NotNil(t, updated.Brand)
	assert.Equal(t, "Levi's", *updated.Brand)
	assert.Equal(t, int64(1), updated.OwnerID)
}

func TestUpdateEmptyInputIsNoop(t *testing.T) {
	svc, _, item := newClothingFixture(t)

	updated, err := svc.Update(context.Background(), 1, item.ID, UpdateItemInput{})
	require.NoError(t, err)
	assert.Equal(t, item.Name, updated.Name)
	assert.Equal(t, item.Color, updated.Color)
}

func TestMutateMissingItemIsNotFoundForAnyCaller(t *testing.T) {
	svc, _, _ := newClothingFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, 999, UpdateItemInput{Color: strPtr("Green")})
	assert.ErrorIs(t, err, ErrItemNotFound)

	// a foreign caller gets the same answer: existence wins over ownership
	_, err = svc.Update(ctx, 2, 999, UpdateItemInput{Color: strPtr("Green")})
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 2, 999), ErrItemNotFound)
}

func TestForeignCallerCannotMutate(t *testing.T) {
	svc, repo, item := newClothingFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 2, item.ID, UpdateItemInput{Name: strPtr("Stolen")})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(ctx, 2, item.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	stored, ok := repo.Snapshot(item.ID)
	require.True(t, ok, "item must survive foreign mutation attempts")
	assert.Equal(t, "Jeans", stored.Name)
}

func TestDeleteIsTerminal(t *testing.T) {
	svc, repo, item := newClothingFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1, item.ID))

	_, ok := repo.Snapshot(item.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(ctx, 1, item.ID), ErrItemNotFound)
	_, err := svc.Update(ctx, 1, item.ID, UpdateItemInput{Color: strPtr("Red")})
	assert.ErrorIs(t, err, ErrItemNotFound)
}
