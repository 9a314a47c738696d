package database

import (
	"context"
	"testing"

	"sharemart/internal/domain"
	"sharemart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")
	item := createTestItem(t, db, owner.ID, "Drill", true)

	got, err := db.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drill", got.Name)
	assert.True(t, got.Available)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Zero(t, got.RequestID)
}

func TestGetItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetItem(context.Background(), 99)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestUpdateItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")
	item := createTestItem(t, db, owner.ID, "Drill", true)

	item.Name = "Hammer drill"
	item.Available = false
	require.NoError(t, db.UpdateItem(ctx, item))

	got, err := db.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hammer drill", got.Name)
	assert.False(t, got.Available)
}

func TestDeleteItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")
	item := createTestItem(t, db, owner.ID, "Drill", true)

	require.NoError(t, db.DeleteItem(ctx, item.ID))

	_, err := db.GetItem(ctx, item.ID)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestListItemsByOwner(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")
	other := createTestUser(t, db, "Other", "other@example.com")

	createTestItem(t, db, owner.ID, "Drill", true)
	createTestItem(t, db, owner.ID, "Saw", true)
	createTestItem(t, db, other.ID, "Ladder", true)

	items, err := db.ListItemsByOwner(ctx, owner.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Drill", items[0].Name)
	assert.Equal(t, "Saw", items[1].Name)

	page, err := db.ListItemsByOwner(ctx, owner.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Saw", page[0].Name)
}

func TestListItemsByRequest(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")

	linked := &models.Item{Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID, RequestID: 7}
	require.NoError(t, db.CreateItem(ctx, linked))
	createTestItem(t, db, owner.ID, "Saw", true)

	items, err := db.ListItemsByRequest(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Drill", items[0].Name)
}

func TestSearchItems(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")

	drill := &models.Item{Name: "Power Drill", Description: "cordless", Available: true, OwnerID: owner.ID}
	require.NoError(t, db.CreateItem(ctx, drill))
	hidden := &models.Item{Name: "Drill press", Description: "bench", Available: false, OwnerID: owner.ID}
	require.NoError(t, db.CreateItem(ctx, hidden))
	saw := &models.Item{Name: "Saw", Description: "drilling not included", Available: true, OwnerID: owner.ID}
	require.NoError(t, db.CreateItem(ctx, saw))

	items, err := db.SearchItems(ctx, "dRiLl", 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Power Drill", items[0].Name)
	assert.Equal(t, "Saw", items[1].Name)
}

func TestSearchItemsTreatsWildcardsLiterally(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Owner", "owner@example.com")

	cotton := &models.Item{Name: "100% cotton tent", Description: "canvas", Available: true, OwnerID: owner.ID}
	require.NoError(t, db.CreateItem(ctx, cotton))
	bit := &models.Item{Name: "Drill bit set", Description: "titanium_coated", Available: true, OwnerID: owner.ID}
	require.NoError(t, db.CreateItem(ctx, bit))

	items, err := db.SearchItems(ctx, "100%", 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "100% cotton tent", items[0].Name)

	// A lone % is not a match-everything wildcard
	items, err = db.SearchItems(ctx, "%", 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "100% cotton tent", items[0].Name)

	items, err = db.SearchItems(ctx, "_", 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Drill bit set", items[0].Name)
}
