package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
	"github.com/mayarosales/cakecafe-backend/pkg/enums"
)

func mustCreateProduct(t *testing.T, db *gorm.DB, name string, popularity int, active bool) models.Product {
	t.Helper()
	product := models.Product{
		ID:         uuid.New(),
		Name:       name,
		PriceCents: 4500,
		Category:   enums.ProductCategoryCakes,
		ImageURL:   "https://cdn.example.com/" + name + ".jpg",
		Popularity: popularity,
		IsActive:   active,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestFindActiveByIDsSkipsInactive(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	active := mustCreateProduct(t, db, "chocolate-cake", 10, true)
	inactive := mustCreateProduct(t, db, "retired-cake", 5, false)

	found, err := repo.FindActiveByIDs(ctx, []uuid.UUID{active.ID, inactive.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, active.ID, found[0].ID)
}

func TestFindActiveByIDsEmptyInput(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	found, err := repo.FindActiveByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestListActiveOrdersByPopularityThenRecency(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	low := mustCreateProduct(t, db, "low", 1, true)
	high := mustCreateProduct(t, db, "high", 9, true)
	mustCreateProduct(t, db, "hidden", 99, false)

	products, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, high.ID, products[0].ID)
	require.Equal(t, low.ID, products[1].ID)
}

func TestListGalleryNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	older := models.GalleryImage{ID: uuid.New(), ImageURL: "https://cdn.example.com/a.jpg", Category: "Cakes", CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.GalleryImage{ID: uuid.New(), ImageURL: "https://cdn.example.com/b.jpg", Category: "Cakes", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	images, err := repo.ListGallery(ctx)
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, newer.ID, images[0].ID)
}
