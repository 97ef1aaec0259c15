package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/domain"
	apperrors "pasteleria/internal/errors"
	"pasteleria/internal/testutil"
)

func TestNewSQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewSQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func newProduct(name, price string) domain.Product {
	now := time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)
	return domain.Product{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Category:  domain.DefaultProductCategory,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLRepository(db)
	ctx := context.Background()

	p := newProduct("Red velvet", "45.90")
	desc := "cream cheese frosting"
	p.Description = &desc
	p.Featured = true

	id, err := repo.Insert(ctx, p)
	require.NoError(t, err)
	assert.NotZero(t, id)

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Red velvet", found.Name)
	assert.Equal(t, "45.90", domain.FormatMoney(found.Price))
	assert.Equal(t, "cream cheese frosting", *found.Description)
	assert.Nil(t, found.ImageURL)
	assert.True(t, found.Available)
	assert.True(t, found.Featured)
	assert.True(t, p.CreatedAt.Equal(found.CreatedAt))
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_FindAll_OrderedByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSQLRepository(db)
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Tres leches", "Pavlova", "Carrot cake"} {
		_, err := repo.Insert(ctx, newProduct(name, "10.00"))
		require.NoError(t, err)
	}

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Tres leches", products[0].Name)
	assert.Equal(t, "Carrot cake", products[2].Name)
	assert.Less(t, products[0].ID, products[1].ID)
}
