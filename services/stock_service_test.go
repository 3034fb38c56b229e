package services

import (
	"testing"

	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockReserve(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Burger", 1200, 5)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	left, err := stock.Reserve(f.DB, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, left)

	got := f.reloadProduct(t, p.ID)
	assert.Equal(t, 2, got.Stock)
	assert.Equal(t, 3, got.Reserved)
}

func TestStockReserve_Insufficient(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Burger", 1200, 5)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	_, err := stock.Reserve(f.DB, p.ID, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// a failed reserve never touches stock
	got := f.reloadProduct(t, p.ID)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 0, got.Reserved)
}

func TestStockReserve_ExactStock(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Burger", 1200, 5)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	left, err := stock.Reserve(f.DB, p.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
}

func TestStockReserve_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	_, err := stock.Reserve(f.DB, 9999, 1)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestStockRelease_CappedAtReserved(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Burger", 1200, 5)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	_, err := stock.Reserve(f.DB, p.ID, 3)
	require.NoError(t, err)

	// releasing more than was ever reserved cannot inflate stock
	left, err := stock.Release(f.DB, p.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, left)

	got := f.reloadProduct(t, p.ID)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 0, got.Reserved)

	// and a second release is a no-op
	left, err = stock.Release(f.DB, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, left)
}

func TestStockAdjust_RoundTrip(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Burger", 1200, 5)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	_, err := stock.Reserve(f.DB, p.ID, 2)
	require.NoError(t, err)

	// 2 -> 5 -> 2 restores the original levels
	require.NoError(t, stock.Adjust(f.DB, p.ID, 2, 5))
	assert.Equal(t, 0, f.reloadProduct(t, p.ID).Stock)

	require.NoError(t, stock.Adjust(f.DB, p.ID, 5, 2))
	got := f.reloadProduct(t, p.ID)
	assert.Equal(t, 3, got.Stock)
	assert.Equal(t, 2, got.Reserved)
}

func TestStockReserve_RejectsNonPositive(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Burger", 1200, 5)
	stock := NewStockService(repository.NewProductRepository(f.DB))

	_, err := stock.Reserve(f.DB, p.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = stock.Release(f.DB, p.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
