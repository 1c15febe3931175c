package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	lines := []OrderLine{
		{ProductID: uuid.New(), Name: "Guitar", UnitPrice: 50000, Quantity: 2},
		{ProductID: uuid.New(), Name: "Pick", UnitPrice: 200, Quantity: 1},
	}

	order, err := NewOrder("user-1", lines)
	require.NoError(t, err)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, int64(100200), order.Total.Cents())
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestNewOrder_Invalid(t *testing.T) {
	_, err := NewOrder("", []OrderLine{{ProductID: uuid.New(), Quantity: 1}})
	assert.Error(t, err)

	_, err = NewOrder("user-1", nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = NewOrder("user-1", []OrderLine{{ProductID: uuid.New(), Quantity: 0}})
	assert.Error(t, err)
}

func TestOrder_Transitions(t *testing.T) {
	order, err := NewOrder("user-1", []OrderLine{{ProductID: uuid.New(), UnitPrice: 100, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, order.MarkPaid())
	assert.Equal(t, OrderStatusPaid, order.Status)
	assert.Error(t, order.MarkPaid(), "paid order cannot be paid twice")
	assert.Error(t, order.Cancel(), "paid order cannot be cancelled")
}

func TestCatalogQuery_Normalize(t *testing.T) {
	q := CatalogQuery{}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, defaultPageSize, q.PageSize)
	assert.Equal(t, 0, q.Offset())

	q = CatalogQuery{Page: 3, PageSize: 500}.Normalize()
	assert.Equal(t, maxPageSize, q.PageSize)
	assert.Equal(t, 2*maxPageSize, q.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(CatalogQuery{Page: 2, PageSize: 20}, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 45, p.TotalItems)

	p = NewPagination(CatalogQuery{Page: 1, PageSize: 20}, 40)
	assert.Equal(t, 2, p.TotalPages)
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("electric-guitars"))
	assert.True(t, IsValidSlug("sub000"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Electric"))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("with space"))
}
