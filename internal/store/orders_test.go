package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvicorn-shop/internal/models"
)

func setupOrderStore(t *testing.T) *OrderStore {
	st, err := OpenOrderStore(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.Init(context.Background()))
	return st
}

func sampleOrder(id, linkID string) models.Order {
	return models.Order{
		ID:    id,
		Email: "buyer@example.com",
		Items: []models.CartItem{
			{Product: models.Product{ID: "p1", Name: "Kurta", Price: 100000}, Quantity: 2},
		},
		Subtotal:      200000,
		Tax:           36000,
		Total:         236000,
		Status:        models.OrderStatusCompleted,
		PaymentLinkID: linkID,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestOrderStore_SaveGet(t *testing.T) {
	st := setupOrderStore(t)
	ctx := context.Background()

	want := sampleOrder("ORD-1", "plink_1")
	require.NoError(t, st.Save(ctx, want))

	got, err := st.Get(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrderStore_GetMissing(t *testing.T) {
	st := setupOrderStore(t)

	_, err := st.Get(context.Background(), "ORD-GHOST")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderStore_MarkPaid(t *testing.T) {
	st := setupOrderStore(t)
	ctx := context.Background()

	order := sampleOrder("ORD-2", "plink_2")
	order.Status = models.OrderStatusPending
	require.NoError(t, st.Save(ctx, order))

	require.NoError(t, st.MarkPaid(ctx, "plink_2", "pay_99"))

	got, err := st.Get(ctx, "ORD-2")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)
}

func TestOrderStore_MarkPaidUnknownLink(t *testing.T) {
	st := setupOrderStore(t)

	err := st.MarkPaid(context.Background(), "plink_unknown", "pay_1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderStore_MarkPaidIgnoresLinklessOrders(t *testing.T) {
	st := setupOrderStore(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, sampleOrder("ORD-3", "")))

	err := st.MarkPaid(ctx, "", "pay_1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
