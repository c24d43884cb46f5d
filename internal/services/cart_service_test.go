package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/store"
)

var (
	testKurta = models.Product{ID: "p1", Name: "Kurta", Price: 249900}
	testDiya  = models.Product{ID: "p2", Name: "Diya Set", Price: 89900}
)

func newTestCartService() *CartService {
	return NewCartService(store.NewMemoryStore())
}

func TestCartService_CreateAndGet(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	id, err := svc.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cart, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len())
}

func TestCartService_GetMissing(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.Get(context.Background(), "no-such-cart")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_AddSetRemoveClear(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	id, err := svc.Create(ctx)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, id, testKurta, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(499800), cart.Subtotal())

	cart, err = svc.AddItem(ctx, id, testDiya, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Len())

	cart, err = svc.SetQuantity(ctx, id, testKurta.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(249900+89900), cart.Subtotal())

	cart, err = svc.SetQuantity(ctx, id, testDiya.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Len())

	cart, err = svc.RemoveItem(ctx, id, testKurta.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len())

	_, err = svc.AddItem(ctx, id, testKurta, 3)
	require.NoError(t, err)
	cart, err = svc.Clear(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len())
}

func TestCartService_MutationsAreCopyOnWrite(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	id, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, id, testKurta, 1)
	require.NoError(t, err)

	snapshot, err := svc.Get(ctx, id)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, id, testKurta, 5)
	require.NoError(t, err)

	// the earlier snapshot is untouched by later mutations
	assert.Equal(t, testKurta.Price, snapshot.Subtotal())

	current, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, testKurta.Price*6, current.Subtotal())
}

func TestCartService_MutateMissingCart(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.AddItem(context.Background(), "ghost", testKurta, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)
}
