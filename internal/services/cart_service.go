package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/store"
)

const cartKeyPrefix = "uvicorn:cart:"

// CartService keeps carts in the configured Store (memory or redis) under a
// fixed key namespace. Mutations are copy-on-write: the stored cart is
// cloned, changed, then saved, so a loaded snapshot never changes under a
// caller. The mutex serializes mutators; a cart belongs to one session, but
// nothing stops two tabs from racing.
type CartService struct {
	mu    sync.Mutex
	store store.Store
}

func NewCartService(st store.Store) *CartService {
	return &CartService{store: st}
}

// Create persists a fresh empty cart and returns its id.
func (s *CartService) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.save(ctx, id, models.NewCart()); err != nil {
		return "", err
	}
	return id, nil
}

func (s *CartService) Get(ctx context.Context, id string) (*models.Cart, error) {
	data, err := s.store.Load(ctx, cartKeyPrefix+id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", id, err)
	}
	cart := models.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", id, err)
	}
	return cart, nil
}

// AddItem adds qty of product to the cart. qty must be positive.
func (s *CartService) AddItem(ctx context.Context, id string, product models.Product, qty int) (*models.Cart, error) {
	return s.mutate(ctx, id, func(c *models.Cart) {
		c.Add(product, qty)
	})
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
func (s *CartService) SetQuantity(ctx context.Context, id, productID string, qty int) (*models.Cart, error) {
	return s.mutate(ctx, id, func(c *models.Cart) {
		c.SetQuantity(productID, qty)
	})
}

// RemoveItem deletes a line; removing an absent line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, id, productID string) (*models.Cart, error) {
	return s.mutate(ctx, id, func(c *models.Cart) {
		c.Remove(productID)
	})
}

// Clear empties the cart; used after a completed checkout.
func (s *CartService) Clear(ctx context.Context, id string) (*models.Cart, error) {
	return s.mutate(ctx, id, func(c *models.Cart) {
		c.Clear()
	})
}

func (s *CartService) mutate(ctx context.Context, id string, fn func(*models.Cart)) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := current.Clone()
	fn(next)
	if err := s.save(ctx, id, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *CartService) save(ctx context.Context, id string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", id, err)
	}
	if err := s.store.Save(ctx, cartKeyPrefix+id, data); err != nil {
		return fmt.Errorf("save cart %s: %w", id, err)
	}
	return nil
}
