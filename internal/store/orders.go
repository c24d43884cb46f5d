package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"uvicorn-shop/internal/models"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("store: order not found")

// OrderStore persists completed orders in SQLite. Line items are stored as
// the order's JSON snapshot; nothing downstream queries individual lines.
type OrderStore struct {
	db *sql.DB
}

func OpenOrderStore(dbPath string) (*OrderStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	// Busy timeout + WAL so the webhook handler and checkout can overlap.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout=5000&_pragma=journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	return &OrderStore{db: db}, nil
}

func (s *OrderStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id              TEXT PRIMARY KEY,
			email           TEXT NOT NULL,
			items           TEXT NOT NULL,
			subtotal        INTEGER NOT NULL,
			tax             INTEGER NOT NULL,
			total           INTEGER NOT NULL,
			status          TEXT NOT NULL,
			payment_link_id TEXT NOT NULL DEFAULT '',
			payment_id      TEXT NOT NULL DEFAULT '',
			created_at      INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_orders_payment_link ON orders(payment_link_id);
	`)
	return err
}

func (s *OrderStore) Close() error { return s.db.Close() }

func (s *OrderStore) Save(ctx context.Context, o models.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, email, items, subtotal, tax, total, status, payment_link_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Email, string(items), o.Subtotal, o.Tax, o.Total,
		string(o.Status), o.PaymentLinkID, o.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}
	return nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (models.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, items, subtotal, tax, total, status, payment_link_id, created_at
		FROM orders WHERE id = ?`, id)
	return scanOrder(row)
}

// MarkPaid transitions the order matching a payment link to completed,
// recording the provider's payment id. Driven by the webhook paid event.
func (s *OrderStore) MarkPaid(ctx context.Context, paymentLinkID, paymentID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE orders SET status = ?, payment_id = ?
		WHERE payment_link_id = ? AND payment_link_id != ''`,
		string(models.OrderStatusCompleted), paymentID, paymentLinkID,
	)
	if err != nil {
		return fmt.Errorf("mark paid %s: %w", paymentLinkID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o         models.Order
		items     string
		status    string
		createdAt int64
	)
	err := row.Scan(&o.ID, &o.Email, &items, &o.Subtotal, &o.Tax, &o.Total,
		&status, &o.PaymentLinkID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return models.Order{}, fmt.Errorf("unmarshal order items: %w", err)
	}
	o.Status = models.OrderStatus(status)
	o.CreatedAt = time.Unix(createdAt, 0).UTC()
	return o, nil
}
