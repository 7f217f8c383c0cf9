package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarlin/orderwatch/internal/model"
)

// Store provides database operations on the orders table.
type Store struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Store backed by the given connection pool.
func New(db *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

const createOrdersTable = `
	CREATE TABLE IF NOT EXISTS orders (
		created_at    timestamptz      NOT NULL DEFAULT now(),
		type          text             NOT NULL,
		blockchain    text             NOT NULL,
		crypto_amount double precision NOT NULL,
		crypto_symbol text             NOT NULL,
		fiat_amount   double precision NOT NULL,
		fiat_price    double precision NOT NULL,
		fiat_symbol   text             NOT NULL
	)
`

// Init ensures the orders table exists. Safe to call on every start.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createOrdersTable); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

// Insert appends one order. created_at is assigned server-side.
func (s *Store) Insert(ctx context.Context, o model.Order) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO orders
			(type, blockchain, crypto_amount, crypto_symbol, fiat_amount, fiat_price, fiat_symbol)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, string(o.Side), o.Blockchain, o.CryptoAmount, o.CryptoSymbol, o.FiatAmount, o.FiatPrice, o.FiatSymbol)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// LoadRecent returns the most recently created orders, newest first, capped
// at limit. Used only at startup to seed the watcher baseline.
func (s *Store) LoadRecent(ctx context.Context, limit int) ([]model.Order, error) {
	rows, err := s.db.Query(ctx, `
		SELECT type, blockchain, crypto_amount, crypto_symbol, fiat_amount, fiat_price, fiat_symbol
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var typ string
		var o model.Order
		if err := rows.Scan(&typ, &o.Blockchain, &o.CryptoAmount, &o.CryptoSymbol,
			&o.FiatAmount, &o.FiatPrice, &o.FiatSymbol); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		side, err := model.ParseSide(typ)
		if err != nil {
			return nil, fmt.Errorf("order row: %w", err)
		}
		o.Side = side
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order rows: %w", err)
	}

	return orders, nil
}
