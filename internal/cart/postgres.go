package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresStorage persists one cart per cart id as a replaced snapshot: a
// save deletes the previous rows and inserts the current items inside one
// transaction, mirroring the store's copy-on-write semantics.
type PostgresStorage struct {
	db     *sql.DB
	cartID string
}

func NewPostgresStorage(db *sql.DB, cartID string) *PostgresStorage {
	return &PostgresStorage{db: db, cartID: cartID}
}

func (p *PostgresStorage) Load(ctx context.Context) ([]Item, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT payload
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at, id
	`, p.cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var item Item
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (p *PostgresStorage) Save(ctx context.Context, items []Item) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, p.cartID); err != nil {
		return err
	}

	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return err
		}

		addedAt := item.AddedAt
		if addedAt.IsZero() {
			addedAt = time.Now().UTC()
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (id, cart_id, payload, added_at)
			VALUES ($1, $2, $3, $4)
		`, item.ID, p.cartID, payload, addedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
