package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"tradepost/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Entries returns the user's cart rows. A user with no cart gets an empty
// slice, not an error.
func (r *CartRepo) Entries(userID string) ([]domain.CartEntry, error) {
	out := []domain.CartEntry{}
	err := r.db.Select(&out, `
	  SELECT user_id, item_id, qty, COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at
	  FROM cart_items
	  WHERE user_id = ?
	  ORDER BY created_at, item_id
	`, userID)
	return out, err
}

// AddQty increments the entry by delta, creating it when absent. The
// increment happens inside the database, so concurrent adds from two tabs
// both land instead of one overwriting the other.
func (r *CartRepo) AddQty(userID, itemID string, delta int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(user_id,item_id,qty,created_at,updated_at)
	  VALUES(?,?,?,?,?)
	  ON CONFLICT(user_id,item_id) DO UPDATE
	  SET qty = cart_items.qty + excluded.qty, updated_at = excluded.updated_at
	`, userID, itemID, delta, now, now)
	return err
}

// SetQty overwrites the entry's quantity, creating it when absent.
func (r *CartRepo) SetQty(userID, itemID string, qty int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(user_id,item_id,qty,created_at,updated_at)
	  VALUES(?,?,?,?,?)
	  ON CONFLICT(user_id,item_id) DO UPDATE
	  SET qty = excluded.qty, updated_at = excluded.updated_at
	`, userID, itemID, qty, now, now)
	return err
}

// Remove deletes one entry and reports whether it existed.
func (r *CartRepo) Remove(userID, itemID string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ? AND item_id = ?`, userID, itemID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Merge applies a batch of client-held entries in one transaction:
// qty > 0 overwrites the stored quantity, qty <= 0 deletes the entry.
// Entries the client does not mention are left untouched.
func (r *CartRepo) Merge(userID string, entries []domain.CartEntry) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entries {
		if e.Quantity > 0 {
			if _, err := tx.Exec(`
			  INSERT INTO cart_items(user_id,item_id,qty,created_at,updated_at)
			  VALUES(?,?,?,?,?)
			  ON CONFLICT(user_id,item_id) DO UPDATE
			  SET qty = excluded.qty, updated_at = excluded.updated_at
			`, userID, e.ItemID, e.Quantity, now, now); err != nil {
				return err
			}
		} else {
			if _, err := tx.Exec(`DELETE FROM cart_items WHERE user_id = ? AND item_id = ?`, userID, e.ItemID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Clear drops the whole cart. Clearing an absent cart is a no-op.
func (r *CartRepo) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
