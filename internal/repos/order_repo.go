package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"tradepost/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `
  id, item_id, item_name, item_desc, item_price, item_qty, shipping_address,
  customer_id, seller_id, status,
  COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at`

// InsertBatch writes all lines in one transaction; a failure on any line
// rolls the whole batch back.
func (r *OrderRepo) InsertBatch(lines []domain.OrderLine) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_lines
		    (id, item_id, item_name, item_desc, item_price, item_qty,
		     shipping_address, customer_id, seller_id, status, created_at, updated_at)
		  VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
		`, l.ID, l.ItemID, l.ItemName, l.ItemDesc, l.ItemPrice, l.ItemQuantity,
			l.ShippingAddress, l.CustomerID, l.SellerID, l.Status, l.CreatedAt, l.UpdatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepo) Get(id string) (domain.OrderLine, error) {
	var o domain.OrderLine
	err := r.db.Get(&o, `SELECT `+orderCols+` FROM order_lines WHERE id = ?`, id)
	return o, err
}

// SetStatus updates the lifecycle column only when the row currently holds
// one of the allowed source states, so out-of-order writers lose cleanly.
// Returns the number of rows changed.
func (r *OrderRepo) SetStatus(id, status string, from ...string) (int64, error) {
	query, args, err := sqlx.In(`
	  UPDATE order_lines SET status = ?, updated_at = ?
	  WHERE id = ? AND status IN (?)
	`, status, time.Now().UTC().Format(time.RFC3339), id, from)
	if err != nil {
		return 0, err
	}
	res, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *OrderRepo) ListByCustomer(customerID string) ([]domain.OrderLine, error) {
	out := []domain.OrderLine{}
	err := r.db.Select(&out, `
	  SELECT `+orderCols+` FROM order_lines
	  WHERE customer_id = ?
	  ORDER BY created_at DESC
	`, customerID)
	return out, err
}

func (r *OrderRepo) ListBySeller(sellerID string) ([]domain.OrderLine, error) {
	out := []domain.OrderLine{}
	err := r.db.Select(&out, `
	  SELECT `+orderCols+` FROM order_lines
	  WHERE seller_id = ?
	  ORDER BY created_at DESC
	`, sellerID)
	return out, err
}
