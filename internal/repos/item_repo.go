package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"tradepost/internal/domain"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

const itemCols = `
  id, owner_id, shop_id, name, description, stock, price, images_json,
  category, deleted, COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ItemRepo) Create(it domain.Item) error {
	_, err := r.db.Exec(`
	  INSERT INTO items(id,owner_id,shop_id,name,description,stock,price,images_json,category,deleted,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,0,?)
	`, it.ID, it.OwnerID, it.ShopID, it.Name, it.Description, it.Stock, it.Price,
		it.ImagesJSON, it.Category, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Get returns a live item; soft-deleted rows behave as absent.
func (r *ItemRepo) Get(id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `SELECT `+itemCols+` FROM items WHERE id = ? AND deleted = 0`, id)
	return it, err
}

func (r *ItemRepo) ListByOwner(ownerID string) ([]domain.Item, error) {
	out := []domain.Item{}
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM items
	  WHERE owner_id = ? AND deleted = 0
	  ORDER BY created_at DESC
	`, ownerID)
	return out, err
}

func (r *ItemRepo) List(limit int) ([]domain.Item, error) {
	out := []domain.Item{}
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM items
	  WHERE deleted = 0
	  ORDER BY created_at DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *ItemRepo) Batch(ids []string) ([]domain.Item, error) {
	if len(ids) == 0 {
		return []domain.Item{}, nil
	}
	query, args, err := sqlx.In(`SELECT `+itemCols+` FROM items WHERE id IN (?) AND deleted = 0`, ids)
	if err != nil {
		return nil, err
	}
	out := []domain.Item{}
	err = r.db.Select(&out, r.db.Rebind(query), args...)
	return out, err
}

// Update rewrites the mutable fields and reports whether the row existed.
func (r *ItemRepo) Update(it domain.Item) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE items
	  SET shop_id=?, name=?, description=?, stock=?, price=?, images_json=?, category=?, updated_at=?
	  WHERE id=? AND deleted = 0
	`, it.ShopID, it.Name, it.Description, it.Stock, it.Price, it.ImagesJSON,
		it.Category, time.Now().UTC().Format(time.RFC3339), it.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// SoftDelete flags the row; it stays in the table for order history.
func (r *ItemRepo) SoftDelete(id string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE items SET deleted = 1, updated_at = ? WHERE id = ? AND deleted = 0
	`, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ItemRepo) Search(q string) ([]domain.Item, error) {
	like := "%" + q + "%"
	out := []domain.Item{}
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM items
	  WHERE deleted = 0
	    AND (LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?))
	  ORDER BY created_at DESC
	`, like, like, like)
	return out, err
}
