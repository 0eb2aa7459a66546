package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo users/items if the DB is empty (idempotent; safe every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users (id is the identity provider uid; no credentials stored here)
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  profile_image TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_nocase ON users(LOWER(email));

-- Items (soft delete via flag; rows are never removed)
CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  shop_id TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT 'No description available',
  stock INTEGER NOT NULL CHECK (stock >= 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  images_json TEXT NOT NULL DEFAULT '[]',
  category TEXT NOT NULL DEFAULT '',
  deleted INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_items_owner    ON items(owner_id);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
CREATE INDEX IF NOT EXISTS idx_items_name     ON items(LOWER(name));

-- Cart entries: one row per (user, item); qty >= 1 always holds
CREATE TABLE IF NOT EXISTS cart_items(
  user_id TEXT NOT NULL,
  item_id TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (user_id, item_id)
);

-- Order lines: item_* columns are a checkout-time snapshot
CREATE TABLE IF NOT EXISTS order_lines(
  id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL,
  item_name TEXT NOT NULL,
  item_desc TEXT NOT NULL DEFAULT '',
  item_price NUMERIC NOT NULL CHECK (item_price >= 0),
  item_qty INTEGER NOT NULL CHECK (item_qty >= 1),
  shipping_address TEXT NOT NULL,
  customer_id TEXT NOT NULL,
  seller_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','SHIPPED','COMPLETED')),
  created_at TEXT,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_order_lines_customer ON order_lines(customer_id);
CREATE INDEX IF NOT EXISTS idx_order_lines_seller   ON order_lines(seller_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo users/items")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO users(id,email,name) VALUES
	  ('seed-seller','seller@tradepost.test','Demo Seller'),
	  ('seed-buyer','buyer@tradepost.test','Demo Buyer')
	  ON CONFLICT(id) DO NOTHING`)

	tx.MustExec(`INSERT INTO items(id,owner_id,name,description,stock,price,images_json,category) VALUES
	  ('seed-lamp','seed-seller','Desk Lamp','Adjustable LED desk lamp',12,24.50,'[]','Home'),
	  ('seed-mug','seed-seller','Camp Mug','Enamel camping mug, 350ml',40,9.99,'[]','Kitchen'),
	  ('seed-chair','seed-seller','Folding Chair','Lightweight aluminum folding chair',5,34.00,'[]','Outdoor')`)

	return tx.Commit()
}
