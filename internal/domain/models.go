package domain

// CartEntry is one (user, item) row; a user's cart is the set of their rows.
// A stored entry always has Quantity >= 1 (CHECK constraint in the schema).
type CartEntry struct {
	UserID    string `db:"user_id" json:"-"`
	ItemID    string `db:"item_id" json:"itemId"`
	Quantity  int    `db:"qty" json:"quantity"`
	CreatedAt string `db:"created_at" json:"-"`
	UpdatedAt string `db:"updated_at" json:"-"`
}

type Item struct {
	ID          string  `db:"id" json:"id"`
	OwnerID     string  `db:"owner_id" json:"userId"`
	ShopID      string  `db:"shop_id" json:"shopId,omitempty"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Stock       int     `db:"stock" json:"stock"`
	Price       float64 `db:"price" json:"price"`
	ImagesJSON  string  `db:"images_json" json:"-"`
	Category    string  `db:"category" json:"category,omitempty"`
	Deleted     bool    `db:"deleted" json:"-"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

// Order status values. PENDING -> SHIPPED -> COMPLETED, no other paths.
const (
	OrderPending   = "PENDING"
	OrderShipped   = "SHIPPED"
	OrderCompleted = "COMPLETED"
)

// OrderLine snapshots one purchased item at checkout time. The item_*
// columns never change after insert; only Status and UpdatedAt mutate.
type OrderLine struct {
	ID              string  `db:"id" json:"id"`
	ItemID          string  `db:"item_id" json:"itemId"`
	ItemName        string  `db:"item_name" json:"itemName"`
	ItemDesc        string  `db:"item_desc" json:"itemDesc,omitempty"`
	ItemPrice       float64 `db:"item_price" json:"itemOrderPrice"`
	ItemQuantity    int     `db:"item_qty" json:"itemQuantity"`
	ShippingAddress string  `db:"shipping_address" json:"shippingAddress"`
	CustomerID      string  `db:"customer_id" json:"customerId"`
	SellerID        string  `db:"seller_id" json:"sellerId"`
	Status          string  `db:"status" json:"status"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`
	UpdatedAt       string  `db:"updated_at" json:"updatedAt"`
}

// HasShipped and IsCompleted derive the legacy wire booleans from Status.
func (o OrderLine) HasShipped() bool {
	return o.Status == OrderShipped || o.Status == OrderCompleted
}

func (o OrderLine) IsCompleted() bool { return o.Status == OrderCompleted }
