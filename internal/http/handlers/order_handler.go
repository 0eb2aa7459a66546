package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type orderJSON struct {
	ID              string  `json:"id"`
	ItemID          string  `json:"itemId"`
	ItemName        string  `json:"itemName"`
	ItemDesc        string  `json:"itemDesc,omitempty"`
	ItemOrderPrice  float64 `json:"itemOrderPrice"`
	ItemQuantity    int     `json:"itemQuantity"`
	ShippingAddress string  `json:"shippingAddress"`
	CustomerID      string  `json:"customerId"`
	SellerID        string  `json:"sellerId"`
	Status          string  `json:"status"`
	HasShipped      bool    `json:"hasShipped"`
	IsCompleted     bool    `json:"isCompleted"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toOrderJSON(o domain.OrderLine) orderJSON {
	return orderJSON{
		ID:              o.ID,
		ItemID:          o.ItemID,
		ItemName:        o.ItemName,
		ItemDesc:        o.ItemDesc,
		ItemOrderPrice:  o.ItemPrice,
		ItemQuantity:    o.ItemQuantity,
		ShippingAddress: o.ShippingAddress,
		CustomerID:      o.CustomerID,
		SellerID:        o.SellerID,
		Status:          o.Status,
		HasShipped:      o.HasShipped(),
		IsCompleted:     o.IsCompleted(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderJSONs(lines []domain.OrderLine) []orderJSON {
	out := make([]orderJSON, 0, len(lines))
	for _, l := range lines {
		out = append(out, toOrderJSON(l))
	}
	return out
}

// CreateBatch takes the checkout payload: an array of order lines. The
// whole batch lands or nothing does. Every line must belong to the caller.
func (h *OrderHandler) CreateBatch(c *fiber.Ctx) error {
	var lines []services.NewLine
	if err := c.BodyParser(&lines); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid order data")
	}
	for _, l := range lines {
		if !isSelf(c, l.CustomerID) {
			return denySelf(c, l.CustomerID)
		}
	}
	created, err := h.Orders.CreateBatch(lines)
	if err != nil {
		return fail(c, "orders.create", err)
	}
	applog.Audit(c, "orders.create", map[string]any{"count": len(created)})
	return c.Status(fiber.StatusCreated).JSON(toOrderJSONs(created))
}

type updateOrderReq struct {
	HasShipped  *bool `json:"hasShipped"`
	IsCompleted *bool `json:"isCompleted"`
}

// Update drives the order lifecycle through the legacy boolean wire
// format: the seller flips hasShipped, the buyer flips isCompleted.
// Flags only ever move to true, and completion requires shipment first.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req updateOrderReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.HasShipped == nil && req.IsCompleted == nil {
		return jsonMsg(c, fiber.StatusBadRequest, "no status change requested")
	}
	if (req.HasShipped != nil && !*req.HasShipped) || (req.IsCompleted != nil && !*req.IsCompleted) {
		return jsonMsg(c, fiber.StatusBadRequest, "status flags cannot be cleared")
	}

	o, err := h.Orders.Get(id)
	if err != nil {
		return fail(c, "orders.update", err)
	}

	// Authorize every requested flag up front; a rejected request must not
	// leave a half-applied transition behind.
	if req.HasShipped != nil && !isSelf(c, o.SellerID) {
		return denySelf(c, o.SellerID)
	}
	if req.IsCompleted != nil && !isSelf(c, o.CustomerID) {
		return denySelf(c, o.CustomerID)
	}

	if req.HasShipped != nil {
		if o, err = h.Orders.MarkShipped(id); err != nil {
			return fail(c, "orders.update", err)
		}
		applog.Audit(c, "orders.shipped", map[string]any{"order_id": id})
	}
	if req.IsCompleted != nil {
		if o, err = h.Orders.MarkCompleted(id); err != nil {
			return fail(c, "orders.update", err)
		}
		applog.Audit(c, "orders.completed", map[string]any{"order_id": id})
	}

	return c.JSON(toOrderJSON(o))
}

func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	if !isSelf(c, customerID) {
		return denySelf(c, customerID)
	}
	orders, err := h.Orders.ListByCustomer(customerID)
	if err != nil {
		return fail(c, "orders.byCustomer", err)
	}
	if len(orders) == 0 {
		return jsonMsg(c, fiber.StatusNotFound, "no orders found for this customer")
	}
	return c.JSON(toOrderJSONs(orders))
}

func (h *OrderHandler) ListBySeller(c *fiber.Ctx) error {
	sellerID := c.Params("sellerId")
	if !isSelf(c, sellerID) {
		return denySelf(c, sellerID)
	}
	orders, err := h.Orders.ListBySeller(sellerID)
	if err != nil {
		return fail(c, "orders.bySeller", err)
	}
	if len(orders) == 0 {
		return jsonMsg(c, fiber.StatusNotFound, "no orders found for this seller")
	}
	return c.JSON(toOrderJSONs(orders))
}

// Earnings returns the seller's completed-order totals for the trailing
// six calendar months, zero-filled and in chronological order.
func (h *OrderHandler) Earnings(c *fiber.Ctx) error {
	sellerID := c.Params("sellerId")
	if !isSelf(c, sellerID) {
		return denySelf(c, sellerID)
	}
	orders, err := h.Orders.ListBySeller(sellerID)
	if err != nil {
		return fail(c, "orders.earnings", err)
	}
	buckets := services.MonthlyEarnings(time.Now().UTC(), orders)
	return c.JSON(fiber.Map{"sellerId": sellerID, "months": buckets})
}
