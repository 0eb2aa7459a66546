package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartEntryJSON struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func cartBody(userID string, entries []domain.CartEntry) fiber.Map {
	items := make([]cartEntryJSON, 0, len(entries))
	for _, e := range entries {
		items = append(items, cartEntryJSON{ItemID: e.ItemID, Quantity: e.Quantity})
	}
	return fiber.Map{"userId": userID, "items": items}
}

// Get returns the user's cart; a user without one gets an empty item list.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !isSelf(c, userID) {
		return denySelf(c, userID)
	}
	entries, err := h.Cart.Get(userID)
	if err != nil {
		return fail(c, "cart.get", err)
	}
	return c.JSON(cartBody(userID, entries))
}

type addToCartReq struct {
	UserID   string `json:"userId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addToCartReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	if !isSelf(c, req.UserID) {
		return denySelf(c, req.UserID)
	}
	if err := h.Cart.Add(req.UserID, req.ItemID, req.Quantity); err != nil {
		return fail(c, "cart.add", err)
	}
	entries, err := h.Cart.Get(req.UserID)
	if err != nil {
		return fail(c, "cart.add", err)
	}
	return c.JSON(cartBody(req.UserID, entries))
}

type updateCartReq struct {
	UserID string          `json:"userId"`
	Items  []cartEntryJSON `json:"items"`
}

// Update applies the client's cart mirror with merge semantics: listed
// entries are set (or removed at quantity <= 0), unlisted entries persist.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var req updateCartReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	if !isSelf(c, req.UserID) {
		return denySelf(c, req.UserID)
	}
	entries := make([]domain.CartEntry, 0, len(req.Items))
	for _, it := range req.Items {
		entries = append(entries, domain.CartEntry{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	merged, err := h.Cart.Merge(req.UserID, entries)
	if err != nil {
		return fail(c, "cart.update", err)
	}
	return c.JSON(cartBody(req.UserID, merged))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !isSelf(c, userID) {
		return denySelf(c, userID)
	}
	if err := h.Cart.Clear(userID); err != nil {
		return fail(c, "cart.clear", err)
	}
	applog.Info(c, "cart.clear", nil)
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

type removeItemReq struct {
	UserID string `json:"userId"`
	ItemID string `json:"itemId"`
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	var req removeItemReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	if !isSelf(c, req.UserID) {
		return denySelf(c, req.UserID)
	}
	entries, err := h.Cart.Remove(req.UserID, req.ItemID)
	if err != nil {
		return fail(c, "cart.remove", err)
	}
	return c.JSON(cartBody(req.UserID, entries))
}

type updateQuantityReq struct {
	UserID   string `json:"userId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// SetQuantity writes an exact quantity; anything below 1 is a 400 and the
// stored entry is untouched.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var req updateQuantityReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	if !isSelf(c, req.UserID) {
		return denySelf(c, req.UserID)
	}
	if req.Quantity < 1 {
		return jsonMsg(c, fiber.StatusBadRequest, "quantity must be at least 1")
	}
	entries, err := h.Cart.SetQuantity(req.UserID, req.ItemID, req.Quantity)
	if err != nil {
		return fail(c, "cart.setQuantity", err)
	}
	return c.JSON(cartBody(req.UserID, entries))
}
