package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/validate"
)

type ItemHandler struct {
	Catalog *services.CatalogService
}

type itemJSON struct {
	domain.Item
	ImageURLs []string `json:"imageUrls"`
}

func toItemJSON(it domain.Item) itemJSON {
	urls := []string{}
	_ = json.Unmarshal([]byte(it.ImagesJSON), &urls)
	return itemJSON{Item: it, ImageURLs: urls}
}

func toItemJSONs(items []domain.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, toItemJSON(it))
	}
	return out
}

// List returns up to ?amount= live items (default 10, capped at 30).
func (h *ItemHandler) List(c *fiber.Ctx) error {
	amount := validate.Amount(c.Query("amount"), 10)
	items, err := h.Catalog.List(amount)
	if err != nil {
		return fail(c, "items.list", err)
	}
	return c.JSON(toItemJSONs(items))
}

func (h *ItemHandler) ListByOwner(c *fiber.Ctx) error {
	ownerID := c.Params("userId")
	items, err := h.Catalog.ListByOwner(ownerID)
	if err != nil {
		return fail(c, "items.byOwner", err)
	}
	if len(items) == 0 {
		return jsonMsg(c, fiber.StatusNotFound, "no items found for this user")
	}
	return c.JSON(toItemJSONs(items))
}

func (h *ItemHandler) Detail(c *fiber.Ctx) error {
	it, err := h.Catalog.Get(c.Params("itemId"))
	if err != nil {
		return fail(c, "items.detail", err)
	}
	return c.JSON(toItemJSON(it))
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in services.NewItem
	if err := c.BodyParser(&in); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	it, err := h.Catalog.Create(uid(c), in)
	if err != nil {
		return fail(c, "items.create", err)
	}
	applog.Audit(c, "items.create", map[string]any{"item_id": it.ID})
	return c.Status(fiber.StatusCreated).JSON(toItemJSON(it))
}

type batchReq struct {
	ItemIDs []string `json:"itemIds"`
}

// Batch resolves a set of ids at once (the cart page hydrating its item
// mirror). Soft-deleted items drop out of the result silently.
func (h *ItemHandler) Batch(c *fiber.Ctx) error {
	var req batchReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	items, err := h.Catalog.Batch(req.ItemIDs)
	if err != nil {
		return fail(c, "items.batch", err)
	}
	if len(items) == 0 {
		return jsonMsg(c, fiber.StatusNotFound, "no items found")
	}
	return c.JSON(fiber.Map{"items": toItemJSONs(items)})
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in services.NewItem
	if err := c.BodyParser(&in); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	it, err := h.Catalog.Update(uid(c), c.Params("id"), in)
	if err != nil {
		return fail(c, "items.update", err)
	}
	return c.JSON(toItemJSON(it))
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	it, err := h.Catalog.Delete(uid(c), c.Params("id"))
	if err != nil {
		return fail(c, "items.delete", err)
	}
	applog.Audit(c, "items.delete", map[string]any{"item_id": it.ID})
	return c.JSON(fiber.Map{"message": "Item soft deleted successfully", "item": toItemJSON(it)})
}

func (h *ItemHandler) Search(c *fiber.Ctx) error {
	items, err := h.Catalog.Search(c.Query("query"))
	if err != nil {
		return fail(c, "items.search", err)
	}
	return c.JSON(toItemJSONs(items))
}
