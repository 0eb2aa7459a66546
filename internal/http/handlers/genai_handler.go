package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/genai"
	applog "tradepost/internal/log"
)

// GenAIHandler proxies form-prefill text generation. Upstream failures are
// a generic 500; nothing here touches cart or order state.
type GenAIHandler struct {
	Client *genai.Client
}

type descriptionReq struct {
	Prompt string `json:"prompt"`
}

func (h *GenAIHandler) GenerateDescription(c *fiber.Ctx) error {
	var req descriptionReq
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return jsonMsg(c, fiber.StatusBadRequest, "prompt is required")
	}
	text, err := h.Client.GenerateDescription(req.Prompt)
	if err != nil {
		applog.Error(c, "genai.description", err, nil)
		return jsonMsg(c, fiber.StatusInternalServerError, "failed to generate description")
	}
	return c.JSON(fiber.Map{"description": text})
}

type categoryReq struct {
	ItemName string `json:"itemName"`
}

func (h *GenAIHandler) GenerateCategory(c *fiber.Ctx) error {
	var req categoryReq
	if err := c.BodyParser(&req); err != nil || req.ItemName == "" {
		return jsonMsg(c, fiber.StatusBadRequest, "item name is required")
	}
	text, err := h.Client.GenerateCategories(req.ItemName)
	if err != nil {
		applog.Error(c, "genai.category", err, nil)
		return jsonMsg(c, fiber.StatusInternalServerError, "failed to generate categories")
	}
	return c.JSON(fiber.Map{"categories": text})
}
