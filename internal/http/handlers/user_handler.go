package handlers

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/repos"
	"tradepost/internal/services"
	"tradepost/internal/validate"
)

type UserHandler struct {
	Users *repos.UserRepo
}

type createUserReq struct {
	FirebaseID string `json:"firebaseId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// Create registers a profile for an identity-provider uid. The uid in the
// body must match the verified token subject.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	if !isSelf(c, req.FirebaseID) {
		return denySelf(c, req.FirebaseID)
	}
	email, okE := validate.Email(req.Email)
	name, okN := validate.Name(req.Name)
	phone, okP := validate.Phone(req.Phone)
	if !okE || !okN || !okP {
		return jsonMsg(c, fiber.StatusBadRequest, "email, name, and Firebase ID are required")
	}
	if existing, err := h.Users.ByID(req.FirebaseID); err == nil && existing != nil {
		return fail(c, "users.create", services.ErrDuplicate)
	}
	u := domain.User{ID: req.FirebaseID, Email: email, Name: name, Phone: phone, Address: req.Address}
	if err := h.Users.Create(u); err != nil {
		// covers the id and the case-insensitive email unique indexes
		if strings.Contains(err.Error(), "UNIQUE") {
			return fail(c, "users.create", services.ErrDuplicate)
		}
		return fail(c, "users.create", err)
	}
	applog.Audit(c, "users.create", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully", "user": u})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.ByID(c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return jsonMsg(c, fiber.StatusNotFound, "user not found")
		}
		return fail(c, "users.get", err)
	}
	return c.JSON(u)
}

// Detail returns the displayable profile projection (seller contact info).
func (h *UserHandler) Detail(c *fiber.Ctx) error {
	u, err := h.Users.ByID(c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return jsonMsg(c, fiber.StatusNotFound, "user not found")
		}
		return fail(c, "users.detail", err)
	}
	return c.JSON(fiber.Map{
		"name":         u.Name,
		"email":        u.Email,
		"phone":        u.Phone,
		"address":      u.Address,
		"profileImage": u.ProfileImage,
	})
}

type updateUserReq struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProfileImage string `json:"profileImage"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isSelf(c, id) {
		return denySelf(c, id)
	}
	var req updateUserReq
	if err := c.BodyParser(&req); err != nil {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid body")
	}
	email, okE := validate.Email(req.Email)
	name, okN := validate.Name(req.Name)
	phone, okP := validate.Phone(req.Phone)
	if !okE || !okN || !okP {
		return jsonMsg(c, fiber.StatusBadRequest, "invalid profile fields")
	}
	ok, err := h.Users.Update(domain.User{
		ID: id, Name: name, Email: email, Phone: phone,
		Address: req.Address, ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return fail(c, "users.update", err)
	}
	if !ok {
		return jsonMsg(c, fiber.StatusNotFound, "user not found")
	}
	u, err := h.Users.ByID(id)
	if err != nil {
		return fail(c, "users.update", err)
	}
	return c.JSON(u)
}
