package handlers

import (
	"Vaulted/internal/middleware"
	"Vaulted/internal/models"
	"Vaulted/internal/services"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ShareHandler struct {
	service services.ShareService
}

func NewShareHandler(service services.ShareService) *ShareHandler {
	return &ShareHandler{service: service}
}

func (h *ShareHandler) CreateShareLink(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	var req struct {
		ItemType  string `json:"item_type" validate:"required,oneof=folder file"`
		ItemID    uint   `json:"item_id" validate:"required"`
		Role      string `json:"role" validate:"omitempty,oneof=owner edit view"`
		ExpiresIn *int64 `json:"expires_in"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Role == "" {
		req.Role = string(models.RoleView)
	}

	link, err := h.service.CreateLink(userID, req.ItemType, req.ItemID, models.Role(req.Role), req.ExpiresIn)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(map[string]interface{}{
		"link": link,
		"url":  fmt.Sprintf("/api/share/%s", link.Token),
	})
}

func (h *ShareHandler) RevokeShareLink(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid link ID")
	}

	link, err := h.service.RevokeLink(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

// ResolveShareToken is the only item route with no identity behind it; the
// token is the whole credential.
func (h *ShareHandler) ResolveShareToken(c *fiber.Ctx) error {
	token := c.Params("token")
	resolution, err := h.service.ResolveToken(c.Context(), token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resolution)
}
