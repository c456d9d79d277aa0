package handlers

import (
	"Vaulted/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type JanitorHandler struct {
	janitor *services.Janitor
}

func NewJanitorHandler(janitor *services.Janitor) *JanitorHandler {
	return &JanitorHandler{janitor: janitor}
}

func (h *JanitorHandler) ForceClean(c *fiber.Ctx) error {
	if err := h.janitor.ForceStartCleanCycle(); err != nil {
		return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.Status(http.StatusAccepted).JSON(map[string]interface{}{"status": "cleaning started"})
}
