package handlers

import (
	"Vaulted/internal/middleware"
	"Vaulted/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service services.SearchService
}

func NewSearchHandler(service services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := c.Query("q")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)

	files, folders, l, err := h.service.Search(userID, q, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{
		"files":   files,
		"folders": folders,
		"page":    page,
		"limit":   l,
	})
}
