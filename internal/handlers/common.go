package handlers

import (
	"Vaulted/internal/apperrors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// respondError maps a domain error onto its HTTP status and a stable code.
func respondError(c *fiber.Ctx, err error) error {
	e := apperrors.FromError(err)
	return c.Status(e.Status).JSON(map[string]interface{}{"error": e.Message, "code": e.Code})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(map[string]interface{}{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// queryUintPtr reads an optional numeric query parameter, treating absent,
// "null" and "undefined" values as nil.
func queryUintPtr(c *fiber.Ctx, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" || raw == "null" || raw == "undefined" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}

func queryInt(c *fiber.Ctx, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
