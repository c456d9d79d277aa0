package handlers

import (
	"Vaulted/internal/middleware"
	"Vaulted/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type FolderHandler struct {
	service services.FolderService
}

func NewFolderHandler(service services.FolderService) *FolderHandler {
	return &FolderHandler{service: service}
}

func (h *FolderHandler) ListFolders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	parentID, err := queryUintPtr(c, "parentId")
	if err != nil {
		return badRequest(c, "invalid parentId")
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)

	folders, l, err := h.service.ListChildren(userID, parentID, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"items": folders, "page": page, "limit": l})
}

func (h *FolderHandler) CreateFolder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	var req struct {
		Name     string `json:"name"`
		ParentID *uint  `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	folder, err := h.service.CreateFolder(req.Name, userID, req.ParentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(folder)
}

func (h *FolderHandler) RenameFolder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid folder ID")
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	folder, err := h.service.RenameFolder(id, userID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(folder)
}

func (h *FolderHandler) MoveFolder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid folder ID")
	}
	var req struct {
		NewParentID *uint `json:"new_parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	folder, err := h.service.MoveFolder(id, userID, req.NewParentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(folder)
}

func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid folder ID")
	}

	folder, err := h.service.SoftDeleteFolder(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(folder)
}

func (h *FolderHandler) RestoreFolder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid folder ID")
	}

	folder, err := h.service.RestoreFolder(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(folder)
}
