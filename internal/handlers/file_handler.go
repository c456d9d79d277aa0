package handlers

import (
	"Vaulted/internal/middleware"
	"Vaulted/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	service services.FileService
}

func NewFileHandler(service services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	folderID, err := queryUintPtr(c, "folderId")
	if err != nil {
		return badRequest(c, "invalid folderId")
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)

	files, l, err := h.service.ListFiles(userID, folderID, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"items": files, "page": page, "limit": l})
}

func (h *FileHandler) ListFilesKeyset(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	folderID, err := queryUintPtr(c, "folderId")
	if err != nil {
		return badRequest(c, "invalid folderId")
	}
	limit := queryInt(c, "limit", 50)
	cursor := c.Query("cursor")

	files, nextCursor, err := h.service.ListFilesKeyset(userID, folderID, cursor, limit)
	if err != nil {
		return respondError(c, err)
	}
	resp := map[string]interface{}{"items": files}
	if nextCursor != "" {
		resp["next_cursor"] = nextCursor
	} else {
		resp["next_cursor"] = nil
	}
	return c.JSON(resp)
}

func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "no file uploaded")
	}

	var folderID *uint
	if raw := c.FormValue("folder_id"); raw != "" && raw != "null" && raw != "undefined" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return badRequest(c, "invalid folder_id")
		}
		u := uint(v)
		folderID = &u
	}

	file, err := h.service.Upload(c.Context(), userID, folderID, fileHeader)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(file)
}

func (h *FileHandler) SignedURL(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid file ID")
	}

	url, expiresIn, err := h.service.SignedURL(c.Context(), id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"url": url, "expires_in": expiresIn})
}

func (h *FileHandler) RenameFile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid file ID")
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	file, err := h.service.RenameFile(id, userID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(file)
}

func (h *FileHandler) MoveFile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid file ID")
	}
	var req struct {
		FolderID *uint `json:"folder_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	file, err := h.service.MoveFile(id, userID, req.FolderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(file)
}

func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid file ID")
	}

	file, err := h.service.SoftDeleteFile(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(file)
}

func (h *FileHandler) RestoreFile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid file ID")
	}

	file, err := h.service.RestoreFile(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(file)
}
