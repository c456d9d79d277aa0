package handlers

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/middleware"
	"Vaulted/internal/models"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) CreateFolder(name string, userID uint, parentID *uint) (*models.Folder, error) {
	args := m.Called(name, userID, parentID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) GetFolderByID(id uint) (*models.Folder, error) {
	args := m.Called(id)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) RenameFolder(id, userID uint, name string) (*models.Folder, error) {
	args := m.Called(id, userID, name)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) MoveFolder(id, userID uint, newParentID *uint) (*models.Folder, error) {
	args := m.Called(id, userID, newParentID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) SoftDeleteFolder(id, userID uint) (*models.Folder, error) {
	args := m.Called(id, userID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) RestoreFolder(id, userID uint) (*models.Folder, error) {
	args := m.Called(id, userID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) ListChildren(userID uint, parentID *uint, page, limit int) ([]models.Folder, int, error) {
	args := m.Called(userID, parentID, page, limit)
	return args.Get(0).([]models.Folder), args.Int(1), args.Error(2)
}

func testAppAs(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUserID, userID)
		return c.Next()
	})
	return app
}

func TestFolderHandler_CreateFolder(t *testing.T) {
	app := testAppAs(7)
	mockService := new(MockFolderService)
	handler := NewFolderHandler(mockService)
	app.Post("/folders", handler.CreateFolder)

	folder := &models.Folder{BaseModel: models.BaseModel{ID: 1}, Name: "Docs", Path: "Docs", UserID: 7}
	mockService.On("CreateFolder", "Docs", uint(7), (*uint)(nil)).Return(folder, nil)

	body, _ := json.Marshal(map[string]interface{}{"name": "Docs"})
	req := httptest.NewRequest(http.MethodPost, "/folders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestFolderHandler_CreateFolder_ValidationError(t *testing.T) {
	app := testAppAs(7)
	mockService := new(MockFolderService)
	handler := NewFolderHandler(mockService)
	app.Post("/folders", handler.CreateFolder)

	mockService.On("CreateFolder", "", uint(7), (*uint)(nil)).
		Return(nil, apperrors.WithMessage(apperrors.ErrValidation, "folder name is required"))

	body, _ := json.Marshal(map[string]interface{}{"name": ""})
	req := httptest.NewRequest(http.MethodPost, "/folders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFolderHandler_ListFolders(t *testing.T) {
	app := testAppAs(7)
	mockService := new(MockFolderService)
	handler := NewFolderHandler(mockService)
	app.Get("/folders", handler.ListFolders)

	folders := []models.Folder{{BaseModel: models.BaseModel{ID: 2}, Name: "Docs", Path: "Docs", UserID: 7}}
	mockService.On("ListChildren", uint(7), (*uint)(nil), 1, 50).Return(folders, 50, nil)

	req := httptest.NewRequest(http.MethodGet, "/folders", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Items []models.Folder `json:"items"`
		Page  int             `json:"page"`
		Limit int             `json:"limit"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Items, 1)
	assert.Equal(t, 50, payload.Limit)
}

func TestFolderHandler_ListFolders_BadParentID(t *testing.T) {
	app := testAppAs(7)
	handler := NewFolderHandler(new(MockFolderService))
	app.Get("/folders", handler.ListFolders)

	req := httptest.NewRequest(http.MethodGet, "/folders?parentId=abc", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFolderHandler_RenameFolder_NotFound(t *testing.T) {
	app := testAppAs(7)
	mockService := new(MockFolderService)
	handler := NewFolderHandler(mockService)
	app.Patch("/folders/:id/rename", handler.RenameFolder)

	mockService.On("RenameFolder", uint(99), uint(7), "New").
		Return(nil, apperrors.WithMessage(apperrors.ErrNotFound, "folder not found"))

	body, _ := json.Marshal(map[string]interface{}{"name": "New"})
	req := httptest.NewRequest(http.MethodPatch, "/folders/99/rename", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFolderHandler_MoveFolder_Forbidden(t *testing.T) {
	app := testAppAs(9)
	mockService := new(MockFolderService)
	handler := NewFolderHandler(mockService)
	app.Patch("/folders/:id/move", handler.MoveFolder)

	mockService.On("MoveFolder", uint(2), uint(9), mock.Anything).
		Return(nil, apperrors.ErrForbidden)

	body, _ := json.Marshal(map[string]interface{}{"new_parent_id": 5})
	req := httptest.NewRequest(http.MethodPatch, "/folders/2/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestFolderHandler_DeleteAndRestore(t *testing.T) {
	app := testAppAs(7)
	mockService := new(MockFolderService)
	handler := NewFolderHandler(mockService)
	app.Delete("/folders/:id", handler.DeleteFolder)
	app.Post("/folders/:id/restore", handler.RestoreFolder)

	folder := &models.Folder{BaseModel: models.BaseModel{ID: 2}, Name: "Docs", Path: "Docs", UserID: 7}
	mockService.On("SoftDeleteFolder", uint(2), uint(7)).Return(folder, nil)
	mockService.On("RestoreFolder", uint(2), uint(7)).Return(folder, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/folders/2", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/folders/2/restore", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
