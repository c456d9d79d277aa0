package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) Create(perm *models.ItemPermission) error {
	args := m.Called(perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindByID(id uint) (*models.ItemPermission, error) {
	args := m.Called(id)
	perm, _ := args.Get(0).(*models.ItemPermission)
	return perm, args.Error(1)
}

func (m *MockPermissionRepository) FindAll() ([]models.ItemPermission, error) {
	args := m.Called()
	return args.Get(0).([]models.ItemPermission), args.Error(1)
}

func (m *MockPermissionRepository) Update(perm *models.ItemPermission) error {
	args := m.Called(perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindRole(itemType string, itemID, userID uint) (*models.ItemPermission, error) {
	args := m.Called(itemType, itemID, userID)
	perm, _ := args.Get(0).(*models.ItemPermission)
	return perm, args.Error(1)
}

func TestPermissionService_RoleOf(t *testing.T) {
	mockRepo := new(MockPermissionRepository)
	service := NewPermissionService(mockRepo)

	mockRepo.On("FindRole", models.ItemTypeFolder, uint(1), uint(7)).
		Return(&models.ItemPermission{Role: models.RoleEdit}, nil)

	role, err := service.RoleOf(models.ItemTypeFolder, 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, models.RoleEdit, role)
	mockRepo.AssertExpectations(t)
}

func TestPermissionService_RoleOf_NoGrant(t *testing.T) {
	mockRepo := new(MockPermissionRepository)
	service := NewPermissionService(mockRepo)

	mockRepo.On("FindRole", models.ItemTypeFile, uint(2), uint(7)).Return(nil, nil)

	role, err := service.RoleOf(models.ItemTypeFile, 2, 7)

	assert.NoError(t, err)
	assert.Equal(t, models.Role(""), role)
}

func TestPermissionService_Authorize(t *testing.T) {
	cases := []struct {
		name     string
		held     *models.ItemPermission
		required models.Role
		allowed  bool
	}{
		{"owner can delete", &models.ItemPermission{Role: models.RoleOwner}, models.RoleOwner, true},
		{"owner can edit", &models.ItemPermission{Role: models.RoleOwner}, models.RoleEdit, true},
		{"edit can rename", &models.ItemPermission{Role: models.RoleEdit}, models.RoleEdit, true},
		{"edit cannot delete", &models.ItemPermission{Role: models.RoleEdit}, models.RoleOwner, false},
		{"view can read", &models.ItemPermission{Role: models.RoleView}, models.RoleView, true},
		{"view cannot rename", &models.ItemPermission{Role: models.RoleView}, models.RoleEdit, false},
		{"no grant cannot read", nil, models.RoleView, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockPermissionRepository)
			service := NewPermissionService(mockRepo)
			mockRepo.On("FindRole", models.ItemTypeFolder, uint(1), uint(7)).Return(tc.held, nil)

			err := service.Authorize(models.ItemTypeFolder, 1, 7, tc.required)

			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
			}
		})
	}
}
