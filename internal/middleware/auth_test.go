package middleware

import (
	"Vaulted/internal/models"
	"Vaulted/internal/services"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(email, password, name string) (*models.User, string, error) {
	args := m.Called(email, password, name)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(token string) (*services.AuthClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*services.AuthClaims)
	return claims, args.Error(1)
}

func authTestApp(authService services.AuthService) *fiber.App {
	app := fiber.New()
	app.Use(RequireAuth(authService))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(map[string]interface{}{"user_id": UserID(c)})
	})
	return app
}

func TestRequireAuth_ValidToken(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("ValidateToken", "good-token").
		Return(&services.AuthClaims{UserID: 7, Email: "a@b.se"}, nil)
	app := authTestApp(mockAuth)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	app := authTestApp(new(MockAuthService))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	app := authTestApp(new(MockAuthService))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "good-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("ValidateToken", "bad-token").Return(nil, errors.New("token is expired"))
	app := authTestApp(mockAuth)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
