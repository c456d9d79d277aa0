package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/config"
	"Vaulted/internal/models"
	"Vaulted/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates the credential tokens that resolve a
// request to a user identity. The core beyond this service only ever sees
// the resulting (userID, email) pair.
type AuthService interface {
	Register(email, password, name string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	ValidateToken(token string) (*AuthClaims, error)
}

type AuthClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	userRepo      repository.UserRepository
	configuration *config.Configuration
}

func NewAuthService(userRepo repository.UserRepository, configuration *config.Configuration) AuthService {
	return &authServiceImpl{userRepo: userRepo, configuration: configuration}
}

func (s *authServiceImpl) Register(email, password, name string) (*models.User, string, error) {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrStore, err)
	}
	if existing != nil {
		return nil, "", apperrors.WithMessage(apperrors.ErrValidation, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrStore, err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash), Name: name}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrStore, err)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authServiceImpl) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrStore, err)
	}
	if user == nil {
		return nil, "", apperrors.WithMessage(apperrors.ErrValidation, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.WithMessage(apperrors.ErrValidation, "invalid credentials")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authServiceImpl) ValidateToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized
		}
		return []byte(s.configuration.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.WithMessage(apperrors.ErrUnauthorized, "invalid token")
	}
	return claims, nil
}

func (s *authServiceImpl) signToken(user *models.User) (string, error) {
	ttl := s.configuration.Auth.TokenTTLHours
	if ttl <= 0 {
		ttl = 24
	}
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttl) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.configuration.Auth.JWTSecret))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStore, err)
	}
	return signed, nil
}
