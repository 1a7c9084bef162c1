package service

import (
	"context"
	"errors"
	"time"

	"raffle-manager/config"
	"raffle-manager/internal/model"
	"raffle-manager/internal/repository"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// CreateUser hashes the password and stores the user. Registration is
	// admin-driven; there is no self-service signup.
	CreateUser(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	// Login verifies credentials and returns the user with a signed token
	// carrying its id and role.
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	// VerifyToken parses and validates a token and returns the identity it
	// carries.
	VerifyToken(token string) (model.Identity, error)
}

type AuthServiceImpl struct {
	users repository.UserRepository
	auth  config.AuthConfig
}

func NewAuthService(users repository.UserRepository, auth config.AuthConfig) AuthService {
	return &AuthServiceImpl{
		users: users,
		auth:  auth,
	}
}

func (s *AuthServiceImpl) CreateUser(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	if name == "" || email == "" || password == "" || !role.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}

	return s.users.Create(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrWrongPassword
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.auth.TokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.auth.JWTSecret))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthServiceImpl) VerifyToken(token string) (model.Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return model.Identity{}, apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, apperrors.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	identity := model.Identity{UserID: sub, Role: model.Role(role)}

	if identity.UserID == "" || !identity.Role.IsValid() {
		return model.Identity{}, apperrors.ErrInvalidToken
	}

	return identity, nil
}
