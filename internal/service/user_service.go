package service

import (
	"context"

	"raffle-manager/internal/model"
	"raffle-manager/internal/repository"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/google/uuid"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	// The id column is a uuid; anything else can never match a row.
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}
