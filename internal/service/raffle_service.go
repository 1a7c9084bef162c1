package service

import (
	"context"
	"strings"

	"raffle-manager/internal/model"
	"raffle-manager/internal/repository"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/google/uuid"
)

type RaffleService interface {
	Create(ctx context.Context, raffle *model.Raffle, identity model.Identity) (*model.Raffle, error)
	// Resolve maps a user-supplied token, either a short code like "R7" or
	// a full raffle id, to the raffle record.
	Resolve(ctx context.Context, token string) (*model.Raffle, error)
	// List returns every raffle for admins and only owned raffles for
	// regular users, newest first.
	List(ctx context.Context, identity model.Identity) ([]*model.Raffle, error)
	FindByCode(ctx context.Context, code string) (*model.Raffle, error)
	// Delete removes a raffle and its whole ticket inventory. Only the
	// owner or an admin may delete.
	Delete(ctx context.Context, token string, identity model.Identity) error
}

type RaffleServiceImpl struct {
	repo repository.RaffleRepository
}

func NewRaffleService(repo repository.RaffleRepository) RaffleService {
	return &RaffleServiceImpl{repo: repo}
}

func (s *RaffleServiceImpl) Create(ctx context.Context, raffle *model.Raffle, identity model.Identity) (*model.Raffle, error) {
	if raffle.Title == "" || raffle.Slogan == "" || raffle.Prize == "" || raffle.Price <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	raffle.ID = uuid.New().String()
	raffle.OwnerID = identity.UserID

	return s.repo.Create(ctx, raffle)
}

func (s *RaffleServiceImpl) Resolve(ctx context.Context, token string) (*model.Raffle, error) {
	if model.IsRaffleCode(token) {
		return s.repo.FindByCode(ctx, strings.ToUpper(token))
	}
	// The id column is a uuid; anything else can never match a row, so
	// answer not-found without a round trip.
	if _, err := uuid.Parse(token); err != nil {
		return nil, apperrors.ErrRaffleNotFound
	}
	return s.repo.FindByID(ctx, token)
}

func (s *RaffleServiceImpl) List(ctx context.Context, identity model.Identity) ([]*model.Raffle, error) {
	if identity.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByOwner(ctx, identity.UserID)
}

func (s *RaffleServiceImpl) FindByCode(ctx context.Context, code string) (*model.Raffle, error) {
	return s.repo.FindByCode(ctx, strings.ToUpper(code))
}

func (s *RaffleServiceImpl) Delete(ctx context.Context, token string, identity model.Identity) error {
	raffle, err := s.Resolve(ctx, token)
	if err != nil {
		return err
	}

	if !identity.IsAdmin() && raffle.OwnerID != identity.UserID {
		return apperrors.ErrForbidden
	}

	return s.repo.Delete(ctx, raffle.ID)
}
