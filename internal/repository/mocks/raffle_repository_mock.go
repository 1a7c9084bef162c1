package mocks

import (
	"context"

	"raffle-manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type RaffleRepositoryMock struct {
	mock.Mock
}

func NewRaffleRepositoryMock() *RaffleRepositoryMock {
	return &RaffleRepositoryMock{}
}

func (m *RaffleRepositoryMock) Create(ctx context.Context, raffle *model.Raffle) (*model.Raffle, error) {
	args := m.Called(ctx, raffle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Raffle), args.Error(1)
}

func (m *RaffleRepositoryMock) List(ctx context.Context) ([]*model.Raffle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Raffle), args.Error(1)
}

func (m *RaffleRepositoryMock) ListByOwner(ctx context.Context, ownerID string) ([]*model.Raffle, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Raffle), args.Error(1)
}

func (m *RaffleRepositoryMock) FindByID(ctx context.Context, id string) (*model.Raffle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Raffle), args.Error(1)
}

func (m *RaffleRepositoryMock) FindByCode(ctx context.Context, code string) (*model.Raffle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Raffle), args.Error(1)
}

func (m *RaffleRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
