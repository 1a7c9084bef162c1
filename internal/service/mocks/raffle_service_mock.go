package mocks

import (
	"context"

	"raffle-manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type RaffleServiceMock struct {
	mock.Mock
}

func NewRaffleServiceMock() *RaffleServiceMock {
	return &RaffleServiceMock{}
}

func (m *RaffleServiceMock) Create(ctx context.Context, raffle *model.Raffle, identity model.Identity) (*model.Raffle, error) {
	args := m.Called(ctx, raffle, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Raffle), args.Error(1)
}

func (m *RaffleServiceMock) Resolve(ctx context.Context, token string) (*model.Raffle, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Raffle), args.Error(1)
}

func (m *RaffleServiceMock) List(ctx context.Context, identity model.Identity) ([]*model.Raffle, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Raffle), args.Error(1)
}

func (m *RaffleServiceMock) FindByCode(ctx context.Context, code string) (*model.Raffle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Raffle), args.Error(1)
}

func (m *RaffleServiceMock) Delete(ctx context.Context, token string, identity model.Identity) error {
	args := m.Called(ctx, token, identity)
	return args.Error(0)
}
