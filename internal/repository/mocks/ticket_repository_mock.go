package mocks

import (
	"context"

	"raffle-manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type TicketRepositoryMock struct {
	mock.Mock
}

func NewTicketRepositoryMock() *TicketRepositoryMock {
	return &TicketRepositoryMock{}
}

func (m *TicketRepositoryMock) ListByRaffleID(ctx context.Context, raffleID string) ([]*model.Ticket, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) ListAvailableNumbers(ctx context.Context, raffleID string) ([]string, error) {
	args := m.Called(ctx, raffleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *TicketRepositoryMock) CreateBatch(ctx context.Context, tickets []*model.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}

func (m *TicketRepositoryMock) FindByID(ctx context.Context, raffleID string, id string) (*model.Ticket, error) {
	args := m.Called(ctx, raffleID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) FindByNumber(ctx context.Context, raffleID string, number string) (*model.Ticket, error) {
	args := m.Called(ctx, raffleID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) UpdateByID(ctx context.Context, raffleID string, id string, state model.TicketState) (*model.Ticket, error) {
	args := m.Called(ctx, raffleID, id, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) UpdateByNumber(ctx context.Context, raffleID string, number string, state model.TicketState) (*model.Ticket, error) {
	args := m.Called(ctx, raffleID, number, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) UpdateByNumbers(ctx context.Context, raffleID string, numbers []string, state model.TicketState) (int64, error) {
	args := m.Called(ctx, raffleID, numbers, state)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TicketRepositoryMock) UpdateAvailableByNumbers(ctx context.Context, raffleID string, numbers []string, state model.TicketState) (int64, error) {
	args := m.Called(ctx, raffleID, numbers, state)
	return args.Get(0).(int64), args.Error(1)
}
