package mocks

import (
	"context"

	"raffle-manager/internal/model"
	"raffle-manager/internal/service"

	"github.com/stretchr/testify/mock"
)

type TicketServiceMock struct {
	mock.Mock
}

func NewTicketServiceMock() *TicketServiceMock {
	return &TicketServiceMock{}
}

func (m *TicketServiceMock) EnsureTickets(ctx context.Context, token string) ([]*model.Ticket, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

func (m *TicketServiceMock) GetTicket(ctx context.Context, token string, key string) (*model.Ticket, error) {
	args := m.Called(ctx, token, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketServiceMock) UpdateByNumber(ctx context.Context, token string, number string, state model.TicketState) (*model.Ticket, error) {
	args := m.Called(ctx, token, number, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketServiceMock) UpdateByID(ctx context.Context, token string, ticketID string, state model.TicketState) (*model.Ticket, error) {
	args := m.Called(ctx, token, ticketID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketServiceMock) BulkAssign(ctx context.Context, token string, numbers []string, state model.TicketState) (int64, error) {
	args := m.Called(ctx, token, numbers, state)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TicketServiceMock) RandomAssign(ctx context.Context, token string, count int, state model.TicketState) (*service.BulkResult, error) {
	args := m.Called(ctx, token, count, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkResult), args.Error(1)
}
