package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type InventoryInitLockMock struct {
	mock.Mock
}

func NewInventoryInitLockMock() *InventoryInitLockMock {
	return &InventoryInitLockMock{}
}

func (m *InventoryInitLockMock) Acquire(ctx context.Context, raffleID string) (bool, string, error) {
	args := m.Called(ctx, raffleID)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *InventoryInitLockMock) Release(ctx context.Context, raffleID string, token string) error {
	args := m.Called(ctx, raffleID, token)
	return args.Error(0)
}
