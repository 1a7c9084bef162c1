package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"raffle-manager/internal/cache"
	"raffle-manager/internal/model"
	"raffle-manager/internal/repository"
	apperrors "raffle-manager/pkg/app_errors"
	"raffle-manager/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BulkResult reports a bulk or random assignment: which numbers were
// targeted and how many rows the store actually changed. For random
// assignment the write is conditional on availability, so updated can fall
// short of the request if another writer took a number in between.
type BulkResult struct {
	Numbers []string `json:"numbers"`
	Updated int64    `json:"updated"`
}

type TicketService interface {
	// EnsureTickets resolves the raffle and returns its 100 tickets in
	// numeric order, creating them on first access.
	EnsureTickets(ctx context.Context, token string) ([]*model.Ticket, error)
	// GetTicket reads one ticket by its two-digit number or its id.
	GetTicket(ctx context.Context, token string, key string) (*model.Ticket, error)
	UpdateByNumber(ctx context.Context, token string, number string, state model.TicketState) (*model.Ticket, error)
	UpdateByID(ctx context.Context, token string, ticketID string, state model.TicketState) (*model.Ticket, error)
	// BulkAssign applies one state to an explicit set of numbers and
	// returns how many tickets changed. Current status is deliberately not
	// checked: staff use this to overwrite state wholesale.
	BulkAssign(ctx context.Context, token string, numbers []string, state model.TicketState) (int64, error)
	// RandomAssign draws count distinct available numbers uniformly at
	// random and assigns the state to them.
	RandomAssign(ctx context.Context, token string, count int, state model.TicketState) (*BulkResult, error)
}

type TicketServiceImpl struct {
	raffles  repository.RaffleRepository
	tickets  repository.TicketRepository
	initLock cache.InventoryInitLock
}

func NewTicketService(
	raffles repository.RaffleRepository,
	tickets repository.TicketRepository,
	initLock cache.InventoryInitLock,
) TicketService {
	return &TicketServiceImpl{
		raffles:  raffles,
		tickets:  tickets,
		initLock: initLock,
	}
}

func (s *TicketServiceImpl) resolve(ctx context.Context, token string) (*model.Raffle, error) {
	if model.IsRaffleCode(token) {
		return s.raffles.FindByCode(ctx, strings.ToUpper(token))
	}
	// The id column is a uuid; anything else can never match a row, so
	// answer not-found without a round trip.
	if _, err := uuid.Parse(token); err != nil {
		return nil, apperrors.ErrRaffleNotFound
	}
	return s.raffles.FindByID(ctx, token)
}

func (s *TicketServiceImpl) EnsureTickets(ctx context.Context, token string) ([]*model.Ticket, error) {
	raffle, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByRaffleID(ctx, raffle.ID)
	if err != nil {
		return nil, err
	}
	if len(tickets) > 0 {
		return tickets, nil
	}

	if err := s.seedInventory(ctx, raffle.ID); err != nil {
		return nil, err
	}

	return s.tickets.ListByRaffleID(ctx, raffle.ID)
}

// seedInventory creates tickets "00".."99" for a raffle that has none. The
// advisory lock keeps concurrent first-reads from all building the batch;
// the ON CONFLICT insert makes a lost race harmless either way.
func (s *TicketServiceImpl) seedInventory(ctx context.Context, raffleID string) error {
	acquired, lockToken, err := s.initLock.Acquire(ctx, raffleID)
	if err != nil {
		// Redis being down should not take ticket reads with it; the
		// conditional insert still guarantees a single inventory.
		logger.WithComponent("service").Warn("init lock unavailable, seeding without it",
			zap.String("raffle_id", raffleID), zap.Error(err))
	} else if !acquired {
		// Another request is seeding right now. Its insert is conflict-safe
		// against ours, so just proceed and let the store sort it out.
		logger.WithComponent("service").Info("inventory seed already in progress",
			zap.String("raffle_id", raffleID))
	} else {
		defer func() {
			if err := s.initLock.Release(context.Background(), raffleID, lockToken); err != nil {
				logger.WithComponent("service").Warn("failed to release init lock",
					zap.String("raffle_id", raffleID), zap.Error(err))
			}
		}()
	}

	now := time.Now().UTC()
	batch := make([]*model.Ticket, 0, model.TicketCount)
	for i := 0; i < model.TicketCount; i++ {
		batch = append(batch, &model.Ticket{
			ID:            uuid.New().String(),
			RaffleID:      raffleID,
			Number:        model.FormatTicketNumber(i),
			Status:        model.TicketAvailable,
			Paid:          false,
			Buyer:         "",
			PaymentMethod: model.PaymentNone,
			UpdatedAt:     now,
		})
	}

	return s.tickets.CreateBatch(ctx, batch)
}

func (s *TicketServiceImpl) GetTicket(ctx context.Context, token string, key string) (*model.Ticket, error) {
	raffle, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if model.IsTicketNumber(key) {
		return s.tickets.FindByNumber(ctx, raffle.ID, key)
	}
	if _, err := uuid.Parse(key); err != nil {
		return nil, apperrors.ErrTicketNotFound
	}
	return s.tickets.FindByID(ctx, raffle.ID, key)
}

func (s *TicketServiceImpl) UpdateByNumber(ctx context.Context, token string, number string, state model.TicketState) (*model.Ticket, error) {
	if !model.IsTicketNumber(number) {
		return nil, apperrors.ErrInvalidInput
	}
	if !state.Validate() {
		return nil, apperrors.ErrInvalidInput
	}

	raffle, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.tickets.UpdateByNumber(ctx, raffle.ID, number, state.Normalize())
}

func (s *TicketServiceImpl) UpdateByID(ctx context.Context, token string, ticketID string, state model.TicketState) (*model.Ticket, error) {
	if _, err := uuid.Parse(ticketID); err != nil {
		return nil, apperrors.ErrTicketNotFound
	}
	if !state.Validate() {
		return nil, apperrors.ErrInvalidInput
	}

	raffle, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.tickets.UpdateByID(ctx, raffle.ID, ticketID, state.Normalize())
}

func (s *TicketServiceImpl) BulkAssign(ctx context.Context, token string, numbers []string, state model.TicketState) (int64, error) {
	if len(numbers) == 0 {
		return 0, apperrors.ErrInvalidInput
	}
	for _, number := range numbers {
		if !model.IsTicketNumber(number) {
			return 0, apperrors.ErrInvalidInput
		}
	}
	if !state.Validate() {
		return 0, apperrors.ErrInvalidInput
	}

	raffle, err := s.resolve(ctx, token)
	if err != nil {
		return 0, err
	}

	return s.tickets.UpdateByNumbers(ctx, raffle.ID, numbers, state.Normalize())
}

func (s *TicketServiceImpl) RandomAssign(ctx context.Context, token string, count int, state model.TicketState) (*BulkResult, error) {
	if count < 1 {
		return nil, apperrors.ErrInvalidInput
	}
	if !state.Validate() {
		return nil, apperrors.ErrInvalidInput
	}

	raffle, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	available, err := s.tickets.ListAvailableNumbers(ctx, raffle.ID)
	if err != nil {
		return nil, err
	}
	if count > len(available) {
		return nil, apperrors.ErrInsufficientAvailable
	}

	chosen := sampleNumbers(available, count)

	// Write conditionally on availability: a number taken by a concurrent
	// edit between our read and this write is skipped rather than
	// overwritten, and the count tells the caller.
	updated, err := s.tickets.UpdateAvailableByNumbers(ctx, raffle.ID, chosen, state.Normalize())
	if err != nil {
		return nil, err
	}

	if updated < int64(count) {
		logger.WithComponent("service").Warn("random assignment lost a race",
			zap.String("raffle_id", raffle.ID),
			zap.Int("requested", count),
			zap.Int64("updated", updated))
	}

	return &BulkResult{Numbers: chosen, Updated: updated}, nil
}

// sampleNumbers draws count distinct entries uniformly without replacement:
// a partial Fisher-Yates over a copy, stopping after count swaps.
func sampleNumbers(pool []string, count int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)

	for i := 0; i < count; i++ {
		j := i + rand.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:count]
}
