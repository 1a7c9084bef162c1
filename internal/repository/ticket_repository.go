package repository

import (
	"context"
	"time"

	"raffle-manager/internal/model"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	ListByRaffleID(ctx context.Context, raffleID string) ([]*model.Ticket, error)
	ListAvailableNumbers(ctx context.Context, raffleID string) ([]string, error)
	// CreateBatch inserts the whole inventory in one statement. Rows whose
	// (raffle_id, number) already exist are skipped, so two racing
	// initializers cannot produce duplicates.
	CreateBatch(ctx context.Context, tickets []*model.Ticket) error
	FindByID(ctx context.Context, raffleID string, id string) (*model.Ticket, error)
	FindByNumber(ctx context.Context, raffleID string, number string) (*model.Ticket, error)
	UpdateByID(ctx context.Context, raffleID string, id string, state model.TicketState) (*model.Ticket, error)
	UpdateByNumber(ctx context.Context, raffleID string, number string, state model.TicketState) (*model.Ticket, error)
	// UpdateByNumbers applies one state to every ticket whose number is in
	// the set, regardless of current status, and returns how many rows
	// changed.
	UpdateByNumbers(ctx context.Context, raffleID string, numbers []string, state model.TicketState) (int64, error)
	// UpdateAvailableByNumbers is the conditional variant: only tickets
	// still available are touched, and the count reports how many actually
	// were.
	UpdateAvailableByNumbers(ctx context.Context, raffleID string, numbers []string, state model.TicketState) (int64, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

func (r *TicketRepositoryImpl) ListByRaffleID(ctx context.Context, raffleID string) ([]*model.Ticket, error) {
	query := `
		SELECT id, raffle_id, number, status, paid, buyer, payment_method, updated_at
		FROM tickets
		WHERE raffle_id = $1
		ORDER BY number ASC
	`

	rows, err := r.pool.Query(ctx, query, raffleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)

	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.RaffleID,
			&ticket.Number,
			&ticket.Status,
			&ticket.Paid,
			&ticket.Buyer,
			&ticket.PaymentMethod,
			&ticket.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) ListAvailableNumbers(ctx context.Context, raffleID string) ([]string, error) {
	query := `
		SELECT number
		FROM tickets
		WHERE raffle_id = $1 AND status = 'available'
		ORDER BY number ASC
	`

	rows, err := r.pool.Query(ctx, query, raffleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	numbers := make([]string, 0)

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}

func (r *TicketRepositoryImpl) CreateBatch(ctx context.Context, tickets []*model.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	ids := make([]string, len(tickets))
	raffleIDs := make([]string, len(tickets))
	numbers := make([]string, len(tickets))
	updatedAts := make([]time.Time, len(tickets))

	for i, ticket := range tickets {
		ids[i] = ticket.ID
		raffleIDs[i] = ticket.RaffleID
		numbers[i] = ticket.Number
		updatedAts[i] = ticket.UpdatedAt
	}

	query := `
		INSERT INTO tickets (id, raffle_id, number, status, paid, buyer, payment_method, updated_at)
		SELECT unnest($1::uuid[]), unnest($2::uuid[]), unnest($3::text[]),
			'available', FALSE, '', 'none', unnest($4::timestamptz[])
		ON CONFLICT (raffle_id, number) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, ids, raffleIDs, numbers, updatedAts)
	return err
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, raffleID string, id string) (*model.Ticket, error) {
	query := `
		SELECT id, raffle_id, number, status, paid, buyer, payment_method, updated_at
		FROM tickets
		WHERE raffle_id = $1 AND id = $2
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, raffleID, id).Scan(
		&ticket.ID,
		&ticket.RaffleID,
		&ticket.Number,
		&ticket.Status,
		&ticket.Paid,
		&ticket.Buyer,
		&ticket.PaymentMethod,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindByNumber(ctx context.Context, raffleID string, number string) (*model.Ticket, error) {
	query := `
		SELECT id, raffle_id, number, status, paid, buyer, payment_method, updated_at
		FROM tickets
		WHERE raffle_id = $1 AND number = $2
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, raffleID, number).Scan(
		&ticket.ID,
		&ticket.RaffleID,
		&ticket.Number,
		&ticket.Status,
		&ticket.Paid,
		&ticket.Buyer,
		&ticket.PaymentMethod,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) UpdateByID(ctx context.Context, raffleID string, id string, state model.TicketState) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = $1, paid = $2, buyer = $3, payment_method = $4, updated_at = $5
		WHERE raffle_id = $6 AND id = $7
		RETURNING id, raffle_id, number, status, paid, buyer, payment_method, updated_at
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query,
		state.Status, state.Paid, state.Buyer, state.PaymentMethod, time.Now().UTC(),
		raffleID, id,
	).Scan(
		&ticket.ID,
		&ticket.RaffleID,
		&ticket.Number,
		&ticket.Status,
		&ticket.Paid,
		&ticket.Buyer,
		&ticket.PaymentMethod,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) UpdateByNumber(ctx context.Context, raffleID string, number string, state model.TicketState) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = $1, paid = $2, buyer = $3, payment_method = $4, updated_at = $5
		WHERE raffle_id = $6 AND number = $7
		RETURNING id, raffle_id, number, status, paid, buyer, payment_method, updated_at
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query,
		state.Status, state.Paid, state.Buyer, state.PaymentMethod, time.Now().UTC(),
		raffleID, number,
	).Scan(
		&ticket.ID,
		&ticket.RaffleID,
		&ticket.Number,
		&ticket.Status,
		&ticket.Paid,
		&ticket.Buyer,
		&ticket.PaymentMethod,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) UpdateByNumbers(ctx context.Context, raffleID string, numbers []string, state model.TicketState) (int64, error) {
	query := `
		UPDATE tickets
		SET status = $1, paid = $2, buyer = $3, payment_method = $4, updated_at = $5
		WHERE raffle_id = $6 AND number = ANY($7)
	`

	result, err := r.pool.Exec(ctx, query,
		state.Status, state.Paid, state.Buyer, state.PaymentMethod, time.Now().UTC(),
		raffleID, numbers,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *TicketRepositoryImpl) UpdateAvailableByNumbers(ctx context.Context, raffleID string, numbers []string, state model.TicketState) (int64, error) {
	query := `
		UPDATE tickets
		SET status = $1, paid = $2, buyer = $3, payment_method = $4, updated_at = $5
		WHERE raffle_id = $6 AND number = ANY($7) AND status = 'available'
	`

	result, err := r.pool.Exec(ctx, query,
		state.Status, state.Paid, state.Buyer, state.PaymentMethod, time.Now().UTC(),
		raffleID, numbers,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
