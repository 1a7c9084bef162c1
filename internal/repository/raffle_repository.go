package repository

import (
	"context"
	"time"

	"raffle-manager/internal/model"
	apperrors "raffle-manager/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RaffleRepository interface {
	// Create assigns the next sequential code ("R1", "R2", ...) inside the
	// insert itself.
	Create(ctx context.Context, raffle *model.Raffle) (*model.Raffle, error)
	List(ctx context.Context) ([]*model.Raffle, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Raffle, error)
	FindByID(ctx context.Context, id string) (*model.Raffle, error)
	FindByCode(ctx context.Context, code string) (*model.Raffle, error)
	// Delete removes the raffle and all of its tickets in one transaction.
	Delete(ctx context.Context, id string) error
}

type RaffleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRaffleRepository(pool *pgxpool.Pool) RaffleRepository {
	return &RaffleRepositoryImpl{
		pool: pool,
	}
}

func (r *RaffleRepositoryImpl) Create(ctx context.Context, raffle *model.Raffle) (*model.Raffle, error) {
	// nextval is atomic and never reissued, so concurrent creations get
	// distinct codes and deletions never free a code for reuse.
	query := `
		INSERT INTO raffles (
			id, code, title, slogan, prize, price, draw_date, owner_id, created_at)
		VALUES ($1, 'R' || nextval('raffle_code_seq'), $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, code, title, slogan, prize, price, draw_date, owner_id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		raffle.ID, raffle.Title, raffle.Slogan, raffle.Prize,
		raffle.Price, raffle.DrawDate, raffle.OwnerID, time.Now().UTC(),
	).Scan(
		&raffle.ID,
		&raffle.Code,
		&raffle.Title,
		&raffle.Slogan,
		&raffle.Prize,
		&raffle.Price,
		&raffle.DrawDate,
		&raffle.OwnerID,
		&raffle.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return raffle, nil
}

func (r *RaffleRepositoryImpl) List(ctx context.Context) ([]*model.Raffle, error) {
	query := `
		SELECT id, code, title, slogan, prize, price, draw_date, owner_id, created_at
		FROM raffles
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raffles := make([]*model.Raffle, 0)

	for rows.Next() {
		var raffle model.Raffle
		err := rows.Scan(
			&raffle.ID,
			&raffle.Code,
			&raffle.Title,
			&raffle.Slogan,
			&raffle.Prize,
			&raffle.Price,
			&raffle.DrawDate,
			&raffle.OwnerID,
			&raffle.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		raffles = append(raffles, &raffle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return raffles, nil
}

func (r *RaffleRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*model.Raffle, error) {
	query := `
		SELECT id, code, title, slogan, prize, price, draw_date, owner_id, created_at
		FROM raffles
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raffles := make([]*model.Raffle, 0)

	for rows.Next() {
		var raffle model.Raffle
		err := rows.Scan(
			&raffle.ID,
			&raffle.Code,
			&raffle.Title,
			&raffle.Slogan,
			&raffle.Prize,
			&raffle.Price,
			&raffle.DrawDate,
			&raffle.OwnerID,
			&raffle.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		raffles = append(raffles, &raffle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return raffles, nil
}

func (r *RaffleRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Raffle, error) {
	query := `
		SELECT id, code, title, slogan, prize, price, draw_date, owner_id, created_at
		FROM raffles
		WHERE id = $1
	`

	var raffle model.Raffle
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&raffle.ID,
		&raffle.Code,
		&raffle.Title,
		&raffle.Slogan,
		&raffle.Prize,
		&raffle.Price,
		&raffle.DrawDate,
		&raffle.OwnerID,
		&raffle.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, err
	}

	return &raffle, nil
}

func (r *RaffleRepositoryImpl) FindByCode(ctx context.Context, code string) (*model.Raffle, error) {
	query := `
		SELECT id, code, title, slogan, prize, price, draw_date, owner_id, created_at
		FROM raffles
		WHERE code = $1
	`

	var raffle model.Raffle
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&raffle.ID,
		&raffle.Code,
		&raffle.Title,
		&raffle.Slogan,
		&raffle.Prize,
		&raffle.Price,
		&raffle.DrawDate,
		&raffle.OwnerID,
		&raffle.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, err
	}

	return &raffle, nil
}

func (r *RaffleRepositoryImpl) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM tickets WHERE raffle_id = $1`, id)
	if err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM raffles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRaffleNotFound
	}

	return tx.Commit(ctx)
}
