package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaxowskiy1/currency-exchange-api/internal/apperrors"
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	portsrepo "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/repositories"
	"github.com/shaxowskiy1/currency-exchange-api/internal/models"
	"github.com/shaxowskiy1/currency-exchange-api/internal/utils/mapping"
)

// PgxCurrencyRepository is the store gateway for currency rows. Each
// operation issues one parameterized statement; failures surface
// immediately as store errors, there are no retries.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new repository for currency data.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

// FindCurrencyByID retrieves a currency by its store-assigned id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `
		SELECT id, code, fullname, sign
		FROM currencies
		WHERE id = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.Fullname,
		&modelCurr.Sign,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find currency by id %d", id), err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT id, code, fullname, sign
		FROM currencies
		WHERE code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.Fullname,
		&modelCurr.Sign,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find currency by code %s", code), err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT id, code, fullname, sign
		FROM currencies
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.ID,
			&currency.Code,
			&currency.Fullname,
			&currency.Sign,
		)
		return currency, err
	})

	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// SaveCurrency inserts a new currency; the store assigns the id.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO currencies (code, fullname, sign)
		VALUES ($1, $2, $3);
	`
	_, err = tx.Exec(ctx, query, modelCurr.Code, modelCurr.Fullname, modelCurr.Sign)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewStoreError(fmt.Sprintf("failed to save currency %s", modelCurr.Code), err)
	}

	return r.Commit(ctx, tx)
}

// UpdateCurrency overwrites the mutable fields of the currency with the given id.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency, id int64) error {
	modelCurr := mapping.ToModelCurrency(currency)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE currencies
		SET code = $1, fullname = $2, sign = $3
		WHERE id = $4;
	`
	_, err = tx.Exec(ctx, query, modelCurr.Code, modelCurr.Fullname, modelCurr.Sign, id)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewStoreError(fmt.Sprintf("failed to update currency %d", id), err)
	}

	return r.Commit(ctx, tx)
}

// DeleteCurrency removes the currency with the given id. Exchange rates
// referencing it are not cascaded; their cached snapshots simply go
// stale until the TTL lapses.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `DELETE FROM currencies WHERE id = $1;`
	_, err = tx.Exec(ctx, query, id)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewStoreError(fmt.Sprintf("failed to delete currency %d", id), err)
	}

	return r.Commit(ctx, tx)
}
