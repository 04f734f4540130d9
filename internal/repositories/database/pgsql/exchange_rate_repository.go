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

// exchangeRateColumns is the select list shared by every read. Each read
// performs the three-way join so the returned record already carries
// both currency snapshots.
const exchangeRateColumns = `
	e.id,
	e.rate,
	base.id, base.code, base.fullname, base.sign,
	target.id, target.code, target.fullname, target.sign
`

const exchangeRateFrom = `
	FROM exchangerates e
	JOIN currencies base ON e.basecurrencyid = base.id
	JOIN currencies target ON e.targetcurrencyid = target.id
`

// PgxExchangeRateRepository is the store gateway for exchange-rate rows.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ID,
		&m.Rate,
		&m.BaseCurrency.ID, &m.BaseCurrency.Code, &m.BaseCurrency.Fullname, &m.BaseCurrency.Sign,
		&m.TargetCurrency.ID, &m.TargetCurrency.Code, &m.TargetCurrency.Fullname, &m.TargetCurrency.Sign,
	)
	return m, err
}

// FindExchangeRateByID retrieves an exchange rate by its id.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + exchangeRateFrom + ` WHERE e.id = $1;`

	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find exchange rate by id %d", id), err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// FindExchangeRateByName retrieves an exchange rate by the concatenation
// of base and target currency codes. The comparison is positional
// ("USDEUR"), so direction matters.
func (r *PgxExchangeRateRepository) FindExchangeRateByName(ctx context.Context, name string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + exchangeRateFrom + ` WHERE concat(base.code, target.code) = $1;`

	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find exchange rate by name %s", name), err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves all exchange rates with embedded snapshots.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + exchangeRateFrom + ` ORDER BY e.id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})

	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan exchange rates", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// SaveExchangeRate inserts a new rate row. Only the two currency ids and
// the rate value are stored; the ids are not re-validated against the
// currencies table.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO exchangerates (basecurrencyid, targetcurrencyid, rate)
		VALUES ($1, $2, $3);
	`
	_, err = tx.Exec(ctx, query, rate.BaseCurrency.ID, rate.TargetCurrency.ID, rate.Rate)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewStoreError("failed to save exchange rate", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateExchangeRate overwrites the rate row with the given id.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE exchangerates
		SET basecurrencyid = $1, targetcurrencyid = $2, rate = $3
		WHERE id = $4;
	`
	_, err = tx.Exec(ctx, query, rate.BaseCurrency.ID, rate.TargetCurrency.ID, rate.Rate, id)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewStoreError(fmt.Sprintf("failed to update exchange rate %d", id), err)
	}

	return r.Commit(ctx, tx)
}

// DeleteExchangeRate removes the exchange rate with the given id.
func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `DELETE FROM exchangerates WHERE id = $1;`
	_, err = tx.Exec(ctx, query, id)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewStoreError(fmt.Sprintf("failed to delete exchange rate %d", id), err)
	}

	return r.Commit(ctx, tx)
}
