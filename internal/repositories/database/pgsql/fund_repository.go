package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFundRepository struct {
	BaseRepository
}

func newPgxFundRepository(db *pgxpool.Pool) portsrepo.FundRepositoryFacade {
	return &PgxFundRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxFundRepository implements portsrepo.FundRepositoryFacade
var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

func toModelFund(d domain.Fund) models.Fund {
	return models.Fund{
		FundID:       d.FundID,
		Name:         d.Name,
		FundType:     string(d.FundType),
		Description:  d.Description,
		IsRestricted: d.IsRestricted,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainFund(m models.Fund) domain.Fund {
	return domain.Fund{
		FundID:       m.FundID,
		Name:         m.Name,
		FundType:     domain.FundType(m.FundType),
		Description:  m.Description,
		IsRestricted: m.IsRestricted,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxFundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	m := toModelFund(fund)
	query := `
        INSERT INTO funds (fund_id, name, fund_type, description, is_restricted, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.FundID,
		m.Name,
		m.FundType,
		m.Description,
		m.IsRestricted,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: fund named %q already exists", apperrors.ErrDuplicate, fund.Name)
		}
		return fmt.Errorf("failed to save fund: %w", err)
	}
	return nil
}

func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	query := `
		SELECT fund_id, name, fund_type, description, is_restricted, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM funds
		WHERE fund_id = $1;
	`
	var m models.Fund
	err := r.Pool.QueryRow(ctx, query, fundID).Scan(
		&m.FundID,
		&m.Name,
		&m.FundType,
		&m.Description,
		&m.IsRestricted,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fund by ID %s: %w", fundID, err)
	}

	fund := toDomainFund(m)
	return &fund, nil
}

func (r *PgxFundRepository) ListFunds(ctx context.Context, includeInactive bool) ([]domain.Fund, error) {
	query := `
        SELECT fund_id, name, fund_type, description, is_restricted, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM funds
        WHERE is_active OR $1
        ORDER BY is_active DESC, name ASC;
    `
	rows, err := r.Pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query funds: %w", err)
	}
	defer rows.Close()

	funds := []domain.Fund{}
	for rows.Next() {
		var m models.Fund
		err := rows.Scan(
			&m.FundID,
			&m.Name,
			&m.FundType,
			&m.Description,
			&m.IsRestricted,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund row: %w", err)
		}
		funds = append(funds, toDomainFund(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund rows: %w", err)
	}
	return funds, nil
}

func (r *PgxFundRepository) UpdateFund(ctx context.Context, fund domain.Fund) error {
	m := toModelFund(fund)
	query := `
        UPDATE funds
        SET name = $2, fund_type = $3, description = $4, is_restricted = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
        WHERE fund_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.FundID,
		m.Name,
		m.FundType,
		m.Description,
		m.IsRestricted,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: fund named %q already exists", apperrors.ErrDuplicate, fund.Name)
		}
		return fmt.Errorf("failed to update fund %s: %w", fund.FundID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFund removes a fund only when no transaction references it. The guard
// and the delete run as one statement, so there is no window for a concurrent
// insert to slip a transaction under a fund that is being removed. The
// foreign key on transactions.fund_id (ON DELETE RESTRICT) backstops this at
// the schema level.
func (r *PgxFundRepository) DeleteFund(ctx context.Context, fundID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	query := `
        DELETE FROM funds
        WHERE fund_id = $1
          AND NOT EXISTS (SELECT 1 FROM transactions WHERE fund_id = $1);
    `
	tag, err := tx.Exec(ctx, query, fundID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.ErrFundInUse
		}
		return fmt.Errorf("failed to delete fund %s: %w", fundID, err)
	}
	if tag.RowsAffected() == 0 {
		// Nothing deleted: either the fund does not exist, or transactions
		// reference it. Probe within the same transaction to tell the two apart.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM funds WHERE fund_id = $1);`, fundID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check fund %s after blocked delete: %w", fundID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrFundInUse
	}

	return r.Commit(ctx, tx)
}

func (r *PgxFundRepository) DeactivateFund(ctx context.Context, fundID string, userID string, now time.Time) error {
	query := `
        UPDATE funds
        SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
        WHERE fund_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, fundID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate fund %s: %w", fundID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
