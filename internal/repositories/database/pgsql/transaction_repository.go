package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, type, category, amount, date, fund_id, description, donor_name, payment_method, is_anonymous, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		Category:      string(d.Category),
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		DonorName:     d.DonorName,
		PaymentMethod: d.PaymentMethod,
		IsAnonymous:   d.IsAnonymous,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.FundID != "" {
		m.FundID = sql.NullString{String: d.FundID, Valid: true}
	}
	return m
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Category:      domain.TransactionCategory(m.Category),
		Amount:        m.Amount,
		Date:          m.Date,
		FundID:        m.FundID.String,
		Description:   m.Description,
		DonorName:     m.DonorName,
		PaymentMethod: m.PaymentMethod,
		IsAnonymous:   m.IsAnonymous,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Category,
		&m.Amount,
		&m.Date,
		&m.FundID,
		&m.Description,
		&m.DonorName,
		&m.PaymentMethod,
		&m.IsAnonymous,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Category,
		m.Amount,
		m.Date,
		m.FundID,
		m.Description,
		m.DonorName,
		m.PaymentMethod,
		m.IsAnonymous,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation
				return fmt.Errorf("%w: fund %s does not exist", apperrors.ErrValidation, txn.FundID)
			case "23514": // check_violation
				return fmt.Errorf("%w: transaction violates %s", apperrors.ErrValidation, pgErr.ConstraintName)
			}
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions builds the WHERE clause from whichever filter dimensions
// are set. A negative limit disables pagination; aggregation reads use that
// to fetch the full window.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.FundID != "" {
		conditions = append(conditions, "fund_id = "+arg(filter.FundID))
	}
	if filter.Type != "" {
		conditions = append(conditions, "type = "+arg(string(filter.Type)))
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, "date >= "+arg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, "date <= "+arg(*filter.DateTo))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	if filter.Limit >= 0 {
		limit := filter.Limit
		if limit == 0 {
			limit = 20
		}
		offset := filter.Offset
		if offset < 0 {
			offset = 0
		}
		query += " LIMIT " + arg(limit) + " OFFSET " + arg(offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) ExistsForFund(ctx context.Context, fundID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE fund_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, fundID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions for fund %s: %w", fundID, err)
	}
	return exists, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET type = $2, category = $3, amount = $4, date = $5, fund_id = $6, description = $7, donor_name = $8, payment_method = $9, is_anonymous = $10, last_updated_at = $11, last_updated_by = $12
        WHERE transaction_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Category,
		m.Amount,
		m.Date,
		m.FundID,
		m.Description,
		m.DonorName,
		m.PaymentMethod,
		m.IsAnonymous,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return fmt.Errorf("%w: fund %s does not exist", apperrors.ErrValidation, txn.FundID)
			case "23514":
				return fmt.Errorf("%w: transaction violates %s", apperrors.ErrValidation, pgErr.ConstraintName)
			}
		}
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
