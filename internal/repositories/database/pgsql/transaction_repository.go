package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	"github.com/SscSPs/spendcheck/internal/models"
	"github.com/SscSPs/spendcheck/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, amount, transaction_type, category, payment_method,
	transaction_date, notes, bill_url, bill_uploaded_at, created_at, created_by, last_updated_at, last_updated_by`

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	m := mapping.ToModelTransaction(tx)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Amount,
		m.TransactionType,
		m.Category,
		m.PaymentMethod,
		m.TransactionDate,
		m.Notes,
		m.BillURL,
		m.BillUploadedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// ListTransactions retrieves a user's transactions matching filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, filter.StartDate.UTC())
		conditions = append(conditions, fmt.Sprintf("transaction_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, filter.EndDate.UTC())
		conditions = append(conditions, fmt.Sprintf("transaction_date <= $%d", len(args)))
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY transaction_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.Amount,
			&t.TransactionType,
			&t.Category,
			&t.PaymentMethod,
			&t.TransactionDate,
			&t.Notes,
			&t.BillURL,
			&t.BillUploadedAt,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxs), nil
}

// ListCategories retrieves the distinct non-empty categories a user has recorded.
func (r *PgxTransactionRepository) ListCategories(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM transactions
		WHERE user_id = $1 AND category IS NOT NULL AND category <> ''
		ORDER BY category;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

// ListActiveUsers retrieves the users with a transaction dated in [start, end).
func (r *PgxTransactionRepository) ListActiveUsers(ctx context.Context, start, end time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT user_id
		FROM transactions
		WHERE transaction_date >= $1 AND transaction_date < $2
		ORDER BY user_id;
	`
	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan active users: %w", err)
	}
	return users, nil
}
