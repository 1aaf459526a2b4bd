package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	"github.com/SscSPs/spendcheck/internal/models"
	"github.com/SscSPs/spendcheck/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `user_id, month, limits, created_at, created_by, last_updated_at, last_updated_by`

// UpsertBudget inserts the budget or replaces the limits of an existing one.
// Creation audit fields of an existing row are kept.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.BudgetRecord) error {
	m, err := mapping.ToModelBudget(budget)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, month) DO UPDATE SET
			limits = EXCLUDED.limits,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		m.UserID,
		m.Month,
		m.Limits,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget %s: %w", m.Month, err)
	}
	return nil
}

// FindBudget retrieves the budget of one month.
func (r *PgxBudgetRepository) FindBudget(ctx context.Context, userID string, month domain.MonthKey) (*domain.BudgetRecord, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2;
	`
	var m models.Budget
	err := r.Pool.QueryRow(ctx, query, userID, month.String()).Scan(
		&m.UserID,
		&m.Month,
		&m.Limits,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", month, err)
	}

	budget, err := mapping.ToDomainBudget(m)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// ListBudgets retrieves all of a user's budgets, ascending by month.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.BudgetRecord, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY month;
	`
	return r.queryBudgets(ctx, query, userID)
}

// ListBudgetsForMonth retrieves every user's budget for month.
func (r *PgxBudgetRepository) ListBudgetsForMonth(ctx context.Context, month domain.MonthKey) ([]domain.BudgetRecord, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE month = $1
		ORDER BY user_id;
	`
	return r.queryBudgets(ctx, query, month.String())
}

// DeleteBudget removes one month's budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID string, month domain.MonthKey) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND month = $2;`, userID, month.String())
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", month, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBudgetRepository) queryBudgets(ctx context.Context, query string, args ...any) ([]domain.BudgetRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		var m models.Budget
		err := row.Scan(
			&m.UserID,
			&m.Month,
			&m.Limits,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}

	return mapping.ToDomainBudgetSlice(modelBudgets)
}
