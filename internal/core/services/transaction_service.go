package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txRepo     portsrepo.TransactionRepositoryFacade
	budgetRepo portsrepo.BudgetReader
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithBudgetReader lets suggestions snap onto categories used in the user's budgets.
func WithBudgetReader(repo portsrepo.BudgetReader) TransactionServiceOption {
	return func(s *transactionService) {
		s.budgetRepo = repo
	}
}

// WithTransactionClock overrides the clock used for defaults and audit fields.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{txRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txs == nil {
		return []domain.Transaction{}, nil
	}
	return txs, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}

	now := s.Now()
	tx := domain.Transaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Category:        strings.TrimSpace(req.Category),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		Date:            req.Date.UTC(),
		Notes:           req.Notes,
		Bill:            toBill(req.Bill, now),
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	return s.save(ctx, tx)
}

func (s *transactionService) CreateFromSuggestion(ctx context.Context, userID string, req dto.TransactionSuggestionRequest) (*domain.Transaction, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}

	known, err := s.knownCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	category := analytics.NormalizeCategory(req.Category, known)
	if category == "" {
		category = domain.UncategorizedCategory
	}

	now := s.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	notes := req.Notes
	if notes == "" {
		notes = fmt.Sprintf("Added from %s", req.Source)
	}

	tx := domain.Transaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		Amount:          req.Amount,
		TransactionType: domain.Expense,
		Category:        category,
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		Date:            date.UTC(),
		Notes:           notes,
		Bill:            toBill(req.Bill, now),
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	s.LogDebug(ctx, "Normalized suggested category",
		slog.String("raw", req.Category),
		slog.String("category", category),
		slog.String("source", req.Source))
	return s.save(ctx, tx)
}

func (s *transactionService) save(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	if err := tx.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("error", err.Error()))
		return nil, err
	}
	if err := s.txRepo.SaveTransaction(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", tx.UserID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", tx.ID),
		slog.String("type", string(tx.TransactionType)))
	return &tx, nil
}

// knownCategories merges the default template, the user's recorded
// categories and the categories of their budgets, in that order.
func (s *transactionService) knownCategories(ctx context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range domain.DefaultBudgetCategories {
		add(c)
	}

	recorded, err := s.txRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range recorded {
		add(c)
	}

	if s.budgetRepo != nil {
		budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list budgets", slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to list budgets: %w", err)
		}
		for _, b := range budgets {
			for c := range b.Limits {
				add(c)
			}
		}
	}
	return out, nil
}

func toBill(req *dto.BillRequest, now time.Time) *domain.Bill {
	if req == nil {
		return nil
	}
	uploaded := now
	if req.UploadedAt != nil {
		uploaded = *req.UploadedAt
	}
	return &domain.Bill{URL: req.URL, UploadedAt: uploaded.UTC()}
}
