package backendapi

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayouts are the date encodings the backend has been seen to emit.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateOnly,
	time.RFC1123,
	time.RFC1123Z,
}

type wireBill struct {
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

// wireTransaction is a transaction as served by the backend, with its dates
// still in their raw encoding.
type wireTransaction struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Category        string                 `json:"category"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Date            string                 `json:"date"`
	Notes           string                 `json:"notes"`
	Bill            *wireBill              `json:"bill"`
}

func parseWireDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", apperrors.ErrMalformedInput, raw)
}

func (w wireTransaction) toDomain(userID string) (domain.Transaction, error) {
	date, err := parseWireDate(w.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", w.ID, err)
	}
	tx := domain.Transaction{
		ID:              w.ID,
		UserID:          w.UserID,
		Amount:          w.Amount,
		TransactionType: w.TransactionType,
		Category:        w.Category,
		PaymentMethod:   w.PaymentMethod,
		Date:            date,
		Notes:           w.Notes,
	}
	if tx.UserID == "" {
		tx.UserID = userID
	}
	if w.Bill != nil && w.Bill.URL != "" {
		bill := &domain.Bill{URL: w.Bill.URL}
		if w.Bill.UploadedAt != "" {
			if uploaded, err := parseWireDate(w.Bill.UploadedAt); err == nil {
				bill.UploadedAt = uploaded
			}
		}
		tx.Bill = bill
	}
	return tx, nil
}

func toDomainTransactions(userID string, wire []wireTransaction) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(wire))
	for _, w := range wire {
		tx, err := w.toDomain(userID)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func sortByMonth(records []domain.BudgetRecord) {
	sort.Slice(records, func(i, j int) bool { return records[i].Month < records[j].Month })
}
