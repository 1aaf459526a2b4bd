package mapping

import (
	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/SscSPs/spendcheck/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.ID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		Category:        nullableString(d.Category),
		PaymentMethod:   nullableString(d.PaymentMethod),
		TransactionDate: d.Date.UTC(),
		Notes:           nullableString(d.Notes),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.Bill != nil {
		m.BillURL = &d.Bill.URL
		uploaded := d.Bill.UploadedAt.UTC()
		m.BillUploadedAt = &uploaded
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:              m.TransactionID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Category:        derefString(m.Category),
		PaymentMethod:   derefString(m.PaymentMethod),
		Date:            m.TransactionDate.UTC(),
		Notes:           derefString(m.Notes),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.BillURL != nil {
		d.Bill = &domain.Bill{URL: *m.BillURL}
		if m.BillUploadedAt != nil {
			d.Bill.UploadedAt = m.BillUploadedAt.UTC()
		}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
