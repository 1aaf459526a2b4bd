package models

// Budget is a row of the budgets table. (user_id, month) is the primary key.
type Budget struct {
	UserID string `json:"userID"`
	Month  string `json:"month"`  // YYYY-MM
	Limits []byte `json:"limits"` // JSONB object of category -> limit
	AuditFields
}
