package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyStatement represents a monthly statement row.
type MonthlyStatement struct {
	StatementID  string          `db:"statement_id"`
	TrustID      string          `db:"trust_id"`
	Year         int             `db:"year"`
	Month        int             `db:"month"`
	Status       string          `db:"status"`
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
	ClosingValue decimal.Decimal `db:"closing_value"`
	Observations string          `db:"observations"`
	SubmittedAt  time.Time       `db:"submitted_at"`
	ReviewedAt   sql.NullTime    `db:"reviewed_at"`
	ReviewedBy   sql.NullString  `db:"reviewed_by"`
	AuditFields
}
