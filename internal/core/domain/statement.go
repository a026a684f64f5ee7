package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementStatus is the review status of a monthly statement.
type StatementStatus string

const (
	StatementPending         StatementStatus = "PENDING"
	StatementApproved        StatementStatus = "APPROVED"
	StatementObserved        StatementStatus = "OBSERVED"
	StatementTacitlyApproved StatementStatus = "TACITLY_APPROVED"
)

// MonthlyStatement is the fiduciary's monthly account statement for a
// trust. A statement left PENDING for ten business days is approved
// tacitly.
type MonthlyStatement struct {
	StatementID  string          `json:"statementID"`
	TrustID      string          `json:"trustID"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Status       StatementStatus `json:"status"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	ClosingValue decimal.Decimal `json:"closingValue"`
	Observations string          `json:"observations,omitempty"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	ReviewedAt   *time.Time      `json:"reviewedAt,omitempty"`
	ReviewedBy   string          `json:"reviewedBy,omitempty"`
	AuditFields
}
