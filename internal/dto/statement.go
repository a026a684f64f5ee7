package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// SubmitStatementRequest files the monthly statement of a trust.
type SubmitStatementRequest struct {
	Year         int             `json:"year" binding:"required,min=1900"`
	Month        int             `json:"month" binding:"required,min=1,max=12"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	ClosingValue decimal.Decimal `json:"closingValue" binding:"required"`
}

// ReviewStatementRequest records a review decision on a pending statement.
type ReviewStatementRequest struct {
	Status       domain.StatementStatus `json:"status" binding:"required,oneof=APPROVED OBSERVED"`
	Observations string                 `json:"observations"`
}

// StatementResponse defines the data returned for a monthly statement.
// Mirrors domain.MonthlyStatement.
type StatementResponse struct {
	StatementID   string                 `json:"statementID"`
	TrustID       string                 `json:"trustID"`
	Year          int                    `json:"year"`
	Month         int                    `json:"month"`
	Status        domain.StatementStatus `json:"status"`
	TotalIncome   decimal.Decimal        `json:"totalIncome"`
	TotalExpense  decimal.Decimal        `json:"totalExpense"`
	ClosingValue  decimal.Decimal        `json:"closingValue"`
	Observations  string                 `json:"observations,omitempty"`
	SubmittedAt   time.Time              `json:"submittedAt"`
	ReviewedAt    *time.Time             `json:"reviewedAt,omitempty"`
	ReviewedBy    string                 `json:"reviewedBy,omitempty"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToStatementResponse converts a domain.MonthlyStatement to StatementResponse DTO
func ToStatementResponse(s *domain.MonthlyStatement) StatementResponse {
	return StatementResponse{
		StatementID:   s.StatementID,
		TrustID:       s.TrustID,
		Year:          s.Year,
		Month:         s.Month,
		Status:        s.Status,
		TotalIncome:   s.TotalIncome,
		TotalExpense:  s.TotalExpense,
		ClosingValue:  s.ClosingValue,
		Observations:  s.Observations,
		SubmittedAt:   s.SubmittedAt,
		ReviewedAt:    s.ReviewedAt,
		ReviewedBy:    s.ReviewedBy,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ListStatementsParams defines query parameters for listing statements.
type ListStatementsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListStatementsResponse wraps the list of statements.
type ListStatementsResponse struct {
	Statements []StatementResponse `json:"statements"`
}

// ToListStatementsResponse converts a slice of domain.MonthlyStatement to ListStatementsResponse DTO
func ToListStatementsResponse(statements []domain.MonthlyStatement) ListStatementsResponse {
	res := make([]StatementResponse, len(statements))
	for i, s := range statements {
		res[i] = ToStatementResponse(&s)
	}
	return ListStatementsResponse{Statements: res}
}
