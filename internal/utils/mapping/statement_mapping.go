package mapping

import (
	"database/sql"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelMonthlyStatement converts a domain MonthlyStatement to a model MonthlyStatement
func ToModelMonthlyStatement(d domain.MonthlyStatement) models.MonthlyStatement {
	m := models.MonthlyStatement{
		StatementID:  d.StatementID,
		TrustID:      d.TrustID,
		Year:         d.Year,
		Month:        d.Month,
		Status:       string(d.Status),
		TotalIncome:  d.TotalIncome,
		TotalExpense: d.TotalExpense,
		ClosingValue: d.ClosingValue,
		Observations: d.Observations,
		SubmittedAt:  d.SubmittedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.ReviewedAt != nil {
		m.ReviewedAt = sql.NullTime{Time: *d.ReviewedAt, Valid: true}
	}
	if d.ReviewedBy != "" {
		m.ReviewedBy = sql.NullString{String: d.ReviewedBy, Valid: true}
	}
	return m
}

// ToDomainMonthlyStatement converts a model MonthlyStatement to a domain MonthlyStatement
func ToDomainMonthlyStatement(m models.MonthlyStatement) domain.MonthlyStatement {
	return domain.MonthlyStatement{
		StatementID:  m.StatementID,
		TrustID:      m.TrustID,
		Year:         m.Year,
		Month:        m.Month,
		Status:       domain.StatementStatus(m.Status),
		TotalIncome:  m.TotalIncome,
		TotalExpense: m.TotalExpense,
		ClosingValue: m.ClosingValue,
		Observations: m.Observations,
		SubmittedAt:  m.SubmittedAt,
		ReviewedAt:   nullTimePtr(m.ReviewedAt),
		ReviewedBy:   m.ReviewedBy.String,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMonthlyStatementSlice converts a slice of model MonthlyStatements to domain MonthlyStatements
func ToDomainMonthlyStatementSlice(ms []models.MonthlyStatement) []domain.MonthlyStatement {
	ds := make([]domain.MonthlyStatement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyStatement(m)
	}
	return ds
}
