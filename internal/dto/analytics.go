package dto

import (
	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/utils/compliance"
	"github.com/trustops/trust_governance_app/internal/utils/timeline"
)

// ComplianceAnalyticsResponse aggregates the compliance posture of one trust
// for dashboards: per-status asset counts, category summaries and the term
// timeline.
type ComplianceAnalyticsResponse struct {
	TrustID                string                     `json:"trustID"`
	TotalAssets            int                        `json:"totalAssets"`
	CompliantCount         int                        `json:"compliantCount"`
	NonCompliantCount      int                        `json:"nonCompliantCount"`
	PendingReviewCount     int                        `json:"pendingReviewCount"`
	ExceptionApprovedCount int                        `json:"exceptionApprovedCount"`
	ComplianceRate         decimal.Decimal            `json:"complianceRate"` // invested assets over total, percent
	Bond                   compliance.CategorySummary `json:"bond"`
	Other                  compliance.CategorySummary `json:"other"`
	TotalInvested          decimal.Decimal            `json:"totalInvested"`
	Timeline               timeline.Timeline          `json:"timeline"`
}
