package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetCategory is the allocation bucket an asset counts against.
type AssetCategory string

const (
	CategoryBond  AssetCategory = "BOND"
	CategoryOther AssetCategory = "OTHER"
)

// ValidAssetCategory reports whether c is a known allocation category.
func ValidAssetCategory(c AssetCategory) bool {
	return c == CategoryBond || c == CategoryOther
}

// ComplianceStatus tracks an asset through the compliance lifecycle.
type ComplianceStatus string

const (
	StatusCompliant         ComplianceStatus = "COMPLIANT"
	StatusNonCompliant      ComplianceStatus = "NON_COMPLIANT"
	StatusPendingReview     ComplianceStatus = "PENDING_REVIEW"
	StatusExceptionApproved ComplianceStatus = "EXCEPTION_APPROVED"
)

// CountsAsInvested reports whether the status contributes to category
// percentage math. NON_COMPLIANT and PENDING_REVIEW assets stay visible but
// are excluded from invested totals.
func (s ComplianceStatus) CountsAsInvested() bool {
	return s == StatusCompliant || s == StatusExceptionApproved
}

// Terminal reports whether the status is a terminal exception-workflow state.
func (s ComplianceStatus) Terminal() bool {
	return s == StatusExceptionApproved || s == StatusNonCompliant
}

// Asset is a contribution registered against a trust. ComplianceStatus is
// the only field the core mutates after creation, and only through the
// exception workflow or evaluator classification.
type Asset struct {
	AssetID          string           `json:"assetID"`
	TrustID          string           `json:"trustID"`
	Category         AssetCategory    `json:"category"`
	Value            decimal.Decimal  `json:"value"`
	Description      string           `json:"description"`
	ComplianceStatus ComplianceStatus `json:"complianceStatus"`
	BeneficiaryID    string           `json:"beneficiaryID,omitempty"` // optional Actor link
	VoteRound        int              `json:"voteRound"`               // current exception round, 1-based
	ResolutionReason string           `json:"resolutionReason,omitempty"`
	ResolvedBy       string           `json:"resolvedBy,omitempty"`
	ResolvedAt       *time.Time       `json:"resolvedAt,omitempty"`
	RegisteredAt     time.Time        `json:"registeredAt"`
	AuditFields
}
