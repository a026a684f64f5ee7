package compliance

import (
	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// LimitStatus classifies a category (or a whole trust) against its limit.
type LimitStatus string

const (
	StatusSafe          LimitStatus = "safe"
	StatusWarning       LimitStatus = "warning"
	StatusCritical      LimitStatus = "critical"
	StatusIndeterminate LimitStatus = "indeterminate"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromFloat(0.9)
)

// CategorySummary reports one allocation bucket of a trust against its
// limit. AvailableSpace can be negative when the category is over-invested.
type CategorySummary struct {
	Category       domain.AssetCategory `json:"category"`
	Invested       decimal.Decimal      `json:"invested"`
	Percent        decimal.Decimal      `json:"percent"`
	LimitPercent   decimal.Decimal      `json:"limitPercent"`
	LimitAmount    decimal.Decimal      `json:"limitAmount"`
	AvailableSpace decimal.Decimal      `json:"availableSpace"`
	Status         LimitStatus          `json:"status"`
}

// TrustSummary is the full evaluation of a trust's asset allocation.
type TrustSummary struct {
	TrustID       string          `json:"trustID"`
	Bond          CategorySummary `json:"bond"`
	Other         CategorySummary `json:"other"`
	TotalAssets   int             `json:"totalAssets"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
}

// Evaluate computes both category summaries for a trust. It is a pure
// function over its inputs: only assets whose status counts as invested
// (COMPLIANT or EXCEPTION_APPROVED) contribute to the totals, and calling
// it twice with the same inputs yields the same result.
func Evaluate(trust domain.Trust, assets []domain.Asset) TrustSummary {
	bondInvested := decimal.Zero
	otherInvested := decimal.Zero
	total := decimal.Zero

	for _, asset := range assets {
		if !asset.ComplianceStatus.CountsAsInvested() {
			continue
		}
		total = total.Add(asset.Value)
		switch asset.Category {
		case domain.CategoryBond:
			bondInvested = bondInvested.Add(asset.Value)
		case domain.CategoryOther:
			otherInvested = otherInvested.Add(asset.Value)
		}
	}

	return TrustSummary{
		TrustID:       trust.TrustID,
		Bond:          EvaluateCategory(trust, domain.CategoryBond, bondInvested),
		Other:         EvaluateCategory(trust, domain.CategoryOther, otherInvested),
		TotalAssets:   len(assets),
		TotalInvested: total,
	}
}

// EvaluateCategory classifies one category given its invested total.
// A trust with zero initial capital reports percent 0 and an indeterminate
// status instead of dividing by zero.
func EvaluateCategory(trust domain.Trust, category domain.AssetCategory, invested decimal.Decimal) CategorySummary {
	limitPercent := limitFor(trust, category)
	limitAmount := trust.InitialCapital.Mul(limitPercent).Div(hundred)

	summary := CategorySummary{
		Category:       category,
		Invested:       invested,
		LimitPercent:   limitPercent,
		LimitAmount:    limitAmount,
		AvailableSpace: limitAmount.Sub(invested),
	}

	if trust.InitialCapital.IsZero() {
		summary.Percent = decimal.Zero
		summary.Status = StatusIndeterminate
		return summary
	}

	summary.Percent = invested.Div(trust.InitialCapital).Mul(hundred)
	summary.Status = classifyPercent(summary.Percent, limitPercent)
	return summary
}

// ClassifyNewAsset decides the registration status of a new asset: if the
// category percent would stay within the limit after hypothetically adding
// the value, the asset is COMPLIANT; otherwise it enters PENDING_REVIEW so
// the exception workflow can decide. Registration never rejects outright.
func ClassifyNewAsset(trust domain.Trust, category domain.AssetCategory, value decimal.Decimal, currentInvested decimal.Decimal) (bool, domain.ComplianceStatus) {
	limitAmount := trust.InitialCapital.Mul(limitFor(trust, category)).Div(hundred)
	if currentInvested.Add(value).GreaterThan(limitAmount) {
		return false, domain.StatusPendingReview
	}
	return true, domain.StatusCompliant
}

// classifyPercent applies the fixed thresholds: critical above the limit,
// warning above 90% of the limit, safe otherwise.
func classifyPercent(percent, limit decimal.Decimal) LimitStatus {
	if percent.GreaterThan(limit) {
		return StatusCritical
	}
	if percent.GreaterThan(limit.Mul(warningThreshold)) {
		return StatusWarning
	}
	return StatusSafe
}

func limitFor(trust domain.Trust, category domain.AssetCategory) decimal.Decimal {
	if category == domain.CategoryBond {
		return trust.BondLimitPercent
	}
	return trust.OtherLimitPercent
}
