package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TermType selects the statutory maximum term profile for a trust.
type TermType string

const (
	TermStandard   TermType = "STANDARD"
	TermForeign    TermType = "FOREIGN"
	TermDisability TermType = "DISABILITY"
)

// DefaultMaxTermYears returns the canonical maximum term for the term type,
// used when a trust does not explicitly override MaxTermYears.
func (t TermType) DefaultMaxTermYears() int {
	switch t {
	case TermForeign:
		return 50
	case TermDisability:
		return 70
	default:
		return 30
	}
}

// TrustStatus is the lifecycle status of a trust.
type TrustStatus string

const (
	TrustDraft  TrustStatus = "DRAFT"
	TrustActive TrustStatus = "ACTIVE"
	TrustClosed TrustStatus = "CLOSED"
)

// Trust represents an irrevocable trust and its governance configuration.
// TrustID is the human-assigned contract number (e.g. "2026-0001").
type Trust struct {
	TrustID           string          `json:"trustID"`
	Name              string          `json:"name"`
	CurrencyCode      string          `json:"currencyCode"`
	InitialCapital    decimal.Decimal `json:"initialCapital"`
	BondLimitPercent  decimal.Decimal `json:"bondLimitPercent"`
	OtherLimitPercent decimal.Decimal `json:"otherLimitPercent"`
	RequiresConsensus bool            `json:"requiresConsensus"`
	CommitteeSize     int             `json:"committeeSize"`
	ConstitutionDate  time.Time       `json:"constitutionDate"`
	MaxTermYears      int             `json:"maxTermYears"`
	TermType          TermType        `json:"termType"`
	IsActive          bool            `json:"isActive"`
	Status            TrustStatus     `json:"status"`
	AuditFields
}

// Majority is the number of committee votes needed to close a round:
// floor(committeeSize/2) + 1.
func (t Trust) Majority() int {
	return t.CommitteeSize/2 + 1
}

// EffectiveMaxTermYears resolves the trust's maximum term, falling back to
// the term-type default when no explicit override is set.
func (t Trust) EffectiveMaxTermYears() int {
	if t.MaxTermYears > 0 {
		return t.MaxTermYears
	}
	return t.TermType.DefaultMaxTermYears()
}
