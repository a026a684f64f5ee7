package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trust represents an irrevocable trust row.
type Trust struct {
	TrustID           string          `db:"trust_id"`
	Name              string          `db:"name"`
	CurrencyCode      string          `db:"currency_code"`
	InitialCapital    decimal.Decimal `db:"initial_capital"`
	BondLimitPercent  decimal.Decimal `db:"bond_limit_percent"`
	OtherLimitPercent decimal.Decimal `db:"other_limit_percent"`
	RequiresConsensus bool            `db:"requires_consensus"`
	CommitteeSize     int             `db:"committee_size"`
	ConstitutionDate  time.Time       `db:"constitution_date"`
	MaxTermYears      int             `db:"max_term_years"`
	TermType          string          `db:"term_type"`
	Status            string          `db:"status"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}
