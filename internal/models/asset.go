package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Asset represents a registered trust asset row.
// ResolutionReason and ResolvedBy are nullable until the exception closes.
type Asset struct {
	AssetID          string          `db:"asset_id"`
	TrustID          string          `db:"trust_id"`
	Category         string          `db:"category"`
	Value            decimal.Decimal `db:"value"`
	Description      string          `db:"description"`
	ComplianceStatus string          `db:"compliance_status"`
	BeneficiaryID    sql.NullString  `db:"beneficiary_id"`
	VoteRound        int             `db:"vote_round"`
	ResolutionReason sql.NullString  `db:"resolution_reason"`
	ResolvedBy       sql.NullString  `db:"resolved_by"`
	ResolvedAt       sql.NullTime    `db:"resolved_at"`
	RegisteredAt     time.Time       `db:"registered_at"`
	AuditFields
}
