package timeline

import (
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// Status classifies how close a trust is to its expiration date.
type Status string

const (
	StatusHealthy  Status = "HEALTHY"
	StatusWarning  Status = "WARNING"  // one year or less remaining
	StatusCritical Status = "CRITICAL" // 90 days or less remaining
)

const (
	criticalWindowDays = 90
	warningWindowDays  = 365
)

// Timeline describes a trust's position in its maximum term.
// RemainingTermDays is negative once the trust has expired.
type Timeline struct {
	ConstitutionDate    time.Time `json:"constitutionDate"`
	ExpirationDate      time.Time `json:"expirationDate"`
	MaxTermYears        int       `json:"maxTermYears"`
	ElapsedTermYears    int       `json:"elapsedTermYears"`
	RemainingTermDays   int       `json:"remainingTermDays"`
	RemainingTermMonths int       `json:"remainingTermMonths"`
	RemainingTermYears  int       `json:"remainingTermYears"`
	Status              Status    `json:"status"`
	IsExpiringSoon      bool      `json:"isExpiringSoon"`
	IsExpiringVerySoon  bool      `json:"isExpiringVerySoon"`
}

// Compute derives the timeline for a trust at the given instant. The
// expiration date is calendar-accurate (constitution date plus the
// effective term in years, not a 365-day multiple). Pure and idempotent.
func Compute(trust domain.Trust, now time.Time) Timeline {
	maxYears := trust.EffectiveMaxTermYears()
	constitution := toDate(trust.ConstitutionDate)
	expiration := constitution.AddDate(maxYears, 0, 0)
	today := toDate(now)

	remainingDays := int(expiration.Sub(today).Hours() / 24)
	remainingMonths := monthsBetween(today, expiration)

	tl := Timeline{
		ConstitutionDate:    constitution,
		ExpirationDate:      expiration,
		MaxTermYears:        maxYears,
		ElapsedTermYears:    yearsBetween(constitution, today),
		RemainingTermDays:   remainingDays,
		RemainingTermMonths: remainingMonths,
		RemainingTermYears:  remainingMonths / 12,
		IsExpiringSoon:      remainingDays <= warningWindowDays,
		IsExpiringVerySoon:  remainingDays <= criticalWindowDays,
	}

	switch {
	case remainingDays <= criticalWindowDays:
		tl.Status = StatusCritical
	case remainingDays <= warningWindowDays:
		tl.Status = StatusWarning
	default:
		tl.Status = StatusHealthy
	}
	return tl
}

// NextQuarterly returns the start of the first future quarter window that
// holds no non-cancelled QUARTERLY session. Quarter windows are
// non-overlapping 3-calendar-month spans anchored at the constitution
// date. Idempotent for identical inputs.
func NextQuarterly(trust domain.Trust, sessions []domain.ComiteSession, now time.Time) time.Time {
	constitution := toDate(trust.ConstitutionDate)
	today := toDate(now)

	// First window starting strictly after today.
	k := 0
	for !constitution.AddDate(0, 3*k, 0).After(today) {
		k++
	}

	for {
		start := constitution.AddDate(0, 3*k, 0)
		end := constitution.AddDate(0, 3*(k+1), 0)
		if !windowHasQuarterly(sessions, start, end) {
			return start
		}
		k++
	}
}

func windowHasQuarterly(sessions []domain.ComiteSession, start, end time.Time) bool {
	for _, s := range sessions {
		if s.SessionType != domain.SessionQuarterly || s.Status == domain.SessionCancelled {
			continue
		}
		d := toDate(s.SessionDate)
		if !d.Before(start) && d.Before(end) {
			return true
		}
	}
	return false
}

// toDate truncates an instant to a UTC calendar date so that day arithmetic
// is exact regardless of the time-of-day or zone of the inputs.
func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthsBetween counts whole calendar months from a to b (0 when b <= a).
func monthsBetween(a, b time.Time) int {
	if !b.After(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func yearsBetween(a, b time.Time) int {
	return monthsBetween(a, b) / 12
}
