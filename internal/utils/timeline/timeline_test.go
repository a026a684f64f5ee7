package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/utils/timeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_ExpiringVerySoon(t *testing.T) {
	trust := domain.Trust{
		ConstitutionDate: date(2020, time.January, 1),
		MaxTermYears:     30,
		TermType:         domain.TermStandard,
	}
	now := date(2049, time.October, 15)

	tl := timeline.Compute(trust, now)

	assert.Equal(t, date(2050, time.January, 1), tl.ExpirationDate)
	assert.Equal(t, 78, tl.RemainingTermDays)
	assert.Equal(t, timeline.StatusCritical, tl.Status)
	assert.True(t, tl.IsExpiringVerySoon)
	assert.True(t, tl.IsExpiringSoon)
}

func TestCompute_StatusBands(t *testing.T) {
	trust := domain.Trust{
		ConstitutionDate: date(2000, time.March, 10),
		MaxTermYears:     30,
	}

	tests := []struct {
		name string
		now  time.Time
		want timeline.Status
	}{
		{"decades remaining is healthy", date(2010, time.January, 1), timeline.StatusHealthy},
		{"just over a year remaining is healthy", date(2029, time.March, 1), timeline.StatusHealthy},
		{"under a year remaining is warning", date(2029, time.June, 1), timeline.StatusWarning},
		{"90 days remaining is critical", date(2029, time.December, 10), timeline.StatusCritical},
		{"already expired is critical", date(2031, time.January, 1), timeline.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := timeline.Compute(trust, tt.now)
			assert.Equal(t, tt.want, tl.Status)
		})
	}
}

func TestCompute_ExpiredTrustHasNegativeDays(t *testing.T) {
	trust := domain.Trust{
		ConstitutionDate: date(1990, time.June, 1),
		MaxTermYears:     30,
	}
	tl := timeline.Compute(trust, date(2020, time.June, 11))

	assert.Equal(t, -10, tl.RemainingTermDays)
	assert.Equal(t, 0, tl.RemainingTermYears)
}

func TestCompute_TermTypeDefaults(t *testing.T) {
	tests := []struct {
		termType  domain.TermType
		wantYears int
	}{
		{domain.TermStandard, 30},
		{domain.TermForeign, 50},
		{domain.TermDisability, 70},
	}

	for _, tt := range tests {
		t.Run(string(tt.termType), func(t *testing.T) {
			trust := domain.Trust{
				ConstitutionDate: date(2020, time.January, 1),
				TermType:         tt.termType,
			}
			tl := timeline.Compute(trust, date(2021, time.January, 1))
			assert.Equal(t, tt.wantYears, tl.MaxTermYears)
			assert.Equal(t, date(2020+tt.wantYears, time.January, 1), tl.ExpirationDate)
		})
	}
}

func TestCompute_ExplicitTermOverridesDefault(t *testing.T) {
	trust := domain.Trust{
		ConstitutionDate: date(2020, time.January, 1),
		TermType:         domain.TermForeign,
		MaxTermYears:     10,
	}
	tl := timeline.Compute(trust, date(2021, time.January, 1))
	assert.Equal(t, 10, tl.MaxTermYears)
}

func TestCompute_Idempotent(t *testing.T) {
	trust := domain.Trust{
		ConstitutionDate: date(2015, time.May, 20),
		MaxTermYears:     30,
	}
	now := date(2026, time.August, 29)

	assert.Equal(t, timeline.Compute(trust, now), timeline.Compute(trust, now))
}

func TestNextQuarterly_NoSessions(t *testing.T) {
	trust := domain.Trust{ConstitutionDate: date(2026, time.January, 15)}
	now := date(2026, time.February, 1)

	got := timeline.NextQuarterly(trust, nil, now)

	// First window boundary after Feb 1 is constitution + 3 months.
	assert.Equal(t, date(2026, time.April, 15), got)
}

func TestNextQuarterly_SkipsCoveredWindow(t *testing.T) {
	trust := domain.Trust{ConstitutionDate: date(2026, time.January, 15)}
	now := date(2026, time.February, 1)
	sessions := []domain.ComiteSession{
		{
			SessionType: domain.SessionQuarterly,
			Status:      domain.SessionScheduled,
			SessionDate: date(2026, time.May, 2), // inside the Apr 15 - Jul 15 window
		},
	}

	got := timeline.NextQuarterly(trust, sessions, now)
	assert.Equal(t, date(2026, time.July, 15), got)
}

func TestNextQuarterly_CancelledSessionDoesNotCount(t *testing.T) {
	trust := domain.Trust{ConstitutionDate: date(2026, time.January, 15)}
	now := date(2026, time.February, 1)
	sessions := []domain.ComiteSession{
		{
			SessionType: domain.SessionQuarterly,
			Status:      domain.SessionCancelled,
			SessionDate: date(2026, time.May, 2),
		},
		{
			SessionType: domain.SessionExtraordinary,
			Status:      domain.SessionScheduled,
			SessionDate: date(2026, time.April, 20),
		},
	}

	got := timeline.NextQuarterly(trust, sessions, now)
	assert.Equal(t, date(2026, time.April, 15), got)
}

func TestNextQuarterly_Idempotent(t *testing.T) {
	trust := domain.Trust{ConstitutionDate: date(2025, time.November, 3)}
	now := date(2026, time.August, 29)
	sessions := []domain.ComiteSession{
		{SessionType: domain.SessionQuarterly, Status: domain.SessionCompleted, SessionDate: date(2026, time.September, 10)},
	}

	first := timeline.NextQuarterly(trust, sessions, now)
	second := timeline.NextQuarterly(trust, sessions, now)
	require.Equal(t, first, second)
}
