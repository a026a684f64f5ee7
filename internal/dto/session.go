package dto

import (
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// CreateSessionRequest defines the data needed to schedule a committee session.
type CreateSessionRequest struct {
	SessionDate time.Time          `json:"sessionDate" binding:"required"`
	SessionType domain.SessionType `json:"sessionType" binding:"required,oneof=QUARTERLY EXTRAORDINARY SPECIAL"`
	Location    string             `json:"location"`
}

// UpdateSessionRequest defines the data allowed for updating a session.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSessionRequest struct {
	SessionDate *time.Time            `json:"sessionDate"`
	Status      *domain.SessionStatus `json:"status" binding:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	Quorum      *bool                 `json:"quorum"`
	Attendees   *[]string             `json:"attendees"`
	Location    *string               `json:"location"`
	Minutes     *string               `json:"minutes"`
}

// SessionResponse defines the data returned for a committee session.
// Mirrors domain.ComiteSession.
type SessionResponse struct {
	SessionID     string               `json:"sessionID"`
	TrustID       string               `json:"trustID"`
	SessionDate   time.Time            `json:"sessionDate"`
	SessionType   domain.SessionType   `json:"sessionType"`
	Status        domain.SessionStatus `json:"status"`
	Quorum        bool                 `json:"quorum"`
	Attendees     []string             `json:"attendees"`
	Location      string               `json:"location,omitempty"`
	Minutes       string               `json:"minutes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToSessionResponse converts a domain.ComiteSession to SessionResponse DTO
func ToSessionResponse(s *domain.ComiteSession) SessionResponse {
	return SessionResponse{
		SessionID:     s.SessionID,
		TrustID:       s.TrustID,
		SessionDate:   s.SessionDate,
		SessionType:   s.SessionType,
		Status:        s.Status,
		Quorum:        s.Quorum,
		Attendees:     s.Attendees,
		Location:      s.Location,
		Minutes:       s.Minutes,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ListSessionsParams defines query parameters for listing sessions.
type ListSessionsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListSessionsResponse wraps the list of sessions.
type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// ToListSessionsResponse converts a slice of domain.ComiteSession to ListSessionsResponse DTO
func ToListSessionsResponse(sessions []domain.ComiteSession) ListSessionsResponse {
	res := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = ToSessionResponse(&s)
	}
	return ListSessionsResponse{Sessions: res}
}
