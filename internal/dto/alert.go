package dto

import (
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// AlertResponse defines the data returned for an alert.
// Mirrors domain.Alert.
type AlertResponse struct {
	AlertID   string               `json:"alertID"`
	TrustID   string               `json:"trustID"`
	AssetID   string               `json:"assetID,omitempty"`
	Kind      domain.AlertKind     `json:"kind"`
	Severity  domain.AlertSeverity `json:"severity"`
	Message   string               `json:"message"`
	IsRead    bool                 `json:"isRead"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ListAlertsParams defines query parameters for listing alerts.
type ListAlertsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAlertsResponse wraps the list of alerts with the unread count.
type ListAlertsResponse struct {
	Alerts      []AlertResponse `json:"alerts"`
	UnreadCount int             `json:"unreadCount"`
}

// ToAlertResponse converts a domain.Alert to AlertResponse DTO
func ToAlertResponse(a *domain.Alert) AlertResponse {
	return AlertResponse{
		AlertID:   a.AlertID,
		TrustID:   a.TrustID,
		AssetID:   a.AssetID,
		Kind:      a.Kind,
		Severity:  a.Severity,
		Message:   a.Message,
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt,
	}
}

// ToListAlertsResponse converts a slice of domain.Alert to ListAlertsResponse DTO
func ToListAlertsResponse(alerts []domain.Alert, unread int) ListAlertsResponse {
	res := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		res[i] = ToAlertResponse(&a)
	}
	return ListAlertsResponse{Alerts: res, UnreadCount: unread}
}
