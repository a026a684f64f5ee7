package dto

import "time"

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and the authenticated actor.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	Actor       ActorResponse `json:"actor"`
}
