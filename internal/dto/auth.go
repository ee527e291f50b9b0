package dto

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	OperatorID string `json:"operatorID" binding:"required,max=64"`
	PIN        string `json:"pin" binding:"required,min=4,max=12"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
