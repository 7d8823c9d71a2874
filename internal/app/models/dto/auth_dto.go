package dto

import "github.com/buddybridge/backend/internal/app/models"

// RegisterRequest represents member registration data
type RegisterRequest struct {
	Email          string                `json:"email" binding:"required,email"`
	Password       string                `json:"password" binding:"required,min=8"`
	Name           string                `json:"name" binding:"required"`
	Nickname       string                `json:"nickname" binding:"required"`
	Age            int                   `json:"age" binding:"required,gt=0"`
	Gender         models.Gender         `json:"gender" binding:"required,oneof=MALE FEMALE"`
	DisabilityType models.DisabilityType `json:"disabilityType" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
