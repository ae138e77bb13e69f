// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a staff member
// @Example {"email": "staff@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the staff member's email address.
	Email string `json:"email" binding:"required,email" example:"staff@example.com"`
	// Password is the staff member's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new staff account
type RegisterRequest struct {
	Email string `json:"email" binding:"required,email" example:"staff@example.com"`
	// Username is the staff member's unique username.
	Username string `json:"username" binding:"required,min=3,max=30" example:"jdupont"`
	// Password is the account password (minimum 6 characters).
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	// Name is the staff member's full name (optional).
	Name string `json:"name,omitempty" example:"Jean Dupont"`
} // @name RegisterRequest

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Username) < 3 {
		return &ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// RefreshToken is the JWT refresh token.
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// User contains the authenticated staff member information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims represents JWT claims.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}

// UserResponse represents staff member information in API responses.
type UserResponse struct {
	Email string `json:"email" example:"staff@example.com"`
	Name  string `json:"name,omitempty" example:"Jean Dupont"`
} // @name UserResponse
