package model

import "time"

// User represents a user row. PasswordHash never leaves the server.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// UserSummary is the user shape safe for API responses.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse carries the issued credential and the user summary.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}
