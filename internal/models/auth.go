package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest holds the payload for creating a new student account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest holds credentials for authenticating a student.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the authenticated identity.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	Student     Identity  `json:"student"`
}

// JWTClaims is the access token payload. It carries the full Identity so
// authorized calls never need a database round trip to establish the caller.
type JWTClaims struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Identity converts the claims back into the caller identity passed to
// service operations.
func (c *JWTClaims) Identity() Identity {
	return Identity{StudentID: c.StudentID, Name: c.Name, Email: c.Email}
}
