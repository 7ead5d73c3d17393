package models

import "github.com/golang-jwt/jwt/v4"

// LoginRequest defines the request body for operator login.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// OperatorClaims are the JWT claims issued to an authenticated operator.
type OperatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
