package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"portfolio-cms-backend/internal/models"
)

// Identity is the caller extracted from a verified bearer token.
type Identity struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// TokenClaims is the JWT claim set carried by access tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}
