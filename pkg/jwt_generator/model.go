package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "mortgage-api"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Single-purpose tokens carry a type discriminator so a leaked
// verification link can never be replayed as a session credential.
const (
	TokenTypeEmailVerify   = "email-verify"
	TokenTypePasswordReset = "password-reset"
)

type Claims struct {
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
