package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"mortgage-api/pkg/config"
)

// JwtGenerator mints and verifies the four token classes. Every class is
// signed with its own secret, so verification with the wrong class always
// fails on the signature before any claim is inspected.
type JwtGenerator interface {
	GenerateAccessToken(expirationTime time.Time, email, role, userId string) (string, error)
	GenerateRefreshToken(expirationTime time.Time, userId string) (string, error)
	GenerateEmailVerificationToken(expirationTime time.Time, email, userId string) (string, error)
	GeneratePasswordResetToken(expirationTime time.Time, email, userId string) (string, error)
	VerifyAccessToken(rawJwtToken string) (*Claims, error)
	VerifyRefreshToken(rawJwtToken string) (*Claims, error)
	VerifyEmailVerificationToken(rawJwtToken string) (*Claims, error)
	VerifyPasswordResetToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	jwtConfig *config.JwtConfig
}

func NewJwtGenerator(jwtConfig *config.JwtConfig) (JwtGenerator, error) {
	if len(jwtConfig.AccessSecret) == 0 ||
		len(jwtConfig.RefreshSecret) == 0 ||
		len(jwtConfig.EmailVerifySecret) == 0 ||
		len(jwtConfig.PasswordResetSecret) == 0 {
		return nil, errors.New("jwt secrets are not fully configured")
	}

	return &jwtGenerator{
		jwtConfig: jwtConfig,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateAccessToken(
	expirationTime time.Time,
	email, role, userId string,
) (string, error) {
	claims := Claims{
		Email:            email,
		Role:             role,
		RegisteredClaims: newRegisteredClaims(expirationTime, userId),
	}

	return jwtGenerator.signToken(claims, jwtGenerator.jwtConfig.AccessSecret)
}

func (jwtGenerator *jwtGenerator) GenerateRefreshToken(
	expirationTime time.Time,
	userId string,
) (string, error) {
	claims := Claims{
		RegisteredClaims: newRegisteredClaims(expirationTime, userId),
	}

	return jwtGenerator.signToken(claims, jwtGenerator.jwtConfig.RefreshSecret)
}

func (jwtGenerator *jwtGenerator) GenerateEmailVerificationToken(
	expirationTime time.Time,
	email, userId string,
) (string, error) {
	claims := Claims{
		Email:            email,
		TokenType:        TokenTypeEmailVerify,
		RegisteredClaims: newRegisteredClaims(expirationTime, userId),
	}

	return jwtGenerator.signToken(claims, jwtGenerator.jwtConfig.EmailVerifySecret)
}

func (jwtGenerator *jwtGenerator) GeneratePasswordResetToken(
	expirationTime time.Time,
	email, userId string,
) (string, error) {
	claims := Claims{
		Email:            email,
		TokenType:        TokenTypePasswordReset,
		RegisteredClaims: newRegisteredClaims(expirationTime, userId),
	}

	return jwtGenerator.signToken(claims, jwtGenerator.jwtConfig.PasswordResetSecret)
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.jwtConfig.AccessSecret)
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.jwtConfig.RefreshSecret)
}

func (jwtGenerator *jwtGenerator) VerifyEmailVerificationToken(rawJwtToken string) (*Claims, error) {
	claims, err := jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.jwtConfig.EmailVerifySecret)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != TokenTypeEmailVerify {
		return nil, errors.New("ambiguous jwt token type")
	}

	return claims, nil
}

func (jwtGenerator *jwtGenerator) VerifyPasswordResetToken(rawJwtToken string) (*Claims, error) {
	claims, err := jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.jwtConfig.PasswordResetSecret)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != TokenTypePasswordReset {
		return nil, errors.New("ambiguous jwt token type")
	}

	return claims, nil
}

func (jwtGenerator *jwtGenerator) signToken(claims Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) verifyToken(rawJwtToken string, secret []byte) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, errors.New("ambiguous jwt token issuer")
	}

	now := time.Now().UTC()
	isJwtTokenNotExpired := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenNotExpired {
		return nil, errors.New("expired jwt token")
	}

	isTokenStarted := claims.VerifyNotBefore(now, true)
	if !isTokenStarted {
		return nil, errors.New("jwt token is not started")
	}

	return &claims, nil
}

func newRegisteredClaims(expirationTime time.Time, userId string) jwt.RegisteredClaims {
	now := time.Now().UTC()
	return jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   userId,
		Issuer:    IssuerDefault,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
	}
}
