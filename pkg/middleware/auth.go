package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/jwt_generator"
)

const (
	ContextUserId = "authUserId"
	ContextEmail  = "authEmail"
	ContextRole   = "authRole"
)

// Auth gates a route behind a valid bearer access token. Validation is
// stateless: the credential store is not consulted, so a deleted or demoted
// user keeps riding an already-issued token for at most its lifetime.
func Auth(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorizationHeader := ctx.Get(fiber.HeaderAuthorization)
		if authorizationHeader == "" {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"missing authorization header",
			).SetSeverity(zapcore.WarnLevel)
		}

		rawJwtToken, hasBearerPrefix := strings.CutPrefix(authorizationHeader, "Bearer ")
		if !hasBearerPrefix {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"malformed authorization header",
			).SetSeverity(zapcore.WarnLevel)
		}

		claims, err := jwtGenerator.VerifyAccessToken(rawJwtToken)
		if err != nil {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"invalid or expired access token",
			).SetSeverity(zapcore.WarnLevel)
		}

		ctx.Locals(ContextUserId, claims.Subject)
		ctx.Locals(ContextEmail, claims.Email)
		ctx.Locals(ContextRole, claims.Role)

		return ctx.Next()
	}
}

// AdminOnly must run after Auth. It trusts the role claim embedded at login
// time; a role change takes effect at the user's next login.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, isOk := ctx.Locals(ContextRole).(string)
		if !isOk || role != jwt_generator.RoleAdmin {
			return cerror.NewError(
				fiber.StatusForbidden,
				"admin role required",
			).SetSeverity(zapcore.WarnLevel)
		}

		return ctx.Next()
	}
}
