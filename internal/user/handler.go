package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/config"
	"mortgage-api/pkg/jwt_generator"
	"mortgage-api/pkg/logger"
	"mortgage-api/pkg/middleware"
	"mortgage-api/pkg/server"
)

// RefreshTokenCookieName scopes the session-continuity cookie to the auth
// routes only; it is never part of a JSON response.
const (
	RefreshTokenCookieName = "refreshToken"
	refreshTokenCookiePath = "/api/auth"
)

type handler struct {
	userService  Service
	jwtGenerator jwt_generator.JwtGenerator
	environment  string
}

func NewHandler(userService Service, jwtGenerator jwt_generator.JwtGenerator, cfg *config.Config) server.Handler {
	var environment string
	if cfg != nil {
		environment = cfg.Environment
	}

	return &handler{
		userService:  userService,
		jwtGenerator: jwtGenerator,
		environment:  environment,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/verify-email", h.VerifyEmail)
	auth.Post("/resend-verification", h.ResendVerification)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/request-password-reset", h.RequestPasswordReset)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Get("/me", middleware.Auth(h.jwtGenerator), h.Me)
}

func (h *handler) Signup(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "signup"))
	ctx.Locals(logger.ContextKey, log)

	var payload SignupPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.userService.Signup(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(fiber.Map{
			"ok": true,
		})
}

func (h *handler) VerifyEmail(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "verifyEmail"))
	ctx.Locals(logger.ContextKey, log)

	var payload VerifyEmailPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	alreadyVerified, err := h.userService.VerifyEmail(ctx.Context(), payload.Token)
	if err != nil {
		return err
	}

	responseBody := fiber.Map{
		"ok": true,
	}
	if alreadyVerified {
		responseBody["alreadyVerified"] = true
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(responseBody)
}

func (h *handler) ResendVerification(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resendVerification"))
	ctx.Locals(logger.ContextKey, log)

	var payload ResendVerificationPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.userService.ResendVerification(ctx.Context(), payload.Email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok": true,
		})
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))
	ctx.Locals(logger.ContextKey, log)

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	loginResult, err := h.userService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	h.setRefreshTokenCookie(ctx, loginResult.Tokens.RefreshToken)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":          true,
			"user":        loginResult.User,
			"accessToken": loginResult.Tokens.AccessToken,
		})
}

func (h *handler) Logout(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logout"))
	ctx.Locals(logger.ContextKey, log)

	refreshToken := ctx.Cookies(RefreshTokenCookieName)
	err := h.userService.Logout(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	h.clearRefreshTokenCookie(ctx)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok": true,
		})
}

func (h *handler) Refresh(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refresh"))
	ctx.Locals(logger.ContextKey, log)

	refreshToken := ctx.Cookies(RefreshTokenCookieName)
	tokens, err := h.userService.Refresh(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	h.setRefreshTokenCookie(ctx, tokens.RefreshToken)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":          true,
			"accessToken": tokens.AccessToken,
		})
}

func (h *handler) Me(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getMe"))
	ctx.Locals(logger.ContextKey, log)

	userId, _ := ctx.Locals(middleware.ContextUserId).(string)
	user, err := h.userService.GetUserById(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":   true,
			"user": user,
		})
}

func (h *handler) RequestPasswordReset(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "requestPasswordReset"))
	ctx.Locals(logger.ContextKey, log)

	var payload RequestPasswordResetPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.userService.RequestPasswordReset(ctx.Context(), payload.Email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok": true,
		})
}

func (h *handler) ResetPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resetPassword"))
	ctx.Locals(logger.ContextKey, log)

	var payload ResetPasswordPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.userService.ResetPassword(ctx.Context(), payload.Token, payload.Password)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok": true,
		})
}

func (h *handler) setRefreshTokenCookie(ctx *fiber.Ctx, refreshToken string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    refreshToken,
		Path:     refreshTokenCookiePath,
		MaxAge:   int(RefreshTokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   h.environment == config.EnvironmentProduction,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *handler) clearRefreshTokenCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    "",
		Path:     refreshTokenCookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.environment == config.EnvironmentProduction,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
