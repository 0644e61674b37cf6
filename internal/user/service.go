package user

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/jwt_generator"
	"mortgage-api/pkg/logger"
	"mortgage-api/pkg/mailer"
)

const (
	AccessTokenTTL            = 2 * time.Hour
	RefreshTokenTTL           = 168 * time.Hour
	EmailVerificationTokenTTL = 24 * time.Hour
	PasswordResetTokenTTL     = 1 * time.Hour

	passwordHashCost = 12
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=user
type Service interface {
	Signup(ctx context.Context, payload *SignupPayload) error
	VerifyEmail(ctx context.Context, verificationToken string) (bool, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error)
	GetUserById(ctx context.Context, userId string) (*UserResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password string) error
}

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
	mailer         mailer.Mailer
}

func NewService(
	userRepository Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	mailer mailer.Mailer,
) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
		mailer:         mailer,
	}
}

func (s *service) Signup(ctx context.Context, payload *SignupPayload) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), passwordHashCost)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	userId, err := s.userRepository.InsertUser(ctx, &UserDocument{
		Id:            uuid.New().String(),
		Email:         payload.Email,
		Password:      string(hashedPassword),
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		Role:          RoleCustomer,
		EmailVerified: false,
		CreatedAt:     time.Now().UTC().Unix(),
	})
	if err != nil {
		return err
	}

	verificationTokenExpiresAt := time.Now().UTC().Add(EmailVerificationTokenTTL)
	verificationToken, err := s.jwtGenerator.GenerateEmailVerificationToken(
		verificationTokenExpiresAt,
		payload.Email,
		userId,
	)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate email verification token",
			zap.Error(err),
		)
	}

	err = s.userRepository.UpdateVerificationToken(ctx, userId, verificationToken)
	if err != nil {
		return err
	}

	// The account is created either way; a lost mail is recoverable
	// through resend-verification.
	err = s.mailer.SendVerificationEmail(ctx, payload.Email, verificationToken)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to send verification email",
			zap.String("userId", userId),
		)
	}

	return nil
}

func (s *service) VerifyEmail(ctx context.Context, verificationToken string) (bool, error) {
	claims, err := s.jwtGenerator.VerifyEmailVerificationToken(verificationToken)
	if err != nil {
		return false, cerror.NewError(
			fiber.StatusBadRequest,
			"invalid or expired verification link",
		).SetSeverity(zapcore.WarnLevel)
	}

	user, err := s.userRepository.FindUserWithId(ctx, claims.Subject)
	if err != nil {
		return false, err
	}

	if user == nil {
		return false, cerror.NewError(
			fiber.StatusBadRequest,
			"invalid or expired verification link",
		).SetSeverity(zapcore.WarnLevel)
	}

	if user.EmailVerified {
		return true, nil
	}

	// A reissued link supersedes this one; only the stored token redeems.
	if user.VerificationToken != verificationToken {
		return false, cerror.NewError(
			fiber.StatusBadRequest,
			"verification link is no longer valid",
		).SetSeverity(zapcore.WarnLevel)
	}

	err = s.userRepository.MarkEmailVerified(ctx, user.Id)
	if err != nil {
		return false, err
	}

	return false, nil
}

func (s *service) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepository.FindUserWithEmail(ctx, email)
	if err != nil {
		return err
	}

	if user == nil {
		return cerror.ErrorUserNotFound
	}

	if user.EmailVerified {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"email already verified",
		).SetSeverity(zapcore.WarnLevel)
	}

	verificationTokenExpiresAt := time.Now().UTC().Add(EmailVerificationTokenTTL)
	verificationToken, err := s.jwtGenerator.GenerateEmailVerificationToken(
		verificationTokenExpiresAt,
		user.Email,
		user.Id,
	)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate email verification token",
			zap.Error(err),
		)
	}

	err = s.userRepository.UpdateVerificationToken(ctx, user.Id, verificationToken)
	if err != nil {
		return err
	}

	// Unlike signup, resend exists only to deliver the mail.
	return s.mailer.SendVerificationEmail(ctx, user.Email, verificationToken)
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	user, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password answer identically.
	if user == nil {
		return nil, cerror.ErrorInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.ErrorInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, cerror.NewError(
			fiber.StatusForbidden,
			"email not verified",
		).SetSeverity(zapcore.WarnLevel).SetCode(cerror.CodeEmailNotVerified)
	}

	tokens, err := s.issueSessionTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:   user.ToResponse(),
		Tokens: *tokens,
	}, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil
	}

	user, err := s.userRepository.FindUserWithId(ctx, claims.Subject)
	if err != nil || user == nil {
		return nil
	}

	if user.RefreshToken != refreshToken {
		return nil
	}

	err = s.userRepository.UpdateRefreshToken(ctx, user.Id, "")
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to clear refresh token on logout",
			zap.String("userId", user.Id),
		)
	}

	return nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error) {
	invalidRefreshToken := cerror.NewError(
		fiber.StatusUnauthorized,
		"invalid or expired refresh token",
	).SetSeverity(zapcore.WarnLevel)

	if refreshToken == "" {
		return nil, invalidRefreshToken
	}

	claims, err := s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, invalidRefreshToken
	}

	user, err := s.userRepository.FindUserWithId(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	// A logged-out or superseded token fails here even before its signed
	// expiry: the presented value must still be the stored one.
	if user == nil || user.RefreshToken != refreshToken {
		return nil, invalidRefreshToken
	}

	return s.issueSessionTokens(ctx, user)
}

func (s *service) GetUserById(ctx context.Context, userId string) (*UserResponse, error) {
	user, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, cerror.ErrorUserNotFound
	}

	return user.ToResponse(), nil
}

func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepository.FindUserWithEmail(ctx, email)
	if err != nil {
		return err
	}

	if user == nil {
		return cerror.ErrorUserNotFound
	}

	resetTokenExpiresAt := time.Now().UTC().Add(PasswordResetTokenTTL)
	resetToken, err := s.jwtGenerator.GeneratePasswordResetToken(resetTokenExpiresAt, user.Email, user.Id)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate password reset token",
			zap.Error(err),
		)
	}

	err = s.userRepository.UpdateResetToken(ctx, user.Id, resetToken)
	if err != nil {
		return err
	}

	return s.mailer.SendPasswordResetEmail(ctx, user.Email, resetToken)
}

func (s *service) ResetPassword(ctx context.Context, resetToken, password string) error {
	invalidResetLink := cerror.NewError(
		fiber.StatusBadRequest,
		"invalid or expired reset link",
	).SetSeverity(zapcore.WarnLevel)

	claims, err := s.jwtGenerator.VerifyPasswordResetToken(resetToken)
	if err != nil {
		return invalidResetLink
	}

	user, err := s.userRepository.FindUserWithId(ctx, claims.Subject)
	if err != nil {
		return err
	}

	if user == nil {
		return invalidResetLink
	}

	if user.ResetToken != resetToken {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"reset link is no longer valid",
		).SetSeverity(zapcore.WarnLevel)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	// Clears the stored refresh token too, so sessions opened with the old
	// password die with it.
	return s.userRepository.UpdatePassword(ctx, user.Id, string(hashedPassword))
}

func (s *service) issueSessionTokens(ctx context.Context, user *UserDocument) (*jwt_generator.Tokens, error) {
	accessTokenExpiresAt := time.Now().UTC().Add(AccessTokenTTL)
	accessToken, err := s.jwtGenerator.GenerateAccessToken(
		accessTokenExpiresAt,
		user.Email,
		user.Role,
		user.Id,
	)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	refreshTokenExpiresAt := time.Now().UTC().Add(RefreshTokenTTL)
	refreshToken, err := s.jwtGenerator.GenerateRefreshToken(refreshTokenExpiresAt, user.Id)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate refresh token",
			zap.Error(err),
		)
	}

	err = s.userRepository.UpdateRefreshToken(ctx, user.Id, refreshToken)
	if err != nil {
		return nil, err
	}

	return &jwt_generator.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
