//go:build unit

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/config"
	"mortgage-api/pkg/jwt_generator"
	"mortgage-api/pkg/mailer"
)

const (
	TestUserId    = "abcd-abcd-abcd-abcd-abcd"
	TestFirstName = "Jane"
	TestLastName  = "Doe"
	TestEmail     = "test@test.com"
	TestPassword  = "Password1!"
)

func setupJwtGenerator(t *testing.T) jwt_generator.JwtGenerator {
	t.Helper()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(&config.JwtConfig{
		AccessSecret:        []byte("access-secret"),
		RefreshSecret:       []byte("refresh-secret"),
		EmailVerifySecret:   []byte("email-verify-secret"),
		PasswordResetSecret: []byte("password-reset-secret"),
	})
	require.NoError(t, err)

	return jwtGenerator
}

func hashTestPassword(t *testing.T) string {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hashedPassword)
}

func TestNewService(t *testing.T) {
	userService := NewService(nil, nil, nil)

	assert.Implements(t, (*Service)(nil), userService)
}

func TestService_Signup(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockMailer := mailer.NewMockMailer(mockController)

		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *UserDocument) (string, error) {
				assert.Equal(t, RoleCustomer, user.Role)
				assert.False(t, user.EmailVerified)
				assert.NotEqual(t, TestPassword, user.Password)
				return TestUserId, nil
			})

		var storedVerificationToken string
		mockUserRepository.
			EXPECT().
			UpdateVerificationToken(ctx, TestUserId, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, verificationToken string) error {
				storedVerificationToken = verificationToken
				return nil
			})

		mockMailer.
			EXPECT().
			SendVerificationEmail(ctx, TestEmail, gomock.Any()).
			Return(nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), mockMailer)
		err := userService.Signup(ctx, &SignupPayload{
			FirstName: TestFirstName,
			LastName:  TestLastName,
			Email:     TestEmail,
			Password:  TestPassword,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, storedVerificationToken)
	})

	t.Run("when email delivery fails signup should still succeed", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockMailer := mailer.NewMockMailer(mockController)

		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			Return(TestUserId, nil)

		mockUserRepository.
			EXPECT().
			UpdateVerificationToken(ctx, TestUserId, gomock.Any()).
			Return(nil)

		mockMailer.
			EXPECT().
			SendVerificationEmail(ctx, TestEmail, gomock.Any()).
			Return(errors.New("queue unavailable"))

		userService := NewService(mockUserRepository, setupJwtGenerator(t), mockMailer)
		err := userService.Signup(ctx, &SignupPayload{
			FirstName: TestFirstName,
			LastName:  TestLastName,
			Email:     TestEmail,
			Password:  TestPassword,
		})

		assert.NoError(t, err)
	})

	t.Run("when error occurred while insert user should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			Return(
				"",
				errors.New("something went wrong"),
			)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)
		err := userService.Signup(ctx, &SignupPayload{
			FirstName: TestFirstName,
			LastName:  TestLastName,
			Email:     TestEmail,
			Password:  TestPassword,
		})

		assert.Error(t, err)
	})

	t.Run("when error occurred while generate verification token should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockJwtGenerator := jwt_generator.NewMockJwtGenerator(mockController)

		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			Return(TestUserId, nil)

		mockJwtGenerator.
			EXPECT().
			GenerateEmailVerificationToken(gomock.Any(), TestEmail, TestUserId).
			Return("", errors.New("something went wrong"))

		userService := NewService(mockUserRepository, mockJwtGenerator, nil)
		err := userService.Signup(ctx, &SignupPayload{
			FirstName: TestFirstName,
			LastName:  TestLastName,
			Email:     TestEmail,
			Password:  TestPassword,
		})

		assert.Error(t, err)
	})
}

func TestService_VerifyEmail(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := setupJwtGenerator(t)
	verificationToken, err := jwtGenerator.GenerateEmailVerificationToken(
		time.Now().UTC().Add(EmailVerificationTokenTTL),
		TestEmail,
		TestUserId,
	)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:                TestUserId,
				Email:             TestEmail,
				EmailVerified:     false,
				VerificationToken: verificationToken,
			}, nil)

		mockUserRepository.
			EXPECT().
			MarkEmailVerified(ctx, TestUserId).
			Return(nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		alreadyVerified, err := userService.VerifyEmail(ctx, verificationToken)

		assert.NoError(t, err)
		assert.False(t, alreadyVerified)
	})

	t.Run("when token is garbage should return bad request", func(t *testing.T) {
		ctx := context.Background()

		userService := NewService(nil, jwtGenerator, nil)
		_, err := userService.VerifyEmail(ctx, "not-a-jwt")

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})

	t.Run("when token is expired should return bad request", func(t *testing.T) {
		ctx := context.Background()

		expiredToken, err := jwtGenerator.GenerateEmailVerificationToken(
			time.Now().UTC().Add(-time.Minute),
			TestEmail,
			TestUserId,
		)
		require.NoError(t, err)

		userService := NewService(nil, jwtGenerator, nil)
		_, err = userService.VerifyEmail(ctx, expiredToken)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})

	t.Run("when a newer link was issued the old one should not redeem", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		newerToken, err := jwtGenerator.GenerateEmailVerificationToken(
			time.Now().UTC().Add(EmailVerificationTokenTTL),
			TestEmail,
			TestUserId,
		)
		require.NoError(t, err)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:                TestUserId,
				Email:             TestEmail,
				EmailVerified:     false,
				VerificationToken: newerToken,
			}, nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		_, err = userService.VerifyEmail(ctx, verificationToken)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})

	t.Run("when email is already verified should report it without error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				EmailVerified: true,
			}, nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		alreadyVerified, err := userService.VerifyEmail(ctx, verificationToken)

		assert.NoError(t, err)
		assert.True(t, alreadyVerified)
	})

	t.Run("when user not found should return bad request", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(nil, nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		_, err := userService.VerifyEmail(ctx, verificationToken)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})
}

func TestService_ResendVerification(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockMailer := mailer.NewMockMailer(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				EmailVerified: false,
			}, nil)

		mockUserRepository.
			EXPECT().
			UpdateVerificationToken(ctx, TestUserId, gomock.Any()).
			Return(nil)

		mockMailer.
			EXPECT().
			SendVerificationEmail(ctx, TestEmail, gomock.Any()).
			Return(nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), mockMailer)
		err := userService.ResendVerification(ctx, TestEmail)

		assert.NoError(t, err)
	})

	t.Run("when user not found should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(nil, nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)
		err := userService.ResendVerification(ctx, TestEmail)

		assert.ErrorIs(t, err, cerror.ErrorUserNotFound)
	})

	t.Run("when email is already verified should return bad request", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				EmailVerified: true,
			}, nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)
		err := userService.ResendVerification(ctx, TestEmail)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})

	t.Run("when email delivery fails should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockMailer := mailer.NewMockMailer(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				EmailVerified: false,
			}, nil)

		mockUserRepository.
			EXPECT().
			UpdateVerificationToken(ctx, TestUserId, gomock.Any()).
			Return(nil)

		mockMailer.
			EXPECT().
			SendVerificationEmail(ctx, TestEmail, gomock.Any()).
			Return(errors.New("queue unavailable"))

		userService := NewService(mockUserRepository, setupJwtGenerator(t), mockMailer)
		err := userService.ResendVerification(ctx, TestEmail)

		assert.Error(t, err)
	})
}

func TestService_Login(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				Password:      hashTestPassword(t),
				Role:          RoleCustomer,
				EmailVerified: true,
			}, nil)

		mockUserRepository.
			EXPECT().
			UpdateRefreshToken(ctx, TestUserId, gomock.Any()).
			Return(nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)
		loginResult, err := userService.Login(ctx, &LoginPayload{
			Email:    TestEmail,
			Password: TestPassword,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, loginResult.Tokens.AccessToken)
		assert.NotEmpty(t, loginResult.Tokens.RefreshToken)
		assert.Equal(t, TestUserId, loginResult.User.Id)
	})

	t.Run("unknown email and wrong password should be indistinguishable", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, "nobody@test.com").
			Return(nil, nil)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				Password:      hashTestPassword(t),
				Role:          RoleCustomer,
				EmailVerified: true,
			}, nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)

		_, unknownEmailErr := userService.Login(ctx, &LoginPayload{
			Email:    "nobody@test.com",
			Password: TestPassword,
		})
		_, wrongPasswordErr := userService.Login(ctx, &LoginPayload{
			Email:    TestEmail,
			Password: "WrongPassword1!",
		})

		assert.ErrorIs(t, unknownEmailErr, cerror.ErrorInvalidCredentials)
		assert.ErrorIs(t, wrongPasswordErr, cerror.ErrorInvalidCredentials)
		assert.Equal(t, unknownEmailErr, wrongPasswordErr)
	})

	t.Run("when email is not verified should return forbidden with code", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				Password:      hashTestPassword(t),
				Role:          RoleCustomer,
				EmailVerified: false,
			}, nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)
		_, err := userService.Login(ctx, &LoginPayload{
			Email:    TestEmail,
			Password: TestPassword,
		})

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 403, cerr.HttpStatusCode)
		assert.Equal(t, cerror.CodeEmailNotVerified, cerr.Code)
	})
}

func TestService_Logout(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := setupJwtGenerator(t)
	refreshToken, err := jwtGenerator.GenerateRefreshToken(
		time.Now().UTC().Add(RefreshTokenTTL),
		TestUserId,
	)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:           TestUserId,
				RefreshToken: refreshToken,
			}, nil)

		mockUserRepository.
			EXPECT().
			UpdateRefreshToken(ctx, TestUserId, "").
			Return(nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		err := userService.Logout(ctx, refreshToken)

		assert.NoError(t, err)
	})

	t.Run("without a cookie logout should still succeed", func(t *testing.T) {
		ctx := context.Background()

		userService := NewService(nil, jwtGenerator, nil)
		err := userService.Logout(ctx, "")

		assert.NoError(t, err)
	})

	t.Run("with a garbage token logout should still succeed", func(t *testing.T) {
		ctx := context.Background()

		userService := NewService(nil, jwtGenerator, nil)
		err := userService.Logout(ctx, "not-a-jwt")

		assert.NoError(t, err)
	})

	t.Run("when stored token differs nothing should be cleared", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:           TestUserId,
				RefreshToken: "another-session-token",
			}, nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		err := userService.Logout(ctx, refreshToken)

		assert.NoError(t, err)
	})
}

func TestService_Refresh(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := setupJwtGenerator(t)
	refreshToken, err := jwtGenerator.GenerateRefreshToken(
		time.Now().UTC().Add(RefreshTokenTTL),
		TestUserId,
	)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				Role:          RoleCustomer,
				EmailVerified: true,
				RefreshToken:  refreshToken,
			}, nil)

		var rotatedRefreshToken string
		mockUserRepository.
			EXPECT().
			UpdateRefreshToken(ctx, TestUserId, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, newRefreshToken string) error {
				rotatedRefreshToken = newRefreshToken
				return nil
			})

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		tokens, err := userService.Refresh(ctx, refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.Equal(t, tokens.RefreshToken, rotatedRefreshToken)
	})

	t.Run("without a cookie should return unauthorized", func(t *testing.T) {
		ctx := context.Background()

		userService := NewService(nil, jwtGenerator, nil)
		_, err := userService.Refresh(ctx, "")

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 401, cerr.HttpStatusCode)
	})

	t.Run("after logout the same token should be rejected", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id: TestUserId,
			}, nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		_, err := userService.Refresh(ctx, refreshToken)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 401, cerr.HttpStatusCode)
	})

	t.Run("an access token should not pass as a refresh token", func(t *testing.T) {
		ctx := context.Background()

		accessToken, err := jwtGenerator.GenerateAccessToken(
			time.Now().UTC().Add(AccessTokenTTL),
			TestEmail,
			RoleCustomer,
			TestUserId,
		)
		require.NoError(t, err)

		userService := NewService(nil, jwtGenerator, nil)
		_, err = userService.Refresh(ctx, accessToken)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 401, cerr.HttpStatusCode)
	})
}

func TestService_GetUserById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:            TestUserId,
				Email:         TestEmail,
				Password:      "hashed-password",
				FirstName:     TestFirstName,
				LastName:      TestLastName,
				Role:          RoleCustomer,
				EmailVerified: true,
			}, nil)

		userService := NewService(mockUserRepository, nil, nil)
		user, err := userService.GetUserById(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Equal(t, TestUserId, user.Id)
		assert.Equal(t, TestEmail, user.Email)
	})

	t.Run("when user not found should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(nil, nil)

		userService := NewService(mockUserRepository, nil, nil)
		_, err := userService.GetUserById(ctx, TestUserId)

		assert.ErrorIs(t, err, cerror.ErrorUserNotFound)
	})
}

func TestService_RequestPasswordReset(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockMailer := mailer.NewMockMailer(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(&UserDocument{
				Id:    TestUserId,
				Email: TestEmail,
			}, nil)

		mockUserRepository.
			EXPECT().
			UpdateResetToken(ctx, TestUserId, gomock.Any()).
			Return(nil)

		mockMailer.
			EXPECT().
			SendPasswordResetEmail(ctx, TestEmail, gomock.Any()).
			Return(nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), mockMailer)
		err := userService.RequestPasswordReset(ctx, TestEmail)

		assert.NoError(t, err)
	})

	t.Run("when user not found should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithEmail(ctx, TestEmail).
			Return(nil, nil)

		userService := NewService(mockUserRepository, setupJwtGenerator(t), nil)
		err := userService.RequestPasswordReset(ctx, TestEmail)

		assert.ErrorIs(t, err, cerror.ErrorUserNotFound)
	})
}

func TestService_ResetPassword(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := setupJwtGenerator(t)
	resetToken, err := jwtGenerator.GeneratePasswordResetToken(
		time.Now().UTC().Add(PasswordResetTokenTTL),
		TestEmail,
		TestUserId,
	)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:         TestUserId,
				Email:      TestEmail,
				ResetToken: resetToken,
			}, nil)

		mockUserRepository.
			EXPECT().
			UpdatePassword(ctx, TestUserId, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, hashedPassword string) error {
				assert.NotEqual(t, "NewPassword1!", hashedPassword)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(hashedPassword),
					[]byte("NewPassword1!"),
				))
				return nil
			})

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		err := userService.ResetPassword(ctx, resetToken, "NewPassword1!")

		assert.NoError(t, err)
	})

	t.Run("when token is garbage should return bad request", func(t *testing.T) {
		ctx := context.Background()

		userService := NewService(nil, jwtGenerator, nil)
		err := userService.ResetPassword(ctx, "not-a-jwt", "NewPassword1!")

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})

	t.Run("when a newer link was issued the old one should not redeem", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)

		newerResetToken, err := jwtGenerator.GeneratePasswordResetToken(
			time.Now().UTC().Add(PasswordResetTokenTTL),
			TestEmail,
			TestUserId,
		)
		require.NoError(t, err)

		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&UserDocument{
				Id:         TestUserId,
				Email:      TestEmail,
				ResetToken: newerResetToken,
			}, nil)

		userService := NewService(mockUserRepository, jwtGenerator, nil)
		err = userService.ResetPassword(ctx, resetToken, "NewPassword1!")

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 400, cerr.HttpStatusCode)
	})
}
