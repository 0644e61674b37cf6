package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

// CodeEmailNotVerified is the only error code clients are expected to
// branch on; everything else is for humans.
const CodeEmailNotVerified = "EMAIL_NOT_VERIFIED"

var (
	ErrorBadRequest = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserNotFound = &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		LogMessage:     "user not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorApplicationNotFound = &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		LogMessage:     "application not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidCredentials = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		LogMessage:     "invalid email or password",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorGenerateToken = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		LogMessage:     "error occurred while generate token",
		LogSeverity:    zapcore.ErrorLevel,
	}
)
