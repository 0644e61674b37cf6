package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mortgage-api/pkg/logger"
)

// Middleware is the fiber error handler. It logs custom errors at their
// declared severity and translates them to the response contract
// {"error": <message>, "code": <machine-readable tag, optional>}.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	isCerror := errors.As(err, &cerr)
	if !isCerror {
		cerr = &CustomError{
			HttpStatusCode: fiber.StatusInternalServerError,
			LogMessage:     "internal server error",
			LogSeverity:    zap.ErrorLevel,
			LogFields: []zap.Field{
				zap.Error(err),
			},
		}
	}

	sugaredLogger := logger.FromContext(ctx.Context())
	log := sugaredLogger.Desugar()
	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(cerr)
}
