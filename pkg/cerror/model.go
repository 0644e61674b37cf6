package cerror

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	error          `json:"-"`
	HttpStatusCode int             `json:"-"`
	Code           string          `json:"code,omitempty"`
	LogMessage     string          `json:"error"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func NewError(httpStatusCode int, logMessage string, logFields ...zap.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) Error() string {
	return cerr.LogMessage
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cloned := *cerr
	cloned.LogSeverity = severity
	return &cloned
}

func (cerr *CustomError) SetCode(code string) *CustomError {
	cloned := *cerr
	cloned.Code = code
	return &cloned
}
