package middleware

import (
	"errors"
	"log"

	"mutual-book/internal/domain/funnel"
	"mutual-book/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Fields     []funnel.FieldError
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, fields []funnel.FieldError, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Fields: fields, Cause: cause}
}

// ErrorMiddleware turns handler errors into the JSON error envelope.
// Anything that maps to a 5xx is logged with its cause and rendered
// opaque; validation detail passes through untouched.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, fields := m.normalize(c, err)
		return response.Error(c, status, msg, fields)
	}
}

func (m *ErrorMiddleware) normalize(c fiber.Ctx, err error) (int, string, []funnel.FieldError) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("internal error | method=%s path=%s error=%v", c.Method(), c.Path(), appErr)
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		return status, appErr.Message, appErr.Fields
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status > 0 && status < 500 {
			return status, fiberErr.Message, nil
		}
	}

	m.logger.Printf("internal error | method=%s path=%s error=%v", c.Method(), c.Path(), err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
