package response

import (
	"github.com/gofiber/fiber/v3"

	"mutual-book/internal/domain/funnel"
)

const (
	MessageValidationError     = "Validation error"
	MessageNotFound            = "not found"
	MessageBadRequest          = "bad request"
	MessageInternalServerError = "Internal server error"
)

// SuccessResponse is the acknowledgement envelope for the funnel
// endpoints: {success:true, message}.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the failure envelope: {message, errors?}. The errors
// list is present only for validation failures.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []funnel.FieldError `json:"errors,omitempty"`
}

func Success(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true, Message: message})
}

func Error(c fiber.Ctx, status int, message string, fields []funnel.FieldError) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(ErrorResponse{Message: normalizeMessage(message, st), Errors: fields})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		return MessageInternalServerError
	}
}
