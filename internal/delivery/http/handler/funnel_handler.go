package handler

import (
	"errors"

	"mutual-book/internal/delivery/http/dto"
	"mutual-book/internal/delivery/http/middleware"
	"mutual-book/internal/domain/funnel"
	"mutual-book/internal/pkg/response"
	"mutual-book/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FunnelHandler struct {
	uc usecase.FunnelUsecase
}

func NewFunnelHandler(uc usecase.FunnelUsecase) *FunnelHandler {
	return &FunnelHandler{uc: uc}
}

func (h *FunnelHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/onboarding", h.SubmitOnboarding)
	r.Post("/resend-email", h.ResendEmail)
	r.Post("/complete-profile", h.CompleteProfile)
}

func (h *FunnelHandler) SubmitOnboarding(c fiber.Ctx) error {
	var req dto.OnboardingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if _, err := h.uc.SubmitOnboarding(c.Context(), req.ToInput()); err != nil {
		return mapFunnelError(err)
	}

	return response.Success(c, "Email sent successfully!")
}

func (h *FunnelHandler) ResendEmail(c fiber.Ctx) error {
	var req dto.ResendEmailRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ResendEmail(c.Context(), req.Email); err != nil {
		return mapFunnelError(err)
	}

	return response.Success(c, "Email resent successfully!")
}

func (h *FunnelHandler) CompleteProfile(c fiber.Ctx) error {
	var req dto.CompleteProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prof, err := h.uc.CompleteProfile(c.Context(), req.ToInput())
	if err != nil {
		return mapFunnelError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.CompleteProfileResponse{Success: true, Profile: prof})
}

func mapFunnelError(err error) error {
	var vErr *funnel.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationError, vErr.Fields, err)
	}
	if errors.Is(err, funnel.ErrEntryNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Entry not found for this email", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
