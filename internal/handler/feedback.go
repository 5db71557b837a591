package handler

import (
	"studygeni/internal/dto"
	"studygeni/internal/logger"
	"studygeni/internal/service"
	"studygeni/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FeedbackHandler handles feedback HTTP requests
type FeedbackHandler struct {
	service   service.FeedbackService
	validator *validation.Validator
}

// NewFeedbackHandler creates a new FeedbackHandler instance
func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// SendFeedback godoc
// @Summary Send feedback
// @Description Dispatches a feedback form by email
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback Request"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /send-feedback [post]
func (h *FeedbackHandler) SendFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateFeedbackRequest(&req); len(errs) > 0 {
		return errs
	}

	response, err := h.service.SendFeedback(&req)
	if err != nil {
		logger.Get().Error("Failed to send feedback", zap.Error(err))
		return err
	}

	return c.JSON(response)
}
