package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"studygeni/internal/domain"
	"studygeni/internal/dto"
	"studygeni/internal/handler"
	"studygeni/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFeedbackService
type MockFeedbackService struct {
	SendFeedbackFunc func(req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

func (m *MockFeedbackService) SendFeedback(req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if m.SendFeedbackFunc != nil {
		return m.SendFeedbackFunc(req)
	}
	panic("MockFeedbackService.SendFeedbackFunc not implemented")
}

func newFeedbackTestApp(svc *MockFeedbackService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewFeedbackHandler(svc)
	app.Post("/api/send-feedback", h.SendFeedback)
	return app
}

func TestSendFeedback_Success(t *testing.T) {
	svc := &MockFeedbackService{
		SendFeedbackFunc: func(req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
			assert.Equal(t, "Great app!", req.Feedback)
			return &dto.FeedbackResponse{Success: true, Message: "Feedback sent successfully"}, nil
		},
	}
	app := newFeedbackTestApp(svc)

	resp := postJSON(t, app, "/api/send-feedback", dto.FeedbackRequest{
		Feedback: "Great app!",
		Name:     "Ada",
		Email:    "ada@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[dto.FeedbackResponse](t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "Feedback sent successfully", body.Message)
}

func TestSendFeedback_MissingFeedbackReturns400(t *testing.T) {
	app := newFeedbackTestApp(&MockFeedbackService{})

	resp := postJSON(t, app, "/api/send-feedback", dto.FeedbackRequest{Name: "Ada"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON[middleware.ValidationErrorResponse](t, resp)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "feedback", body.Errors[0].Field)
}

func TestSendFeedback_DeliveryFailureReturns500(t *testing.T) {
	svc := &MockFeedbackService{
		SendFeedbackFunc: func(req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
			return nil, domain.NewEmailDeliveryError(errors.New("dial tcp: connection refused"))
		},
	}
	app := newFeedbackTestApp(svc)

	resp := postJSON(t, app, "/api/send-feedback", dto.FeedbackRequest{Feedback: "Great app!"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeJSON[middleware.ErrorResponse](t, resp)
	assert.Equal(t, string(domain.CodeEmailDelivery), body.Code)
}
