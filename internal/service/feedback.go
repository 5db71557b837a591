package service

import (
	"fmt"
	"strings"

	"studygeni/internal/domain"
	"studygeni/internal/dto"
	"studygeni/internal/logger"
	"studygeni/internal/util"

	"go.uber.org/zap"
)

// FeedbackService formats user feedback and dispatches it by email
type FeedbackService interface {
	SendFeedback(req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	mailer domain.Mailer
}

// NewFeedbackService creates a new FeedbackService instance
func NewFeedbackService(mailer domain.Mailer) FeedbackService {
	return &feedbackService{mailer: mailer}
}

func (s *feedbackService) SendFeedback(req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Anonymous"
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = "Not provided"
	}

	subject := "StudyGeni Feedback " + util.NewULID()
	htmlBody := buildFeedbackHTMLBody(name, email, req.Feedback)
	textBody := buildFeedbackTextBody(name, email, req.Feedback)

	if err := s.mailer.Send(subject, htmlBody, textBody); err != nil {
		logger.Get().Error("Failed to send feedback email", zap.Error(err))
		return nil, err
	}

	return &dto.FeedbackResponse{
		Success: true,
		Message: "Feedback sent successfully",
	}, nil
}

func buildFeedbackHTMLBody(name, email, feedback string) string {
	return fmt.Sprintf(`<html>
<body>
	<h2>New Feedback from StudyGeni</h2>

	<p><strong>From:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>

	<h3>Feedback:</h3>
	<p>%s</p>

	<hr>
	<p>This email was sent from the StudyGeni feedback system.</p>
</body>
</html>`, name, email, feedback)
}

func buildFeedbackTextBody(name, email, feedback string) string {
	return fmt.Sprintf(`New Feedback from StudyGeni

From: %s
Email: %s

Feedback:
%s

---
This email was sent from the StudyGeni feedback system.`, name, email, feedback)
}
