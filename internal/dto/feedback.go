package dto

// FeedbackRequest represents the request body for POST /api/send-feedback
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// FeedbackResponse reports whether the feedback email was dispatched
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
