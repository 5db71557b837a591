package validation

import (
	"strings"

	"studygeni/internal/domain"
	"studygeni/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStudyMaterialRequest validates the /generate request body.
// The file input method is rejected here: uploads go through their own endpoint.
func (v *Validator) ValidateStudyMaterialRequest(req *dto.StudyMaterialRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	method := domain.InputMethod(req.InputMethod)
	switch {
	case strings.TrimSpace(req.InputMethod) == "":
		errors = append(errors, domain.NewMissingFieldError("input_method"))
	case !method.IsValid():
		errors = append(errors, domain.NewInvalidValueError("input_method", req.InputMethod))
	case method == domain.InputMethodText && strings.TrimSpace(req.Content) == "":
		errors = append(errors, domain.ValidationError{
			Field:   "content",
			Message: "Content is required for text input method",
		})
	case method == domain.InputMethodTopic && strings.TrimSpace(req.Topic) == "":
		errors = append(errors, domain.ValidationError{
			Field:   "topic",
			Message: "Topic is required for topic input method",
		})
	case method == domain.InputMethodFile:
		errors = append(errors, domain.ValidationError{
			Field:   "input_method",
			Message: "File upload not supported in this endpoint",
		})
	}

	errors = append(errors, v.validateStudyParams(req.Purpose, req.DifficultyLevel)...)
	return errors
}

// ValidateUploadForm validates the multipart form fields of /process-file-upload
func (v *Validator) ValidateUploadForm(purpose, difficultyLevel string) domain.ValidationErrors {
	return v.validateStudyParams(purpose, difficultyLevel)
}

// ValidateFeedbackRequest validates the /send-feedback request body
func (v *Validator) ValidateFeedbackRequest(req *dto.FeedbackRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Feedback) == "" {
		errors = append(errors, domain.NewMissingFieldError("feedback"))
	}

	return errors
}

func (v *Validator) validateStudyParams(purpose, difficultyLevel string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(purpose) == "" {
		errors = append(errors, domain.NewMissingFieldError("purpose"))
	} else if !domain.StudyPurpose(purpose).IsValid() {
		errors = append(errors, domain.NewInvalidValueError("purpose", purpose))
	}

	if strings.TrimSpace(difficultyLevel) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty_level"))
	} else if !domain.DifficultyLevel(difficultyLevel).IsValid() {
		errors = append(errors, domain.NewInvalidValueError("difficulty_level", difficultyLevel))
	}

	return errors
}
