package domain

import "context"

// InputMethod is the source-of-content discriminator for generation requests.
type InputMethod string

const (
	InputMethodText  InputMethod = "text"
	InputMethodTopic InputMethod = "topic"
	InputMethodFile  InputMethod = "file"
)

func (m InputMethod) IsValid() bool {
	switch m {
	case InputMethodText, InputMethodTopic, InputMethodFile:
		return true
	}
	return false
}

// StudyPurpose influences the tone and focus of the generated material.
type StudyPurpose string

const (
	PurposeRevision     StudyPurpose = "revision"
	PurposeDeepLearning StudyPurpose = "deep-learning"
	PurposeExamPrep     StudyPurpose = "exam-prep"
)

func (p StudyPurpose) IsValid() bool {
	switch p {
	case PurposeRevision, PurposeDeepLearning, PurposeExamPrep:
		return true
	}
	return false
}

// DifficultyLevel sets the target audience level of the generated material.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Flashcard is a single question/answer pair parsed from model output.
type Flashcard struct {
	Question string
	Answer   string
}

// QuizOption is one choice of a multiple-choice question.
type QuizOption struct {
	Option    string
	IsCorrect bool
}

// QuizQuestion is a multiple-choice question parsed from model output.
// The parser does not enforce that exactly one option is correct.
type QuizQuestion struct {
	Question    string
	Options     []QuizOption
	Explanation string
}

// StudyMaterial is the assembled result of one generation request.
// It lives for the duration of the request and is not persisted.
type StudyMaterial struct {
	Summary    string
	Flashcards []Flashcard
	Quiz       []QuizQuestion
}

// TextGenerator is the port for the external generative-language model.
type TextGenerator interface {
	// GenerateText sends a single prompt and returns the model's raw text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Mailer is the port for the outbound notification channel.
type Mailer interface {
	Send(subject, htmlBody, textBody string) error
}
