package dto

// StudyMaterialRequest represents the request body for POST /api/generate
// @Description Request body for generating study materials
type StudyMaterialRequest struct {
	InputMethod     string `json:"input_method"`
	Content         string `json:"content,omitempty"`
	Topic           string `json:"topic,omitempty"`
	Purpose         string `json:"purpose"`
	DifficultyLevel string `json:"difficulty_level"`
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`
}

// FlashcardResponse represents a flashcard in the API response
type FlashcardResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizOptionResponse represents one option of a quiz question
type QuizOptionResponse struct {
	Option    string `json:"option"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizQuestionResponse represents a multiple-choice question in the API response
type QuizQuestionResponse struct {
	Question    string               `json:"question"`
	Options     []QuizOptionResponse `json:"options"`
	Explanation string               `json:"explanation"`
}

// StudyMaterialResponse represents the generated study materials
// @Description Generated summary, flashcards and quiz
type StudyMaterialResponse struct {
	Summary    string                 `json:"summary"`
	Flashcards []FlashcardResponse    `json:"flashcards"`
	Quiz       []QuizQuestionResponse `json:"quiz"`
}
