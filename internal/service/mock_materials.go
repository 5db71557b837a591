package service

import (
	"fmt"
	"strings"
	"unicode"

	"studygeni/internal/domain"
	"studygeni/internal/dto"
)

// Deterministic canned study materials, substituted when the external model
// reports exhausted quota on the direct generation path.

// mockContentTopic derives a short topic label from the request: the topic
// itself, or the first ten words of the content truncated to 30 characters.
func mockContentTopic(req *dto.StudyMaterialRequest) string {
	switch domain.InputMethod(req.InputMethod) {
	case domain.InputMethodText:
		if req.Content != "" {
			words := strings.Fields(req.Content)
			if len(words) > 10 {
				words = words[:10]
			}
			snippet := []rune(strings.Join(words, " "))
			if len(snippet) > 30 {
				snippet = snippet[:30]
			}
			return string(snippet) + "..."
		}
	case domain.InputMethodTopic:
		if req.Topic != "" {
			return req.Topic
		}
	}
	return "study materials"
}

func mockStudyMaterials(contentTopic string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) *dto.StudyMaterialResponse {
	summary := fmt.Sprintf("This is a summary about %s. It is designed for %s at a %s level.\n\n", contentTopic, purpose, difficulty)
	summary += "The study material covers the key concepts and important aspects of the topic. "
	summary += "It includes definitions, examples, and applications that are relevant to the subject matter. "
	summary += "The content is organized in a logical sequence, starting with fundamental concepts and building towards more complex ideas."

	flashcards := []dto.FlashcardResponse{
		{Question: fmt.Sprintf("What is %s?", contentTopic), Answer: fmt.Sprintf("%s is a subject that covers important concepts in this field.", capitalize(contentTopic))},
		{Question: fmt.Sprintf("Why is %s important?", contentTopic), Answer: "It's important because it forms the foundation of understanding in this area of study."},
		{Question: fmt.Sprintf("Name a key concept in %s.", contentTopic), Answer: "One key concept is the relationship between theory and application in real-world scenarios."},
		{Question: "What are the main components to consider?", Answer: "The main components include theoretical frameworks, practical applications, and analytical methods."},
		{Question: "How can you apply this knowledge?", Answer: "This knowledge can be applied through case studies, problem-solving exercises, and real-world projects."},
	}

	quiz := []dto.QuizQuestionResponse{
		{
			Question: fmt.Sprintf("What best describes %s?", contentTopic),
			Options: []dto.QuizOptionResponse{
				{Option: fmt.Sprintf("A systematic approach to understanding %s", contentTopic), IsCorrect: true},
				{Option: "An abstract concept with no practical applications", IsCorrect: false},
				{Option: "A historical perspective only", IsCorrect: false},
				{Option: "A mathematical formula", IsCorrect: false},
			},
			Explanation: fmt.Sprintf("The correct answer provides a comprehensive view of what %s encompasses.", contentTopic),
		},
		{
			Question: fmt.Sprintf("Which of the following is NOT a key aspect of %s?", contentTopic),
			Options: []dto.QuizOptionResponse{
				{Option: "Theoretical foundation", IsCorrect: false},
				{Option: "Practical application", IsCorrect: false},
				{Option: "Unrelated concepts from other fields", IsCorrect: true},
				{Option: "Critical analysis", IsCorrect: false},
			},
			Explanation: "While the subject integrates knowledge from various fields, unrelated concepts are not considered key aspects.",
		},
		{
			Question: "What approach is most effective when studying this subject?",
			Options: []dto.QuizOptionResponse{
				{Option: "Memorization only", IsCorrect: false},
				{Option: "Practical application combined with theoretical understanding", IsCorrect: true},
				{Option: "Ignoring the fundamentals", IsCorrect: false},
				{Option: "Studying unrelated materials", IsCorrect: false},
			},
			Explanation: "A balanced approach that combines theory with practice leads to better comprehension and retention.",
		},
		{
			Question: "Which statement is true about this topic?",
			Options: []dto.QuizOptionResponse{
				{Option: "It has no real-world applications", IsCorrect: false},
				{Option: "It's only relevant in academic settings", IsCorrect: false},
				{Option: "It's an interdisciplinary field with broad applications", IsCorrect: true},
				{Option: "It's too complex for practical use", IsCorrect: false},
			},
			Explanation: "The interdisciplinary nature of the topic makes it applicable across various fields and settings.",
		},
		{
			Question: "What is a common misconception about this subject?",
			Options: []dto.QuizOptionResponse{
				{Option: "It's only theoretical with no practical value", IsCorrect: true},
				{Option: "It requires extensive study to understand basics", IsCorrect: false},
				{Option: "It's a fundamental concept in education", IsCorrect: false},
				{Option: "It's constantly evolving with new research", IsCorrect: false},
			},
			Explanation: "The most common misconception is that theoretical knowledge doesn't translate to practical skills, which is false.",
		},
	}

	return &dto.StudyMaterialResponse{
		Summary:    summary,
		Flashcards: flashcards,
		Quiz:       quiz,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
