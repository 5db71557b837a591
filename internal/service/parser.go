package service

import (
	"regexp"
	"strings"

	"studygeni/internal/domain"
)

// Best-effort pattern extraction over free-form model output. Parsing is
// lossy: unmatched text is dropped silently, never reported as an error.

var (
	// Primary flashcard format, as requested by the flashcard prompt:
	// **Q: question** **A: answer**
	flashcardPattern = regexp.MustCompile(`(?s)\*\*Q:\s*(.+?)\*\*\s*\*\*A:\s*(.+?)\*\*`)

	// Fallback numbered format: "1. Q: question A: answer". RE2 has no
	// lookahead, so items are split on their numbered headers and each
	// segment is matched separately.
	flashcardItemStart = regexp.MustCompile(`\d+\.\s*Q:`)
	flashcardItemBody  = regexp.MustCompile(`(?s)\s*(.+?)\s*A:\s*(.+)`)

	// One pass over a quiz block: numbered question, options block, then a
	// correct-answer marker naming a letter A-D.
	quizPattern = regexp.MustCompile(`(?s)\d+\.\s*(.+?)\s*(?:Options:|A\.)(.*?)(?:Correct answer|correct option|correct choice):?\s*([A-D])`)

	// Lettered entries inside the options block, split on their headers for
	// the same lookahead reason as above.
	optionStart = regexp.MustCompile(`[A-D]\.`)
)

// parseFlashcards extracts question/answer pairs from model output.
// It returns an empty slice when neither format matches.
func parseFlashcards(text string) []domain.Flashcard {
	var flashcards []domain.Flashcard

	matches := flashcardPattern.FindAllStringSubmatch(text, -1)
	if len(matches) > 0 {
		for _, m := range matches {
			flashcards = append(flashcards, domain.Flashcard{
				Question: strings.TrimSpace(m[1]),
				Answer:   strings.TrimSpace(m[2]),
			})
		}
		return flashcards
	}

	// Alternative numbered-list format
	starts := flashcardItemStart.FindAllStringIndex(text, -1)
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		m := flashcardItemBody.FindStringSubmatch(text[loc[1]:end])
		if m == nil {
			continue
		}
		flashcards = append(flashcards, domain.Flashcard{
			Question: strings.TrimSpace(m[1]),
			Answer:   strings.TrimSpace(m[2]),
		})
	}

	return flashcards
}

// parseQuiz extracts multiple-choice questions from model output. A question
// whose options block or correct-answer marker deviates from the expected
// format is dropped entirely. There is no fallback format for quizzes.
func parseQuiz(text string) []domain.QuizQuestion {
	var questions []domain.QuizQuestion

	for _, m := range quizPattern.FindAllStringSubmatch(text, -1) {
		options := parseOptions(m[2], m[3])
		if len(options) == 0 {
			continue
		}
		questions = append(questions, domain.QuizQuestion{
			Question: strings.TrimSpace(m[1]),
			Options:  options,
		})
	}

	return questions
}

func parseOptions(optionsText, correctLetter string) []domain.QuizOption {
	var options []domain.QuizOption

	starts := optionStart.FindAllStringIndex(optionsText, -1)
	for i, loc := range starts {
		end := len(optionsText)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		raw := optionsText[loc[1]:end]
		if raw == "" {
			continue
		}
		letter := string(optionsText[loc[0]])
		options = append(options, domain.QuizOption{
			Option:    strings.TrimSpace(raw),
			IsCorrect: letter == correctLetter,
		})
	}

	return options
}
