package service

import (
	"fmt"

	"studygeni/internal/domain"
)

// Prompt builders. Pure string interpolation into fixed instruction templates;
// the downstream parsers depend on the output formats these templates request.

func buildSummaryPrompt(content string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) string {
	return fmt.Sprintf(`Generate a comprehensive summary of the following content.
Keep in mind this is for %s purposes at a %s level.

Content: %s

Please provide a clear, well-structured summary that captures the key concepts and main ideas.
Use appropriate language complexity for a %s level student.
For revision purposes, focus on key points and memory aids.
For deep learning, include more detailed explanations and connections between concepts.
For exam preparation, emphasize key definitions, formulas, and potential test points.`,
		purpose, difficulty, content, difficulty)
}

func buildFlashcardPrompt(content string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) string {
	return fmt.Sprintf(`Create 5-10 flashcards based on the following content.
Keep in mind this is for %s purposes at a %s level.

Content: %s

Format each flashcard as follows:
**Q: [Question]**
**A: [Answer]**

Make sure the questions test understanding at a %s level.
For revision purposes, focus on key facts and important recall information.
For deep learning, focus on conceptual understanding and applications.
For exam preparation, focus on likely exam questions and key test points.`,
		purpose, difficulty, content, difficulty)
}

func buildQuizPrompt(content string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) string {
	return fmt.Sprintf(`Create 5 multiple-choice quiz questions based on the following content.
Keep in mind this is for %s purposes at a %s level.

Content: %s

Format each question as follows:
1. [Question]
Options:
A. [Option 1]
B. [Option 2]
C. [Option 3]
D. [Option 4]
Correct answer: [A/B/C/D]

Make sure the questions are at an appropriate %s level.
For revision purposes, focus on testing recall of key facts.
For deep learning, focus on testing deeper understanding and application.
For exam preparation, mimic the style of exam questions for this subject.`,
		purpose, difficulty, content, difficulty)
}

func buildTopicPrompt(topic string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) string {
	return fmt.Sprintf(`Generate comprehensive study material on the topic: %s.
This should be suitable for %s purposes at a %s level.

Please provide a thorough explanation of the topic including key concepts,
principles, examples, and applications as appropriate for the level.

For a %s level:
- Beginner: Use simple language, basic concepts, and clear explanations
- Intermediate: Include more detailed concepts and some specialized terminology
- Advanced: Cover complex aspects, detailed analysis, and specialized knowledge`,
		topic, purpose, difficulty, difficulty)
}
