package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"studygeni/internal/cache"
	"studygeni/internal/config"
	"studygeni/internal/domain"
	"studygeni/internal/dto"
	"studygeni/internal/logger"

	"go.uber.org/zap"
)

// StudyService defines the core operations for study-material generation
type StudyService interface {
	// GenerateStudyMaterials serves the direct text/topic path. On a
	// quota/rate-limit failure it degrades to a canned mock response
	// instead of surfacing the error.
	GenerateStudyMaterials(ctx context.Context, req *dto.StudyMaterialRequest) (*dto.StudyMaterialResponse, error)

	// GenerateFromExtractedText serves the file-upload path. Quota failures
	// propagate to the caller (HTTP 429); there is no mock fallback here.
	GenerateFromExtractedText(ctx context.Context, text, purpose, difficultyLevel, apiKeyOverride string) (*dto.StudyMaterialResponse, error)
}

// GeneratorFactory builds a TextGenerator bound to a resolved API key.
// A factory (rather than a fixed generator) because requests may carry
// their own key override.
type GeneratorFactory func(ctx context.Context, apiKey string) (domain.TextGenerator, error)

type studyService struct {
	newGenerator GeneratorFactory
	cache        domain.Cache // nil when Redis is disabled
	cfg          *config.Config
}

// NewStudyService creates a new StudyService instance
func NewStudyService(newGenerator GeneratorFactory, materialCache domain.Cache, cfg *config.Config) StudyService {
	return &studyService{
		newGenerator: newGenerator,
		cache:        materialCache,
		cfg:          cfg,
	}
}

func (s *studyService) GenerateStudyMaterials(ctx context.Context, req *dto.StudyMaterialRequest) (*dto.StudyMaterialResponse, error) {
	apiKey := s.resolveAPIKey(req.GeminiAPIKey)
	if apiKey == "" {
		return nil, domain.NewMissingAPIKeyError()
	}

	purpose := domain.StudyPurpose(req.Purpose)
	difficulty := domain.DifficultyLevel(req.DifficultyLevel)

	generator, err := s.newGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	var content string
	switch domain.InputMethod(req.InputMethod) {
	case domain.InputMethodText:
		content = req.Content
	case domain.InputMethodTopic:
		content, err = generator.GenerateText(ctx, buildTopicPrompt(req.Topic, purpose, difficulty))
		if err != nil {
			if domain.IsCode(err, domain.CodeRateLimited) {
				logger.Get().Warn("Topic expansion rate limited, using mock data", zap.Error(err))
				return mockStudyMaterials(mockContentTopic(req), purpose, difficulty), nil
			}
			return nil, err
		}
	default:
		return nil, domain.NewInvalidInputError("File upload not supported in this endpoint")
	}

	response, err := s.generate(ctx, generator, content, purpose, difficulty)
	if err != nil {
		if domain.IsCode(err, domain.CodeRateLimited) {
			logger.Get().Warn("Generation rate limited, using mock data", zap.Error(err))
			return mockStudyMaterials(mockContentTopic(req), purpose, difficulty), nil
		}
		return nil, err
	}
	return response, nil
}

func (s *studyService) GenerateFromExtractedText(ctx context.Context, text, purpose, difficultyLevel, apiKeyOverride string) (*dto.StudyMaterialResponse, error) {
	apiKey := s.resolveAPIKey(apiKeyOverride)
	if apiKey == "" {
		return nil, domain.NewMissingAPIKeyError()
	}

	generator, err := s.newGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	return s.generate(ctx, generator, text, domain.StudyPurpose(purpose), domain.DifficultyLevel(difficultyLevel))
}

// generate runs the three sequential model calls and assembles the response.
// Each call carries its own retry budget; the first failure aborts the rest.
func (s *studyService) generate(ctx context.Context, generator domain.TextGenerator, content string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) (*dto.StudyMaterialResponse, error) {
	cacheKey := materialCacheKey(content, purpose, difficulty)
	if cached := s.lookupCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	summary, err := generator.GenerateText(ctx, buildSummaryPrompt(content, purpose, difficulty))
	if err != nil {
		return nil, err
	}

	flashcardText, err := generator.GenerateText(ctx, buildFlashcardPrompt(content, purpose, difficulty))
	if err != nil {
		return nil, err
	}

	quizText, err := generator.GenerateText(ctx, buildQuizPrompt(content, purpose, difficulty))
	if err != nil {
		return nil, err
	}

	response := assembleResponse(summary, parseFlashcards(flashcardText), parseQuiz(quizText))
	s.storeCache(ctx, cacheKey, response)
	return response, nil
}

func (s *studyService) resolveAPIKey(override string) string {
	if override != "" {
		return override
	}
	return s.cfg.Gemini.APIKey
}

// materialCacheKey hashes the full content so a cache entry can never leak
// across different inputs or study parameters.
func materialCacheKey(content string, purpose domain.StudyPurpose, difficulty domain.DifficultyLevel) string {
	digest := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s", content, purpose, difficulty))
	return cache.GenerateCacheKey("study", "material", hex.EncodeToString(digest[:]))
}

func (s *studyService) lookupCache(ctx context.Context, key string) *dto.StudyMaterialResponse {
	if s.cache == nil {
		return nil
	}

	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Material cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var response dto.StudyMaterialResponse
	if err := json.Unmarshal([]byte(val), &response); err != nil {
		logger.Get().Warn("Failed to unmarshal cached material", zap.String("key", key), zap.Error(err))
		return nil
	}

	logger.Get().Debug("Material cache hit", zap.String("key", key))
	return &response
}

func (s *studyService) storeCache(ctx context.Context, key string, response *dto.StudyMaterialResponse) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(response)
	if err != nil {
		logger.Get().Warn("Failed to marshal material for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cfg.Cache.MaterialTTL); err != nil {
		logger.Get().Warn("Failed to store material in cache", zap.String("key", key), zap.Error(err))
	}
}

func assembleResponse(summary string, flashcards []domain.Flashcard, quiz []domain.QuizQuestion) *dto.StudyMaterialResponse {
	flashcardResponses := make([]dto.FlashcardResponse, 0, len(flashcards))
	for _, f := range flashcards {
		flashcardResponses = append(flashcardResponses, dto.FlashcardResponse{
			Question: f.Question,
			Answer:   f.Answer,
		})
	}

	quizResponses := make([]dto.QuizQuestionResponse, 0, len(quiz))
	for _, q := range quiz {
		options := make([]dto.QuizOptionResponse, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, dto.QuizOptionResponse{
				Option:    o.Option,
				IsCorrect: o.IsCorrect,
			})
		}
		quizResponses = append(quizResponses, dto.QuizQuestionResponse{
			Question:    q.Question,
			Options:     options,
			Explanation: q.Explanation,
		})
	}

	return &dto.StudyMaterialResponse{
		Summary:    summary,
		Flashcards: flashcardResponses,
		Quiz:       quizResponses,
	}
}
