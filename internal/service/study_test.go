package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"studygeni/internal/config"
	"studygeni/internal/domain"
	"studygeni/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockTextGenerator
type MockTextGenerator struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)
	Invocations      int
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.Invocations++
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}
	panic("MockTextGenerator.GenerateTextFunc not implemented")
}

// MemoryCache is an in-memory domain.Cache for tests
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.entries[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return val, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) Ping(ctx context.Context) error { return nil }

// FailingCache always errors, to verify generation still proceeds
type FailingCache struct{}

func (c *FailingCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("redis: connection refused")
}
func (c *FailingCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return errors.New("redis: connection refused")
}
func (c *FailingCache) Delete(ctx context.Context, key string) error {
	return errors.New("redis: connection refused")
}
func (c *FailingCache) Ping(ctx context.Context) error { return errors.New("redis: connection refused") }

// --- Helpers ---

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{APIKey: "configured-key", Model: "gemini-1.5-pro"},
		Cache:  config.CacheConfig{MaterialTTL: time.Hour},
	}
}

// scriptedGenerator answers each prompt kind with canned parsable output
func scriptedGenerator() *MockTextGenerator {
	return &MockTextGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			switch {
			case strings.HasPrefix(prompt, "Generate a comprehensive summary"):
				return "A summary of the material.", nil
			case strings.HasPrefix(prompt, "Create 5-10 flashcards"):
				return "**Q: What is it? **\n**A: A thing. **", nil
			case strings.HasPrefix(prompt, "Create 5 multiple-choice"):
				return "1. Pick one?\nOptions:\nA. first\nB. second\nC. third\nD. fourth\nCorrect answer: C\n", nil
			case strings.HasPrefix(prompt, "Generate comprehensive study material"):
				return "Expanded topic material.", nil
			}
			return "", errors.New("unexpected prompt")
		},
	}
}

func factoryFor(gen domain.TextGenerator) GeneratorFactory {
	return func(ctx context.Context, apiKey string) (domain.TextGenerator, error) {
		return gen, nil
	}
}

func textRequest() *dto.StudyMaterialRequest {
	return &dto.StudyMaterialRequest{
		InputMethod:     "text",
		Content:         "The mitochondria is the powerhouse of the cell.",
		Purpose:         "revision",
		DifficultyLevel: "beginner",
	}
}

// --- Tests ---

func TestGenerateStudyMaterials_TextMethod(t *testing.T) {
	gen := scriptedGenerator()
	svc := NewStudyService(factoryFor(gen), nil, testConfig())

	resp, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)

	assert.Equal(t, "A summary of the material.", resp.Summary)
	require.Len(t, resp.Flashcards, 1)
	assert.Equal(t, "What is it?", resp.Flashcards[0].Question)
	assert.Equal(t, "A thing.", resp.Flashcards[0].Answer)
	require.Len(t, resp.Quiz, 1)
	require.Len(t, resp.Quiz[0].Options, 4)
	assert.True(t, resp.Quiz[0].Options[2].IsCorrect)

	// summary + flashcards + quiz, no topic expansion
	assert.Equal(t, 3, gen.Invocations)
}

func TestGenerateStudyMaterials_TopicMethod(t *testing.T) {
	gen := scriptedGenerator()
	svc := NewStudyService(factoryFor(gen), nil, testConfig())

	resp, err := svc.GenerateStudyMaterials(context.Background(), &dto.StudyMaterialRequest{
		InputMethod:     "topic",
		Topic:           "photosynthesis",
		Purpose:         "deep-learning",
		DifficultyLevel: "intermediate",
	})
	require.NoError(t, err)
	assert.Equal(t, "A summary of the material.", resp.Summary)

	// topic expansion + summary + flashcards + quiz
	assert.Equal(t, 4, gen.Invocations)
}

func TestGenerateStudyMaterials_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Gemini.APIKey = ""
	svc := NewStudyService(factoryFor(scriptedGenerator()), nil, cfg)

	_, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeMissingAPIKey))
}

func TestGenerateStudyMaterials_RequestKeyOverridesConfig(t *testing.T) {
	var seenKey string
	factory := func(ctx context.Context, apiKey string) (domain.TextGenerator, error) {
		seenKey = apiKey
		return scriptedGenerator(), nil
	}
	svc := NewStudyService(factory, nil, testConfig())

	req := textRequest()
	req.GeminiAPIKey = "override-key"
	_, err := svc.GenerateStudyMaterials(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "override-key", seenKey)
}

func TestGenerateStudyMaterials_RateLimitedFallsBackToMock(t *testing.T) {
	gen := &MockTextGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", domain.NewRateLimitedError(errors.New("quota exceeded"))
		},
	}
	svc := NewStudyService(factoryFor(gen), nil, testConfig())

	resp, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)

	// Mock summary embeds the first ten words of the content, truncated
	assert.Contains(t, resp.Summary, "This is a summary about The mitochondria is the powerh...")
	assert.Len(t, resp.Flashcards, 5)
	assert.Len(t, resp.Quiz, 5)
	for _, q := range resp.Quiz {
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		assert.Equal(t, 1, correct)
	}
}

func TestGenerateStudyMaterials_AuthErrorPropagates(t *testing.T) {
	gen := &MockTextGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", domain.NewUnauthorizedError(errors.New("API key not valid"))
		},
	}
	svc := NewStudyService(factoryFor(gen), nil, testConfig())

	_, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeUnauthorized))
}

func TestGenerateFromExtractedText_RateLimitedPropagates(t *testing.T) {
	gen := &MockTextGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", domain.NewRateLimitedError(errors.New("quota exceeded"))
		},
	}
	svc := NewStudyService(factoryFor(gen), nil, testConfig())

	// Upload path surfaces the rate limit instead of substituting mock data
	_, err := svc.GenerateFromExtractedText(context.Background(), "extracted text", "revision", "beginner", "")
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeRateLimited))
}

func TestGenerate_CacheHitBypassesGenerator(t *testing.T) {
	gen := scriptedGenerator()
	memCache := NewMemoryCache()
	svc := NewStudyService(factoryFor(gen), memCache, testConfig())

	first, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, gen.Invocations)

	second, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, gen.Invocations, "cache hit must not invoke the generator")
	assert.Equal(t, first, second)
}

func TestGenerate_CacheKeyVariesWithParams(t *testing.T) {
	gen := scriptedGenerator()
	memCache := NewMemoryCache()
	svc := NewStudyService(factoryFor(gen), memCache, testConfig())

	_, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)

	req := textRequest()
	req.DifficultyLevel = "advanced"
	_, err = svc.GenerateStudyMaterials(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 6, gen.Invocations, "different difficulty must miss the cache")
}

func TestGenerate_CacheFailureDegradesToGeneration(t *testing.T) {
	gen := scriptedGenerator()
	svc := NewStudyService(factoryFor(gen), &FailingCache{}, testConfig())

	resp, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)
	assert.Equal(t, "A summary of the material.", resp.Summary)
	assert.Equal(t, 3, gen.Invocations)
}

func TestGenerate_RateLimitedMockIsNotCached(t *testing.T) {
	gen := &MockTextGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", domain.NewRateLimitedError(errors.New("quota exceeded"))
		},
	}
	memCache := NewMemoryCache()
	svc := NewStudyService(factoryFor(gen), memCache, testConfig())

	_, err := svc.GenerateStudyMaterials(context.Background(), textRequest())
	require.NoError(t, err)
	assert.Empty(t, memCache.entries)
}

func TestMockContentTopic(t *testing.T) {
	t.Run("TextSnippet", func(t *testing.T) {
		req := textRequest()
		assert.Equal(t, "The mitochondria is the powerh...", mockContentTopic(req))
	})

	t.Run("ShortText", func(t *testing.T) {
		req := &dto.StudyMaterialRequest{InputMethod: "text", Content: "short notes"}
		assert.Equal(t, "short notes...", mockContentTopic(req))
	})

	t.Run("Topic", func(t *testing.T) {
		req := &dto.StudyMaterialRequest{InputMethod: "topic", Topic: "photosynthesis"}
		assert.Equal(t, "photosynthesis", mockContentTopic(req))
	})

	t.Run("Default", func(t *testing.T) {
		req := &dto.StudyMaterialRequest{InputMethod: "text"}
		assert.Equal(t, "study materials", mockContentTopic(req))
	})
}
