package llm

import (
	"context"
	"strings"
	"time"

	"studygeni/internal/config"
	"studygeni/internal/domain"
	"studygeni/internal/logger"

	"github.com/avast/retry-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiGenerator implements domain.TextGenerator against the Gemini API
// through langchaingo. Each call is retried with exponential backoff; only
// transient failures (rate limits, 5xx, network) are retried, permanent ones
// (bad credentials, invalid requests) abort immediately.
type GeminiGenerator struct {
	call         func(ctx context.Context, prompt string) (string, error)
	maxAttempts  uint
	initialDelay time.Duration
	logger       *zap.Logger
}

// NewGeminiGenerator creates a generator bound to the given API key.
// The key may come from configuration or from a per-request override.
func NewGeminiGenerator(ctx context.Context, apiKey string, geminiCfg config.GeminiConfig, retryCfg config.RetryConfig) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, domain.NewMissingAPIKeyError()
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(geminiCfg.Model),
	)
	if err != nil {
		return nil, classifyGenerationError(err)
	}

	temperature := geminiCfg.Temperature
	return &GeminiGenerator{
		call: func(ctx context.Context, prompt string) (string, error) {
			return llms.GenerateFromSinglePrompt(ctx, client, prompt, llms.WithTemperature(temperature))
		},
		maxAttempts:  retryCfg.MaxAttempts,
		initialDelay: retryCfg.InitialDelay,
		logger:       logger.Get(),
	}, nil
}

// GenerateText implements domain.TextGenerator
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	var result string
	err := retry.Do(
		func() error {
			response, err := g.call(ctx, prompt)
			if err != nil {
				classified := classifyGenerationError(err)
				if !isRetryable(classified) {
					return retry.Unrecoverable(classified)
				}
				return classified
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.maxAttempts),
		retry.Delay(g.initialDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			g.logger.Warn("Gemini call failed, retrying",
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return "", err
	}
	return result, nil
}

// classifyGenerationError maps raw Gemini/transport failures onto the domain
// error taxonomy. Matching is on the error text, same order as the upstream
// API's documented failure strings: quota first, then credentials.
func classifyGenerationError(err error) *domain.DomainError {
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "rate limit"),
		strings.Contains(errStr, "quota"),
		strings.Contains(errStr, "resource exhausted"),
		strings.Contains(errStr, "resource_exhausted"),
		strings.Contains(errStr, "resourceexhausted"),
		strings.Contains(errStr, "429"):
		return domain.NewRateLimitedError(err)
	case strings.Contains(errStr, "api key"),
		strings.Contains(errStr, "credential"),
		strings.Contains(errStr, "unauthenticated"),
		strings.Contains(errStr, "permission denied"),
		strings.Contains(errStr, "permissiondenied"),
		strings.Contains(errStr, "invalid"):
		return domain.NewUnauthorizedError(err)
	default:
		return domain.NewLLMServiceError(err)
	}
}

// isRetryable reports whether a classified failure is worth another attempt.
// Auth failures and malformed requests never heal on retry.
func isRetryable(err *domain.DomainError) bool {
	switch err.Code {
	case domain.CodeRateLimited:
		return true
	case domain.CodeUnauthorized:
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Network-level failures
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	// Server-side failures
	if strings.Contains(errStr, "unavailable") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") {
		return true
	}

	return false
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)
