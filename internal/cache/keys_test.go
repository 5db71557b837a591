package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("WithoutParams", func(t *testing.T) {
		key := GenerateCacheKey("study", "material", "abc123")
		assert.Equal(t, "studygeni:study:material:abc123", key)
	})

	t.Run("WithParams", func(t *testing.T) {
		key := GenerateCacheKey("study", "material", "abc123", "revision", "beginner")
		assert.Equal(t, "studygeni:study:material:abc123:revision_beginner", key)
	})
}
