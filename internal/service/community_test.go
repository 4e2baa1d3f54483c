package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrackapp/fittrack/internal/repository"
)

func TestCommunityPost(t *testing.T) {
	svc := NewCommunityService(newFakePostRepo())

	t.Run("valid post", func(t *testing.T) {
		post, err := svc.Post("user1", "  Crushed my 5k today!  ")
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "Crushed my 5k today!", post.Content, "content is trimmed")
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.Post("user1", "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := svc.Post("user1", strings.Repeat("a", 501))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("exactly at limit", func(t *testing.T) {
		_, err := svc.Post("user1", strings.Repeat("a", 500))
		assert.NoError(t, err)
	})
}

func TestCommunityFeed(t *testing.T) {
	svc := NewCommunityService(newFakePostRepo())

	for i := 0; i < 25; i++ {
		_, err := svc.Post("user1", "post content")
		require.NoError(t, err)
	}

	t.Run("default limit", func(t *testing.T) {
		posts, err := svc.Feed(0)
		require.NoError(t, err)
		assert.Len(t, posts, 20)
	})

	t.Run("explicit limit", func(t *testing.T) {
		posts, err := svc.Feed(5)
		require.NoError(t, err)
		assert.Len(t, posts, 5)
	})

	t.Run("limit is capped", func(t *testing.T) {
		posts, err := svc.Feed(10000)
		require.NoError(t, err)
		assert.Len(t, posts, 25)
	})
}

func TestCommunityDelete(t *testing.T) {
	svc := NewCommunityService(newFakePostRepo())

	post, err := svc.Post("user1", "post content")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete("user2", post.ID), repository.ErrPostNotFound)
	require.NoError(t, svc.Delete("user1", post.ID))
	assert.ErrorIs(t, svc.Delete("user1", post.ID), repository.ErrPostNotFound)
}
