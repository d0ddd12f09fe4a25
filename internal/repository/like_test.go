package repository

import (
	"context"
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_LikeAndUnlike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "testuser1", "test1@test1.com")
	u2 := createTestUser(t, db, "testuser2", "test2@test2.com")
	m1 := createTestMessage(t, db, u2.ID, "likeable")

	liked, err := repo.IsLiked(ctx, u1.ID, m1.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.Like(ctx, u1.ID, m1.ID))

	liked, err = repo.IsLiked(ctx, u1.ID, m1.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.Unlike(ctx, u1.ID, m1.ID))

	liked, err = repo.IsLiked(ctx, u1.ID, m1.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeRepository_LikeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "testuser1", "test1@test1.com")
	m1 := createTestMessage(t, db, u1.ID, "self like is fine")

	require.NoError(t, repo.Like(ctx, u1.ID, m1.ID))
	require.NoError(t, repo.Like(ctx, u1.ID, m1.ID))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", u1.ID, m1.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLikeRepository_ListMessagesFor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "testuser1", "test1@test1.com")
	u2 := createTestUser(t, db, "testuser2", "test2@test2.com")
	u3 := createTestUser(t, db, "testuser3", "test3@test3.com")
	m1 := createTestMessage(t, db, u2.ID, "liked one")
	m2 := createTestMessage(t, db, u2.ID, "liked two")
	createTestMessage(t, db, u2.ID, "not liked")

	require.NoError(t, repo.Like(ctx, u1.ID, m1.ID))
	require.NoError(t, repo.Like(ctx, u1.ID, m2.ID))
	require.NoError(t, repo.Like(ctx, u3.ID, m1.ID))

	messages, err := repo.ListMessagesFor(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "testuser2", messages[0].User.Username)

	// Every entry on the list is liked by its owner, and counts include
	// other users' likes.
	byText := map[string]*models.Message{}
	for _, m := range messages {
		assert.True(t, m.Liked, m.Text)
		byText[m.Text] = m
	}
	require.Contains(t, byText, "liked one")
	require.Contains(t, byText, "liked two")
	assert.EqualValues(t, 2, byText["liked one"].LikesCount)
	assert.EqualValues(t, 1, byText["liked two"].LikesCount)

	messages, err = repo.ListMessagesFor(ctx, u2.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
