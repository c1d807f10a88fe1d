package mongo

import (
	"Brightline/internal/api/config"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newTestDB(t *testing.T) *mongo.Database {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}
	db, err := InitMongo(config.MongoConfig{
		URL:      url,
		Database: fmt.Sprintf("brightline_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = db.Client().Disconnect(context.Background())
	})
	return db
}

func TestBlogPostRepo_CreateAndFind(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	ctx := context.Background()

	first := &BlogPost{Title: "First", Category: "SEO", Published: true, Views: 42}
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := &BlogPost{Title: "Second", Category: "Design", Published: true}
	require.NoError(t, repo.Create(ctx, second))

	assert.False(t, first.ID.IsZero())
	assert.False(t, first.CreatedAt.IsZero())
	assert.NotNil(t, first.Tags)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)

	got, err := repo.FindByID(ctx, first.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)

	byCategory, err := repo.FindByCategory(ctx, "SEO")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, first.ID, byCategory[0].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestBlogPostRepo_FindByIDMissing(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	ctx := context.Background()

	got, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.FindByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidPostID)
}

func TestBlogPostRepo_UpdateKeepsCounters(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	ctx := context.Background()

	post := &BlogPost{Title: "Before", Views: 7}
	require.NoError(t, repo.Create(ctx, post))

	updated, err := repo.Update(ctx, post.ID.Hex(), map[string]any{"title": "After", FieldViews: 0})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.EqualValues(t, 7, updated.Views)
	assert.True(t, !updated.UpdatedAt.Before(post.UpdatedAt))

	_, err = repo.Update(ctx, primitive.NewObjectID().Hex(), map[string]any{"title": "x"})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestBlogPostRepo_IncrementAndDelete(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	ctx := context.Background()

	post := &BlogPost{Title: "Counted"}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.Increment(ctx, post.ID.Hex(), FieldLikes))
	require.NoError(t, repo.Increment(ctx, post.ID.Hex(), FieldLikes))
	assert.Error(t, repo.Increment(ctx, post.ID.Hex(), "title"))

	got, err := repo.FindByID(ctx, post.ID.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Likes)

	top, err := repo.FindTopByViews(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	ok, err := repo.Delete(ctx, post.ID.Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, post.ID.Hex())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnalyticsRepo_CountByType(t *testing.T) {
	repo := NewAnalyticsRepo(newTestDB(t))
	ctx := context.Background()

	for _, typ := range []string{EventView, EventView, EventLike, EventShare} {
		require.NoError(t, repo.Insert(ctx, &AnalyticsEvent{PostID: "p1", Type: typ}))
	}

	counts, err := repo.CountByType(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[EventView])
	assert.EqualValues(t, 1, counts[EventLike])
	assert.EqualValues(t, 1, counts[EventShare])
	assert.EqualValues(t, 0, counts[EventComment])
}
