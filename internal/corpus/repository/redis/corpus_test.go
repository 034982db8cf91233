package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis-srv/internal/corpus/repository"
	"aegis-srv/internal/model"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/redis/redistest"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	store := redistest.New()
	repo := New(store, log.NewNop())

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	entities := []model.Entity{{
		ID: 7, Username: "mira", Platform: model.PlatformTikTok, Engagement: model.EngagementHigh,
		Videos: []model.MediaAsset{{Name: "clip.mp4", Size: 1024, Type: "video/mp4", UploadDate: "2024-05-01"}},
	}}
	require.NoError(t, repo.Save(ctx, entities))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities, got)

	require.NoError(t, repo.Delete(ctx))
	assert.Zero(t, store.Keys())
}

func TestRepository_Decode(t *testing.T) {
	ctx := context.Background()
	store := redistest.New()
	require.NoError(t, store.Set(ctx, Key, `{"entities":`, 0))

	_, err := New(store, log.NewNop()).Get(ctx)
	assert.ErrorIs(t, err, repository.ErrDecode)
}
