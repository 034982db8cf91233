package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis-srv/internal/corpus"
	"aegis-srv/internal/corpus/repository"
	"aegis-srv/internal/model"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/paginator"
)

type fakeRepo struct {
	stored  []model.Entity
	getErr  error
	saveErr error
}

func (r *fakeRepo) Get(context.Context) ([]model.Entity, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, repository.ErrNotFound
	}
	return r.stored, nil
}

func (r *fakeRepo) Save(_ context.Context, entities []model.Entity) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = entities
	return nil
}

func (r *fakeRepo) Delete(context.Context) error {
	r.stored = nil
	return nil
}

func newTestUseCase(t *testing.T, repo *fakeRepo) corpus.UseCase {
	t.Helper()
	uc, err := New(repo, log.NewNop())
	require.NoError(t, err)
	return uc
}

var override = []model.Entity{
	{ID: 1, Username: "neon_rider", Platform: model.PlatformTwitch, Hashtags: "#gaming, #speedrun", Engagement: model.EngagementHigh,
		Videos: []model.MediaAsset{{Name: "run.mp4"}}, Followers: 10},
	{ID: 2, Username: "quiet_reader", Platform: model.PlatformX, Hashtags: "#books", Engagement: model.EngagementLow, Followers: 5},
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("seed when no override", func(t *testing.T) {
		got, err := newTestUseCase(t, &fakeRepo{}).Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 25)
	})

	t.Run("override wins", func(t *testing.T) {
		got, err := newTestUseCase(t, &fakeRepo{stored: override}).Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, override, got)
	})

	t.Run("seed when backend fails", func(t *testing.T) {
		got, err := newTestUseCase(t, &fakeRepo{getErr: errors.New("down")}).Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 25)
	})

	t.Run("callers cannot corrupt the seed", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeRepo{})
		first, _ := uc.Snapshot(ctx)
		first[0].Username = "changed"
		second, _ := uc.Snapshot(ctx)
		assert.NotEqual(t, "changed", second[0].Username)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &fakeRepo{})

	tcs := []struct {
		name  string
		input corpus.ListInput
		want  []string
	}{
		{"hashtag", corpus.ListInput{Hashtag: "#Fitness"}, []string{"mike_fitness", "harsh_sports"}},
		{"query and platform", corpus.ListInput{Query: "fitness", Platform: model.PlatformYouTube}, []string{"mike_fitness"}},
		{"platform case-insensitive", corpus.ListInput{Platform: "twitch"}, nil},
		{"no match", corpus.ListInput{Query: "zzz-nothing"}, []string{}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.List(ctx, tc.input)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Len(t, out.Entities, 1)
				return
			}
			names := make([]string, 0, len(out.Entities))
			for _, e := range out.Entities {
				names = append(names, e.Username)
			}
			assert.Equal(t, tc.want, names)
		})
	}

	t.Run("paging", func(t *testing.T) {
		out, err := uc.List(ctx, corpus.ListInput{Paging: paginator.PaginateQuery{Page: 3, Limit: 10}})
		require.NoError(t, err)
		assert.Len(t, out.Entities, 5)
		assert.Equal(t, int64(25), out.Paginator.Total)
		assert.Equal(t, int64(5), out.Paginator.Count)
		assert.Equal(t, 3, out.Paginator.CurrentPage)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	seedStats, err := newTestUseCase(t, &fakeRepo{}).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, corpus.SourceSeed, seedStats.Source)
	assert.Equal(t, 25, seedStats.Entities)
	assert.Equal(t, 59, seedStats.MediaCount)
	assert.Equal(t, 15, seedStats.HighEngagement)
	assert.Equal(t, 12, seedStats.Platforms[model.PlatformInstagram])

	stats, err := newTestUseCase(t, &fakeRepo{stored: override}).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, corpus.Stats{
		Source: corpus.SourceOverride, Entities: 2, MediaCount: 1, HighEngagement: 1, Followers: 15,
		Platforms: map[model.Platform]int{model.PlatformTwitch: 1, model.PlatformX: 1},
	}, stats)
}

func TestReplaceAndReset(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Replace(ctx, corpus.ReplaceInput{})
	assert.ErrorIs(t, err, corpus.ErrEmptyCorpus)
	assert.Nil(t, repo.stored)

	stats, err := uc.Replace(ctx, corpus.ReplaceInput{Entities: override})
	require.NoError(t, err)
	assert.Equal(t, corpus.SourceOverride, stats.Source)
	assert.Equal(t, override, repo.stored)

	stats, err = uc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, corpus.SourceSeed, stats.Source)
	assert.Equal(t, 25, stats.Entities)
	assert.Nil(t, repo.stored)
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		repo := &fakeRepo{}
		stats, err := newTestUseCase(t, repo).Import(ctx, corpus.ImportInput{
			Format: corpus.FormatYAML,
			Data:   []byte("entities:\n  - id: 9\n    username: z\n    platform: Facebook\n    engagement: medium\n"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Entities)
		require.Len(t, repo.stored, 1)
		assert.Equal(t, model.PlatformFacebook, repo.stored[0].Platform)
	})

	t.Run("invalid document is not stored", func(t *testing.T) {
		repo := &fakeRepo{}
		_, err := newTestUseCase(t, repo).Import(ctx, corpus.ImportInput{Format: corpus.FormatJSON, Data: []byte(`[]`)})
		assert.ErrorIs(t, err, corpus.ErrEmptyCorpus)
		assert.Nil(t, repo.stored)
	})

	t.Run("save failure", func(t *testing.T) {
		_, err := newTestUseCase(t, &fakeRepo{saveErr: errors.New("down")}).Import(ctx, corpus.ImportInput{
			Format: corpus.FormatJSON, Data: []byte(`[{"id":1,"username":"a","platform":"X","engagement":"low"}]`),
		})
		assert.Error(t, err)
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &fakeRepo{stored: override})

	data, err := uc.Export(ctx, corpus.FormatYAML)
	require.NoError(t, err)
	back, err := corpus.ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "neon_rider", back[0].Username)
	assert.Equal(t, model.PlatformX, back[1].Platform)

	_, err = uc.Export(ctx, "xml")
	assert.ErrorIs(t, err, corpus.ErrUnsupportedFormat)
}
