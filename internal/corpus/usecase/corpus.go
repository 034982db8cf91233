package usecase

import (
	"context"
	"errors"
	"fmt"

	"aegis-srv/internal/corpus"
	"aegis-srv/internal/corpus/repository"
	"aegis-srv/internal/model"
)

func (uc *implUseCase) Snapshot(ctx context.Context) ([]model.Entity, error) {
	entities, _ := uc.active(ctx)
	return entities, nil
}

func (uc *implUseCase) List(ctx context.Context, input corpus.ListInput) (corpus.ListOutput, error) {
	entities, _ := uc.active(ctx)
	filtered := filterEntities(entities, input)

	input.Paging.Adjust()
	start, end := input.Paging.Window(len(filtered))
	page := filtered[start:end]

	return corpus.ListOutput{
		Entities:  page,
		Paginator: input.Paging.For(int64(len(filtered)), len(page)),
	}, nil
}

func (uc *implUseCase) Stats(ctx context.Context) (corpus.Stats, error) {
	entities, source := uc.active(ctx)
	return buildStats(entities, source), nil
}

func (uc *implUseCase) Replace(ctx context.Context, input corpus.ReplaceInput) (corpus.Stats, error) {
	return uc.store(ctx, input.Entities)
}

func (uc *implUseCase) Import(ctx context.Context, input corpus.ImportInput) (corpus.Stats, error) {
	entities, err := corpus.Parse(input.Format, input.Data)
	if err != nil {
		uc.l.Warnf(ctx, "corpus.usecase.Import: rejected %s document: %v", input.Format, err)
		return corpus.Stats{}, err
	}
	return uc.store(ctx, entities)
}

func (uc *implUseCase) Export(ctx context.Context, format string) ([]byte, error) {
	entities, _ := uc.active(ctx)
	switch format {
	case corpus.FormatJSON, "":
		return corpus.MarshalJSON(entities)
	case corpus.FormatYAML, "yml":
		return corpus.MarshalYAML(entities)
	default:
		return nil, fmt.Errorf("%w: %q", corpus.ErrUnsupportedFormat, format)
	}
}

func (uc *implUseCase) Reset(ctx context.Context) (corpus.Stats, error) {
	if err := uc.repo.Delete(ctx); err != nil {
		uc.l.Errorf(ctx, "corpus.usecase.Reset: repo.Delete failed: %v", err)
		return corpus.Stats{}, fmt.Errorf("reset corpus: %w", err)
	}
	uc.l.Infof(ctx, "corpus.usecase.Reset: override removed, serving %d seed entities", len(uc.seed))
	return buildStats(uc.cloneSeed(), corpus.SourceSeed), nil
}

func (uc *implUseCase) store(ctx context.Context, entities []model.Entity) (corpus.Stats, error) {
	if err := corpus.Validate(entities); err != nil {
		return corpus.Stats{}, err
	}
	if err := uc.repo.Save(ctx, entities); err != nil {
		uc.l.Errorf(ctx, "corpus.usecase.store: repo.Save failed: %v", err)
		return corpus.Stats{}, fmt.Errorf("save corpus: %w", err)
	}
	uc.l.Infof(ctx, "corpus.usecase.store: override saved with %d entities", len(entities))
	return buildStats(entities, corpus.SourceOverride), nil
}

// active returns the override when one is readable, otherwise a copy of the seed.
func (uc *implUseCase) active(ctx context.Context) ([]model.Entity, corpus.Source) {
	entities, err := uc.repo.Get(ctx)
	switch {
	case err == nil:
		return entities, corpus.SourceOverride
	case errors.Is(err, repository.ErrNotFound):
	default:
		uc.l.Warnf(ctx, "corpus.usecase.active: override unavailable, using seed: %v", err)
	}
	return uc.cloneSeed(), corpus.SourceSeed
}

func (uc *implUseCase) cloneSeed() []model.Entity {
	out := make([]model.Entity, len(uc.seed))
	copy(out, uc.seed)
	return out
}
