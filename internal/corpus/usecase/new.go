package usecase

import (
	"aegis-srv/internal/corpus"
	"aegis-srv/internal/corpus/repository"
	"aegis-srv/internal/model"
	"aegis-srv/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	seed []model.Entity
	l    log.Logger
}

// New parses the embedded seed once; a broken seed is a build defect and fails construction.
func New(repo repository.Repository, l log.Logger) (corpus.UseCase, error) {
	seed, err := corpus.Seed()
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo: repo,
		seed: seed,
		l:    l,
	}, nil
}
