package usecase

import (
	"aegis-srv/internal/settings"
	"aegis-srv/internal/settings/repository"
	"aegis-srv/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

func New(repo repository.Repository, l log.Logger) settings.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
