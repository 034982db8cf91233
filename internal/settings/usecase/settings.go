package usecase

import (
	"context"
	"errors"
	"fmt"

	"aegis-srv/internal/settings"
	"aegis-srv/internal/settings/repository"
)

// Get falls back to defaults when nothing is stored or the stored value is unreadable.
func (uc *implUseCase) Get(ctx context.Context) (settings.Settings, error) {
	s, err := uc.repo.Get(ctx)
	switch {
	case err == nil:
		return withDefaults(s), nil
	case errors.Is(err, repository.ErrNotFound):
		return settings.Defaults(), nil
	case errors.Is(err, repository.ErrDecode):
		uc.l.Warnf(ctx, "settings.usecase.Get: stored settings unreadable, using defaults: %v", err)
		return settings.Defaults(), nil
	default:
		uc.l.Errorf(ctx, "settings.usecase.Get: repo.Get failed: %v", err)
		return settings.Settings{}, fmt.Errorf("load settings: %w", err)
	}
}

func (uc *implUseCase) Update(ctx context.Context, input settings.UpdateInput) (settings.Settings, error) {
	s, err := uc.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	if input.DefaultMode != nil {
		if !input.DefaultMode.IsValid() {
			return settings.Settings{}, settings.ErrInvalidMode
		}
		s.DefaultMode = *input.DefaultMode
	}
	if input.AutoReport != nil {
		s.AutoReport = *input.AutoReport
	}
	if input.TrustedAccounts != nil {
		s.TrustedAccounts = cleanHandles(input.TrustedAccounts)
	}
	if input.MaxResults != nil {
		if *input.MaxResults < 1 || *input.MaxResults > settings.MaxMaxResults {
			return settings.Settings{}, settings.ErrInvalidMaxResults
		}
		s.MaxResults = *input.MaxResults
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		uc.l.Errorf(ctx, "settings.usecase.Update: repo.Save failed: %v", err)
		return settings.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	uc.l.Infof(ctx, "settings.usecase.Update: mode=%s auto_report=%t trusted=%d max_results=%d",
		s.DefaultMode, s.AutoReport, len(s.TrustedAccounts), s.MaxResults)
	return s, nil
}

func (uc *implUseCase) Reset(ctx context.Context) (settings.Settings, error) {
	if err := uc.repo.Delete(ctx); err != nil {
		uc.l.Errorf(ctx, "settings.usecase.Reset: repo.Delete failed: %v", err)
		return settings.Settings{}, fmt.Errorf("reset settings: %w", err)
	}
	return settings.Defaults(), nil
}
