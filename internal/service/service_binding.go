package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/adapter"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/models"
)

type accountBindingService struct {
	containerID string
	load        func() *string
	save        func(*string)
	provider    adapter.AccountStatusSource
}

// NewAccountBindingService builds the binding gate over the persisted bound
// account (load/save) and the account status source.
func NewAccountBindingService(
	containerID string,
	load func() *string,
	save func(*string),
	provider adapter.AccountStatusSource,
) AccountBindingService {
	return &accountBindingService{
		containerID: containerID,
		load:        load,
		save:        save,
		provider:    provider,
	}
}

func (s *accountBindingService) FetchBindingState(ctx context.Context) (models.BindingState, error) {
	current, err := s.provider.CurrentAccountID(ctx, s.containerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountBindingService.FetchBindingState").
			Str("container_id", s.containerID).
			Msg("account status source failed")
		return models.BindingState{}, fmt.Errorf("%w: %w", ErrAccountProvider, err)
	}

	return models.BindingState{
		CurrentAccountID: current,
		BoundAccountID:   s.load(),
	}, nil
}

func (s *accountBindingService) PreviewSwitchToCurrentAccount(ctx context.Context) (models.SwitchPreview, error) {
	state, err := s.FetchBindingState(ctx)
	if err != nil {
		return models.SwitchPreview{}, err
	}
	return models.NewSwitchPreview(state), nil
}

func (s *accountBindingService) SwitchBindingToCurrentAccount(ctx context.Context) (models.SwitchPreview, error) {
	state, err := s.FetchBindingState(ctx)
	if err != nil {
		return models.SwitchPreview{}, err
	}

	preview := models.NewSwitchPreview(state)
	s.save(state.CurrentAccountID)

	logger.FromContext(ctx).Info().
		Str("func", "accountBindingService.SwitchBindingToCurrentAccount").
		Bool("will_enable_sync", preview.WillEnableSync).
		Msg("bound account switched")

	return preview, nil
}
