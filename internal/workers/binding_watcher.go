// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/models"
)

// BindingWatcher polls the binding state and logs whenever the sync gate
// opens or closes, for example after the user signs into another account.
// It never changes the binding.
type BindingWatcher struct {
	source   BindingStateSource
	interval time.Duration
	logger   *logger.Logger

	// onChange is called after each logged transition; used by tests.
	onChange func(models.BindingState)

	known   bool
	canSync bool
}

func NewBindingWatcher(source BindingStateSource, interval time.Duration, log *logger.Logger) *BindingWatcher {
	return &BindingWatcher{
		source:   source,
		interval: interval,
		logger:   log,
	}
}

func (w *BindingWatcher) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("binding watcher started")

	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("binding watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *BindingWatcher) poll(ctx context.Context) {
	state, err := w.source.FetchBindingState(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "BindingWatcher.poll").Msg("could not read binding state")
		}
		return
	}

	canSync := state.CanSyncWithCurrentAccount()
	if w.known && canSync == w.canSync {
		return
	}
	w.known, w.canSync = true, canSync

	event := w.logger.Info()
	if !canSync {
		event = w.logger.Warn()
	}
	event.Str("func", "BindingWatcher.poll").
		Bool("can_sync", canSync).
		Bool("mismatch", state.IsBoundAccountMismatch()).
		Msg("sync availability changed")

	if w.onChange != nil {
		w.onChange(state)
	}
}
