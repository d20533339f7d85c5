// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BindingState pairs the account currently signed in on the device with the
// account the local dataset is bound to. Either may be unset.
type BindingState struct {
	CurrentAccountID *string `json:"current_account_id"`
	BoundAccountID   *string `json:"bound_account_id"`
}

// CanSyncWithCurrentAccount reports whether synchronization is permitted:
// the device was never bound, or it is bound to the current account.
func (s BindingState) CanSyncWithCurrentAccount() bool {
	if s.BoundAccountID == nil {
		return true
	}
	return s.CurrentAccountID != nil && *s.CurrentAccountID == *s.BoundAccountID
}

// IsBoundAccountMismatch reports whether both accounts are set and differ.
func (s BindingState) IsBoundAccountMismatch() bool {
	return s.CurrentAccountID != nil && s.BoundAccountID != nil &&
		*s.CurrentAccountID != *s.BoundAccountID
}

// SwitchPreview describes what rebinding to the current account changes.
type SwitchPreview struct {
	CurrentAccountID       *string `json:"current_account_id"`
	PreviousBoundAccountID *string `json:"previous_bound_account_id"`
	TargetBoundAccountID   *string `json:"target_bound_account_id"`
	WillEnableSync         bool    `json:"will_enable_sync"`
}

// NewSwitchPreview projects a rebinding from state without applying it.
func NewSwitchPreview(state BindingState) SwitchPreview {
	return SwitchPreview{
		CurrentAccountID:       state.CurrentAccountID,
		PreviousBoundAccountID: state.BoundAccountID,
		TargetBoundAccountID:   state.CurrentAccountID,
		WillEnableSync:         state.CurrentAccountID != nil,
	}
}
