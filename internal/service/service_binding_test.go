package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/anything-list/internal/adapter"
	"github.com/MKhiriev/anything-list/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testContainerID = "iCloud.test.lists"

func strPtr(s string) *string { return &s }

// memoryBinding is an in-memory load/save pair.
type memoryBinding struct {
	value *string
	saves int
}

func (m *memoryBinding) load() *string { return m.value }

func (m *memoryBinding) save(v *string) {
	m.saves++
	m.value = v
}

func newTestBindingSvc(t *testing.T, bound *string) (AccountBindingService, *mock.MockAccountStatusSource, *memoryBinding) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock.NewMockAccountStatusSource(ctrl)
	binding := &memoryBinding{value: bound}
	return NewAccountBindingService(testContainerID, binding.load, binding.save, provider), provider, binding
}

func TestAccountBindingService_FetchBindingState(t *testing.T) {
	tests := []struct {
		name         string
		current      *string
		bound        *string
		wantCanSync  bool
		wantMismatch bool
	}{
		{name: "never bound, signed in", current: strPtr("acct-A"), wantCanSync: true},
		{name: "never bound, signed out", wantCanSync: true},
		{name: "bound to current", current: strPtr("acct-A"), bound: strPtr("acct-A"), wantCanSync: true},
		{name: "bound to other account", current: strPtr("acct-B"), bound: strPtr("acct-A"), wantMismatch: true},
		{name: "bound, signed out", bound: strPtr("acct-A")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, binding := newTestBindingSvc(t, tt.bound)
			provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(tt.current, nil)

			state, err := svc.FetchBindingState(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.current, state.CurrentAccountID)
			assert.Equal(t, tt.bound, state.BoundAccountID)
			assert.Equal(t, tt.wantCanSync, state.CanSyncWithCurrentAccount())
			assert.Equal(t, tt.wantMismatch, state.IsBoundAccountMismatch())
			assert.Zero(t, binding.saves)
		})
	}
}

func TestAccountBindingService_ProviderErrorPropagates(t *testing.T) {
	svc, provider, binding := newTestBindingSvc(t, strPtr("acct-A"))
	provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).
		Return(nil, adapter.ErrUnavailable).
		Times(3)

	_, err := svc.FetchBindingState(context.Background())
	assert.ErrorIs(t, err, ErrAccountProvider)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)

	_, err = svc.PreviewSwitchToCurrentAccount(context.Background())
	assert.ErrorIs(t, err, ErrAccountProvider)

	_, err = svc.SwitchBindingToCurrentAccount(context.Background())
	assert.ErrorIs(t, err, ErrAccountProvider)

	assert.Zero(t, binding.saves)
	assert.Equal(t, "acct-A", *binding.value)
}

func TestAccountBindingService_PreviewDoesNotWrite(t *testing.T) {
	svc, provider, binding := newTestBindingSvc(t, strPtr("acct-A"))
	provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(strPtr("acct-B"), nil)

	preview, err := svc.PreviewSwitchToCurrentAccount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "acct-B", *preview.CurrentAccountID)
	assert.Equal(t, "acct-A", *preview.PreviousBoundAccountID)
	assert.Equal(t, "acct-B", *preview.TargetBoundAccountID)
	assert.True(t, preview.WillEnableSync)
	assert.Zero(t, binding.saves)
	assert.Equal(t, "acct-A", *binding.value)
}

func TestAccountBindingService_PreviewWithoutCurrentAccount(t *testing.T) {
	svc, provider, _ := newTestBindingSvc(t, strPtr("acct-A"))
	provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(nil, nil)

	preview, err := svc.PreviewSwitchToCurrentAccount(context.Background())

	require.NoError(t, err)
	assert.Nil(t, preview.CurrentAccountID)
	assert.Nil(t, preview.TargetBoundAccountID)
	assert.False(t, preview.WillEnableSync)
}

func TestAccountBindingService_SwitchIsIdempotent(t *testing.T) {
	svc, provider, binding := newTestBindingSvc(t, strPtr("acct-old"))
	provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(strPtr("acct-A"), nil).Times(2)

	first, err := svc.SwitchBindingToCurrentAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acct-old", *first.PreviousBoundAccountID)
	assert.Equal(t, "acct-A", *binding.value)

	second, err := svc.SwitchBindingToCurrentAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *first.TargetBoundAccountID, *second.TargetBoundAccountID)
	assert.Equal(t, "acct-A", *second.PreviousBoundAccountID)
	assert.Equal(t, "acct-A", *binding.value)
	assert.Equal(t, 2, binding.saves)
}

func TestAccountBindingService_FirstUseThenSwitchKeepsSyncOpen(t *testing.T) {
	svc, provider, binding := newTestBindingSvc(t, nil)
	provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(strPtr("acct-A"), nil).Times(3)
	ctx := context.Background()

	state, err := svc.FetchBindingState(ctx)
	require.NoError(t, err)
	assert.True(t, state.CanSyncWithCurrentAccount())

	_, err = svc.SwitchBindingToCurrentAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acct-A", *binding.value)

	state, err = svc.FetchBindingState(ctx)
	require.NoError(t, err)
	assert.True(t, state.CanSyncWithCurrentAccount())
}

func TestAccountBindingService_SwitchUsesAccountAtCallTime(t *testing.T) {
	svc, provider, binding := newTestBindingSvc(t, nil)
	gomock.InOrder(
		provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(strPtr("acct-A"), nil),
		provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(strPtr("acct-B"), nil),
	)
	ctx := context.Background()

	preview, err := svc.PreviewSwitchToCurrentAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acct-A", *preview.TargetBoundAccountID)

	switched, err := svc.SwitchBindingToCurrentAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acct-B", *switched.TargetBoundAccountID)
	assert.Equal(t, "acct-B", *binding.value)
}

func TestAccountBindingService_SwitchWithoutCurrentAccountClearsBinding(t *testing.T) {
	svc, provider, binding := newTestBindingSvc(t, strPtr("acct-A"))
	provider.EXPECT().CurrentAccountID(gomock.Any(), testContainerID).Return(nil, nil)

	preview, err := svc.SwitchBindingToCurrentAccount(context.Background())

	require.NoError(t, err)
	assert.False(t, preview.WillEnableSync)
	assert.Nil(t, binding.value)
	assert.Equal(t, 1, binding.saves)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: ErrInvalidTemplate, want: "template is invalid"},
		{err: errors.Join(ErrCodec, errors.New("eof")), want: "document could not be read"},
		{err: ErrAccountProvider, want: "could not determine the signed-in account"},
		{err: ErrNoCurrentAccount, want: "no account is signed in on this device"},
		{err: ErrCollectionNotFound, want: "list not found"},
		{err: ErrTemplateNotFound, want: "template not found"},
		{err: ErrPersistence, want: "failed to save local data"},
		{err: errors.New("other"), want: "internal server error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err))
	}
}
