package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSettingsStore_BoundAccountRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s, err := NewSettingsStore(path, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, s.LoadBoundAccountID())

	s.SaveBoundAccountID(strPtr("  acc-1 "))

	reopened, err := NewSettingsStore(path, logger.Nop())
	require.NoError(t, err)
	got := reopened.LoadBoundAccountID()
	require.NotNil(t, got)
	assert.Equal(t, "acc-1", *got)
}

func TestSettingsStore_SaveNilOrBlankClears(t *testing.T) {
	tests := []struct {
		name string
		id   *string
	}{
		{name: "nil", id: nil},
		{name: "blank", id: strPtr("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSettingsStore("", logger.Nop())
			require.NoError(t, err)
			s.SaveBoundAccountID(strPtr("acc"))

			s.SaveBoundAccountID(tt.id)

			assert.Nil(t, s.LoadBoundAccountID())
			_, ok := s.Get(BindingAccountIDKey)
			assert.False(t, ok)
		})
	}
}

func TestSettingsStore_WhitespaceValueLoadsAsNil(t *testing.T) {
	s, err := NewSettingsStore("", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Set(BindingAccountIDKey, " \t"))

	assert.Nil(t, s.LoadBoundAccountID())
}

func TestSettingsStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewSettingsStore(path, logger.Nop())

	assert.Error(t, err)
}

func TestSettingsStore_DeleteMissingKey(t *testing.T) {
	s, err := NewSettingsStore("", logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, s.Delete("nothing"))
}
