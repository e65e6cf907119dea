package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid lowercase", username: "alice"},
		{name: "valid mixed case", username: "AliceSmith"},
		{name: "valid with underscore and digits", username: "alice_123"},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: "a123456789012345678901234567890123", wantErr: true},
		{name: "invalid characters", username: "alice smith", wantErr: true},
		{name: "unicode rejected", username: "алиса", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough-password"))
}

func TestParseSyncTimestamp(t *testing.T) {
	t.Run("valid RFC3339", func(t *testing.T) {
		ts, err := ParseSyncTimestamp("2026-08-30T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, 2026, ts.Year())
	})

	t.Run("round trip through format", func(t *testing.T) {
		orig, err := time.Parse(time.RFC3339Nano, "2026-08-30T10:00:00.123456789Z")
		require.NoError(t, err)

		ts, err := ParseSyncTimestamp(FormatSyncTimestamp(orig))
		require.NoError(t, err)
		assert.True(t, ts.Equal(orig))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseSyncTimestamp("30/08/2026 10:00")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseSyncTimestamp("")
		assert.Error(t, err)
	})

	t.Run("far future rejected", func(t *testing.T) {
		_, err := ParseSyncTimestamp("2999-01-01T00:00:00Z")
		assert.Error(t, err)
	})
}
