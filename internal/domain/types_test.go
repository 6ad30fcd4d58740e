package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "one day", token: "1d", want: 1},
		{name: "one week", token: "7d", want: 7},
		{name: "thirty days", token: "30d", want: 30},
		{name: "ninety days", token: "90d", want: 90},
		{name: "one year", token: "1y", want: 365},
		{name: "unknown token defaults", token: "2w", want: 30},
		{name: "empty token defaults", token: "", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeframe(tt.token))
		})
	}
}

func TestTimeframeCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cutoff := TimeframeCutoff("7d", now)
	assert.Equal(t, now.Add(-7*24*time.Hour), cutoff)

	// Unknown tokens use the 30 day default
	cutoff = TimeframeCutoff("bogus", now)
	assert.Equal(t, now.Add(-30*24*time.Hour), cutoff)
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Bounds
		wantErr bool
	}{
		{
			name:  "valid bounds",
			input: "50,120,60,135",
			want:  Bounds{Lat1: 50, Lng1: 120, Lat2: 60, Lng2: 135},
		},
		{
			name:  "valid bounds with spaces and decimals",
			input: "50.5, -120.25, 60.0, 135.75",
			want:  Bounds{Lat1: 50.5, Lng1: -120.25, Lat2: 60.0, Lng2: 135.75},
		},
		{name: "too few components", input: "50,120,60", wantErr: true},
		{name: "too many components", input: "50,120,60,135,10", wantErr: true},
		{name: "non numeric component", input: "50,east,60,135", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBounds(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApprovalStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ApprovalStatus("maybe").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleModerator.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
}
