package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "minute grain",
			input: "2025-11-18T15:30",
			want:  time.Date(2025, 11, 18, 15, 30, 0, 0, time.UTC),
		},
		{
			name:  "second grain",
			input: "2025-11-18T15:30:45",
			want:  time.Date(2025, 11, 18, 15, 30, 45, 0, time.UTC),
		},
		{
			name:  "explicit zero seconds",
			input: "2025-11-18T15:30:00",
			want:  time.Date(2025, 11, 18, 15, 30, 0, 0, time.UTC),
		},
		{
			name:    "not a date",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "date only",
			input:   "2025-11-18",
			wantErr: true,
		},
		{
			name:    "space separator",
			input:   "2025-11-18 15:30",
			wantErr: true,
		},
		{
			name:    "trailing zone",
			input:   "2025-11-18T15:30:00Z",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalDateTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFormatLocalDateTimeRoundTrip(t *testing.T) {
	for _, input := range []string{"2025-11-18T15:30", "2025-11-18T15:30:45"} {
		parsed, err := ParseLocalDateTime(input)
		require.NoError(t, err)

		rendered := FormatLocalDateTime(parsed)
		reparsed, err := ParseLocalDateTime(rendered)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(reparsed), "round trip of %q changed the instant", input)
	}
}

func TestFormatLocalDateTimeOmitsZeroSeconds(t *testing.T) {
	assert.Equal(t, "2025-11-18T15:30", FormatLocalDateTime(time.Date(2025, 11, 18, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-11-18T15:30:45", FormatLocalDateTime(time.Date(2025, 11, 18, 15, 30, 45, 0, time.UTC)))
}
