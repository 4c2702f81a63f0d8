package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartingTime(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name        string
		tokens      []string
		wantClock   string
		wantHours   float64
		wantRest    []string
		wantErr     bool
		wantStarted bool
	}{
		{name: "am clock", tokens: []string{"9am", "2", "3"}, wantStarted: true, wantClock: "09:00", wantRest: []string{"2", "3"}},
		{name: "clock with minutes", tokens: []string{"9:30AM", "@dev"}, wantStarted: true, wantClock: "09:30", wantRest: []string{"@dev"}},
		{name: "pm clock", tokens: []string{"1:15pm", "@dev"}, wantStarted: true, wantClock: "13:15", wantRest: []string{"@dev"}},
		{name: "24h clock", tokens: []string{"14:05", "@dev"}, wantStarted: true, wantClock: "14:05", wantRest: []string{"@dev"}},
		{name: "elapsed hours and minutes", tokens: []string{"+0:15", "@dev"}, wantHours: 0.25, wantRest: []string{"@dev"}},
		{name: "elapsed decimal", tokens: []string{"+1.5h", "@dev"}, wantHours: 1.5, wantRest: []string{"@dev"}},
		{name: "no time token", tokens: []string{"2", "3", "note"}, wantRest: []string{"2", "3", "note"}},
		{name: "alias first", tokens: []string{"@dev"}, wantRest: []string{"@dev"}},
		{name: "empty", tokens: nil, wantRest: nil},
		{name: "bad elapsed", tokens: []string{"+x", "@dev"}, wantErr: true},
		{name: "bad minutes", tokens: []string{"+1:75"}, wantErr: true},
		{name: "infinite hours", tokens: []string{"+inf"}, wantErr: true},
		{name: "infinite hours with suffix", tokens: []string{"+Infh", "@dev"}, wantErr: true},
		{name: "not a number", tokens: []string{"+nan"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startedAt, hours, rest, err := parseStartingTime(tt.tokens, now)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantHours, hours, 0.0001)
			assert.Equal(t, tt.wantRest, rest)
			if !tt.wantStarted {
				assert.Nil(t, startedAt)
				return
			}
			require.NotNil(t, startedAt)
			assert.Equal(t, tt.wantClock, startedAt.Format("15:04"))
			assert.Equal(t, 15, startedAt.Day())
		})
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.January, 17, 10, 0, 0, 0, time.Local)

	t.Run("empty is now", func(t *testing.T) {
		got, err := parseDate(nil, now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("iso date", func(t *testing.T) {
		got, err := parseDate([]string{"2024-01-02"}, now)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02", got.Format("2006-01-02"))
	})

	t.Run("yesterday", func(t *testing.T) {
		got, err := parseDate([]string{"yesterday"}, now)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-16", got.Format("2006-01-02"))
	})

	t.Run("gibberish", func(t *testing.T) {
		_, err := parseDate([]string{"flurble"}, now)
		assert.Error(t, err)
	})
}

func TestClock(t *testing.T) {
	assert.Equal(t, "09:05 am", clock(time.Date(2024, 1, 1, 9, 5, 0, 0, time.Local)))
	assert.Equal(t, "02:30 pm", clock(time.Date(2024, 1, 1, 14, 30, 0, 0, time.Local)))
}
