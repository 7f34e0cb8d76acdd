package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSyncWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		expectErr bool
	}{
		{
			name:  "deve aceitar janela de um dia",
			start: day(1),
			end:   day(1),
		},
		{
			name:  "deve truncar horários para o dia",
			start: time.Date(2026, 8, 1, 13, 45, 12, 0, time.UTC),
			end:   time.Date(2026, 8, 3, 1, 2, 3, 0, time.UTC),
		},
		{
			name:      "deve rejeitar data inicial posterior à final",
			start:     day(5),
			end:       day(1),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := NewSyncWindow(PlatformFacebook, "123", tt.start, tt.end, SyncModeManual)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 0, window.StartDate.Hour())
			assert.Equal(t, 0, window.EndDate.Hour())
			assert.False(t, window.StartDate.After(window.EndDate))
		})
	}
}

func TestSyncWindowDays(t *testing.T) {
	window, _ := NewSyncWindow(PlatformGoogle, "", day(1), day(14), SyncModeHourly)
	assert.Equal(t, 14, window.Days())

	single, _ := NewSyncWindow(PlatformGoogle, "", day(1), day(1), SyncModeHourly)
	assert.Equal(t, 1, single.Days())
}

func TestSyncWindowSplit(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		maxDays  int
		expected [][2]time.Time
	}{
		{
			name:    "janela menor que o limite não é particionada",
			start:   day(1),
			end:     day(5),
			maxDays: 7,
			expected: [][2]time.Time{
				{day(1), day(5)},
			},
		},
		{
			name:    "janela exata no limite não é particionada",
			start:   day(1),
			end:     day(7),
			maxDays: 7,
			expected: [][2]time.Time{
				{day(1), day(7)},
			},
		},
		{
			name:    "30 dias viram partições de 7 com resto",
			start:   day(1),
			end:     day(30),
			maxDays: 7,
			expected: [][2]time.Time{
				{day(1), day(7)},
				{day(8), day(14)},
				{day(15), day(21)},
				{day(22), day(28)},
				{day(29), day(30)},
			},
		},
		{
			name:    "limite zero desliga o particionamento",
			start:   day(1),
			end:     day(20),
			maxDays: 0,
			expected: [][2]time.Time{
				{day(1), day(20)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := NewSyncWindow(PlatformFacebook, "123", tt.start, tt.end, SyncModeBackfill)
			assert.NoError(t, err)

			subs := window.Split(tt.maxDays)

			assert.Len(t, subs, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected[0], subs[i].StartDate, "início da partição %d", i)
				assert.Equal(t, expected[1], subs[i].EndDate, "fim da partição %d", i)

				// Escopo e modo são herdados pelas partições
				assert.Equal(t, window.AccountScope, subs[i].AccountScope)
				assert.Equal(t, window.Mode, subs[i].Mode)
			}

			// Partições cobrem a janela sem lacunas nem sobreposição
			assert.Equal(t, window.StartDate, subs[0].StartDate)
			assert.Equal(t, window.EndDate, subs[len(subs)-1].EndDate)
			for i := 1; i < len(subs); i++ {
				assert.Equal(t, subs[i-1].EndDate.AddDate(0, 0, 1), subs[i].StartDate)
			}
		})
	}
}

func TestSyncWindowSameRange(t *testing.T) {
	a, _ := NewSyncWindow(PlatformFacebook, "123", day(1), day(14), SyncModeHourly)
	b, _ := NewSyncWindow(PlatformFacebook, "123", day(1), day(14), SyncModeBackfill)
	c, _ := NewSyncWindow(PlatformFacebook, "123", day(1), day(13), SyncModeBackfill)

	assert.True(t, a.SameRange(b))
	assert.False(t, a.SameRange(c))
}
