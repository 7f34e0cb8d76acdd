package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adsight/bi-ads-api/internal/domain"
)

func TestHourlyWindow(t *testing.T) {
	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

	window := hourlyWindow(domain.PlatformFacebook, "123", 14, now)

	// Os últimos 14 dias incluindo hoje
	assert.Equal(t, time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC), window.StartDate)
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), window.EndDate)
	assert.Equal(t, 14, window.Days())
	assert.Equal(t, domain.SyncModeHourly, window.Mode)
	assert.Equal(t, "123", window.AccountScope)
}

func TestBackfillWindow(t *testing.T) {
	now := time.Date(2026, 8, 20, 2, 5, 0, 0, time.UTC)

	window := backfillWindow(domain.PlatformGoogle, "999", 30, now)

	// Os últimos 30 dias terminando ontem; hoje fica de fora
	assert.Equal(t, time.Date(2026, 7, 21, 0, 0, 0, 0, time.UTC), window.StartDate)
	assert.Equal(t, time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC), window.EndDate)
	assert.Equal(t, 30, window.Days())
	assert.Equal(t, domain.SyncModeBackfill, window.Mode)
}

func TestShouldBackfill(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 20, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		enabled      bool
		backfillHour int
		hourlyDays   int
		backfillDays int
		now          time.Time
		expected     bool
	}{
		{
			name:         "deve rodar na hora configurada com janelas distintas",
			enabled:      true,
			backfillHour: 2,
			hourlyDays:   14,
			backfillDays: 30,
			now:          at(2),
			expected:     true,
		},
		{
			name:         "não deve rodar fora da hora configurada",
			enabled:      true,
			backfillHour: 2,
			hourlyDays:   14,
			backfillDays: 30,
			now:          at(3),
			expected:     false,
		},
		{
			name:         "não deve rodar quando desabilitado",
			enabled:      false,
			backfillHour: 2,
			hourlyDays:   14,
			backfillDays: 30,
			now:          at(2),
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hourly := hourlyWindow(domain.PlatformFacebook, "", tt.hourlyDays, tt.now)
			backfill := backfillWindow(domain.PlatformFacebook, "", tt.backfillDays, tt.now)

			got := shouldBackfill(tt.enabled, tt.backfillHour, hourly, backfill, tt.now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestShouldBackfillJanelasIguais(t *testing.T) {
	now := time.Date(2026, 8, 20, 2, 0, 0, 0, time.UTC)

	// Com períodos que produzem o mesmo intervalo, o reprocessamento é
	// redundante e deve ser pulado
	hourly := hourlyWindow(domain.PlatformFacebook, "", 1, now.AddDate(0, 0, -1))
	backfill := backfillWindow(domain.PlatformFacebook, "", 1, now)

	assert.True(t, hourly.SameRange(backfill))
	assert.False(t, shouldBackfill(true, 2, hourly, backfill, now))
}
