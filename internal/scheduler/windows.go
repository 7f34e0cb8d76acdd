package scheduler

import (
	"time"

	"github.com/adsight/bi-ads-api/internal/domain"
)

// hourlyWindow é a janela incremental de cada tick: os últimos N dias
// incluindo hoje
func hourlyWindow(platform domain.Platform, scope string, days int, now time.Time) domain.SyncWindow {
	if days <= 0 {
		days = 1
	}

	window, _ := domain.NewSyncWindow(platform, scope, now.AddDate(0, 0, -(days-1)), now, domain.SyncModeHourly)
	return window
}

// backfillWindow é a janela de reprocessamento diário: os últimos M dias
// terminando ontem. Hoje fica de fora porque o dia ainda está incompleto.
func backfillWindow(platform domain.Platform, scope string, days int, now time.Time) domain.SyncWindow {
	if days <= 0 {
		days = 1
	}

	yesterday := now.AddDate(0, 0, -1)
	window, _ := domain.NewSyncWindow(platform, scope, yesterday.AddDate(0, 0, -(days-1)), yesterday, domain.SyncModeBackfill)
	return window
}

// shouldBackfill decide se o tick corrente também roda o reprocessamento:
// apenas na hora configurada e quando a janela difere da incremental
func shouldBackfill(enabled bool, backfillHour int, hourly, backfill domain.SyncWindow, now time.Time) bool {
	if !enabled {
		return false
	}
	if now.Hour() != backfillHour {
		return false
	}
	return !backfill.SameRange(hourly)
}
