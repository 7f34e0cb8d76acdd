package domain

import (
	"fmt"
	"time"
)

// Platform identifica a origem dos dados de anúncios
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
)

// SyncMode indica o tipo de janela que originou a sincronização
type SyncMode string

const (
	SyncModeHourly   SyncMode = "hourly"
	SyncModeBackfill SyncMode = "backfill"
	SyncModeManual   SyncMode = "manual"
)

// SyncWindow representa o intervalo de datas e o escopo de conta de uma
// sincronização. É um valor efêmero, criado a cada invocação e nunca persistido.
type SyncWindow struct {
	Platform     Platform
	AccountScope string
	StartDate    time.Time
	EndDate      time.Time
	Mode         SyncMode
}

// NewSyncWindow cria uma janela validada. As datas são truncadas para o dia.
func NewSyncWindow(platform Platform, scope string, start, end time.Time, mode SyncMode) (SyncWindow, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if start.After(end) {
		return SyncWindow{}, fmt.Errorf("janela inválida: data inicial %s posterior à data final %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return SyncWindow{
		Platform:     platform,
		AccountScope: scope,
		StartDate:    start,
		EndDate:      end,
		Mode:         mode,
	}, nil
}

// Days retorna a quantidade de dias cobertos pela janela, inclusiva
func (w SyncWindow) Days() int {
	return int(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}

// Split particiona a janela em sub-janelas sequenciais de no máximo maxDays
// dias, em ordem cronológica, sem lacunas nem sobreposição de datas.
func (w SyncWindow) Split(maxDays int) []SyncWindow {
	if maxDays <= 0 || w.Days() <= maxDays {
		return []SyncWindow{w}
	}

	windows := make([]SyncWindow, 0, (w.Days()+maxDays-1)/maxDays)
	current := w.StartDate
	for !current.After(w.EndDate) {
		end := current.AddDate(0, 0, maxDays-1)
		if end.After(w.EndDate) {
			end = w.EndDate
		}

		sub := w
		sub.StartDate = current
		sub.EndDate = end
		windows = append(windows, sub)

		current = end.AddDate(0, 0, 1)
	}

	return windows
}

// SameRange indica se duas janelas cobrem exatamente o mesmo intervalo de datas
func (w SyncWindow) SameRange(other SyncWindow) bool {
	return w.StartDate.Equal(other.StartDate) && w.EndDate.Equal(other.EndDate)
}

func (w SyncWindow) String() string {
	return fmt.Sprintf("%s..%s", w.StartDate.Format(time.DateOnly), w.EndDate.Format(time.DateOnly))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
