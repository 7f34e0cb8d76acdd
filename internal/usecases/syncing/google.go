package syncing

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	gadsdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/adsight/bi-ads-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/pkg/log"
	"github.com/adsight/bi-ads-api/pkg/utils"
)

const microsPerUnit = 1e6

type googleSyncService struct {
	client gadsclient.Client
	repo   repository.GoogleCampaignRepository
	cache  CacheInvalidator
	cfg    *config.Config
}

func NewGoogleSyncService(
	client gadsclient.Client,
	repo repository.GoogleCampaignRepository,
	cache CacheInvalidator,
	cfg *config.Config,
) GoogleSyncer {
	return &googleSyncService{
		client: client,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
	}
}

// Sync processa a janela em sub-janelas sequenciais; dentro de cada uma, os
// dias são buscados em paralelo com um pool limitado de workers
func (s *googleSyncService) Sync(ctx context.Context, opts Options) *domain.SyncResult {
	runID, _ := gonanoid.New(8)
	window := opts.Window

	customerID := window.AccountScope
	if customerID == "" {
		customerID = s.cfg.GoogleAds.CustomerID
	}

	logger := log.L.WithFields(log.Fields{
		"platform":   "google",
		"run_id":     runID,
		"account_id": customerID,
		"window":     window.String(),
	})

	if s.cfg.GoogleAds.AccessToken == "" || s.cfg.GoogleAds.DeveloperToken == "" || customerID == "" {
		logger.Warn("Sincronização abortada: credenciais do Google Ads ausentes")
		return domain.FailedSyncResultKind(domain.ErrKindAuth,
			"Credenciais do Google Ads ausentes: configure os tokens e o customer_id")
	}

	logger.Infof("Iniciando sincronização do Google Ads (%s)", window.Mode)

	subWindows := window.Split(s.cfg.GoogleSync.MaxDaysPerBatch)

	result := domain.NewSyncResult("", 0)
	successfulWindows := 0

	for _, sub := range subWindows {
		written, err := s.syncSubWindow(ctx, sub, customerID, opts, result)
		result.RecordsSynced += written

		if err != nil {
			logger.WithError(err).Errorf("Falha na sub-janela %s", sub)
			result.AddError(fmt.Sprintf("janela %s: %v", sub, err))
			continue
		}

		successfulWindows++

		if opts.Limit > 0 && result.RecordsSynced >= opts.Limit {
			logger.Infof("Limite de %d registros atingido; interrompendo", opts.Limit)
			break
		}
	}

	if successfulWindows == 0 {
		result.Success = false
		result.Message = "Sincronização do Google Ads falhou em todas as janelas"
		return result
	}

	s.cache.InvalidatePrefixes(ctx, GoogleCachePatterns)

	result.Success = true
	result.Message = fmt.Sprintf("Sincronização do Google Ads concluída: %d registros em %d de %d janelas",
		result.RecordsSynced, successfulWindows, len(subWindows))

	logger.WithField("records", result.RecordsSynced).Info(result.Message)
	return result
}

func (s *googleSyncService) syncSubWindow(
	ctx context.Context,
	sub domain.SyncWindow,
	customerID string,
	opts Options,
	result *domain.SyncResult,
) (int, error) {
	records, failures, err := s.fetchWindow(ctx, customerID, sub)
	if err != nil {
		return 0, err
	}

	// Cada dia com falha entra no desfecho, mesmo com a janela seguindo adiante
	for _, f := range failures {
		result.AddError(fmt.Sprintf("dia %s: %v", utils.FormatDate(f.day), f.err))
	}

	if opts.Limit > 0 {
		remaining := opts.Limit - result.RecordsSynced
		if remaining < 0 {
			remaining = 0
		}
		if len(records) > remaining {
			records = records[:remaining]
		}
	}

	if !opts.ClearExisting {
		return s.repo.InsertChunked(ctx, records)
	}

	if len(failures) == 0 {
		return s.repo.ReplaceWindow(ctx, records, sub.StartDate, sub.EndDate)
	}

	// Com falhas parciais, a limpeza pula os dias que não foram buscados:
	// os dados já gravados deles ficam intactos até uma busca bem-sucedida
	failed := make(map[string]bool, len(failures))
	for _, f := range failures {
		failed[utils.FormatDate(f.day)] = true
	}

	for _, day := range utils.DaysBetween(sub.StartDate, sub.EndDate) {
		if failed[utils.FormatDate(day)] {
			continue
		}
		if _, err := s.repo.DeleteByDateRange(ctx, day, day); err != nil {
			return 0, fmt.Errorf("erro ao limpar o dia %s: %w", utils.FormatDate(day), err)
		}
	}

	return s.repo.InsertChunked(ctx, records)
}

// dayFailure amarra um dia da janela ao erro da busca dele
type dayFailure struct {
	day time.Time
	err error
}

// fetchWindow dispara uma query GAQL por dia da sub-janela, em paralelo.
// A sub-janela só falha quando todos os dias falham.
func (s *googleSyncService) fetchWindow(
	ctx context.Context,
	customerID string,
	sub domain.SyncWindow,
) ([]*domain.GoogleCampaignRecord, []dayFailure, error) {
	days := utils.DaysBetween(sub.StartDate, sub.EndDate)

	maxWorkers := s.cfg.GoogleSync.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 8
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	records := make([]*domain.GoogleCampaignRecord, 0)
	failures := make([]dayFailure, 0)

	for _, day := range days {
		wg.Add(1)
		sem <- struct{}{}

		go func(day time.Time) {
			defer wg.Done()
			defer func() { <-sem }()

			rows, err := s.client.SearchCampaignMetrics(ctx, customerID, day)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				log.L.WithError(err).Warnf("Falha ao buscar campanhas do Google em %s", utils.FormatDate(day))
				failures = append(failures, dayFailure{day: day, err: err})
				return
			}

			records = append(records, s.buildRecords(rows, day)...)
		}(day)
	}

	wg.Wait()

	sort.Slice(failures, func(i, j int) bool {
		return failures[i].day.Before(failures[j].day)
	})

	if len(failures) == len(days) {
		return nil, nil, fmt.Errorf("todos os %d dias falharam: %w", len(days), failures[0].err)
	}

	if len(failures) > 0 {
		log.L.WithField("platform", "google").
			Warnf("Janela %s com %d dias sem dados por falha de busca", sub, len(failures))
	}

	// Ordenação estável por data para a escrita em chunks
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, failures, nil
}

// buildRecords converte as linhas GAQL nas linhas da tabela de fatos
func (s *googleSyncService) buildRecords(rows []gadsdomain.CampaignRow, day time.Time) []*domain.GoogleCampaignRecord {
	records := make([]*domain.GoogleCampaignRecord, 0, len(rows))

	for _, row := range rows {
		date := day
		if row.Segments.Date != "" {
			if parsed, err := time.Parse(time.DateOnly, row.Segments.Date); err == nil {
				date = parsed
			}
		}

		costMicros := utils.ParseFloat(row.Metrics.CostMicros)

		records = append(records, &domain.GoogleCampaignRecord{
			CampaignID:      row.Campaign.ID,
			CampaignName:    row.Campaign.Name,
			Impressions:     utils.ParseInt(row.Metrics.Impressions),
			Conversions:     utils.RoundWithTwoDecimalPlace(row.Metrics.Conversions),
			Cost:            utils.RoundWithTwoDecimalPlace(costMicros / microsPerUnit),
			Clicks:          utils.ParseInt(row.Metrics.Clicks),
			ConversionValue: utils.RoundWithTwoDecimalPlace(row.Metrics.ConversionsValue),
			Date:            date,
		})
	}

	return records
}
