package syncing

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
	"github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/fbclient"
	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/pkg/log"
	"github.com/adsight/bi-ads-api/pkg/utils"
)

// Tipos de ação do Graph API usados nas métricas derivadas
const (
	actionPurchase       = "omni_purchase"
	actionAddToCart      = "omni_add_to_cart"
	actionAddPaymentInfo = "add_payment_info"
	actionLinkClick      = "link_click"
)

type facebookSyncService struct {
	client   fbclient.Client
	resolver CreativeResolver
	repo     repository.FacebookAdRepository
	cache    CacheInvalidator
	cfg      *config.Config
}

func NewFacebookSyncService(
	client fbclient.Client,
	resolver CreativeResolver,
	repo repository.FacebookAdRepository,
	cache CacheInvalidator,
	cfg *config.Config,
) FacebookSyncer {
	return &facebookSyncService{
		client:   client,
		resolver: resolver,
		repo:     repo,
		cache:    cache,
		cfg:      cfg,
	}
}

// Sync processa a janela em sub-janelas sequenciais. Cada sub-janela passa
// por busca, enriquecimento e escrita; a falha de uma não interrompe as
// seguintes. Nada é escrito quando as credenciais estão ausentes.
func (s *facebookSyncService) Sync(ctx context.Context, opts Options) *domain.SyncResult {
	runID, _ := gonanoid.New(8)
	window := opts.Window
	accountID := window.AccountScope

	logger := log.L.WithFields(log.Fields{
		"platform":   "facebook",
		"run_id":     runID,
		"account_id": accountID,
		"window":     window.String(),
	})

	if s.cfg.Facebook.AccessToken == "" || accountID == "" {
		logger.Warn("Sincronização abortada: credenciais do Facebook ausentes")
		return domain.FailedSyncResultKind(domain.ErrKindAuth,
			"Credenciais do Facebook ausentes: configure o token de acesso e a conta")
	}

	logger.Infof("Iniciando sincronização do Facebook (%s)", window.Mode)

	subWindows := window.Split(s.cfg.FacebookSync.MaxDaysPerBatch)

	result := domain.NewSyncResult("", 0)
	successfulWindows := 0

	for _, sub := range subWindows {
		written, err := s.syncSubWindow(ctx, sub, accountID, opts, result)
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
		result.Message = "Sincronização do Facebook falhou em todas as janelas"
		return result
	}

	// Dados novos no banco: os agregados da plataforma precisam ser recalculados
	s.cache.InvalidatePrefixes(ctx, FacebookCachePatterns)

	result.Success = true
	result.Message = fmt.Sprintf("Sincronização do Facebook concluída: %d registros em %d de %d janelas",
		result.RecordsSynced, successfulWindows, len(subWindows))

	logger.WithField("records", result.RecordsSynced).Info(result.Message)
	return result
}

func (s *facebookSyncService) syncSubWindow(
	ctx context.Context,
	sub domain.SyncWindow,
	accountID string,
	opts Options,
	result *domain.SyncResult,
) (int, error) {
	insights, err := s.client.GetAccountInsights(ctx, accountID, sub.StartDate, sub.EndDate)
	if err != nil {
		return 0, err
	}

	records := s.buildRecords(insights, accountID)

	if opts.Limit > 0 {
		remaining := opts.Limit - result.RecordsSynced
		if remaining < 0 {
			remaining = 0
		}
		if len(records) > remaining {
			records = records[:remaining]
		}
	}

	s.enrich(ctx, records)

	if opts.ClearExisting {
		return s.repo.ReplaceWindow(ctx, records, sub.StartDate, sub.EndDate, accountID)
	}
	return s.repo.InsertChunked(ctx, records)
}

// buildRecords converte o payload do Graph API nas linhas da tabela de fatos
func (s *facebookSyncService) buildRecords(insights []fbdomain.AdInsight, accountID string) []*domain.FacebookAdRecord {
	records := make([]*domain.FacebookAdRecord, 0, len(insights))

	for _, insight := range insights {
		date, err := time.Parse(time.DateOnly, insight.DateStart)
		if err != nil {
			log.L.Warnf("Insight do anúncio %s com data inválida %q; ignorando", insight.AdID, insight.DateStart)
			continue
		}

		spend := utils.ParseFloat(insight.Spend)
		roas := utils.ParseFloat(fbdomain.ActionValueByType(insight.PurchaseRoas, actionPurchase))

		records = append(records, &domain.FacebookAdRecord{
			CampaignID:   insight.CampaignID,
			AdsetID:      insight.AdsetID,
			AdID:         insight.AdID,
			AccountID:    accountID,
			CampaignName: insight.CampaignName,
			AdsetName:    insight.AdsetName,
			AdName:       insight.AdName,
			Impressions:  utils.ParseInt(insight.Impressions),
			Spend:        spend,
			Clicks:       utils.ParseInt(insight.Clicks),
			PurchaseRoas: roas,
			// Valor de conversão derivado: gasto × ROAS, em duas casas
			PurchaseConversionValue: utils.RoundWithTwoDecimalPlace(spend * roas),
			Reach:                   utils.ParseInt(insight.Reach),
			UniqueLinkClicks:        utils.ParseInt(fbdomain.ActionValueByType(insight.UniqueActions, actionLinkClick)),
			AddsToCart:              utils.ParseInt(fbdomain.ActionValueByType(insight.Actions, actionAddToCart)),
			AddsPaymentInfo:         utils.ParseInt(fbdomain.ActionValueByType(insight.Actions, actionAddPaymentInfo)),
			Purchases:               utils.ParseInt(fbdomain.ActionValueByType(insight.Actions, actionPurchase)),
			Date:                    date,
		})
	}

	return records
}

// enrich preenche imagem e preview. O resolver deduplica os ad_ids, então um
// anúncio presente em vários dias gera um único lookup.
func (s *facebookSyncService) enrich(ctx context.Context, records []*domain.FacebookAdRecord) {
	if len(records) == 0 {
		return
	}

	adIDs := make([]string, 0, len(records))
	for _, rec := range records {
		adIDs = append(adIDs, rec.AdID)
	}

	infos := s.resolver.Resolve(ctx, adIDs)

	for _, rec := range records {
		info := infos[rec.AdID]
		rec.ImageURL = info.ImageURL
		rec.PreviewURL = info.PreviewURL
	}
}
