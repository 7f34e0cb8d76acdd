package gadsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/time/rate"

	gadsdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxRetryAttempts = 3
	maxRateLimitWait = 60 * time.Second
	serverErrorWait  = 2 * time.Second
)

type Client interface {
	SearchCampaignMetrics(ctx context.Context, customerID string, date time.Time) ([]gadsdomain.CampaignRow, error)
}

type GoogleAdsClient struct {
	cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) (Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	if cfg.GoogleAds.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.GoogleAds.ProxyURL)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "URL de proxy do Google Ads inválida")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &GoogleAdsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}, nil
}

const campaignMetricsQuery = `
	SELECT
		campaign.id,
		campaign.name,
		segments.date,
		metrics.impressions,
		metrics.clicks,
		metrics.cost_micros,
		metrics.conversions,
		metrics.conversions_value
	FROM campaign
	WHERE segments.date = '%s'
		AND campaign.status != 'REMOVED'`

// SearchCampaignMetrics executa a query GAQL de campanhas para um único dia
func (c *GoogleAdsClient) SearchCampaignMetrics(
	ctx context.Context,
	customerID string,
	date time.Time,
) ([]gadsdomain.CampaignRow, error) {
	query := fmt.Sprintf(campaignMetricsQuery, date.Format(time.DateOnly))

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao serializar a query GAQL")
	}

	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.cfg.GoogleAds.URL, customerID)

	payload, err := c.doRequest(ctx, requestURL, string(body))
	if err != nil {
		return nil, err
	}

	// O searchStream devolve um array de lotes de resultados
	var batches []gadsdomain.SearchStreamBatch
	if err := json.Unmarshal(payload, &batches); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao decodificar a resposta do searchStream")
	}

	rows := make([]gadsdomain.CampaignRow, 0)
	for _, batch := range batches {
		rows = append(rows, batch.Results...)
	}

	return rows, nil
}

// doRequest executa a chamada respeitando o limitador e repetindo apenas
// falhas transitórias, com backoff exponencial para rate limit
func (c *GoogleAdsClient) doRequest(ctx context.Context, rawURL, body string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetryAttempts; attempt++ {
		if attempt > 0 {
			wait := c.backoffFor(lastErr, attempt)
			log.L.WithField("platform", "google").
				Warnf("Repetindo requisição ao Google Ads em %s (tentativa %d/%d): %v", wait, attempt+1, maxRetryAttempts, lastErr)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, "POST", rawURL, strings.NewReader(body))
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.GoogleAds.AccessToken)
		req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = domain.NewTransientError(pkgerrors.Wrap(err, "erro ao fazer a requisição ao Google Ads"))
			continue
		}

		payload, err := c.handleResponse(resp)
		if err == nil {
			return payload, nil
		}

		lastErr = err
		if !domain.IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *GoogleAdsClient) backoffFor(err error, attempt int) time.Duration {
	var syncErr *domain.SyncError
	if pkgerrors.As(err, &syncErr) && syncErr.Kind == domain.ErrKindRateLimit {
		wait := time.Duration(1<<uint(attempt)) * 2 * time.Second
		if wait > maxRateLimitWait {
			wait = maxRateLimitWait
		}
		return wait
	}
	return serverErrorWait
}

func (c *GoogleAdsClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransientError(pkgerrors.Wrap(err, "erro ao ler o corpo da resposta"))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return payload, nil
	}

	message := parseErrorMessage(payload)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.NewRateLimitError(fmt.Errorf("Google Ads devolveu 429: %s", message))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.NewAuthError(fmt.Errorf("Google Ads devolveu %d: %s", resp.StatusCode, message))
	case resp.StatusCode >= 500:
		return nil, domain.NewTransientError(fmt.Errorf("Google Ads devolveu %d: %s", resp.StatusCode, message))
	}

	return nil, domain.NewValidationError(fmt.Errorf("Google Ads devolveu %d: %s", resp.StatusCode, message))
}

func parseErrorMessage(payload []byte) string {
	// O searchStream às vezes devolve o erro dentro de um array
	var list []gadsdomain.ErrorResponse
	if err := json.Unmarshal(payload, &list); err == nil && len(list) > 0 && list[0].Error != nil {
		return list[0].Error.Message
	}

	var single gadsdomain.ErrorResponse
	if err := json.Unmarshal(payload, &single); err == nil && single.Error != nil {
		return single.Error.Message
	}

	return string(payload)
}
