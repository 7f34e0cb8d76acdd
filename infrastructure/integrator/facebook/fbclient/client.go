package fbclient

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

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
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
	GetAccountInsights(ctx context.Context, accountID string, startDate, endDate time.Time) ([]fbdomain.AdInsight, error)
	GetAdCreative(ctx context.Context, adID string) (*fbdomain.Creative, error)
	GetAdPreview(ctx context.Context, adID string) (string, error)
	ExecuteBatch(ctx context.Context, requests []fbdomain.BatchRequest) ([]fbdomain.BatchResponse, error)
}

type FacebookClient struct {
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

	if cfg.Facebook.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Facebook.ProxyURL)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "URL de proxy do Facebook inválida")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &FacebookClient{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
		// O Graph API tolera poucas chamadas por segundo por conta
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}, nil
}

// doRequest executa a requisição respeitando o limitador local e repetindo
// em caso de rate limit (backoff exponencial) ou erro 5xx (espera linear).
// Erros de autenticação e validação nunca são repetidos.
func (c *FacebookClient) doRequest(ctx context.Context, method, rawURL string, body string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetryAttempts; attempt++ {
		if attempt > 0 {
			wait := c.backoffFor(lastErr, attempt)
			log.L.WithField("platform", "facebook").
				Warnf("Repetindo requisição ao Graph API em %s (tentativa %d/%d): %v", wait, attempt+1, maxRetryAttempts, lastErr)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var reqBody io.Reader
		if body != "" {
			reqBody = strings.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao criar a requisição")
		}
		if body != "" {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = domain.NewTransientError(pkgerrors.Wrap(err, "erro ao fazer a requisição ao Graph API"))
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

func (c *FacebookClient) backoffFor(err error, attempt int) time.Duration {
	if domain.IsRetryable(err) {
		var syncErr *domain.SyncError
		if pkgerrors.As(err, &syncErr) && syncErr.Kind == domain.ErrKindRateLimit {
			wait := time.Duration(1<<uint(attempt)) * 2 * time.Second
			if wait > maxRateLimitWait {
				wait = maxRateLimitWait
			}
			return wait
		}
	}
	return serverErrorWait
}

func (c *FacebookClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransientError(pkgerrors.Wrap(err, "erro ao ler o corpo da resposta"))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return payload, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.NewRateLimitError(fmt.Errorf("Graph API devolveu 429"))
	}

	var errResp fbdomain.ErrorResponse
	if err := json.Unmarshal(payload, &errResp); err == nil && errResp.Error != nil {
		graphErr := errResp.Error
		wrapped := fmt.Errorf("Graph API code=%d subcode=%d: %s", graphErr.Code, graphErr.ErrorSubcode, graphErr.Message)

		switch {
		case graphErr.IsRateLimit():
			return nil, domain.NewRateLimitError(wrapped)
		case graphErr.IsAuth():
			return nil, domain.NewAuthError(wrapped)
		}

		if resp.StatusCode >= 500 {
			return nil, domain.NewTransientError(wrapped)
		}
		return nil, domain.NewValidationError(wrapped)
	}

	if resp.StatusCode >= 500 {
		return nil, domain.NewTransientError(fmt.Errorf("Graph API devolveu %d", resp.StatusCode))
	}

	return nil, domain.NewValidationError(fmt.Errorf("Graph API devolveu %d: %s", resp.StatusCode, string(payload)))
}
