package fbclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
	"github.com/adsight/bi-ads-api/pkg/log"
)

const insightsPageSize = 500

var insightFields = []string{
	"campaign_id", "campaign_name",
	"adset_id", "adset_name",
	"ad_id", "ad_name",
	"impressions", "spend", "clicks", "reach",
	"actions", "unique_actions", "purchase_roas",
	"date_start", "date_stop",
}

// GetAccountInsights busca as métricas da conta no nível de anúncio, uma
// linha por anúncio por dia, considerando apenas anúncios com gasto
func (c *FacebookClient) GetAccountInsights(
	ctx context.Context,
	accountID string,
	startDate, endDate time.Time,
) ([]fbdomain.AdInsight, error) {
	params := url.Values{}
	params.Set("level", "ad")
	params.Set("time_increment", "1")
	params.Set("limit", fmt.Sprintf("%d", insightsPageSize))
	params.Set("fields", strings.Join(insightFields, ","))
	params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)))
	params.Set("filtering", `[{"field":"spend","operator":"GREATER_THAN","value":0}]`)
	params.Set("access_token", c.cfg.Facebook.AccessToken)

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.cfg.Facebook.URL, accountID, params.Encode())

	insights := make([]fbdomain.AdInsight, 0)
	for requestURL != "" {
		payload, err := c.doRequest(ctx, "GET", requestURL, "")
		if err != nil {
			return nil, err
		}

		var response fbdomain.InsightsResponse
		if err := json.Unmarshal(payload, &response); err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao decodificar insights do Graph API")
		}

		insights = append(insights, response.Data...)

		// O Graph API pagina com uma URL completa em paging.next
		requestURL = response.Paging.Next
	}

	log.L.WithFields(log.Fields{
		"platform":   "facebook",
		"account_id": accountID,
		"records":    len(insights),
	}).Debug("Insights da conta carregados")

	return insights, nil
}
