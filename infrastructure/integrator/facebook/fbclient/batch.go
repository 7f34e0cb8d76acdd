package fbclient

import (
	"context"
	"fmt"
	"net/url"

	pkgerrors "github.com/pkg/errors"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
)

// maxBatchSize é o limite do Graph API para requisições em lote
const maxBatchSize = 50

// ExecuteBatch envia várias sub-requisições em uma chamada só. A resposta é
// alinhada por posição: response[i] corresponde a requests[i].
func (c *FacebookClient) ExecuteBatch(ctx context.Context, requests []fbdomain.BatchRequest) ([]fbdomain.BatchResponse, error) {
	if len(requests) == 0 {
		return nil, nil
	}
	if len(requests) > maxBatchSize {
		return nil, fmt.Errorf("lote com %d requisições excede o limite de %d do Graph API", len(requests), maxBatchSize)
	}

	batchJSON, err := json.Marshal(requests)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao serializar o lote")
	}

	form := url.Values{}
	form.Set("access_token", c.cfg.Facebook.AccessToken)
	form.Set("batch", string(batchJSON))

	payload, err := c.doRequest(ctx, "POST", c.cfg.Facebook.URL, form.Encode())
	if err != nil {
		return nil, err
	}

	var responses []fbdomain.BatchResponse
	if err := json.Unmarshal(payload, &responses); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao decodificar a resposta do lote")
	}

	if len(responses) != len(requests) {
		return nil, fmt.Errorf("lote devolveu %d respostas para %d requisições", len(responses), len(requests))
	}

	return responses, nil
}
