package fbclient

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	pkgerrors "github.com/pkg/errors"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
)

const previewAdFormat = "DESKTOP_FEED_STANDARD"

// GetAdCreative busca as URLs de imagem do criativo de um anúncio
func (c *FacebookClient) GetAdCreative(ctx context.Context, adID string) (*fbdomain.Creative, error) {
	params := url.Values{}
	params.Set("fields", "creative{id,image_url,thumbnail_url}")
	params.Set("access_token", c.cfg.Facebook.AccessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Facebook.URL, adID, params.Encode())

	payload, err := c.doRequest(ctx, "GET", requestURL, "")
	if err != nil {
		return nil, err
	}

	var response fbdomain.AdWithCreative
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao decodificar criativo do Graph API")
	}

	return response.Creative, nil
}

// GetAdPreview busca a URL de pré-visualização do anúncio. O Graph API
// devolve um iframe; extraímos o src dele.
func (c *FacebookClient) GetAdPreview(ctx context.Context, adID string) (string, error) {
	params := url.Values{}
	params.Set("ad_format", previewAdFormat)
	params.Set("access_token", c.cfg.Facebook.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/previews?%s", c.cfg.Facebook.URL, adID, params.Encode())

	payload, err := c.doRequest(ctx, "GET", requestURL, "")
	if err != nil {
		return "", err
	}

	var response fbdomain.PreviewsResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return "", pkgerrors.Wrap(err, "erro ao decodificar preview do Graph API")
	}

	if len(response.Data) == 0 {
		return "", nil
	}

	return ExtractPreviewURL(response.Data[0].Body), nil
}

var iframeSrcPattern = regexp.MustCompile(`src="([^"]+)"`)

// ExtractPreviewURL extrai o src do iframe devolvido pelo endpoint de previews
func ExtractPreviewURL(body string) string {
	match := iframeSrcPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return ""
	}
	return strings.ReplaceAll(match[1], "&amp;", "&")
}
