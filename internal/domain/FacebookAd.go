package domain

import "time"

// FacebookAdRecord é uma linha da tabela fact_facebook_ads: métricas de um
// anúncio em um dia, já enriquecidas com o criativo
type FacebookAdRecord struct {
	CampaignID              string    `json:"campaign_id"`
	AdsetID                 string    `json:"adset_id"`
	AdID                    string    `json:"ad_id"`
	AccountID               string    `json:"account_id"`
	CampaignName            string    `json:"campaign_name"`
	AdsetName               string    `json:"adset_name"`
	AdName                  string    `json:"ad_name"`
	Impressions             int64     `json:"impressions"`
	Spend                   float64   `json:"spend"`
	Clicks                  int64     `json:"clicks"`
	PurchaseRoas            float64   `json:"purchase_roas"`
	PurchaseConversionValue float64   `json:"purchase_conversion_value"`
	Reach                   int64     `json:"reach"`
	UniqueLinkClicks        int64     `json:"unique_link_clicks"`
	AddsToCart              int64     `json:"adds_to_cart"`
	AddsPaymentInfo         int64     `json:"adds_payment_info"`
	Purchases               int64     `json:"purchases"`
	ImageURL                string    `json:"image_url"`
	PreviewURL              string    `json:"preview_url"`
	Date                    time.Time `json:"date"`
}
