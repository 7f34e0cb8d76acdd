package domain

import "time"

// GoogleCampaignRecord é uma linha da tabela fact_google_campaigns: métricas
// de uma campanha em um dia
type GoogleCampaignRecord struct {
	CampaignID      string    `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	Impressions     int64     `json:"impressions"`
	Conversions     float64   `json:"conversions"`
	Cost            float64   `json:"cost"`
	Clicks          int64     `json:"clicks"`
	ConversionValue float64   `json:"conversion_value"`
	Date            time.Time `json:"date"`
}
