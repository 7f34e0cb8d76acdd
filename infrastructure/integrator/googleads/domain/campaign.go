package domain

// CampaignRow é um resultado do searchStream com a query de campanhas.
// No transporte REST os int64 chegam como string.
type CampaignRow struct {
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
	Segments Segments `json:"segments"`
}

type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
}

type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type Segments struct {
	Date string `json:"date"`
}

// SearchStreamBatch é um elemento do array que o searchStream devolve
type SearchStreamBatch struct {
	Results []CampaignRow `json:"results"`
}

// ErrorResponse é o envelope de erro da API REST do Google Ads
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
