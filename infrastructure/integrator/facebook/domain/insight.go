package domain

// ActionValue é o par tipo/valor usado pelo Graph API em actions,
// unique_actions e purchase_roas
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight é uma linha de métricas de anúncio retornada pelo endpoint de
// insights com level=ad e time_increment=1 (uma linha por anúncio por dia)
type AdInsight struct {
	CampaignID    string        `json:"campaign_id"`
	CampaignName  string        `json:"campaign_name"`
	AdsetID       string        `json:"adset_id"`
	AdsetName     string        `json:"adset_name"`
	AdID          string        `json:"ad_id"`
	AdName        string        `json:"ad_name"`
	Impressions   string        `json:"impressions"`
	Spend         string        `json:"spend"`
	Clicks        string        `json:"clicks"`
	Reach         string        `json:"reach"`
	Actions       []ActionValue `json:"actions"`
	UniqueActions []ActionValue `json:"unique_actions"`
	PurchaseRoas  []ActionValue `json:"purchase_roas"`
	DateStart     string        `json:"date_start"`
	DateStop      string        `json:"date_stop"`
}

// ActionValueByType procura o valor de um action_type na lista; ausente vira vazio
func ActionValueByType(actions []ActionValue, actionType string) string {
	for _, action := range actions {
		if action.ActionType == actionType {
			return action.Value
		}
	}
	return ""
}

// InsightsResponse é o envelope paginado do endpoint de insights
type InsightsResponse struct {
	Data   []AdInsight `json:"data"`
	Paging Paging      `json:"paging"`
}

type Paging struct {
	Next string `json:"next"`
}
