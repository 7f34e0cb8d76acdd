package domain

// ErrorResponse é o envelope de erro do Graph API
type ErrorResponse struct {
	Error *GraphError `json:"error"`
}

type GraphError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FBTraceID    string `json:"fbtrace_id"`
}

// Códigos do Graph API que indicam limite de requisições atingido
func (e *GraphError) IsRateLimit() bool {
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}
	return false
}

// Código 190: token inválido ou expirado
func (e *GraphError) IsAuth() bool {
	return e.Code == 190 || e.Type == "OAuthException"
}

// BatchRequest é um item do corpo da requisição em lote do Graph API
type BatchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

// BatchResponse é o item correspondente da resposta: response[i] casa com
// request[i] pela posição
type BatchResponse struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}
