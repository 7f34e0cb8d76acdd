package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDateRange    = "VAL_004" // Intervalo de datas inválido

	// Erros de sincronização (3000-3999)
	ErrSyncInProgress     = "SYNC_001" // Sincronização já em andamento
	ErrSyncNotEnabled     = "SYNC_002" // Sincronização desabilitada na configuração
	ErrUnknownSyncType    = "SYNC_003" // Tipo de sincronização desconhecido
	ErrVendorIntegration  = "SYNC_004" // Falha na API do fornecedor de anúncios
	ErrMissingCredentials = "SYNC_005" // Credenciais da integração ausentes

	// Erros de cache (4000-4999)
	ErrCacheUnavailable = "CACHE_001" // Cache indisponível

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrSyncInProgress:        http.StatusConflict,
	ErrSyncNotEnabled:        http.StatusConflict,
	ErrUnknownSyncType:       http.StatusNotFound,
	ErrVendorIntegration:     http.StatusBadGateway,
	ErrMissingCredentials:    http.StatusUnprocessableEntity,
	ErrCacheUnavailable:      http.StatusServiceUnavailable,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
