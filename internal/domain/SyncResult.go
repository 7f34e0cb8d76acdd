package domain

// SyncResult é o desfecho de uma sincronização. Falhas de negócio são
// reportadas aqui dentro, nunca como erro da chamada.
type SyncResult struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	RecordsSynced int      `json:"records_synced"`
	Errors        []string `json:"errors,omitempty"`

	// FailureKind classifica a falha para a camada HTTP escolher o código de
	// erro; não faz parte do envelope
	FailureKind SyncErrorKind `json:"-"`
}

func NewSyncResult(message string, records int) *SyncResult {
	return &SyncResult{
		Success:       true,
		Message:       message,
		RecordsSynced: records,
		Errors:        make([]string, 0),
	}
}

func FailedSyncResult(message string, errs ...string) *SyncResult {
	return &SyncResult{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

// FailedSyncResultKind marca a falha com a classificação do erro que a causou
func FailedSyncResultKind(kind SyncErrorKind, message string, errs ...string) *SyncResult {
	result := FailedSyncResult(message, errs...)
	result.FailureKind = kind
	return result
}

// AddError registra uma falha parcial sem interromper a sincronização
func (r *SyncResult) AddError(err string) {
	r.Errors = append(r.Errors, err)
}
