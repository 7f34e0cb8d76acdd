package domain

import (
	"errors"
	"fmt"
)

// SyncErrorKind classifica as falhas das integrações para decidir entre
// retry e propagação
type SyncErrorKind string

const (
	ErrKindAuth       SyncErrorKind = "auth"
	ErrKindRateLimit  SyncErrorKind = "rate_limit"
	ErrKindTransient  SyncErrorKind = "transient_network"
	ErrKindValidation SyncErrorKind = "validation"
)

// ErrLockUnavailable indica que outro processo já detém o lock do agendador.
// Não é uma falha: o chamador deve ficar ocioso.
var ErrLockUnavailable = errors.New("lock do agendador indisponível: outro processo está ativo")

// SyncError carrega a classificação de uma falha de integração
type SyncError struct {
	Kind SyncErrorKind
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Retryable indica se vale a pena repetir a operação que gerou o erro
func (e *SyncError) Retryable() bool {
	return e.Kind == ErrKindRateLimit || e.Kind == ErrKindTransient
}

func NewAuthError(err error) *SyncError {
	return &SyncError{Kind: ErrKindAuth, Err: err}
}

func NewRateLimitError(err error) *SyncError {
	return &SyncError{Kind: ErrKindRateLimit, Err: err}
}

func NewTransientError(err error) *SyncError {
	return &SyncError{Kind: ErrKindTransient, Err: err}
}

func NewValidationError(err error) *SyncError {
	return &SyncError{Kind: ErrKindValidation, Err: err}
}

// IsRetryable responde se err (em qualquer nível da cadeia) é transitório
func IsRetryable(err error) bool {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Retryable()
	}
	return false
}

// PartialWriteError indica que parte dos chunks foi confirmada antes da falha
type PartialWriteError struct {
	Committed int
	Total     int
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("escrita parcial: %d de %d registros confirmados: %v", e.Committed, e.Total, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
