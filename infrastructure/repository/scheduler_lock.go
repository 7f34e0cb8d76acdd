package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/adsight/bi-ads-api/infrastructure/database/postgres"
	"github.com/adsight/bi-ads-api/pkg/log"
)

// SchedulerLock garante que apenas um processo execute o laço de sincronização
// de uma plataforma. Implementado com advisory lock de sessão do Postgres:
// o lock vive enquanto a conexão dedicada viver, então a morte do processo
// o libera automaticamente.
type SchedulerLock interface {
	TryAcquire(ctx context.Context, name string) (bool, error)
	Release(ctx context.Context) error
}

type schedulerLock struct {
	conn postgres.Conn

	mu      sync.Mutex
	session *sql.Conn
	name    string
}

func NewSchedulerLock(conn postgres.Conn) SchedulerLock {
	return &schedulerLock{conn: conn}
}

// TryAcquire tenta obter o lock sem bloquear. Retorna false quando outro
// processo já o detém; isso não é um erro.
func (l *schedulerLock) TryAcquire(ctx context.Context, name string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session != nil {
		return false, fmt.Errorf("lock %q já adquirido por esta instância", l.name)
	}

	session, err := l.conn.SessionConn(ctx)
	if err != nil {
		return false, fmt.Errorf("erro ao obter conexão dedicada: %w", err)
	}

	var acquired bool
	err = session.QueryRowContext(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", name).Scan(&acquired)
	if err != nil {
		_ = session.Close()
		return false, fmt.Errorf("erro ao tentar advisory lock: %w", err)
	}

	if !acquired {
		_ = session.Close()
		return false, nil
	}

	l.session = session
	l.name = name

	log.L.WithField("platform", name).Info("Lock do agendador adquirido")
	return true, nil
}

// Release solta o lock e devolve a conexão dedicada à pool
func (l *schedulerLock) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session == nil {
		return nil
	}

	var released bool
	err := l.session.QueryRowContext(ctx, "SELECT pg_advisory_unlock(hashtext($1))", l.name).Scan(&released)

	closeErr := l.session.Close()
	l.session = nil

	if err != nil {
		return fmt.Errorf("erro ao liberar advisory lock: %w", err)
	}
	if !released {
		log.L.WithField("platform", l.name).Warn("Advisory lock não estava detido por esta sessão")
	}

	return closeErr
}
