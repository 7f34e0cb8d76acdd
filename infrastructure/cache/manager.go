package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTTL é o TTL aplicado no Redis quando o chamador não especifica um
const DefaultTTL = 30 * time.Minute

// Stats resume o estado das duas camadas do cache
type Stats struct {
	MemoryEntries int   `json:"memory_entries"`
	MemoryHits    int64 `json:"memory_hits"`
	MemoryMisses  int64 `json:"memory_misses"`
	RedisEnabled  bool  `json:"redis_enabled"`
	RedisHealthy  bool  `json:"redis_healthy"`
	RedisKeys     int64 `json:"redis_keys"`
}

// Manager é o cache de duas camadas: L1 em memória (pequeno, TTL curto) e
// L2 Redis compartilhado entre instâncias. O Redis é opcional: quando
// indisponível, o manager degrada para L1 com um aviso, nunca com erro.
type Manager struct {
	memory *MemoryCache
	rdb    *redis.Client
}

func NewManager(cfg config.Redis) *Manager {
	m := &Manager{
		memory: NewMemoryCache(defaultMemoryMaxEntries, defaultMemoryTTL),
	}

	if !cfg.Enabled {
		log.L.Info("Redis desabilitado na configuração: cache operando apenas em memória")
		return m
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.L.WithError(err).Warn("Redis inacessível na inicialização: cache operando apenas em memória")
	}

	m.rdb = rdb
	return m
}

// Get procura a chave na L1 e depois na L2, promovendo acertos da L2 para a
// L1. Retorna false quando a chave não existe em nenhuma camada.
func (m *Manager) Get(ctx context.Context, key string, dest interface{}) bool {
	if raw, ok := m.memory.Get(key); ok {
		if err := json.Unmarshal(raw, dest); err == nil {
			return true
		}
		m.memory.Delete(key)
	}

	if m.rdb == nil {
		return false
	}

	raw, err := m.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.L.WithError(err).Warn("Falha ao ler do Redis: seguindo apenas com o cache em memória")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.L.WithError(err).Warnf("Valor corrompido no cache para a chave %s", key)
		return false
	}

	m.memory.Set(key, raw)
	return true
}

// Set grava nas duas camadas. O TTL vale para o Redis; a L1 usa o próprio
// TTL curto dela.
func (m *Manager) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.L.WithError(err).Warnf("Falha ao serializar valor para a chave %s", key)
		return
	}

	m.memory.Set(key, raw)

	if m.rdb == nil {
		return
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if err := m.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.L.WithError(err).Warn("Falha ao gravar no Redis: valor mantido apenas em memória")
	}
}

// Invalidate remove das duas camadas as chaves que casam com o padrão.
// Retorna quantas chaves foram removidas no total.
func (m *Manager) Invalidate(ctx context.Context, pattern string) int {
	removed := m.memory.DeletePattern(pattern)

	if m.rdb == nil {
		return removed
	}

	iter := m.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.L.WithError(err).Warnf("Falha ao varrer o Redis com o padrão %s", pattern)
		return removed
	}

	if len(keys) > 0 {
		deleted, err := m.rdb.Del(ctx, keys...).Result()
		if err != nil {
			log.L.WithError(err).Warn("Falha ao remover chaves do Redis")
			return removed
		}
		removed += int(deleted)
	}

	return removed
}

// InvalidatePrefixes aplica a lista de padrões de uma plataforma após uma
// sincronização bem-sucedida
func (m *Manager) InvalidatePrefixes(ctx context.Context, patterns []string) int {
	total := 0
	for _, pattern := range patterns {
		total += m.Invalidate(ctx, pattern)
	}

	log.L.WithField("records", total).Debugf("Invalidação de cache concluída para %d padrões", len(patterns))
	return total
}

// FlushAll limpa as duas camadas por completo
func (m *Manager) FlushAll(ctx context.Context) error {
	m.memory.Flush()

	if m.rdb == nil {
		return nil
	}

	if err := m.rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("erro ao limpar o Redis: %w", err)
	}
	return nil
}

// Stats coleta contadores das duas camadas
func (m *Manager) Stats(ctx context.Context) Stats {
	hits, misses := m.memory.Counters()

	stats := Stats{
		MemoryEntries: m.memory.Len(),
		MemoryHits:    hits,
		MemoryMisses:  misses,
		RedisEnabled:  m.rdb != nil,
	}

	if m.rdb != nil {
		if size, err := m.rdb.DBSize(ctx).Result(); err == nil {
			stats.RedisHealthy = true
			stats.RedisKeys = size
		}
	}

	return stats
}
