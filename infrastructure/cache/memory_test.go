package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := NewMemoryCache(10, time.Minute)

	_, ok := c.Get("inexistente")
	assert.False(t, ok)

	c.Set("facebook:overview:123", []byte(`{"spend":10}`))

	got, ok := c.Get("facebook:overview:123")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"spend":10}`), got)

	hits, misses := c.Counters()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestMemoryCacheExpiracao(t *testing.T) {
	c := NewMemoryCache(10, time.Minute)

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("chave", []byte("valor"))

	// Dentro do TTL a chave existe
	_, ok := c.Get("chave")
	assert.True(t, ok)

	// Após o TTL a chave expira
	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, ok = c.Get("chave")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCacheLimiteDeEntradas(t *testing.T) {
	c := NewMemoryCache(5, time.Minute)

	for i := 0; i < 20; i++ {
		c.Set(fmt.Sprintf("chave:%d", i), []byte("v"))
	}

	// O cache nunca ultrapassa o limite configurado
	assert.LessOrEqual(t, c.Len(), 5)

	// A última chave gravada sempre permanece
	_, ok := c.Get("chave:19")
	assert.True(t, ok)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	c := NewMemoryCache(50, time.Minute)

	c.Set("facebook:impressions:123", []byte("a"))
	c.Set("facebook:impressions:456", []byte("b"))
	c.Set("facebook:overview:123", []byte("c"))
	c.Set("google:campaigns:7", []byte("d"))

	removed := c.DeletePattern("facebook:impressions*")
	assert.Equal(t, 2, removed)

	_, ok := c.Get("facebook:overview:123")
	assert.True(t, ok)
	_, ok = c.Get("google:campaigns:7")
	assert.True(t, ok)
	_, ok = c.Get("facebook:impressions:123")
	assert.False(t, ok)
}
