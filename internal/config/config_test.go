package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacebookAccountIDs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected []string
	}{
		{
			name:     "lista separada por vírgula com prefixo act_",
			cfg:      Config{Facebook: Facebook{AccountIDs: "act_111, 222 ,act_333"}},
			expected: []string{"111", "222", "333"},
		},
		{
			name:     "sem lista usa a conta única",
			cfg:      Config{Facebook: Facebook{AdAccountID: "act_999"}},
			expected: []string{"999"},
		},
		{
			name:     "sem contas configuradas",
			cfg:      Config{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.FacebookAccountIDs())
		})
	}
}

func TestStoreCurrentEReload(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := NewConfig()
	assert.NoError(t, err)
	assert.Equal(t, "info", cfg.App.LogLevel)

	store := NewStore(cfg)
	assert.Same(t, cfg, store.Current())

	// O reload lê o ambiente de novo e troca o snapshot; o anterior não muda
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GOOGLE_SYNC_ENABLED", "true")

	reloaded, err := store.Reload()
	assert.NoError(t, err)
	assert.Equal(t, "warn", reloaded.App.LogLevel)
	assert.True(t, reloaded.GoogleSync.Enabled)

	assert.Same(t, reloaded, store.Current())
	assert.Equal(t, "info", cfg.App.LogLevel)
}
