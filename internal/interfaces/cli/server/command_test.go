package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervia/internal/infrastructure/config"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"development", "debug"},
		{"dev", "debug"},
		{"", "debug"},
		{"anything-else", "debug"},
		{"test", "test"},
		{"testing", "test"},
		{"production", "release"},
		{"prod", "release"},
		{"release", "release"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapEnvToGinMode(tt.env), "env %q", tt.env)
	}
}

func TestStartupModeIsValidGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	// Load keeps the raw env name in server.mode, which gin rejects. The
	// server command must replace it with the mapped mode before SetMode.
	for _, env := range []string{"development", "production", "test"} {
		cfg, err := config.Load(env)
		require.NoError(t, err)
		assert.Equal(t, env, cfg.Server.Mode)

		cfg.Server.Mode = mapEnvToGinMode(env)
		assert.NotPanics(t, func() { gin.SetMode(cfg.Server.Mode) })
	}
}
