package wire

import (
	"Brightline/internal/api/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApplication_RejectsWeakJWTSecret(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Auth:   config.AuthConfig{JWTSecret: ""},
	}
	app, err := BuildApplication(nil, nil, nil, nil, cfg)
	require.ErrorIs(t, err, config.ErrJWTSecretMissing)
	assert.Nil(t, app)

	cfg.Auth.JWTSecret = config.DefaultJWTSecret
	_, err = BuildApplication(nil, nil, nil, nil, cfg)
	assert.ErrorIs(t, err, config.ErrJWTSecretInsecure)
}
