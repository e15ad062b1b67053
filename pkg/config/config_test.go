package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:5000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, 1024, cfg.Session.CacheSize)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_LeeVariables(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", "8081")
	v.Set("BACKEND_BASE_URL", "https://ems.example.com/api/")
	v.Set("BACKEND_TIMEOUT_SECONDS", 5)
	v.Set("COOKIE_SECURE", true)
	v.Set("JWT_ROLE_CLAIM", "perfil")

	cfg := fromViper(v)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "https://ems.example.com/api", cfg.Backend.BaseURL, "se recorta la barra final")
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout())
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, "perfil", cfg.Claims.Role)
}

func TestValidate_HashKeyCortaEnProduccion(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.App.Env = "production"
	cfg.Cookie.HashKey = "corta"
	assert.Error(t, cfg.Validate())

	cfg.Cookie.HashKey = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BackendURL(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.Backend.BaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg.Backend.BaseURL = "ftp://ems"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BlockKeyLongitud(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.Cookie.BlockKey = "12345"
	assert.Error(t, cfg.Validate())

	cfg.Cookie.BlockKey = "0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ClavePorDefectoFueraDeDevelopment(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	cfg := fromViper(v)

	err := cfg.Validate()
	require.Error(t, err, "sin COOKIE_HASH_KEY no arranca en producción")
	assert.Contains(t, err.Error(), "COOKIE_HASH_KEY")

	cfg.App.Env = "development"
	assert.NoError(t, cfg.Validate(), "en development se acepta la clave por defecto")
}

func TestLoad_ProduccionSinClave(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_HASH_KEY", devCookieHashKey)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Error(t, cfg.Validate())

	t.Setenv("COOKIE_HASH_KEY", "0123456789abcdef0123456789abcdef-prod")
	cfg, err = Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
