package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del front-end (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Cookie  CookieConfig
	Session SessionConfig
	Claims  ClaimsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsDevelopment indica si se corre en entorno local.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig API REST del EMS (colaborador externo).
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el límite por llamada al backend.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// devCookieHashKey clave de firma por defecto; solo vale en development.
const devCookieHashKey = "dev-only-hash-key-change-me-0123456789"

// CookieConfig claves de firma/cifrado de las cookies de sesión.
type CookieConfig struct {
	HashKey  string // mínimo 32 bytes fuera de development
	BlockKey string // opcional: 16, 24 o 32 bytes para cifrar (AES)
	Secure   bool
}

// SessionConfig tamaño de la caché de sesiones derivadas.
type SessionConfig struct {
	CacheSize int
}

// ClaimsConfig permite sobreescribir los nombres de claim del token.
type ClaimsConfig struct {
	Role    string
	Name    string
	Subject string
	Email   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, COOKIE_HASH_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ems-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:5000/api"), "/"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Cookie: CookieConfig{
			HashKey:  getString(v, "COOKIE_HASH_KEY", devCookieHashKey),
			BlockKey: getString(v, "COOKIE_BLOCK_KEY", ""),
			Secure:   getBool(v, "COOKIE_SECURE", false),
		},
		Session: SessionConfig{
			CacheSize: getInt(v, "SESSION_CACHE_SIZE", 1024),
		},
		Claims: ClaimsConfig{
			Role:    getString(v, "JWT_ROLE_CLAIM", ""),
			Name:    getString(v, "JWT_NAME_CLAIM", ""),
			Subject: getString(v, "JWT_SUBJECT_CLAIM", ""),
			Email:   getString(v, "JWT_EMAIL_CLAIM", ""),
		},
	}
}

// Validate rechaza configuraciones que no permiten arrancar.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL es requerido")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("config: BACKEND_BASE_URL debe ser http(s): %q", c.Backend.BaseURL)
	}
	if !c.App.IsDevelopment() {
		if c.Cookie.HashKey == devCookieHashKey {
			return fmt.Errorf("config: COOKIE_HASH_KEY es obligatorio fuera de development")
		}
		if len(c.Cookie.HashKey) < 32 {
			return fmt.Errorf("config: COOKIE_HASH_KEY debe tener al menos 32 bytes")
		}
	}
	switch len(c.Cookie.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("config: COOKIE_BLOCK_KEY debe tener 16, 24 o 32 bytes")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
