package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Auth    AuthConfig
	Company entity.CompanyProfile
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// BackendConfig configuración del backend externo al que se reenvían las peticiones.
//
// ReadTimeout aplica a GET/HEAD; WriteTimeout a POST/PUT/PATCH/DELETE.
// FetchLimit acota las colecciones que descargan los reportes (órdenes, clientes, etc.).
type BackendConfig struct {
	BaseURL      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	FetchLimit   int
}

// AuthConfig configuración de autenticación del proxy.
// Si JWTSecret está vacío solo se exige la presencia del Bearer token;
// si está definido, la firma HS256 se valida localmente.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "panel-comercial"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:      getString(v, "BACKEND_URL", "http://localhost:3001/api"),
			ReadTimeout:  time.Duration(getInt(v, "BACKEND_READ_TIMEOUT_MS", 5000)) * time.Millisecond,
			WriteTimeout: time.Duration(getInt(v, "BACKEND_WRITE_TIMEOUT_MS", 10000)) * time.Millisecond,
			FetchLimit:   getInt(v, "REPORT_FETCH_LIMIT", 1000),
		},
		Auth: AuthConfig{
			JWTSecret: getString(v, "AUTH_JWT_SECRET", ""),
			Issuer:    getString(v, "AUTH_JWT_ISSUER", "panel-comercial"),
		},
		Company: entity.CompanyProfile{
			Name:    getString(v, "COMPANY_NAME", "Mi Empresa"),
			TaxID:   getString(v, "COMPANY_TAX_ID", ""),
			Address: getString(v, "COMPANY_ADDRESS", ""),
			Phone:   getString(v, "COMPANY_PHONE", ""),
			Email:   getString(v, "COMPANY_EMAIL", ""),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_URL es requerido")
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
