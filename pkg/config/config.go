package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Log   LogConfig
	Mongo MongoConfig
	Redis RedisConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria del negocio, define qué es "hoy" en el dashboard
}

// Location resuelve la zona horaria configurada. Si el nombre no es válido se usa UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// MongoConfig conexión al almacén de documentos.
type MongoConfig struct {
	URI            string
	Database       string
	TimeoutSeconds int
}

// Timeout devuelve el timeout de conexión/ping.
func (c MongoConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig canal de actualizaciones en vivo. Vacío = sin publicador.
type RedisConfig struct {
	URL      string
	Address  string
	Password string
	DB       int
	Channel  string
}

// Enabled indica si hay un destino Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Address != ""
}

// JWTConfig configuración de JWT. Secret vacío = rutas sin autenticación.
type JWTConfig struct {
	Secret string
	Issuer string
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGODB_URI, REDIS_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "container-sales-api"),
			Timezone: getString(v, "APP_TIMEZONE", "Asia/Manila"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Mongo: MongoConfig{
			URI:            getString(v, "MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getString(v, "MONGODB_DATABASE", "dashboard"),
			TimeoutSeconds: getInt(v, "MONGODB_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			URL:      getString(v, "REDIS_URL", ""),
			Address:  getString(v, "REDIS_ADDRESS", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Channel:  getString(v, "REDIS_CHANNEL", "dashboard:events"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "container-sales-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("config: MONGODB_URI requerido")
	}
	if cfg.Mongo.Database == "" {
		return nil, fmt.Errorf("config: MONGODB_DATABASE requerido")
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
