package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS         CORSConfig
	Log          LogConfig
	Metrics      MetricsConfig
	Export       ExportConfig
	Registration RegistrationConfig
	Security     SecurityConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint and HTTP instrumentation.
type MetricsConfig struct {
	Enabled bool
}

// ExportConfig gates the schedule PDF download.
type ExportConfig struct {
	ScheduleEnabled bool
}

// RegistrationConfig holds term-wide registration defaults.
type RegistrationConfig struct {
	DefaultEnrollmentCap int
}

// SecurityConfig tunes password hashing.
type SecurityConfig struct {
	BcryptCost int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}
	cfg.Export = ExportConfig{ScheduleEnabled: v.GetBool("ENABLE_SCHEDULE_EXPORT")}

	cfg.Registration = RegistrationConfig{
		DefaultEnrollmentCap: v.GetInt("REGISTRATION_DEFAULT_CAP"),
	}

	cfg.Security = SecurityConfig{BcryptCost: v.GetInt("BCRYPT_COST")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_SCHEDULE_EXPORT", true)

	v.SetDefault("REGISTRATION_DEFAULT_CAP", 10)
	v.SetDefault("BCRYPT_COST", 10)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
