package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Email         EmailConfig
	ReCAPTCHA     ReCAPTCHAConfig
	RateLimit     RateLimitConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
	DefaultLocale  string
}

type EmailConfig struct {
	APIKey      string // Resend API key; empty disables outbound email
	FromAddress string // sender shown on both notification and confirmation
	NotifyTo    string // operational mailbox receiving lead notifications
}

type ReCAPTCHAConfig struct {
	SecretKey    string
	SiteKey      string
	RejectBelow  float64 // scores under this are rejected
	SuspectBelow float64 // scores under this are admitted but flagged
}

type RateLimitConfig struct {
	SubmitMax    int
	SubmitWindow time.Duration
	EventsMax    int
	EventsWindow time.Duration
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint string
	ServiceName      string
	ServiceVersion   string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://tropicacao.com")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://tropicacao.com,https://www.tropicacao.com")
	v.SetDefault("DEFAULT_LOCALE", "fr")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("EMAIL_FROM_ADDRESS", "leads@tropicacao.com")
	v.SetDefault("EMAIL_NOTIFY_TO", "sales@tropicacao.com")
	v.SetDefault("RECAPTCHA_REJECT_BELOW", 0.3)
	v.SetDefault("RECAPTCHA_SUSPECT_BELOW", 0.5)
	v.SetDefault("SUBMIT_RATE_LIMIT_MAX", 5)
	v.SetDefault("SUBMIT_RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("EVENTS_RATE_LIMIT_MAX", 30)
	v.SetDefault("EVENTS_RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("O11Y_SERVICE_NAME", "leads-api")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "leads-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: allowedOrigins,
			DefaultLocale:  v.GetString("DEFAULT_LOCALE"),
		},
		Email: EmailConfig{
			APIKey:      v.GetString("RESEND_API_KEY"),
			FromAddress: v.GetString("EMAIL_FROM_ADDRESS"),
			NotifyTo:    v.GetString("EMAIL_NOTIFY_TO"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			SecretKey:    v.GetString("RECAPTCHA_SECRET_KEY"),
			SiteKey:      v.GetString("NEXT_PUBLIC_RECAPTCHA_SITE_KEY"),
			RejectBelow:  v.GetFloat64("RECAPTCHA_REJECT_BELOW"),
			SuspectBelow: v.GetFloat64("RECAPTCHA_SUSPECT_BELOW"),
		},
		RateLimit: RateLimitConfig{
			SubmitMax:    v.GetInt("SUBMIT_RATE_LIMIT_MAX"),
			SubmitWindow: time.Duration(v.GetInt("SUBMIT_RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
			EventsMax:    v.GetInt("EVENTS_RATE_LIMIT_MAX"),
			EventsWindow: time.Duration(v.GetInt("EVENTS_RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint: v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:      v.GetString("O11Y_SERVICE_NAME"),
			ServiceVersion:   v.GetString("O11Y_SERVICE_VERSION"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Server.DefaultLocale != "fr" && c.Server.DefaultLocale != "en" {
		return fmt.Errorf("DEFAULT_LOCALE must be fr or en")
	}

	// Outbound email is optional (degraded mode), but when a key is set the
	// addresses must be too
	if c.Email.APIKey != "" {
		if c.Email.FromAddress == "" {
			return fmt.Errorf("EMAIL_FROM_ADDRESS is required when RESEND_API_KEY is set")
		}
		if c.Email.NotifyTo == "" {
			return fmt.Errorf("EMAIL_NOTIFY_TO is required when RESEND_API_KEY is set")
		}
	}

	if c.ReCAPTCHA.RejectBelow < 0 || c.ReCAPTCHA.RejectBelow > 1 {
		return fmt.Errorf("RECAPTCHA_REJECT_BELOW must be within [0,1]")
	}
	if c.ReCAPTCHA.SuspectBelow < c.ReCAPTCHA.RejectBelow || c.ReCAPTCHA.SuspectBelow > 1 {
		return fmt.Errorf("RECAPTCHA_SUSPECT_BELOW must be within [RECAPTCHA_REJECT_BELOW,1]")
	}

	if c.RateLimit.SubmitMax <= 0 || c.RateLimit.EventsMax <= 0 {
		return fmt.Errorf("rate limit maximums must be positive")
	}
	if c.RateLimit.SubmitWindow <= 0 || c.RateLimit.EventsWindow <= 0 {
		return fmt.Errorf("rate limit windows must be positive")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
