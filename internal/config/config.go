package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Sources   SourcesConfig
	Alert     AlertConfig
	App       AppConfig
	Scheduler SchedulerConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// PostgresConfig holds the relational store configuration
type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime int // seconds
}

// SourcesConfig holds the result-source configuration
type SourcesConfig struct {
	ResultadoFacilBaseURL string
	PortalBrasilBaseURL   string
	LookGoiasBaseURL      string
	HojeNoBichoBaseURL    string
	CaixaBaseURL          string
	RenderAPIBaseURL      string
	RenderAPIKey          string
	InterHouseDelayMs     int
	MockSources           bool
}

// AlertConfig holds the failure-alert webhook configuration
type AlertConfig struct {
	WebhookURL string
}

// AppConfig holds the betting-platform callback configuration
type AppConfig struct {
	BaseURL           string
	InternalAPISecret string
}

// SchedulerConfig holds the cron trigger configuration
type SchedulerConfig struct {
	Enabled        bool
	ScrapeSpec     string
	ReconcileSpec  string
	MaxPendingBets int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// The deployed jobs use these exact environment names; they win over the
	// viper key spelling when both are set.
	if v := viper.GetString("DATABASE_URL"); v != "" {
		config.Postgres.DSN = v
	}
	if v := viper.GetString("SCRAPER_ALERT_WEBHOOK_URL"); v != "" {
		config.Alert.WebhookURL = v
	}
	if v := viper.GetString("RENDER_API_KEY"); v != "" {
		config.Sources.RenderAPIKey = v
	}
	if v := viper.GetString("INTERNAL_API_SECRET"); v != "" {
		config.App.InternalAPISecret = v
	}
	if v := viper.GetString("APP_URL"); v != "" {
		config.App.BaseURL = v
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Postgres.MaxOpenConns", 10)
	viper.SetDefault("Postgres.ConnMaxLifetime", 300)
	viper.SetDefault("Sources.ResultadoFacilBaseURL", "https://www.resultadofacil.com.br")
	viper.SetDefault("Sources.PortalBrasilBaseURL", "https://portalbrasil.net")
	viper.SetDefault("Sources.LookGoiasBaseURL", "https://lookgoias.com")
	viper.SetDefault("Sources.HojeNoBichoBaseURL", "https://hojenobicho.com")
	viper.SetDefault("Sources.CaixaBaseURL", "https://servicebus2.caixa.gov.br/portaldeloterias/api")
	viper.SetDefault("Sources.InterHouseDelayMs", 2000)
	viper.SetDefault("Sources.MockSources", false)
	viper.SetDefault("App.BaseURL", "https://ultrabanca.app")
	viper.SetDefault("Scheduler.Enabled", true)
	viper.SetDefault("Scheduler.ScrapeSpec", "*/30 1,7-23 * * *")
	viper.SetDefault("Scheduler.ReconcileSpec", "*/2 * * * *")
	viper.SetDefault("Scheduler.MaxPendingBets", 50000)
	viper.SetDefault("LogLevel", "info")
}
