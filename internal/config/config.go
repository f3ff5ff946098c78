package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Auth   AuthConfig   `yaml:"auth" mapstructure:"auth"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig points at the trip workbooks loaded at startup.
type DataConfig struct {
	FleetPath   string `yaml:"fleet_path" mapstructure:"fleet_path"`
	ClosurePath string `yaml:"closure_path" mapstructure:"closure_path"`
	SheetName   string `yaml:"sheet_name" mapstructure:"sheet_name"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// AuthConfig configures token issuance and the login rate limit.
type AuthConfig struct {
	JWTSecret     string  `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	TokenTTLHours int     `yaml:"token_ttl_hours" mapstructure:"token_ttl_hours"`
	LoginRate     float64 `yaml:"login_rate" mapstructure:"login_rate"`
	LoginBurst    int     `yaml:"login_burst" mapstructure:"login_burst"`
}

// StoreConfig configures the account store backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ReportConfig configures report export.
type ReportConfig struct {
	OutputPath string `yaml:"output_path" mapstructure:"output_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FLEETSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.fleet_path", "fleet_50_entries.xlsx")
	v.SetDefault("data.closure_path", "Trip_Closure_Sheet_Oct2024_Mar2025.xlsx")
	v.SetDefault("server.port", 7860)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("auth.login_rate", 1)
	v.SetDefault("auth.login_burst", 5)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "fleetsight.db")
	v.SetDefault("store.database_url", "")
	v.SetDefault("report.output_path", "AI_Report_Summary.txt")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
