package config

import (
	"fmt"

	"github.com/spf13/viper"
)

var GlobalConfig *Config

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	DB        interface{}     // database handle, injected at runtime
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // seconds
	LogLevel        string `mapstructure:"log_level"`         // silent/error/warn/info
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig holds signing settings for access tokens.
type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	AccessTokenExpire int    `mapstructure:"access_token_expire"` // seconds
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// ChartConfig holds the external chart rendering service settings.
type ChartConfig struct {
	BaseURL string `mapstructure:"base_url"` // e.g. https://quickchart.io/chart
	Timeout string `mapstructure:"timeout"`  // bounded per request, e.g. 10s
}

// SchedulerConfig holds cron settings for background jobs.
type SchedulerConfig struct {
	TokenPurgeCron string `mapstructure:"token_purge_cron"` // sec min hour dom mon dow
}

// Load reads the configuration from the given path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	GlobalConfig = config

	return config, nil
}

// GetDSN builds the MySQL DSN.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
