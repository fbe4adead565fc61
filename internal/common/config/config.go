// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig               `mapstructure:"app"`
	Server     ServerConfig            `mapstructure:"server"`
	Catalogue  CatalogueConfig         `mapstructure:"catalogue"`
	Knowledge  KnowledgeConfig         `mapstructure:"knowledge"`
	Cache      CacheConfig             `mapstructure:"cache"`
	Session    SessionConfig           `mapstructure:"session"`
	OutOfScope OutOfScopeConfig        `mapstructure:"out_of_scope"`
	Database   DatabaseConfig          `mapstructure:"database"`
	Actions    map[string]ActionConfig `mapstructure:"actions"`
	Logging    LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	ListenAddr   string `mapstructure:"listen_addr"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int    `mapstructure:"write_timeout"` // milliseconds
	CatalogPath  string `mapstructure:"catalog_path"`
}

// CatalogueConfig points at the external vaccine catalogue REST API.
type CatalogueConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	MaxRetries int    `mapstructure:"max_retries"`
}

type KnowledgeConfig struct {
	DocumentPath string `mapstructure:"document_path"`
}

type CacheConfig struct {
	FactCapacity int `mapstructure:"fact_capacity"`
}

// SessionConfig selects where conversation slots live between turns.
type SessionConfig struct {
	Store     string `mapstructure:"store"` // memory | redis
	TTL       int    `mapstructure:"ttl"`   // seconds
	KeyPrefix string `mapstructure:"key_prefix"`
}

// OutOfScopeConfig selects the sink for unmatched domain queries.
type OutOfScopeConfig struct {
	Sink    string `mapstructure:"sink"` // csv | postgres | elasticsearch
	CSVPath string `mapstructure:"csv_path"`
	Table   string `mapstructure:"table"`
	Index   string `mapstructure:"index"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"`
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ActionConfig holds per-action switches.
type ActionConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Timeout int  `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
