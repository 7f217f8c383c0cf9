package config

import (
	"time"

	"github.com/google/uuid"
)

// Default values for optional configuration fields.
const (
	DefaultAPIURL         = "https://app.nash.io"
	DefaultAPITimeout     = 30 * time.Second
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 10
	DefaultMinConns       = 2
	DefaultPollInterval   = 2 * time.Second
	DefaultBootstrapLimit = 10
	DefaultMetricsPort    = 9090
	DefaultMetricsPath    = "/metrics"
)

func (c *CollectorConfig) applyDefaults() {
	// Instance defaults
	if c.Instance.ID == "" {
		c.Instance.ID = "collector-" + uuid.NewString()
	}

	// API defaults
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// Watcher defaults
	if c.Watcher.Interval == 0 {
		c.Watcher.Interval = DefaultPollInterval
	}
	if c.Watcher.BootstrapLimit == 0 {
		c.Watcher.BootstrapLimit = DefaultBootstrapLimit
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
