package recherche

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	keyPrefix string

	threshold          float64
	correctionDistance int
	defaultPageSize    int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithCredentials sets the Redis ACL username used alongside the password.
func WithCredentials(username string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
	})
}

// WithDatabase selects a logical Redis database. Default: 0.
func WithDatabase(db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.db = db
	})
}

// WithKeyPrefix sets the key prefix recipes are stored under.
// Default: "recette:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithThreshold sets the minimum similarity score for keyword results.
// Default: 0.5.
func WithThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.threshold = t
	})
}

// WithCorrectionDistance sets the maximum edit distance for spell
// correction against the title corpus. Default: 2.
func WithCorrectionDistance(d int) Option {
	return optionFunc(func(c *clientConfig) {
		c.correctionDistance = d
	})
}

// WithDefaultPageSize sets the page size used when a search request
// does not specify one. Default: 20.
func WithDefaultPageSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPageSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
