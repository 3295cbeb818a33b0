package itsmkb

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
	driver   string // "memory", "sqlite", "redis" or "valkey"
	addrs    []string
	password string
	path     string

	keyPrefix    string
	rulesFile    string
	threshold    float64
	autoClassify bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithMemory keeps items in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
	})
}

// WithSQLite stores items in a single SQLite file, created when missing.
// An empty path uses data/itsmkb.db; ":memory:" keeps the database in memory.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "sqlite"
		c.path = path
	})
}

// WithValkey stores items in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores items in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix namespaces the stored collection key. Default: "itsmkb:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithRulesFile loads the classification rule table from a YAML file
// instead of the built-in bilingual table.
func WithRulesFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.rulesFile = path
	})
}

// WithThreshold sets the minimum winning score below which text is
// classified as Other. Default: 0.3.
func WithThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.threshold = t
	})
}

// WithAutoClassify fills the type of items saved without one.
func WithAutoClassify() Option {
	return optionFunc(func(c *clientConfig) {
		c.autoClassify = true
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
