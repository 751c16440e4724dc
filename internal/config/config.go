// Package config loads the service configuration from per-environment YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
)

// Provider kinds.
const (
	ProviderOpenAI  = "openai"  // any OpenAI-compatible embeddings endpoint
	ProviderHashing = "hashing" // in-process pseudo word vectors
)

// Cache backends.
const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

// Config holds the vecsense API configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Auth       AuthConfig       `yaml:"auth"`
	Search     SearchConfig     `yaml:"search"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings. No keys disables auth.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings. Empty Addrs disables persistence.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // redis, valkey (default: redis)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Enabled reports whether a database is configured.
func (d DatabaseConfig) Enabled() bool { return len(d.Addrs) > 0 }

// EmbeddingConfig holds embedding settings.
type EmbeddingConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
	Models    map[string]ModelConfig    `yaml:"models"`
	Cache     CacheConfig               `yaml:"cache"`
	Breaker   BreakerConfig             `yaml:"breaker"`
}

// ProviderConfig holds connection settings for a named provider.
type ProviderConfig struct {
	Kind    string `yaml:"kind"` // openai, hashing (default: openai)
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// ModelConfig binds an embedding model name to a provider.
type ModelConfig struct {
	Provider    string  `yaml:"provider"`
	RemoteModel string  `yaml:"remote_model"`
	Dimensions  int     `yaml:"dimensions"`
	TimeoutSec  int     `yaml:"timeout_sec"`
	RateLimit   float64 `yaml:"rate_limit"` // requests per second, 0 = unlimited
	Burst       int     `yaml:"burst"`
	Instruction string  `yaml:"instruction"`
}

// Timeout returns the per-request deadline.
func (m ModelConfig) Timeout() time.Duration { return time.Duration(m.TimeoutSec) * time.Second }

// CacheConfig holds embedding cache settings. The cache is off by default.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Backend string `yaml:"backend"` // redis, memory (default: memory)
	Size    int    `yaml:"size"`    // memory backend only
	TTLSec  int    `yaml:"ttl_sec"` // 0 = no expiry
}

// TTL returns the entry lifetime.
func (c CacheConfig) TTL() time.Duration { return time.Duration(c.TTLSec) * time.Second }

// BreakerConfig holds circuit breaker settings for remote providers.
type BreakerConfig struct {
	MinRequests    uint32  `yaml:"min_requests"`
	FailureRatio   float64 `yaml:"failure_ratio"`
	OpenTimeoutSec int     `yaml:"open_timeout_sec"`
}

// SearchConfig holds retrieval defaults.
type SearchConfig struct {
	Model     string   `yaml:"model"`
	TopK      int      `yaml:"top_k"`
	MMRLambda float64  `yaml:"mmr_lambda"`
	Methods   []string `yaml:"methods"`
}

// ClassifierConfig holds training settings.
type ClassifierConfig struct {
	Iterations   int     `yaml:"iterations"`
	LearningRate float64 `yaml:"learning_rate"`
	TestSplit    float64 `yaml:"test_split"`
	Seed         uint64  `yaml:"seed"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
// A .env file in the working directory, when present, is loaded first.
func Load(env string) (Config, error) {
	_ = godotenv.Load()

	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse expands environment variables in data and decodes it.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}

	if len(c.Embedding.Models) == 0 {
		// Offline default: every model served by the local provider.
		if c.Embedding.Providers == nil {
			c.Embedding.Providers = map[string]ProviderConfig{}
		}
		if _, ok := c.Embedding.Providers["local"]; !ok {
			c.Embedding.Providers["local"] = ProviderConfig{Kind: ProviderHashing}
		}
		c.Embedding.Models = make(map[string]ModelConfig, len(domain.AllEmbeddingModels()))
		for _, m := range domain.AllEmbeddingModels() {
			c.Embedding.Models[string(m)] = ModelConfig{Provider: "local"}
		}
	}
	for name, p := range c.Embedding.Providers {
		if p.Kind == "" {
			p.Kind = ProviderOpenAI
			c.Embedding.Providers[name] = p
		}
	}
	for name, m := range c.Embedding.Models {
		if m.TimeoutSec <= 0 {
			m.TimeoutSec = 30
		}
		if m.RemoteModel == "" {
			m.RemoteModel = name
		}
		c.Embedding.Models[name] = m
	}
	if c.Embedding.Cache.Backend == "" {
		c.Embedding.Cache.Backend = CacheMemory
	}
	if c.Embedding.Breaker.MinRequests == 0 {
		c.Embedding.Breaker.MinRequests = 5
	}
	if c.Embedding.Breaker.FailureRatio <= 0 {
		c.Embedding.Breaker.FailureRatio = 0.5
	}
	if c.Embedding.Breaker.OpenTimeoutSec <= 0 {
		c.Embedding.Breaker.OpenTimeoutSec = 30
	}

	if c.Search.Model == "" {
		c.Search.Model = string(domain.ModelSentenceBERT)
	}
	if c.Search.TopK <= 0 {
		c.Search.TopK = 5
	}
	if c.Search.MMRLambda == 0 {
		c.Search.MMRLambda = 0.7
	}

	if c.Classifier.Iterations <= 0 {
		c.Classifier.Iterations = 1000
	}
	if c.Classifier.LearningRate <= 0 {
		c.Classifier.LearningRate = 0.01
	}
	if c.Classifier.TestSplit == 0 {
		c.Classifier.TestSplit = 0.2
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "redis", "valkey":
	default:
		return fmt.Errorf("database.driver must be \"redis\" or \"valkey\", got %q", c.Database.Driver)
	}

	for name, p := range c.Embedding.Providers {
		switch p.Kind {
		case ProviderOpenAI:
			if p.BaseURL == "" && p.APIKey == "" {
				return fmt.Errorf("embedding.providers.%s: api_key or base_url is required", name)
			}
		case ProviderHashing:
		default:
			return fmt.Errorf("embedding.providers.%s.kind must be %q or %q, got %q",
				name, ProviderOpenAI, ProviderHashing, p.Kind)
		}
	}
	for name, m := range c.Embedding.Models {
		if _, err := domain.ParseEmbeddingModel(name); err != nil {
			return fmt.Errorf("embedding.models: %w", err)
		}
		if _, ok := c.Embedding.Providers[m.Provider]; !ok {
			return fmt.Errorf("embedding.models.%s: unknown provider %q", name, m.Provider)
		}
		if m.RateLimit < 0 || m.Dimensions < 0 {
			return fmt.Errorf("embedding.models.%s: rate_limit and dimensions must be non-negative", name)
		}
	}

	cache := c.Embedding.Cache
	if cache.Enabled {
		switch cache.Backend {
		case CacheMemory:
		case CacheRedis:
			if !c.Database.Enabled() {
				return errors.New("embedding.cache.backend \"redis\" requires database.addrs")
			}
		default:
			return fmt.Errorf("embedding.cache.backend must be %q or %q, got %q", CacheRedis, CacheMemory, cache.Backend)
		}
	}
	if c.Embedding.Breaker.FailureRatio > 1 {
		return fmt.Errorf("embedding.breaker.failure_ratio must be in (0, 1], got %v", c.Embedding.Breaker.FailureRatio)
	}

	if _, ok := c.Embedding.Models[c.Search.Model]; !ok {
		return fmt.Errorf("search.model %q has no embedding.models entry", c.Search.Model)
	}
	if _, err := method.ParseAll(c.Search.Methods); err != nil {
		return fmt.Errorf("search.methods: %w", err)
	}
	if c.Search.MMRLambda < 0 || c.Search.MMRLambda > 1 {
		return fmt.Errorf("search.mmr_lambda must be in [0, 1], got %v", c.Search.MMRLambda)
	}

	if c.Classifier.TestSplit <= 0 || c.Classifier.TestSplit >= 1 {
		return fmt.Errorf("classifier.test_split must be in (0, 1), got %v", c.Classifier.TestSplit)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
