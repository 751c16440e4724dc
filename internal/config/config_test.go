package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults_OfflineModels(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.HTTP.Port != 8080 || cfg.Database.Driver != "redis" {
		t.Errorf("unexpected defaults: %+v", cfg.HTTP)
	}
	if len(cfg.Embedding.Models) != 4 {
		t.Fatalf("expected every model to be routed, got %v", cfg.Embedding.Models)
	}
	for name, m := range cfg.Embedding.Models {
		if m.Provider != "local" || m.RemoteModel != name || m.TimeoutSec != 30 {
			t.Errorf("model %s: %+v", name, m)
		}
	}
	if cfg.Embedding.Providers["local"].Kind != ProviderHashing {
		t.Errorf("local provider: %+v", cfg.Embedding.Providers["local"])
	}
	if cfg.Search.Model != "sentence-bert" || cfg.Search.TopK != 5 || cfg.Search.MMRLambda != 0.7 {
		t.Errorf("search defaults: %+v", cfg.Search)
	}
	if cfg.Classifier.Iterations != 1000 || cfg.Classifier.LearningRate != 0.01 || cfg.Classifier.TestSplit != 0.2 {
		t.Errorf("classifier defaults: %+v", cfg.Classifier)
	}
	if cfg.Database.Enabled() {
		t.Error("database must be disabled without addrs")
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("VECSENSE_TEST_KEY", "sk-test")
	t.Setenv("VECSENSE_TEST_PORT", "9090")

	data := []byte(`
http:
  port: ${VECSENSE_TEST_PORT}
embedding:
  providers:
    gw:
      api_key: ${VECSENSE_TEST_KEY}
      base_url: ${VECSENSE_TEST_UNSET:-https://gateway.example/v1}
  models:
    sentence-bert:
      provider: gw
      remote_model: all-MiniLM-L6-v2
      rate_limit: 2.5
search:
  methods: [hybrid, mmr]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	gw := cfg.Embedding.Providers["gw"]
	if gw.Kind != ProviderOpenAI || gw.APIKey != "sk-test" || gw.BaseURL != "https://gateway.example/v1" {
		t.Errorf("provider = %+v", gw)
	}
	m := cfg.Embedding.Models["sentence-bert"]
	if m.RemoteModel != "all-MiniLM-L6-v2" || m.RateLimit != 2.5 || m.Timeout().Seconds() != 30 {
		t.Errorf("model = %+v", m)
	}
	if len(cfg.Embedding.Models) != 1 {
		t.Errorf("explicit models must not be padded with defaults: %v", cfg.Embedding.Models)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"driver", func(c *Config) { c.Database.Driver = "postgres" }, "database.driver"},
		{"provider kind", func(c *Config) {
			c.Embedding.Providers["x"] = ProviderConfig{Kind: "grpc"}
		}, "embedding.providers.x.kind"},
		{"openai without credentials", func(c *Config) {
			c.Embedding.Providers["x"] = ProviderConfig{Kind: ProviderOpenAI}
		}, "api_key or base_url"},
		{"unknown model", func(c *Config) {
			c.Embedding.Models["elmo"] = ModelConfig{Provider: "local"}
		}, "unsupported embedding model"},
		{"unknown provider", func(c *Config) {
			c.Embedding.Models["bert"] = ModelConfig{Provider: "missing"}
		}, "unknown provider"},
		{"redis cache without db", func(c *Config) {
			c.Embedding.Cache = CacheConfig{Enabled: true, Backend: CacheRedis}
		}, "requires database.addrs"},
		{"cache backend", func(c *Config) {
			c.Embedding.Cache = CacheConfig{Enabled: true, Backend: "disk"}
		}, "embedding.cache.backend"},
		{"search model", func(c *Config) { c.Search.Model = "gpt" }, "search.model"},
		{"search methods", func(c *Config) { c.Search.Methods = []string{"bm25"} }, "search.methods"},
		{"mmr lambda", func(c *Config) { c.Search.MMRLambda = 1.5 }, "search.mmr_lambda"},
		{"test split", func(c *Config) { c.Classifier.TestSplit = 1 }, "classifier.test_split"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate_RedisCacheWithDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = []string{"localhost:6379"}
	cfg.Embedding.Cache = CacheConfig{Enabled: true, Backend: CacheRedis}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "")
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embedding.Models["word2vec-glove"].Dimensions != 300 {
		t.Errorf("word2vec-glove dimensions = %d", cfg.Embedding.Models["word2vec-glove"].Dimensions)
	}
	if cfg.Embedding.Models["gemini"].Provider != "local" {
		t.Errorf("gemini provider = %q", cfg.Embedding.Models["gemini"].Provider)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("VECSENSE_A", "x")
	got := string(expandEnvVars([]byte("${VECSENSE_A}-${VECSENSE_B:-y}-${VECSENSE_C}")))
	if got != "x-y-" {
		t.Errorf("expandEnvVars = %q", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if GetEnv() != "local" {
		t.Errorf("GetEnv() = %q", GetEnv())
	}
	t.Setenv("ENV", "prod")
	if GetEnv() != "prod" {
		t.Errorf("GetEnv() = %q", GetEnv())
	}
}
