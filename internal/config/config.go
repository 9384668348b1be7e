package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// OpenRouterAPIKey is read from the process environment only.
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY" yaml:"-"`

	ListenAddr       string `env:"LISTEN_ADDR" yaml:"listen_addr"`
	UploadDir        string `env:"UPLOAD_DIR" yaml:"upload_dir"`
	KnowledgeBaseDir string `env:"KNOWLEDGE_BASE_DIR" yaml:"knowledge_base_dir"`
	MaxUploadBytes   int64  `env:"MAX_UPLOAD_BYTES" yaml:"max_upload_bytes"`
	CORSAllowOrigin  string `env:"CORS_ALLOW_ORIGIN" yaml:"cors_allow_origin"`

	ChunkSize    int `env:"CHUNK_SIZE" yaml:"chunk_size"`
	ChunkOverlap int `env:"CHUNK_OVERLAP" yaml:"chunk_overlap"`
	TopK         int `env:"TOP_K" yaml:"top_k"`

	LLMBaseURL     string        `env:"LLM_BASE_URL" yaml:"llm_base_url"`
	LLMModel       string        `env:"LLM_MODEL" yaml:"llm_model"`
	LLMTemperature float32       `env:"LLM_TEMPERATURE" yaml:"llm_temperature"`
	LLMMaxTokens   int           `env:"LLM_MAX_TOKENS" yaml:"llm_max_tokens"`
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" yaml:"llm_timeout"`
}

// Default returns the configuration used when neither a config file nor
// environment variables override a field.
func Default() *Config {
	return &Config{
		ListenAddr:       ":5000",
		UploadDir:        "uploads",
		KnowledgeBaseDir: "knowledge_base",
		MaxUploadBytes:   16 << 20,
		CORSAllowOrigin:  "*",
		ChunkSize:        500,
		ChunkOverlap:     50,
		TopK:             3,
		LLMBaseURL:       "https://openrouter.ai/api/v1",
		LLMModel:         "meta-llama/llama-3.2-3b-instruct:free",
		LLMTemperature:   0.1,
		LLMMaxTokens:     500,
		LLMTimeout:       30 * time.Second,
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}

func (c *Config) Validate() error {
	if c.OpenRouterAPIKey == "" {
		return errors.New("OPENROUTER_API_KEY not found in environment variables")
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk overlap must not be negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkSize-c.ChunkOverlap < 1 {
		return fmt.Errorf("chunk overlap (%d) must be smaller than chunk size (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top k must be positive, got %d", c.TopK)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}
