// Package config loads SDK configuration from the environment, with an
// optional .env file underneath.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Gemini GeminiConfig
	Tavily TavilyConfig
	Memory MemoryConfig
}

type GeminiConfig struct {
	APIKey          string
	GenerationModel string
	EmbeddingModel  string
}

type TavilyConfig struct {
	APIKey     string
	MaxResults int
}

type MemoryConfig struct {
	Path       string
	Collection string
	TopK       int
	WindowSize int
}

// Load reads .env (if present) and environment variables, env winning.
// GEMINI_API_KEY maps to gemini.api.key, and so on.
func Load() (*Config, error) {
	k := koanf.New(".")

	_ = k.Load(file.Provider(".env"), dotenv.ParserEnv("", ".", normalizeKey))

	err := k.Load(env.Provider("", ".", normalizeKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := &Config{
		Gemini: GeminiConfig{
			APIKey:          k.String("gemini.api.key"),
			GenerationModel: k.String("gemini.generation.model"),
			EmbeddingModel:  k.String("gemini.embedding.model"),
		},
		Tavily: TavilyConfig{
			APIKey:     k.String("tavily.api.key"),
			MaxResults: k.Int("tavily.max.results"),
		},
		Memory: MemoryConfig{
			Path:       k.String("memory.path"),
			Collection: k.String("memory.collection"),
			TopK:       k.Int("memory.top.k"),
			WindowSize: k.Int("memory.window.size"),
		},
	}
	cfg.applyDefaults()
	return cfg, nil
}

// normalizeKey maps GEMINI_API_KEY style keys to gemini.api.key.
func normalizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", "."))
}

func (c *Config) applyDefaults() {
	if c.Gemini.GenerationModel == "" {
		c.Gemini.GenerationModel = "gemini-1.5-flash"
	}
	if c.Gemini.EmbeddingModel == "" {
		c.Gemini.EmbeddingModel = "gemini-embedding-001"
	}
	if c.Tavily.MaxResults <= 0 {
		c.Tavily.MaxResults = 3
	}
	if c.Memory.Path == "" {
		c.Memory.Path = "./db"
	}
	if c.Memory.Collection == "" {
		c.Memory.Collection = "companion_memory"
	}
	if c.Memory.TopK <= 0 {
		c.Memory.TopK = 3
	}
	if c.Memory.WindowSize <= 0 {
		c.Memory.WindowSize = 4
	}
}

// Validate checks that the keys the remote services require are set.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required")
	}
	if c.Tavily.APIKey == "" {
		return errors.New("TAVILY_API_KEY is required")
	}
	return nil
}
