package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	STT     STTConfig
	TTS     TTSConfig
	History HistoryConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LLMConfig struct {
	GroqKey         string
	GroqBaseURL     string
	AnthropicKey    string
	DefaultProvider string
	DefaultModel    string
	Temperature     float64
	MaxTokens       int
}

type STTConfig struct {
	Backend      string // "groq" or "local"
	GroqKey      string
	GroqBaseURL  string
	GroqModel    string
	LocalBaseURL string // default: "http://localhost:8178"
	Language     string
}

type TTSConfig struct {
	Backend       string // "google", "openai" or "deepgram"
	Language      string
	AccentTLD     string // Google Translate accent domain, e.g. "co.in"
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAIVoice   string
	DeepgramKey   string
	DeepgramModel string
}

type HistoryConfig struct {
	MaxTurns int // 0 = unbounded
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8501)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	temperature, err := getEnvFloat("LLM_TEMPERATURE", 0.6)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
	}

	maxTokens, err := getEnvInt("LLM_MAX_TOKENS", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
	}

	maxTurns, err := getEnvInt("HISTORY_MAX_TURNS", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_MAX_TURNS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		LLM: LLMConfig{
			GroqKey:         getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:     getEnv("GROQ_BASE_URL", ""),
			AnthropicKey:    getEnv("ANTHROPIC_API_KEY", ""),
			DefaultProvider: getEnv("LLM_DEFAULT_PROVIDER", "groq"),
			DefaultModel:    getEnv("LLM_DEFAULT_MODEL", "llama-3.3-70b-versatile"),
			Temperature:     temperature,
			MaxTokens:       maxTokens,
		},
		STT: STTConfig{
			Backend:      getEnv("STT_BACKEND", "groq"),
			GroqKey:      getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:  getEnv("STT_GROQ_BASE_URL", ""),
			GroqModel:    getEnv("STT_GROQ_MODEL", ""),
			LocalBaseURL: getEnv("STT_LOCAL_BASE_URL", "http://localhost:8178"),
			Language:     getEnv("STT_LANGUAGE", ""),
		},
		TTS: TTSConfig{
			Backend:       getEnv("TTS_BACKEND", "google"),
			Language:      getEnv("TTS_LANGUAGE", "en"),
			AccentTLD:     getEnv("TTS_ACCENT_TLD", "co.in"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("TTS_OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnv("TTS_OPENAI_MODEL", ""),
			OpenAIVoice:   getEnv("TTS_OPENAI_VOICE", ""),
			DeepgramKey:   getEnv("DEEPGRAM_API_KEY", ""),
			DeepgramModel: getEnv("DEEPGRAM_TTS_MODEL", ""),
		},
		History: HistoryConfig{
			MaxTurns: maxTurns,
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var missing []string
	if c.LLM.DefaultProvider == "groq" && c.LLM.GroqKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.LLM.DefaultProvider == "anthropic" && c.LLM.AnthropicKey == "" {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}
	if c.STT.Backend == "groq" && c.STT.GroqKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.TTS.Backend == "deepgram" && c.TTS.DeepgramKey == "" {
		missing = append(missing, "DEEPGRAM_API_KEY")
	}
	if c.TTS.Backend == "openai" && c.TTS.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(dedupe(missing), ", "))
	}
	return nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}
