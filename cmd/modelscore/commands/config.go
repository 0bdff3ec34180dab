package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Tasks          string          `mapstructure:"tasks"`
	LogFile        string          `mapstructure:"log_file"`
	LogLevel       int             `mapstructure:"log_level"`
	Format         string          `mapstructure:"format"`
	Output         string          `mapstructure:"output"`
	TimeoutSeconds int             `mapstructure:"timeout_seconds"`
	Provider       string          `mapstructure:"provider"`
	CacheDir       string          `mapstructure:"cache_dir"`
	GitHubToken    string          `mapstructure:"github_token"`
	HFToken        string          `mapstructure:"hf_token"`
	Model          ModelConfig     `mapstructure:"model"`
	OpenAI         ProviderConfig  `mapstructure:"openai"`
	Anthropic      AnthropicConfig `mapstructure:"anthropic"`
	Gemini         ProviderConfig  `mapstructure:"gemini"`
}

type ModelConfig struct {
	Name         string `mapstructure:"name"`
	MockResponse string `mapstructure:"mock_response"`
}

type ProviderConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

type AnthropicConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
	MaxTokens      int    `mapstructure:"max_tokens"`
}

// envBindings maps config keys to the environment variables that may supply
// them. Explicit bindings, not AutomaticEnv: Unmarshal only sees keys viper
// knows about, so each env-backed key is named here.
var envBindings = map[string]string{
	"github_token": "GITHUB_TOKEN",
	"hf_token":     "HF_TOKEN",
	"log_file":     "LOG_FILE",
	"log_level":    "LOG_LEVEL",
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".modelscore")
		v.AddConfigPath(".")
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return cfg, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
		// A missing config file still leaves the env bindings to unmarshal.
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
