package config

import (
	"fmt"

	"openai-chat/openai"

	"github.com/spf13/viper"
)

type Config struct {
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.OpenAI.Model == "" {
		return nil
	}
	if _, err := openai.ParseModel(c.OpenAI.Model); err != nil {
		return fmt.Errorf("invalid openai.model: %s", c.OpenAI.Model)
	}
	return nil
}
