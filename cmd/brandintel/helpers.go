package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brandresponse/brandintel/internal/llm"
	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("llm.provider", "anthropic")
	viper.SetDefault("llm.model", llm.DefaultModel)
	viper.SetDefault("llm.max_tokens", llm.DefaultMaxTokens)
	viper.SetDefault("llm.temperature", llm.DefaultTemperature)
	viper.SetDefault("insights.mode", "narrative")
	viper.SetDefault("enrichment.match_rate", 0.96)

	if home, err := os.UserHomeDir(); err == nil {
		dataDir := filepath.Join(home, ".local", "share", "brandintel")
		viper.SetDefault("logs.dir", filepath.Join(dataDir, "logs"))
		viper.SetDefault("database.path", filepath.Join(dataDir, "sessions.db"))
	}
}

// buildLLMClient constructs the completion client from configuration.
func buildLLMClient() (llm.Client, error) {
	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured; set ANTHROPIC_API_KEY or llm.api_key")
	}

	return llm.NewClient(llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      apiKey,
		Model:       viper.GetString("llm.model"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Temperature: viper.GetFloat64("llm.temperature"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
	})
}
