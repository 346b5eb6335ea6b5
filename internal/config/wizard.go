package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// DefaultConfigFile is where the wizard writes its result and where the
// serve command looks first.
const DefaultConfigFile = "reefscout.yml"

// RunWizard walks through an interactive setup and saves the resulting
// config to reefscout.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to reefscout! Let's set up your scouting server.")
	fmt.Println()

	providerPrompt := promptui.Select{
		Label: "Select LLM provider for the strategy assistant",
		Items: []string{"anthropic", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	qualityPrompt := promptui.Select{
		Label: "Select quality tier",
		Items: []string{
			"lite (fast & cheap: haiku / gpt-4o-mini)",
			"normal (balanced: sonnet / gpt-4o)",
			"max (highest quality)",
		},
	}
	qualityIdx, _, err := qualityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("quality selection: %w", err)
	}
	tiers := []QualityTier{QualityLite, QualityNormal, QualityMax}
	quality := tiers[qualityIdx]

	preset := GetPreset(provider, quality)

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: "3000",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: "reefscout.db",
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Model = preset.Model
	cfg.Quality = quality
	cfg.Port = port
	cfg.DatabasePath = dbPath

	if envVar := APIKeyEnvVar(provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment (or .env) before running reefscout serve.\n", envVar)
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}
