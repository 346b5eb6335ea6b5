package config

// QualityPreset names the model a quality tier maps to.
type QualityPreset struct {
	Model string
}

// qualityPresets maps each provider+quality combination to a model.
var qualityPresets = map[ProviderType]map[QualityTier]QualityPreset{
	ProviderAnthropic: {
		QualityLite:   {Model: "claude-haiku-4-5-20251001"},
		QualityNormal: {Model: "claude-sonnet-4-5-20250929"},
		QualityMax:    {Model: "claude-sonnet-4-5-20250929"},
	},
	ProviderOpenAI: {
		QualityLite:   {Model: "gpt-4o-mini"},
		QualityNormal: {Model: "gpt-4o"},
		QualityMax:    {Model: "gpt-4o"},
	},
	ProviderOllama: {
		QualityLite:   {Model: "llama3"},
		QualityNormal: {Model: "llama3"},
		QualityMax:    {Model: "llama3:70b"},
	},
}

// DefaultConfig returns a Config with sensible defaults for a scouting
// laptop at an event: local SQLite file, open CORS for the form client.
func DefaultConfig() *Config {
	return &Config{
		Host:         "0.0.0.0",
		Port:         3000,
		DatabasePath: "reefscout.db",
		Provider:     ProviderAnthropic,
		Model:        "claude-sonnet-4-5-20250929",
		Quality:      QualityNormal,
		MaxTokens:    1024,
		RateLimitRPM: 30,
		HistoryLimit: 10,
		CORSOrigins:  []string{"*"},
	}
}

// GetPreset returns the quality preset for the given provider and tier,
// falling back to the Normal Anthropic preset for unknown combinations.
func GetPreset(provider ProviderType, tier QualityTier) QualityPreset {
	if tiers, ok := qualityPresets[provider]; ok {
		if preset, ok := tiers[tier]; ok {
			return preset
		}
	}
	return qualityPresets[ProviderAnthropic][QualityNormal]
}
