package config

// QualityTier trades answer quality against speed and cost by picking the
// provider's corresponding model.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level reefscout configuration, corresponding to
// reefscout.yml.
type Config struct {
	Host         string       `yaml:"host" koanf:"host"`
	Port         int          `yaml:"port" koanf:"port"`
	DatabasePath string       `yaml:"database_path" koanf:"database_path"`
	Provider     ProviderType `yaml:"provider" koanf:"provider"`
	Model        string       `yaml:"model" koanf:"model"`
	Quality      QualityTier  `yaml:"quality" koanf:"quality"`
	MaxTokens    int          `yaml:"max_tokens" koanf:"max_tokens"`
	RateLimitRPM int          `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	HistoryLimit int          `yaml:"history_limit" koanf:"history_limit"`
	CORSOrigins  []string     `yaml:"cors_origins" koanf:"cors_origins"`
}
