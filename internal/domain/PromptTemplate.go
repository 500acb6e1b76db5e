package domain

import "time"

// PromptTemplate é um modelo de prompt identificado por slug
// (ex.: "ad_level_meta", "account_level_default", "cross_platform")
type PromptTemplate struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	Template  string    `json:"template"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LLMRuntimeConfig é a configuração de provider por organização;
// "auto" delega a escolha para a tabela estática por nível
type LLMRuntimeConfig struct {
	DefaultProvider string `json:"default_provider"`
	AnthropicModel  string `json:"anthropic_model,omitempty"`
	OpenAIModel     string `json:"openai_model,omitempty"`
}

const (
	ProviderAuto      = "auto"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)
