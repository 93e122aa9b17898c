package llm

import "github.com/sandevgo/memberqa/internal/core"

const (
	DefaultOpenAIBaseURL     = "https://api.openai.com"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api"
)

// NewOpenAI targets OpenAI or any server speaking its chat completions API.
func NewOpenAI(baseURL, apiKey, model string) *OpenAICompatible {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}

func NewOpenRouter(apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    DefaultOpenRouterBaseURL,
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		ExtraHeaders: map[string]string{
			"HTTP-Referer": core.AppRepositoryURL,
			"X-Title":      core.AppName,
		},
	})
}
