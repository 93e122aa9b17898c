package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sandevgo/memberqa/internal/core"
)

const DefaultOllamaHost = "http://localhost:11434"

// Ollama generates text through the native /api/generate endpoint.
type Ollama struct {
	baseProvider
}

func NewOllama(host, model string) *Ollama {
	if host == "" {
		host = DefaultOllamaHost
	}
	return &Ollama{
		baseProvider: newBaseProvider(strings.TrimRight(host, "/"), "", model),
	}
}

type ollamaOptions struct {
	Temperature float64  `json:"temperature"`
	NumPredict  int      `json:"num_predict,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

func (o *Ollama) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (string, error) {
	payload := ollamaGenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: opts.Temperature,
			NumPredict:  opts.MaxTokens,
			Stop:        opts.Stop,
		},
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/api/generate", payload, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := readOK(resp)
	if err != nil {
		return "", err
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return result.Response, nil
}
