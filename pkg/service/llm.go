package service

import "context"

// LLM is the client for the LLM selector service, which fronts completion,
// chat, embedding and moderation engines. All tuning parameters are
// optional; nil fields are omitted so the service applies its defaults.
type LLM struct {
	c *Client
}

// NewLLM returns an LLM client over c.
func NewLLM(c *Client) *LLM {
	return &LLM{c: c}
}

// CompleteRequest calls the completion engine. Prompt may be a single
// string or a list of strings for multiple outputs.
type CompleteRequest struct {
	Prompt           any      `json:"prompt"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	Stop             string   `json:"stop,omitempty"`
	APIKey           string   `json:"api_key,omitempty"`
	Engine           string   `json:"engine,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	Logprobs         *int     `json:"logprobs,omitempty"`
	User             string   `json:"user,omitempty"`
}

func (l *LLM) Complete(ctx context.Context, req CompleteRequest) (Response, error) {
	var out Response
	err := l.c.post(ctx, "complete", req, &out)
	return out, err
}

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest calls the chat engine.
type ChatRequest struct {
	Messages         []Message          `json:"messages"`
	MaxTokens        *int               `json:"max_tokens,omitempty"`
	Stop             string             `json:"stop,omitempty"`
	APIKey           string             `json:"api_key,omitempty"`
	Engine           string             `json:"engine,omitempty"`
	Temperature      *float64           `json:"temperature,omitempty"`
	TopP             *float64           `json:"top_p,omitempty"`
	N                *int               `json:"n,omitempty"`
	FrequencyPenalty *float64           `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64           `json:"presence_penalty,omitempty"`
	LogitBias        map[string]float64 `json:"logit_bias,omitempty"`
	User             string             `json:"user,omitempty"`
}

func (l *LLM) Chat(ctx context.Context, req ChatRequest) (Response, error) {
	var out Response
	err := l.c.post(ctx, "chat", req, &out)
	return out, err
}

// EmbeddingsRequest embeds a string or list of strings.
type EmbeddingsRequest struct {
	Input  any    `json:"input"`
	APIKey string `json:"api_key,omitempty"`
	User   string `json:"user,omitempty"`
	Engine string `json:"engine,omitempty"`
}

func (l *LLM) Embeddings(ctx context.Context, req EmbeddingsRequest) (Response, error) {
	var out Response
	err := l.c.post(ctx, "embeddings", req, &out)
	return out, err
}

// ModerateRequest checks content against the moderation engine.
type ModerateRequest struct {
	Input  any    `json:"input"`
	APIKey string `json:"api_key,omitempty"`
	User   string `json:"user,omitempty"`
}

func (l *LLM) Moderate(ctx context.Context, req ModerateRequest) (Response, error) {
	var out Response
	err := l.c.post(ctx, "moderate", req, &out)
	return out, err
}

// CountTokens returns the service's token count for text.
func (l *LLM) CountTokens(ctx context.Context, text string) (Response, error) {
	var out Response
	err := l.c.post(ctx, "count-tokens", map[string]string{"text": text}, &out)
	return out, err
}
