package service

import "context"

// Transformer is the client for the transformer model service.
type Transformer struct {
	c *Client
}

// NewTransformer returns a Transformer client over c.
func NewTransformer(c *Client) *Transformer {
	return &Transformer{c: c}
}

// ClassifyQuery labels a user query with its intent class.
func (t *Transformer) ClassifyQuery(ctx context.Context, query string) (Response, error) {
	var out Response
	err := t.c.post(ctx, "classify-query", map[string]string{"query": query}, &out)
	return out, err
}

// EncodeRequest embeds texts with the sentence encoder. Task selects a
// task-specific head when the service supports one.
type EncodeRequest struct {
	Texts []string `json:"texts"`
	Task  string   `json:"task,omitempty"`
}

func (t *Transformer) Encode(ctx context.Context, req EncodeRequest) (Response, error) {
	var out Response
	err := t.c.post(ctx, "sentence-bert/encode", req, &out)
	return out, err
}
