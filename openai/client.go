// Package openai implements a minimal client for the OpenAI Chat
// Completions API: one request, one JSON response, nothing interpreted in
// between. The response body is decoded and handed back as an untyped
// value whatever the HTTP status, so API-level error bodies reach the
// caller as ordinary values.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// Message is a single entry in a conversation. Role is passed through
// verbatim; the API understands "system", "user" and "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// APIKey holds a bearer token. It formats as a fixed placeholder so the
// token cannot leak through logs or error output.
type APIKey string

func (APIKey) String() string { return "[redacted]" }

func (APIKey) GoString() string { return `openai.APIKey("[redacted]")` }

// Client sends chat completion requests for a fixed model on behalf of a
// fixed API key. It holds no mutable state after construction and is safe
// for concurrent use.
type Client struct {
	model      Model
	apiKey     APIKey
	endpoint   string
	httpClient *http.Client
}

// NewClient returns a Client that authenticates with apiKey and requests
// completions from model. The key is not validated; an empty or wrong key
// simply comes back as an API error body on the first call.
func NewClient(apiKey string, model Model) *Client {
	return &Client{
		model:      model,
		apiKey:     APIKey(apiKey),
		endpoint:   chatCompletionsURL,
		httpClient: http.DefaultClient,
	}
}

// Model returns the model the client was constructed with.
func (c *Client) Model() Model { return c.model }

// String formats the client without its credential. fmt cannot reach the
// APIKey methods through an unexported field, so the redaction is repeated
// at the struct level. Value receivers, so a dereferenced client formats
// through them as well.
func (c Client) String() string {
	return fmt.Sprintf("openai.Client{model: %s, apiKey: %s}", c.model, c.apiKey)
}

func (c Client) GoString() string { return c.String() }

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// GetChatCompletion sends messages to the chat completions endpoint and
// returns the decoded response body. Message order is preserved verbatim
// and no validation is applied to roles or contents. Exactly one request
// is made per call; there are no retries and no internal timeout, so
// cancellation and deadlines belong to ctx. A failed round trip yields a
// *TransportError, a body that is not JSON yields a *DecodeError.
func (c *Client) GetChatCompletion(ctx context.Context, messages []Message) (any, error) {
	if messages == nil {
		// keep the wire shape an array, never null
		messages = []Message{}
	}
	payload, err := json.Marshal(chatCompletionRequest{
		Model:    c.model.String(),
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, &DecodeError{Err: err}
	}
	// the body must be exactly one JSON value
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return nil, &DecodeError{Err: err}
	}
	return value, nil
}
