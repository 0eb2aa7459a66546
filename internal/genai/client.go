package genai

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUpstream covers every failure talking to the completion API. Callers
// surface it as a generic error; cart/order correctness never depends on it.
var ErrUpstream = errors.New("text generation upstream failed")

// Client proxies prompt-sized requests to an OpenAI-compatible
// chat-completions endpoint. BaseURL is configurable so tests can point it
// at a local httptest server.
type Client struct {
	http  *resty.Client
	model string
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetTimeout(15 * time.Second),
		model: "gpt-3.5-turbo",
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(prompt string) (string, error) {
	var out chatResponse
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{
			Model:     c.model,
			Messages:  []chatMessage{{Role: "user", Content: prompt}},
			MaxTokens: 150,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode() != 200 || len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}
	return out.Choices[0].Message.Content, nil
}

// GenerateDescription returns prefill text for an item description form.
func (c *Client) GenerateDescription(prompt string) (string, error) {
	return c.complete(prompt)
}

// GenerateCategories returns a one-line list of category suggestions for
// an item name.
func (c *Client) GenerateCategories(itemName string) (string, error) {
	prompt := "RETURN IN 1 LINE OF STRING AND DO NOT NUMBER. " +
		"Generate up to 10 related category names for the item: " + itemName
	return c.complete(prompt)
}
