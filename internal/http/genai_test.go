package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradepost/internal/config"
)

// fakeUpstream mimics the chat-completions endpoint.
func fakeUpstream(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": content}},
				},
			})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateDescription(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "A sturdy oak desk with a warm finish.")
	app := newTestApp(t, func(c *config.Config) { c.OpenAIBaseURL = srv.URL })

	var out struct {
		Description string `json:"description"`
	}
	resp := doJSON(t, app, "POST", "/api/openai/generate-description", token(t, "u1"),
		map[string]any{"prompt": "Write a description for an oak desk"}, &out)
	if resp.StatusCode != http.StatusOK || out.Description == "" {
		t.Fatalf("want 200 + text, got %d %+v", resp.StatusCode, out)
	}
}

func TestGenerateCategory(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "Furniture, Office, Wood, Vintage")
	app := newTestApp(t, func(c *config.Config) { c.OpenAIBaseURL = srv.URL })

	var out struct {
		Categories string `json:"categories"`
	}
	resp := doJSON(t, app, "POST", "/api/openai/generate-category", token(t, "u1"),
		map[string]any{"itemName": "Oak Desk"}, &out)
	if resp.StatusCode != http.StatusOK || out.Categories == "" {
		t.Fatalf("want 200 + categories, got %d %+v", resp.StatusCode, out)
	}
}

func TestGenerateDescriptionValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/openai/generate-description", token(t, "u1"),
		map[string]any{}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing prompt: want 400, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/openai/generate-description", "",
		map[string]any{"prompt": "hi"}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token: want 401, got %d", resp.StatusCode)
	}
}

func TestGenerateDescriptionUpstreamFailure(t *testing.T) {
	srv := fakeUpstream(t, http.StatusInternalServerError, "")
	app := newTestApp(t, func(c *config.Config) { c.OpenAIBaseURL = srv.URL })

	resp := doJSON(t, app, "POST", "/api/openai/generate-description", token(t, "u1"),
		map[string]any{"prompt": "hi"}, nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("upstream down: want 500, got %d", resp.StatusCode)
	}
}
