package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"tradepost/internal/auth"
	"tradepost/internal/config"
	"tradepost/internal/http/handlers"
	"tradepost/internal/repos"
)

const testSecret = "test-secret"

// newTestApp builds the full API against an in-memory database (which gets
// the demo seed data: seed-lamp, seed-mug, seed-chair owned by seed-seller).
func newTestApp(t *testing.T, mutate ...func(*config.Config)) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", AuthSecret: testSecret}
	for _, m := range mutate {
		m(&cfg)
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return handlers.NewApp(db, cfg)
}

func token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := auth.Mint(testSecret, userID, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

// doJSON fires a request with an optional bearer token and JSON body and
// decodes the response body into out (when out is non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body, out any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	if out != nil {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp
}

type cartResp struct {
	UserID string `json:"userId"`
	Items  []struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}
