package handlers_test

import (
	"net/http"
	"testing"
)

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/cart/u1", "", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token: want 401, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/cart/u1", "not-a-valid-token", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: want 401, got %d", resp.StatusCode)
	}
}

func TestAuthSubjectMustMatchTarget(t *testing.T) {
	app := newTestApp(t)

	// u1's token cannot read u2's cart
	resp := doJSON(t, app, "GET", "/api/cart/u2", token(t, "u1"), nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("mismatched subject: want 403, got %d", resp.StatusCode)
	}

	// ...nor push mutations naming u2
	resp = doJSON(t, app, "POST", "/api/cart/addToCart", token(t, "u1"),
		map[string]any{"userId": "u2", "itemId": "seed-lamp", "quantity": 1}, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("mismatched body userId: want 403, got %d", resp.StatusCode)
	}
}

func TestPublicSurface(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/healthz", "/api/items/allitems", "/api/items/details/seed-lamp", "/api/items/search?query=lamp"} {
		resp := doJSON(t, app, "GET", path, "", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: want 200, got %d", path, resp.StatusCode)
		}
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/nope", "", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}
