package handlers_test

import (
	"net/http"
	"testing"
)

func qtyIn(c cartResp, itemID string) int {
	for _, it := range c.Items {
		if it.ItemID == itemID {
			return it.Quantity
		}
	}
	return 0
}

func TestCartFlow(t *testing.T) {
	app := newTestApp(t)
	tok := token(t, "u1")

	// empty cart reads as an empty list, not an error
	var cart cartResp
	resp := doJSON(t, app, "GET", "/api/cart/u1", tok, nil, &cart)
	if resp.StatusCode != http.StatusOK || len(cart.Items) != 0 {
		t.Fatalf("fresh cart: want 200 + empty items, got %d %+v", resp.StatusCode, cart)
	}

	// two adds accumulate in one entry
	doJSON(t, app, "POST", "/api/cart/addToCart", tok,
		map[string]any{"userId": "u1", "itemId": "seed-lamp", "quantity": 2}, nil)
	resp = doJSON(t, app, "POST", "/api/cart/addToCart", tok,
		map[string]any{"userId": "u1", "itemId": "seed-lamp", "quantity": 3}, &cart)
	if resp.StatusCode != http.StatusOK || qtyIn(cart, "seed-lamp") != 5 {
		t.Fatalf("want seed-lamp at 5 after 2+3, got %+v", cart)
	}

	// zero quantity never passes the set path
	resp = doJSON(t, app, "PUT", "/api/cart/updateQuantity", tok,
		map[string]any{"userId": "u1", "itemId": "seed-lamp", "quantity": 0}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("qty=0: want 400, got %d", resp.StatusCode)
	}
	doJSON(t, app, "GET", "/api/cart/u1", tok, nil, &cart)
	if qtyIn(cart, "seed-lamp") != 5 {
		t.Fatalf("rejected set must leave cart unchanged, got %+v", cart)
	}

	// merge: zero removes the named entry only
	doJSON(t, app, "POST", "/api/cart/addToCart", tok,
		map[string]any{"userId": "u1", "itemId": "seed-mug", "quantity": 1}, nil)
	resp = doJSON(t, app, "POST", "/api/cart/updateCart", tok,
		map[string]any{"userId": "u1", "items": []map[string]any{{"itemId": "seed-lamp", "quantity": 0}}}, &cart)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("updateCart: want 200, got %d", resp.StatusCode)
	}
	if qtyIn(cart, "seed-lamp") != 0 || qtyIn(cart, "seed-mug") != 1 {
		t.Fatalf("want lamp gone and mug untouched, got %+v", cart)
	}

	// removing something that is not there is a 404
	resp = doJSON(t, app, "POST", "/api/cart/removeItem", tok,
		map[string]any{"userId": "u1", "itemId": "seed-lamp"}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("remove absent: want 404, got %d", resp.StatusCode)
	}

	// clear, then read back empty
	resp = doJSON(t, app, "DELETE", "/api/cart/u1", tok, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear: want 200, got %d", resp.StatusCode)
	}
	doJSON(t, app, "GET", "/api/cart/u1", tok, nil, &cart)
	if len(cart.Items) != 0 {
		t.Fatalf("cart should be empty after clear, got %+v", cart)
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/cart/addToCart", token(t, "u1"),
		map[string]any{"userId": "u1", "itemId": "no-such-item", "quantity": 1}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown item: want 404, got %d", resp.StatusCode)
	}
}

func TestCartAddBadQuantity(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/cart/addToCart", token(t, "u1"),
		map[string]any{"userId": "u1", "itemId": "seed-lamp", "quantity": -3}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative add: want 400, got %d", resp.StatusCode)
	}
}
