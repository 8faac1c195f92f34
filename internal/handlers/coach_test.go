package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/place-of-your-own/artworks/internal/coach"
)

func TestCoach(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	body := strings.NewReader(`{"message":"help me with my budget"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/coach", body)
	rec := httptest.NewRecorder()
	h.Coach(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp coach.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Type != coach.CategoryBudget {
		t.Errorf("type = %q, want budget", resp.Type)
	}
	if resp.Message == "" {
		t.Error("empty coach reply")
	}
}

func TestCoachEmptyMessage(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	tests := []string{`{}`, `{"message":"   "}`, `{`}
	for _, body := range tests {
		req := httptest.NewRequest(http.MethodPost, "/v1/coach", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Coach(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestCoachWS(t *testing.T) {
	h := newTestHandler(nil, nil, nil)
	server := httptest.NewServer(http.HandlerFunc(h.CoachWS))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"message": "find me an apartment"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Error   string `json:"error"`
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("unexpected error frame: %q", out.Error)
	}
	if out.Type != string(coach.CategorySearch) {
		t.Errorf("type = %q, want search", out.Type)
	}

	// An empty message yields an error frame and keeps the connection open.
	if err := conn.WriteJSON(map[string]string{"message": "  "}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Error == "" {
		t.Error("empty message did not produce an error frame")
	}

	if err := conn.WriteJSON(map[string]string{"message": "thanks"}); err != nil {
		t.Fatalf("write after error frame: %v", err)
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read after error frame: %v", err)
	}
	if out.Message == "" {
		t.Error("connection unusable after error frame")
	}
}
