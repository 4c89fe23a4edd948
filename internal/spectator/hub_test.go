package spectator

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"pong/internal/game"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func waitForViewers(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ViewerCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("viewer count stuck at %d, want %d", h.ViewerCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestViewerReceivesPublishedSnapshot(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dialHub(t, srv)
	defer conn.Close()
	waitForViewers(t, h, 1)

	want := game.Snapshot{Tick: 42, State: "in_game", BallX: 123.5, PlayerScore: 3}
	h.Publish(want)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got game.Snapshot
	if err := json.Unmarshal(frame, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("snapshot mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestClosedViewerIsPruned(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dialHub(t, srv)
	waitForViewers(t, h, 1)

	conn.Close()
	waitForViewers(t, h, 0)

	// Publishing into an empty hub must be harmless.
	h.Publish(game.Snapshot{Tick: 1})
}
