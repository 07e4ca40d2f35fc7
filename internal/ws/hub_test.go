package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/healthcalc/healthcalc/internal/profile"
	wsHub "github.com/healthcalc/healthcalc/internal/ws"
)

const testInterval = 20 * time.Millisecond

// --- helpers ----------------------------------------------------------------

func newStore(t *testing.T, p profile.Profile) *profile.Store {
	t.Helper()
	st := profile.NewStore(profile.NewMemoryKV(), "")
	if !p.IsEmpty() {
		if _, err := st.Save(context.Background(), p); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	return st
}

// startHub starts a test HTTP server with the hub as its handler.
// The hub's Run loop is started with a cancellable context.
func startHub(t *testing.T, st *profile.Store, interval time.Duration) (wsURL string, hub *wsHub.Hub, cancel func()) {
	t.Helper()

	hub = wsHub.New(st, interval, nil)
	ctx, cancelFn := context.WithCancel(context.Background())

	srv := httptest.NewServer(hub)
	go hub.Run(ctx)

	t.Cleanup(func() {
		cancelFn()
		srv.Close()
	})

	wsURL = "ws" + strings.TrimPrefix(srv.URL, "http")
	return wsURL, hub, cancelFn
}

// dial connects a WebSocket client to wsURL and returns the connection.
func dial(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readMessage reads one message from conn with a short deadline.
func readMessage(t *testing.T, conn *websocket.Conn) wsHub.Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var m wsHub.Message
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return m
}

// --- tests ------------------------------------------------------------------

func TestHub_Connect_ReceivesStoredProfile(t *testing.T) {
	st := newStore(t, profile.Profile{Age: profile.Float(30), Gender: profile.String("male")})
	wsURL, _, _ := startHub(t, st, time.Hour)

	m := readMessage(t, dial(t, wsURL))

	if m.Event != wsHub.EventProfile {
		t.Errorf("event: got %q, want profile", m.Event)
	}
	if m.Data.Age == nil || *m.Data.Age != 30 || m.Data.Gender == nil || *m.Data.Gender != "male" {
		t.Errorf("data: got %+v", m.Data)
	}
}

func TestHub_EmptyStore_EmptyProfile(t *testing.T) {
	wsURL, _, _ := startHub(t, newStore(t, profile.Profile{}), time.Hour)
	if m := readMessage(t, dial(t, wsURL)); !m.Data.IsEmpty() {
		t.Errorf("data: got %+v, want empty", m.Data)
	}
}

func TestHub_SavePushesToAllClients(t *testing.T) {
	st := newStore(t, profile.Profile{})
	wsURL, hub, _ := startHub(t, st, time.Hour)

	conns := make([]*websocket.Conn, 3)
	for i := range conns {
		conns[i] = dial(t, wsURL)
		readMessage(t, conns[i]) // consume initial message
	}
	time.Sleep(10 * time.Millisecond)
	if n := hub.Count(); n != 3 {
		t.Fatalf("Count: got %d, want 3", n)
	}

	if _, err := st.Save(context.Background(), profile.Profile{Weight: profile.Float(72)}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for i, conn := range conns {
		m := readMessage(t, conn)
		if m.Data.Weight == nil || *m.Data.Weight != 72 {
			t.Errorf("client %d: data %+v, want weight 72", i, m.Data)
		}
	}
}

func TestHub_ClearPushesEmptyProfile(t *testing.T) {
	st := newStore(t, profile.Profile{Age: profile.Float(50)})
	wsURL, _, _ := startHub(t, st, time.Hour)

	conn := dial(t, wsURL)
	readMessage(t, conn)

	if err := st.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if m := readMessage(t, conn); !m.Data.IsEmpty() {
		t.Errorf("after Clear: got %+v, want empty", m.Data)
	}
}

func TestHub_ResyncOnTick(t *testing.T) {
	st := newStore(t, profile.Profile{Height: profile.Float(180)})
	wsURL, _, _ := startHub(t, st, testInterval)

	conn := dial(t, wsURL)
	readMessage(t, conn) // immediate message

	// The next message arrives from the resync ticker without any change.
	m := readMessage(t, conn)
	if m.Data.Height == nil || *m.Data.Height != 180 {
		t.Errorf("resync: got %+v, want height 180", m.Data)
	}
}

func TestHub_CountClients_DecreasesOnDisconnect(t *testing.T) {
	wsURL, hub, _ := startHub(t, newStore(t, profile.Profile{}), time.Hour)

	conn := dial(t, wsURL)
	readMessage(t, conn)
	time.Sleep(10 * time.Millisecond)

	if n := hub.Count(); n != 1 {
		t.Errorf("Count before disconnect: got %d, want 1", n)
	}

	conn.Close()
	time.Sleep(50 * time.Millisecond) // let readPump detect the close

	if n := hub.Count(); n != 0 {
		t.Errorf("Count after disconnect: got %d, want 0", n)
	}
}

func TestHub_CancelContextClosesConnections(t *testing.T) {
	wsURL, hub, cancel := startHub(t, newStore(t, profile.Profile{}), time.Hour)

	conn := dial(t, wsURL)
	readMessage(t, conn)
	time.Sleep(10 * time.Millisecond)

	cancel() // signal shutdown

	time.Sleep(50 * time.Millisecond)
	if n := hub.Count(); n != 0 {
		t.Errorf("Count after cancel: got %d, want 0", n)
	}
}

func TestHub_NonWebSocketRequest_Returns400(t *testing.T) {
	hub := wsHub.New(newStore(t, profile.Profile{}), testInterval, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", resp.StatusCode)
	}
}

func TestHub_RejectsUnlistedOrigin(t *testing.T) {
	hub := wsHub.New(newStore(t, profile.Profile{}), time.Hour, []string{"https://calc.example.com"})
	srv := httptest.NewServer(hub)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	bad := http.Header{"Origin": []string{"https://evil.example.com"}}
	if _, resp, err := websocket.DefaultDialer.Dial(wsURL, bad); err == nil {
		t.Fatal("dial with unlisted origin succeeded")
	} else if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("unlisted origin: got %v, want 403", resp)
	}

	good := http.Header{"Origin": []string{"https://calc.example.com"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, good)
	if err != nil {
		t.Fatalf("dial with listed origin: %v", err)
	}
	conn.Close()
}
