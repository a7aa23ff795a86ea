package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine"
	"sandbox-core/internal/network"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

var errBogus = errors.New("unknown action")

type fakeSim struct {
	mu       sync.Mutex
	actors   []api.ActorView
	commands []api.ClientCommand
}

func (f *fakeSim) Snapshot() []api.ActorView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.actors
}

func (f *fakeSim) Enqueue(cmd api.ClientCommand) error {
	if cmd.Action == "BOGUS" {
		return errBogus
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	return nil
}

func (f *fakeSim) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.commands)
}

func newFakeSim() *fakeSim {
	return &fakeSim{actors: []api.ActorView{
		{ID: "player", Kind: "PLAYER"},
		{ID: "ped_0", Kind: "PEDESTRIAN", NavMode: "PATROLLING"},
		{ID: "car_ai", Kind: "VEHICLE"},
	}}
}

func newTestServer(t *testing.T) (*fakeSim, *network.Broadcaster, *engine.EventLog, *httptest.Server) {
	t.Helper()
	sim := newFakeSim()
	hub := network.NewBroadcaster()
	events := engine.NewEventLog(10)
	ts := httptest.NewServer(New(sim, hub, events, "").Handler())
	t.Cleanup(ts.Close)
	return sim, hub, events, ts
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestServer_HealthAndVersion(t *testing.T) {
	_, _, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var info map[string]any
	getJSON(t, ts.URL+"/version", &info)
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "calculated")
}

func TestDebugHandler_Actors(t *testing.T) {
	_, _, _, ts := newTestServer(t)

	var all []api.ActorView
	getJSON(t, ts.URL+"/debug/actors", &all)
	assert.Len(t, all, 3)

	var peds []api.ActorView
	getJSON(t, ts.URL+"/debug/actors?kind=PEDESTRIAN", &peds)
	require.Len(t, peds, 1)
	assert.Equal(t, "ped_0", peds[0].ID)

	var none []api.ActorView
	getJSON(t, ts.URL+"/debug/actors?kind=TANK", &none)
	assert.Empty(t, none)
}

func TestDebugHandler_Events(t *testing.T) {
	_, _, events, ts := newTestServer(t)

	var empty []api.EventView
	getJSON(t, ts.URL+"/debug/events", &empty)
	assert.Empty(t, empty)

	events.OnEvent(domain.Event{Type: domain.EventDamaged, Time: 1500 * time.Millisecond, Target: "ped_0", Amount: 25})

	var views []api.EventView
	getJSON(t, ts.URL+"/debug/events", &views)
	require.Len(t, views, 1)
	assert.Equal(t, "DAMAGED", views[0].Type)
	assert.Equal(t, int64(1500), views[0].TimeMs)
	assert.Equal(t, "ped_0", views[0].Target)
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) api.ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg api.ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocket_Session(t *testing.T) {
	sim, hub, _, ts := newTestServer(t)
	conn := dial(t, ts)

	// Первым приходит снимок
	first := readMessage(t, conn)
	assert.Equal(t, api.MessageSnapshot, first.Type)
	assert.Len(t, first.Actors, 3)
	assert.Equal(t, 1, hub.SubscriberCount())

	t.Run("rejected command answers with error", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "BOGUS"}))
		msg := readMessage(t, conn)
		assert.Equal(t, api.MessageError, msg.Type)
		assert.Equal(t, errBogus.Error(), msg.Error)
	})

	t.Run("accepted command reaches the simulation", func(t *testing.T) {
		payload := json.RawMessage(`{"targetId":"ped_0","amount":10}`)
		require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "DAMAGE", Payload: payload}))
		assert.Eventually(t, func() bool { return sim.received() == 1 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("events are forwarded", func(t *testing.T) {
		EventForwarder{Hub: hub}.OnEvent(domain.Event{Type: domain.EventFired, Tick: 7, Source: "player", WeaponID: "pistol"})
		msg := readMessage(t, conn)
		assert.Equal(t, api.MessageEvent, msg.Type)
		assert.Equal(t, uint64(7), msg.Tick)
		require.NotNil(t, msg.Event)
		assert.Equal(t, "FIRED", msg.Event.Type)
		assert.Equal(t, "pistol", msg.Event.WeaponID)
	})

	t.Run("disconnect unregisters the session", func(t *testing.T) {
		require.NoError(t, conn.Close())
		assert.Eventually(t, func() bool { return hub.SubscriberCount() == 0 }, 2*time.Second, 10*time.Millisecond)
	})
}

func TestEventForwarder_NoSubscribers(t *testing.T) {
	hub := network.NewBroadcaster()
	// Без подписчиков просто ничего не происходит
	EventForwarder{Hub: hub}.OnEvent(domain.Event{Type: domain.EventDamaged})
	assert.Zero(t, hub.SubscriberCount())
}
