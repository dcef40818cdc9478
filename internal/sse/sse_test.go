package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_FiltersByEntityAndType(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register("", nil)
	alice := hub.Register("alice", nil)
	aliceEvolved := hub.Register("alice", []string{domain.EventTypePetEvolved})
	assert.Equal(t, 3, hub.ClientCount())

	hub.Broadcast(Event{Type: domain.EventTypeActionPerformed, EntityID: "bob"})
	hub.Broadcast(Event{Type: domain.EventTypeActionPerformed, EntityID: "alice"})
	hub.Broadcast(Event{Type: domain.EventTypePetEvolved, EntityID: "alice"})

	assert.Equal(t, "bob", receive(t, all).EntityID)
	assert.Equal(t, "alice", receive(t, all).EntityID)
	assert.Equal(t, domain.EventTypePetEvolved, receive(t, all).Type)

	first := receive(t, alice)
	assert.Equal(t, domain.EventTypeActionPerformed, first.Type)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, domain.EventTypePetEvolved, receive(t, alice).Type)

	assert.Equal(t, domain.EventTypePetEvolved, receive(t, aliceEvolved).Type)
	select {
	case evt := <-aliceEvolved.EventChannel:
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Register("alice", nil)
	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())

	late := hub.Register("alice", nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "registration after stop is closed")

	hub.Unregister(c.ID)
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()
	c := hub.Register("alice", nil)

	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	payload := event.EvolutionPayloadV1{OldStage: domain.StageBaby, NewStage: domain.StageKid}
	require.NoError(t, bus.Publish(context.Background(), event.New(domain.EventTypePetEvolved, "alice", at, payload)))

	evt := receive(t, c)
	assert.Equal(t, domain.EventTypePetEvolved, evt.Type)
	assert.Equal(t, at.Unix(), evt.Timestamp)
	assert.Equal(t, payload, evt.Payload)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeKeepalive, Timestamp: 7})
	require.NoError(t, err)
	assert.Equal(t, "id: 1\nevent: keepalive\ndata: {\"id\":\"1\",\"type\":\"keepalive\",\"timestamp\":7,\"payload\":null}\n\n", string(msg))
}

// readEvent reads lines until a complete SSE message and decodes its data line
func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	var evt Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(t, json.Unmarshal([]byte(data), &evt))
		}
		if line == "" && evt.Type != "" {
			return evt
		}
	}
}

func TestHandler_StreamsPetEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()

	r := chi.NewRouter()
	r.Get("/pets/{id}/events", Handler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()
	defer hub.Stop()

	resp, err := http.Get(srv.URL + "/pets/alice/events?types=" + domain.EventTypePetEvolved)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	connected := readEvent(t, reader)
	assert.Equal(t, EventTypeConnected, connected.Type)
	assert.Equal(t, "alice", connected.EntityID)

	hub.Broadcast(Event{Type: domain.EventTypePetEvolved, EntityID: "bob"})
	hub.Broadcast(Event{Type: domain.EventTypeActionPerformed, EntityID: "alice"})
	hub.Broadcast(Event{Type: domain.EventTypePetEvolved, EntityID: "alice", Payload: map[string]string{"new_stage": "kid"}})

	evt := readEvent(t, reader)
	assert.Equal(t, domain.EventTypePetEvolved, evt.Type)
	assert.Equal(t, "alice", evt.EntityID)
	assert.Equal(t, map[string]interface{}{"new_stage": "kid"}, evt.Payload)
}

func TestHandler_RequiresFlusher(t *testing.T) {
	hub := NewHub()
	rec := &nonFlusher{header: http.Header{}}
	Handler(hub).ServeHTTP(rec, httptest.NewRequest("GET", "/pets/alice/events", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.status)
	assert.Equal(t, 0, hub.ClientCount())
}

type nonFlusher struct {
	header http.Header
	status int
}

func (n *nonFlusher) Header() http.Header         { return n.header }
func (n *nonFlusher) Write(b []byte) (int, error) { return len(b), nil }
func (n *nonFlusher) WriteHeader(code int)        { n.status = code }
