package sse

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	EntityID  string      `json:"entity_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ConnectedPayload is sent once when a stream opens
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	EntityID string   `json:"entity_id,omitempty"`
	Filters  []string `json:"filters,omitempty"`
}
