package ports

// Event is a message fanned out to all live subscribers.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// Broadcaster pushes events to connected clients. Implementations are
// constructed explicitly and injected; there is no ambient singleton.
type Broadcaster interface {
	Broadcast(event Event)
}
