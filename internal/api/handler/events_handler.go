package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// EventSource is what the events endpoint needs from the broadcast hub.
type EventSource interface {
	Subscribe() (<-chan ports.Event, func())
}

// EventsHandler streams broadcast events (document uploads) to admin
// dashboards over server-sent events.
type EventsHandler struct {
	source EventSource
}

func NewEventsHandler(source EventSource) *EventsHandler {
	return &EventsHandler{source: source}
}

func (h *EventsHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	events, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Name, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
