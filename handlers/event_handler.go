package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/g-67560126-commits/e-Asrama/events"
	"github.com/g-67560126-commits/e-Asrama/models"
)

type EventHandler struct {
	hub *events.Hub
}

func NewEventHandler(hub *events.Hub) *EventHandler {
	return &EventHandler{hub: hub}
}

// staffEvent is what a staff tab receives on the stream. Alert carries the
// ready-made banner text for new pending submissions.
type staffEvent struct {
	Type        string             `json:"type"`
	Alert       string             `json:"alert,omitempty"`
	Application models.Application `json:"application"`
}

// AlertText names the new record's subject and category the way the staff
// banner shows it.
func AlertText(app models.Application) string {
	return fmt.Sprintf("Permohonan Baharu: %s (%s)", app.StudentName, app.Type)
}

// GET /staff/events
//
// Server-sent events stream over the change hub. Every open staff tab gets
// every committed mutation; a new pending submission additionally carries
// the alert text.
func (h *EventHandler) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ch, cancel := h.hub.Subscribe(16)
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			out := staffEvent{Type: ev.Type, Application: ev.Application}
			if ev.Type == events.ApplicationCreated && ev.Application.Pending() {
				out.Alert = AlertText(ev.Application)
			}
			payload, err := json.Marshal(out)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
