package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/mindpad-app/mindpad/models"
)

// eventBuffer bounds how many undelivered events the subscriber keeps before
// the reader goroutine blocks on the websocket.
const eventBuffer = 32

// SubscribeEvents dials the server's websocket feed and streams decoded note
// events until ctx is cancelled or the connection drops. The returned channel
// is closed in either case.
func (h *httpServerAdapter) SubscribeEvents(ctx context.Context) (<-chan models.NoteEvent, error) {
	wsURL, err := h.eventsURL()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: events subscription rejected", ErrUnauthorized)
		}
		return nil, fmt.Errorf("events dial: %w", err)
	}

	events := make(chan models.NoteEvent, eventBuffer)

	// Closing the connection on ctx.Done unblocks the blocked ReadMessage in
	// the reader goroutine.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()

		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					h.logger.Err(err).Msg("event feed closed")
				}
				return
			}

			var event models.NoteEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				h.logger.Err(err).Msg("skipping malformed event payload")
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// eventsURL derives the websocket endpoint from the configured base URL.
func (h *httpServerAdapter) eventsURL() (string, error) {
	base, err := url.Parse(h.client.BaseURL)
	if err != nil {
		return "", fmt.Errorf("events url: %w", err)
	}

	switch base.Scheme {
	case "https":
		base.Scheme = "wss"
	default:
		base.Scheme = "ws"
	}
	base.Path = strings.TrimRight(base.Path, "/") + "/api/events"

	return base.String(), nil
}
