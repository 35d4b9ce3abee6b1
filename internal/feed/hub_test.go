package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEvent reads one note event from the connection with a deadline so a
// missing broadcast fails the test instead of hanging it.
func readEvent(t *testing.T, conn *websocket.Conn) models.NoteEvent {
	t.Helper()

	var event models.NoteEvent
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, p, err := conn.ReadMessage()
	require.NoError(t, err, "failed to read message from WebSocket")
	require.NoError(t, json.Unmarshal(p, &event), "failed to unmarshal note event")
	return event
}

func newFeedServer(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub(logger.NewLogger("test"))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Tests pass the user id in the query string in place of
		// real token auth.
		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		require.NoError(t, err)
		require.NoError(t, ServeWS(hub, w, r, userID))
	}))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, wsURL string, userID int64) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/?user_id="+strconv.FormatInt(userID, 10), nil)
	require.NoError(t, err, "failed to connect")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishReachesAllUserSessions(t *testing.T) {
	hub, wsURL := newFeedServer(t)

	conn1 := dial(t, wsURL, 1)
	conn2 := dial(t, wsURL, 1)

	// registration races the publish without a short settle period
	time.Sleep(50 * time.Millisecond)

	note := models.Note{ID: "note-1", UserID: 1, Title: "Untitled"}
	hub.Publish(1, models.NoteEvent{Type: models.NoteInserted, Note: note})

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		event := readEvent(t, conn)
		assert.Equal(t, models.NoteInserted, event.Type)
		assert.Equal(t, "note-1", event.Note.ID)
	}
}

func TestHub_PublishIsScopedToUser(t *testing.T) {
	hub, wsURL := newFeedServer(t)

	conn1 := dial(t, wsURL, 1)
	conn2 := dial(t, wsURL, 2)

	time.Sleep(50 * time.Millisecond)

	hub.Publish(1, models.NoteEvent{Type: models.NoteDeleted, Note: models.Note{ID: "note-1", UserID: 1}})

	event := readEvent(t, conn1)
	assert.Equal(t, models.NoteDeleted, event.Type)

	// the other user's session must stay silent
	conn2.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := conn2.ReadMessage()
	require.Error(t, err, "expected no event for another user")
}

func TestHub_EventOrderIsPreserved(t *testing.T) {
	hub, wsURL := newFeedServer(t)

	conn := dial(t, wsURL, 1)
	time.Sleep(50 * time.Millisecond)

	hub.Publish(1, models.NoteEvent{Type: models.NoteInserted, Note: models.Note{ID: "note-1"}})
	hub.Publish(1, models.NoteEvent{Type: models.NoteUpdated, Note: models.Note{ID: "note-1", Title: "Renamed"}})
	hub.Publish(1, models.NoteEvent{Type: models.NoteDeleted, Note: models.Note{ID: "note-1"}})

	first := readEvent(t, conn)
	second := readEvent(t, conn)
	third := readEvent(t, conn)

	assert.Equal(t, models.NoteInserted, first.Type)
	assert.Equal(t, models.NoteUpdated, second.Type)
	assert.Equal(t, models.NoteDeleted, third.Type)
}
