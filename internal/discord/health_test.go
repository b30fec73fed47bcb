package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()

	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+2, commandCounter.Load())
	assert.False(t, lastCommandTime().IsZero())
}

func TestHandleHealth_DegradedWhenDisconnected(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	bot := &Bot{Session: tc.Session, Client: tc.APIClient}
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "degraded", status.Status)
	assert.True(t, status.APIReachable)
	assert.False(t, status.Connected)
	assert.False(t, status.EventsConnected)
}

type fakeSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeSender) SendChannelEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return f.err
}

func TestHandleAnnounce(t *testing.T) {
	bot := &Bot{Session: &discordgo.Session{}}
	srv := NewHTTPServer("0", bot)

	t.Run("rejects empty title", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/announce", bytes.NewBufferString(`{}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("fails without a channel", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"title":"Maintenance","description":"Back soon"}`)
		srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/announce", body))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSSENotifier_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("discord down")}
	n := NewSSENotifier(sender, "chan-1")

	err := n.handleBossStarted(SSEEvent{Type: "clicker.boss_started", Payload: json.RawMessage(`{"player_id":"42","health":100}`)})
	assert.Error(t, err)
	require.Len(t, sender.embeds, 1)
	assert.Equal(t, "chan-1", sender.channelID)
	assert.Contains(t, sender.embeds[0].Description, "<@42>")
	assert.Contains(t, sender.embeds[0].Description, "**100**")
}
