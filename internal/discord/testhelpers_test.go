package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake clicker API and a Discord session whose
// HTTP calls are captured instead of sent
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *apiclient.Client
	Session   *discordgo.Session

	mu       sync.Mutex
	edits    []discordgo.WebhookEdit
	deferred int
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			tc.mu.Lock()
			defer tc.mu.Unlock()
			switch req.Method {
			case http.MethodPatch:
				var edit discordgo.WebhookEdit
				_ = json.NewDecoder(req.Body).Decode(&edit)
				tc.edits = append(tc.edits, edit)
			case http.MethodPost:
				tc.deferred++
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	return tc
}

// LastEdit returns the final interaction edit
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "no interaction edit captured")
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the embed of the final interaction edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	require.NotEmpty(t, *edit.Embeds)
	return (*edit.Embeds)[0]
}

// LastContent returns the plain content of the final interaction edit
func (tc *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Content)
	return *edit.Content
}

// commandInteraction builds a guild slash command interaction
func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "1234", Username: "Tester"},
			},
		},
	}
}

func intOption(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func boolOption(name string, v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: v,
	}
}

// WriteJSON writes data as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
