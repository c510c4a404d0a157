package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

const testUserID = "123456789012345678"

// MockRoundTripper implements http.RoundTripper for intercepting Discord API requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a command handler to a fake gacha API and a fake Discord API
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	edits     []discordgo.WebhookEdit
	responses []discordgo.InteractionResponse
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := NewAPIClient(server.URL, "test-api-key")
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			tc.mu.Lock()
			switch {
			case req.Method == http.MethodPatch:
				var edit discordgo.WebhookEdit
				if json.Unmarshal(body, &edit) == nil {
					tc.edits = append(tc.edits, edit)
				}
			case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
				var resp discordgo.InteractionResponse
				if json.Unmarshal(body, &resp) == nil {
					tc.responses = append(tc.responses, resp)
				}
			}
			tc.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}

	t.Cleanup(server.Close)

	return tc
}

// LastEmbed returns the first embed of the most recent response edit, or nil
func (tc *TestContext) LastEmbed() *discordgo.MessageEmbed {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.edits) == 0 {
		return nil
	}
	edit := tc.edits[len(tc.edits)-1]
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		return nil
	}
	return (*edit.Embeds)[0]
}

// LastContent returns the text of the most recent response edit
func (tc *TestContext) LastContent() string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.edits) == 0 {
		return ""
	}
	edit := tc.edits[len(tc.edits)-1]
	if edit.Content == nil {
		return ""
	}
	return *edit.Content
}

// Responses returns every interaction callback sent so far
func (tc *TestContext) Responses() []discordgo.InteractionResponse {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]discordgo.InteractionResponse(nil), tc.responses...)
}

// commandInteraction builds a slash command interaction from a guild member
func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: testUserID, Username: "Tester"},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// intOption carries a float64 the way decoded Discord payloads do
func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func boolOption(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

// WriteJSON writes data as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
