package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/convobot/pkg/audit"
	"github.com/amirasaad/convobot/pkg/bot"
	"github.com/amirasaad/convobot/pkg/config"
	"github.com/amirasaad/convobot/pkg/dialog"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	lastUser dialog.User
	lastText string
	reply    string
}

func (s *stubHandler) Handle(_ context.Context, user dialog.User, text string) string {
	s.lastUser = user
	s.lastText = text
	return s.reply
}

type captureRecorder struct {
	records []audit.Record
}

func (c *captureRecorder) Record(_ context.Context, rec audit.Record) error {
	c.records = append(c.records, rec)
	return nil
}

func newTestApp(handler MessageHandler, recorder audit.Recorder) *fiber.App {
	cfg := &config.App{RateLimit: &config.RateLimit{MaxRequests: 0}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApp(handler, recorder, cfg, logger)
}

func postUpdate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	return resp
}

func TestWebhookDeliversReply(t *testing.T) {
	handler := &stubHandler{reply: "10 USD is 9.1 EUR"}
	recorder := &captureRecorder{}
	app := newTestApp(handler, recorder)

	resp := postUpdate(t, app, `{
		"message": {
			"text": "10 USD to EUR",
			"from": {"id": 42, "first_name": "Alice", "username": "alice"}
		}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply Reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.Equal(t, "10 USD is 9.1 EUR", reply.Text)

	assert.Equal(t, int64(42), handler.lastUser.ID)
	assert.Equal(t, "Alice", handler.lastUser.FirstName)
	assert.Equal(t, "10 USD to EUR", handler.lastText)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, "10 USD to EUR", recorder.records[0].Request)
	assert.Equal(t, "10 USD is 9.1 EUR", recorder.records[0].Response)
}

func TestWebhookSubstitutesNonTextSentinel(t *testing.T) {
	handler := &stubHandler{reply: "I can only work with text messages."}
	app := newTestApp(handler, &captureRecorder{})

	resp := postUpdate(t, app, `{"message": {"from": {"id": 42}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, bot.NonTextInput, handler.lastText)
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	app := newTestApp(&stubHandler{}, &captureRecorder{})

	resp := postUpdate(t, app, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebhookRejectsIncompleteUpdate(t *testing.T) {
	app := newTestApp(&stubHandler{}, &captureRecorder{})

	tests := []struct {
		name string
		body string
	}{
		{name: "no message", body: `{}`},
		{name: "no sender", body: `{"message": {"text": "hi"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postUpdate(t, app, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHealthz(t *testing.T) {
	app := newTestApp(&stubHandler{}, &captureRecorder{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
