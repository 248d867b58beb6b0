package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-travel-planner/internal/httpclient"
)

func newTestChat(t *testing.T, handler http.HandlerFunc) *ChatClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := httpclient.New(srv.Client(), "llm-test", "", httpclient.WithSleepFunc(func(time.Duration) {}))
	return NewChatClient(client, srv.URL, "secret")
}

func TestChatGenerate(t *testing.T) {
	chat := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "haiku", req.Model)
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "be brief", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "where to go?", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"model":"haiku-20240307","choices":[{"message":{"role":"assistant","content":"We recommend Napa"}}]}`))
	})

	res, err := chat.Generate(context.Background(), Prompt{Model: "haiku", System: "be brief", User: "where to go?"})
	assert.Nil(t, err)
	assert.Equal(t, StructuredResult{Payload: "We recommend Napa", Format: "markdown", Model: "haiku-20240307"}, res)
}

func TestChatGenerateWithoutSystem(t *testing.T) {
	chat := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 1)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	res, err := chat.Generate(context.Background(), Prompt{Model: "haiku", User: "hi"})
	assert.Nil(t, err)
	assert.Equal(t, "haiku", res.(StructuredResult).Model)
}

func TestChatGenerateErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		expErr error
	}{
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, expErr: ErrEmptyCompletion},
		{name: "server error", status: http.StatusBadGateway, body: ``, expErr: httpclient.ErrUpstreamUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chat := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			res, err := chat.Generate(context.Background(), Prompt{Model: "haiku", User: "hi"})
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tc.expErr), "got %v", err)
		})
	}
}

func TestChatGenerateBadRequest(t *testing.T) {
	chat := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unknown model"}`))
	})

	res, err := chat.Generate(context.Background(), Prompt{Model: "nope", User: "hi"})
	assert.Nil(t, res)
	assert.Equal(t, `model api returned 400: {"error":"unknown model"}`, err.Error())
}

func TestChatGenerateOversizedResponse(t *testing.T) {
	chat := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"` + strings.Repeat("a", maxResponseBytes) + `"}}]}`))
	})

	res, err := chat.Generate(context.Background(), Prompt{Model: "haiku", User: "where to go?"})
	assert.Nil(t, res)
	assert.NotNil(t, err)
}
