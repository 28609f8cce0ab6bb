package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelonyc/nutrition-chat/models"
)

func TestLLMService_Chat_Success(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"message":{"role":"assistant","content":"hello there"}}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewLLMService(testConfig(srv.URL))
	reply, err := svc.Chat(nil, "hi", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)
	assert.Equal(t, "/api/chat", gotPath)
	assert.Empty(t, gotAuth, "no bearer header without a token")
	assert.Equal(t, "application/json", gotContentType)
}

func TestLLMService_Chat_BearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":{"role":"assistant","content":"ok"}}`))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.OllamaAPIToken = "sk-test-token"
	svc := NewLLMService(cfg)

	_, err := svc.Chat(nil, "hi", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-test-token", gotAuth)
}

func TestLLMService_Chat_TrimsBaseSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"message":{"role":"assistant","content":"ok"}}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewLLMService(testConfig(srv.URL + "/"))
	_, err := svc.Chat(nil, "hi", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/chat", gotPath)
}

func TestLLMService_Chat_RequestShape(t *testing.T) {
	var got []chatRequest
	srv := newFakeLLM(t, "ok", &got)

	svc := NewLLMService(testConfig(srv.URL))
	history := []models.Message{
		{Role: models.RoleUser, Content: "earlier"},
		{Role: models.RoleAssistant, Content: "noted"},
	}
	_, err := svc.Chat(history, "latest", nil, nil)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "test-model", got[0].Model)
	assert.False(t, got[0].Stream)
	require.Len(t, got[0].Messages, 4)
	assert.Equal(t, "You are a helpful assistant.", got[0].Messages[0].Content)
	assert.Equal(t, "latest", got[0].Messages[3].Content)
}

func TestLLMService_Chat_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	svc := NewLLMService(testConfig(srv.URL))
	_, err := svc.Chat(nil, "hi", nil, nil)
	assert.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "404")
}

func TestLLMService_Chat_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	t.Cleanup(srv.Close)

	svc := NewLLMService(testConfig(srv.URL))
	_, err := svc.Chat(nil, "hi", nil, nil)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestLLMService_Chat_EmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"role":"assistant","content":""}}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewLLMService(testConfig(srv.URL))
	_, err := svc.Chat(nil, "hi", nil, nil)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestLLMService_Chat_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewLLMService(testConfig(srv.URL))
	_, err := svc.Chat(nil, "hi", nil, nil)
	assert.ErrorIs(t, err, ErrGateway)
}
