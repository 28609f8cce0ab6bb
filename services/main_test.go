package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.ChatSession{},
		&models.Message{},
		&models.Ingredient{},
		&models.UserSettings{},
	)
	require.NoError(t, err)

	config.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	user, err := RegisterUser(username+"@example.com", username, "password123", "Test User")
	require.NoError(t, err)
	return user
}

func testConfig(llmURL string) config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		JWTAlgorithm:  "HS256",
		TokenExpiry:   time.Hour,
		OllamaModel:   "test-model",
		OllamaAPIBase: llmURL,
		SystemPrompt:  "You are a helpful assistant.",
	}
}

// newFakeLLM serves the ollama chat shape, answering every request with
// reply. When got is non-nil each decoded request body is appended to it.
func newFakeLLM(t *testing.T, reply string, got *[]chatRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if got != nil {
			*got = append(*got, req)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{
			Message: ChatMessage{Role: models.RoleAssistant, Content: reply},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}
