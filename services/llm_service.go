package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/models"
)

// ChatMessage is one entry in the wire-format conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message ChatMessage `json:"message"`
}

// LLMService talks to an ollama-compatible chat endpoint. Hosted variants
// authenticate with a bearer token; a local daemon needs none.
type LLMService struct {
	baseURL      string
	model        string
	apiToken     string
	systemPrompt string
	client       *http.Client
}

func NewLLMService(cfg config.Config) *LLMService {
	return &LLMService{
		baseURL:      strings.TrimRight(cfg.OllamaAPIBase, "/"),
		model:        cfg.OllamaModel,
		apiToken:     cfg.OllamaAPIToken,
		systemPrompt: cfg.SystemPrompt,
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

// Chat sends the assembled conversation and returns the assistant's reply.
// Failures of any kind wrap ErrGateway; there are no retries.
func (s *LLMService) Chat(history []models.Message, userMessage string, ingredients []models.Ingredient, settings *models.UserSettings) (string, error) {
	reqBody := chatRequest{
		Model:    s.model,
		Messages: BuildMessages(s.systemPrompt, history, userMessage, ingredients, settings),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrGateway, err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/api/chat", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrGateway, resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: parse response: %v", ErrGateway, err)
	}
	if chatResp.Message.Content == "" {
		return "", fmt.Errorf("%w: empty reply", ErrGateway)
	}
	return chatResp.Message.Content, nil
}
