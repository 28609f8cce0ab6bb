package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/models"
)

type ChatService struct {
	llm *LLMService
}

func NewChatService(llm *LLMService) *ChatService {
	return &ChatService{llm: llm}
}

// ChatExchange is the response to sending a message: both sides of the turn.
type ChatExchange struct {
	ChatID           uint   `json:"chat_id"`
	UserMessage      string `json:"user_message"`
	AssistantMessage string `json:"assistant_message"`
}

func (s *ChatService) ListChats(userID uint) ([]models.ChatSession, error) {
	var chats []models.ChatSession
	err := config.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

// GetChat loads a chat the user owns. A chat owned by someone else looks
// exactly like a chat that does not exist.
func (s *ChatService) GetChat(userID, chatID uint) (*models.ChatSession, error) {
	var chat models.ChatSession
	err := config.DB.
		Where("id = ? AND user_id = ?", chatID, userID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (s *ChatService) CreateChat(userID uint, title string) (*models.ChatSession, error) {
	if title == "" {
		title = "New Chat"
	}
	chat := models.ChatSession{UserID: userID, Title: title}
	if err := config.DB.Create(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *ChatService) RenameChat(userID, chatID uint, title string) (*models.ChatSession, error) {
	chat, err := s.GetChat(userID, chatID)
	if err != nil {
		return nil, err
	}

	chat.Title = title
	if err := config.DB.Save(chat).Error; err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) DeleteChat(userID, chatID uint) error {
	chat, err := s.GetChat(userID, chatID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chat.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ChatSession{}, chat.ID).Error
	})
}

func (s *ChatService) ListMessages(userID, chatID uint) ([]models.Message, error) {
	if _, err := s.GetChat(userID, chatID); err != nil {
		return nil, err
	}
	return s.loadHistory(chatID)
}

func (s *ChatService) loadHistory(chatID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := config.DB.
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// appendMessage inserts a turn and bumps the chat's UpdatedAt atomically.
func (s *ChatService) appendMessage(chat *models.ChatSession, role, content string) (*models.Message, error) {
	msg := models.Message{ChatID: chat.ID, Role: role, Content: content}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		return tx.Model(chat).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendMessage runs a full turn: persist the user's message, assemble context
// from the user's ingredient table and settings, ask the LLM, persist the
// reply. The user message stays even when the LLM call fails.
func (s *ChatService) SendMessage(userID, chatID uint, content string) (*ChatExchange, error) {
	chat, err := s.GetChat(userID, chatID)
	if err != nil {
		return nil, err
	}

	history, err := s.loadHistory(chat.ID)
	if err != nil {
		return nil, err
	}

	userMsg, err := s.appendMessage(chat, models.RoleUser, content)
	if err != nil {
		return nil, err
	}

	ingredients, err := ListIngredients(userID)
	if err != nil {
		return nil, err
	}
	settings, err := GetSettingsRow(userID)
	if err != nil {
		return nil, err
	}

	reply, err := s.llm.Chat(history, content, ingredients, settings)
	if err != nil {
		return nil, err
	}

	assistantMsg, err := s.appendMessage(chat, models.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return &ChatExchange{
		ChatID:           chat.ID,
		UserMessage:      userMsg.Content,
		AssistantMessage: assistantMsg.Content,
	}, nil
}
