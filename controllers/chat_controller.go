package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marcelonyc/nutrition-chat/services"
)

type ChatInput struct {
	Title string `json:"title"`
}

type MessageInput struct {
	Content string `json:"content" binding:"required"`
}

func chatIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return 0, false
	}
	return uint(id), true
}

func ListChats(chats *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := chats.ListChats(currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func CreateChat(chats *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ChatInput
		if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		chat, err := chats.CreateChat(currentUserID(c), input.Title)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, chat)
	}
}

func RenameChat(chats *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, ok := chatIDParam(c)
		if !ok {
			return
		}

		var input ChatInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}

		chat, err := chats.RenameChat(currentUserID(c), chatID, input.Title)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, chat)
	}
}

func DeleteChat(chats *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, ok := chatIDParam(c)
		if !ok {
			return
		}

		if err := chats.DeleteChat(currentUserID(c), chatID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func ListMessages(chats *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, ok := chatIDParam(c)
		if !ok {
			return
		}

		msgs, err := chats.ListMessages(currentUserID(c), chatID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

// SendMessage appends the user's turn, asks the LLM, and returns both sides
// of the exchange.
func SendMessage(chats *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, ok := chatIDParam(c)
		if !ok {
			return
		}

		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		exchange, err := chats.SendMessage(currentUserID(c), chatID, input.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, exchange)
	}
}
