package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcelonyc/nutrition-chat/models"
)

// IngredientContext renders the per-gram nutrition block that rides along
// with user messages. An empty table produces no block at all.
func IngredientContext(ingredients []models.Ingredient) string {
	if len(ingredients) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nKnown ingredient nutritional data (per gram):\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s: %.2f cal, %.2fg protein, %.2fg fat, %.2fg carbs\n",
			ing.Name, ing.CaloriesPerGram, ing.ProteinPerGram, ing.FatPerGram, ing.CarbsPerGram)
	}
	b.WriteString("\n\nSearch other ingredients if they are not found in the list above.")
	return b.String()
}

// MacroClause renders the composition constraint for the newest user message.
// Nil settings (the user never saved any) or a disabled toggle yield nothing.
func MacroClause(settings *models.UserSettings) string {
	if settings == nil || !settings.MacroEnabled {
		return ""
	}
	return fmt.Sprintf("\n\nMeal composition must be %s%% protein, %s%% carbs, %s%% fat.",
		formatPct(settings.ProteinPct), formatPct(settings.CarbsPct), formatPct(settings.FatPct))
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// BuildMessages assembles the full conversation for the chat endpoint: an
// optional system message, the replayed history with the ingredient block
// re-appended to every user turn, then the newest user message carrying the
// macro clause and the ingredient block.
func BuildMessages(systemPrompt string, history []models.Message, userMessage string, ingredients []models.Ingredient, settings *models.UserSettings) []ChatMessage {
	ingredientBlock := IngredientContext(ingredients)

	messages := make([]ChatMessage, 0, len(history)+2)
	if systemPrompt != "" {
		messages = append(messages, ChatMessage{Role: models.RoleSystem, Content: systemPrompt})
	}

	for _, msg := range history {
		content := msg.Content
		if msg.Role == models.RoleUser {
			content += ingredientBlock
		}
		messages = append(messages, ChatMessage{Role: msg.Role, Content: content})
	}

	messages = append(messages, ChatMessage{
		Role:    models.RoleUser,
		Content: userMessage + MacroClause(settings) + ingredientBlock,
	})
	return messages
}
