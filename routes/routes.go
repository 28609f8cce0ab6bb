package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/controllers"
	"github.com/marcelonyc/nutrition-chat/middlewares"
	"github.com/marcelonyc/nutrition-chat/services"
)

// SetupRouter wires services and routes. Services are built once here and
// shared across requests.
func SetupRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	llm := services.NewLLMService(cfg)
	chats := services.NewChatService(llm)

	r.GET("/health", controllers.Health)
	r.GET("/config", controllers.PublicConfig(cfg))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login(cfg))
		auth.POST("/request-password-reset", controllers.RequestPasswordReset)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Account routes behind the token check
	account := r.Group("/auth")
	account.Use(middlewares.AuthMiddleware(cfg))
	{
		account.GET("/me", controllers.Me)
		account.PUT("/profile", controllers.UpdateProfile)
		account.POST("/change-password", controllers.ChangePassword)
		account.DELETE("/me", controllers.DeleteAccount)
	}

	chatGroup := r.Group("/chats")
	chatGroup.Use(middlewares.AuthMiddleware(cfg))
	{
		chatGroup.GET("", controllers.ListChats(chats))
		chatGroup.POST("", controllers.CreateChat(chats))
		chatGroup.PATCH("/:id", controllers.RenameChat(chats))
		chatGroup.DELETE("/:id", controllers.DeleteChat(chats))
		chatGroup.GET("/:id/messages", controllers.ListMessages(chats))
		chatGroup.POST("/:id/messages", controllers.SendMessage(chats))
	}

	ingredients := r.Group("/ingredients")
	ingredients.Use(middlewares.AuthMiddleware(cfg))
	{
		ingredients.GET("", controllers.ListIngredients)
		ingredients.GET("/count", controllers.CountIngredients)
		ingredients.POST("/upload", controllers.UploadIngredients)
		ingredients.GET("/download", controllers.DownloadIngredients)
	}

	settings := r.Group("/settings")
	settings.Use(middlewares.AuthMiddleware(cfg))
	{
		settings.GET("", controllers.GetSettings)
		settings.PUT("", controllers.UpdateSettings)
	}

	return r
}
