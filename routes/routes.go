package routes

import (
	"net/http"
	"time"

	"wukala/handlers"
	"wukala/middleware"
	"wukala/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.POST("/signin", hb.Session.SignInHandler)
		api.POST("/signout", hb.Session.SignOutHandler)
		api.GET("", hb.Session.CurrentSessionHandler)
		api.GET("/navigation", hb.Session.NavigationHandler)
		api.GET("/onboarding", hb.Session.OnboardingStatusHandler)
		api.POST("/onboarding", hb.Session.MarkOnboardingHandler)
	}
}

// RegisterApplicationRoutes registers the lawyer signup endpoint.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.POST("", hb.Application.SubmitApplicationHandler)
	}
}

// RegisterDirectoryRoutes registers lawyer directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		api.GET("", hb.Directory.ListLawyersHandler)
		api.GET("/cities", hb.Directory.ListCitiesHandler)
		api.GET("/id/:id", hb.Directory.GetLawyerHandler)
	}
}

// RegisterCaseLawRoutes registers case-law search and bookmark endpoints.
func RegisterCaseLawRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/caselaw")
	{
		api.GET("", hb.CaseLaw.SearchCasesHandler)
		api.GET("/id/:id", hb.CaseLaw.GetCaseHandler)
		api.GET("/bookmarks", hb.CaseLaw.ListBookmarksHandler)
		api.POST("/bookmarks/:id", hb.CaseLaw.ToggleBookmarkHandler)
	}
}

// RegisterDictionaryRoutes registers legal dictionary endpoints.
func RegisterDictionaryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dictionary")
	{
		api.GET("", hb.Dictionary.ListTermsHandler)
		api.GET("/:term", hb.Dictionary.LookupTermHandler)
	}
}

// RegisterAssistantRoutes registers simulated assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/ask", hb.Assistant.AskHandler)
		api.GET("/history", hb.Assistant.HistoryHandler)
		api.DELETE("/history", hb.Assistant.ClearHistoryHandler)
	}
}

// RegisterMessagingRoutes registers messaging endpoints. All require a
// signed-in session.
func RegisterMessagingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.RequireSession())
		api.POST("/conversations", hb.Messaging.StartConversationHandler)
		api.GET("/conversations", hb.Messaging.ListConversationsHandler)
		api.GET("/conversations/:id", hb.Messaging.ListMessagesHandler)
		api.POST("/conversations/:id", hb.Messaging.SendMessageHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.RequireAdmin())
		adminGroup.GET("/applications", hb.Admin.ListApplicationsHandler)
		adminGroup.PUT("/applications/:id", hb.Admin.ReviewApplicationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionMiddleware(hb.SessionService))

	RegisterSessionRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterCaseLawRoutes(r, hb)
	RegisterDictionaryRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterMessagingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
