package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solana_advisor/internal/config"
)

// RegisterRoutes wires the advisor endpoints onto the router: the chat
// webhook (rate limited per sender), the one-shot report endpoint and a
// liveness probe.
func RegisterRoutes(router *gin.Engine, chatHandler *ChatHandler, reportHandler *ReportHandler, cfg *config.Config) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat",
			ChatRateLimitMiddleware(cfg.Chat.RateLimit, cfg.Chat.BurstLimit),
			chatHandler.PostChatMessageHandler)
		v1.GET("/wallets/:address/report", reportHandler.GetWalletReportHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
