package api

import (
	"github.com/gin-gonic/gin"

	"vehicle_analysis/internal/api/handler"
	"vehicle_analysis/internal/service"
)

func SetupRouter(recognizer service.PlateRecognizer, wsManager *handler.WebSocketManager) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	analysisH := handler.NewAnalysisHandler(recognizer, wsManager)
	r.GET("/", analysisH.Health)
	r.POST("/analyze", analysisH.HandleAnalysisRequest)

	// WebSocket endpoint cho client theo dõi kết quả phân tích real-time
	if wsManager != nil {
		wsHandler := handler.NewWebSocketHandler(wsManager)
		r.GET("/ws", wsHandler.HandleWebSocket)
	}

	return r
}
