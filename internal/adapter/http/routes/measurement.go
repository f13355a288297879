package routes

import (
	"fabricmeasure/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSession = "/session"
	PathHistory = "/history"
)

func addMeasurementRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, historyHandler *handlers.HistoryHandler) {
	session := rg.Group(PathSession)
	{
		// Wizard steps: method choice, capture, review, save.
		session.GET("", sessionHandler.GetSession)
		session.POST("/method", sessionHandler.SelectMethod)
		session.POST("/capture/upload", sessionHandler.CaptureUpload)
		session.POST("/capture/manual", sessionHandler.CaptureManual)
		session.POST("/ar/start", sessionHandler.StartAR)
		session.POST("/capture/ar", sessionHandler.CaptureAR)
		session.GET("/draft", sessionHandler.GetDraft)
		session.POST("/save", sessionHandler.Save)
		session.POST("/abandon", sessionHandler.Abandon)
	}

	history := rg.Group(PathHistory)
	{
		history.GET("", historyHandler.List)
		history.GET("/:id", historyHandler.Get)
		history.DELETE("/:id", historyHandler.Delete)
		history.GET("/:id/export", historyHandler.Export)
	}
}
