package web

import (
	"github.com/gin-gonic/gin"
	"github.com/harlowe/docket/internal/logger"
	"gorm.io/gorm"
)

// registerRoutes sets up the JSON API and the HTML pages.
func registerRoutes(router *gin.Engine, db *gorm.DB, log *logger.Logger) {
	h := &handlers{db: db, log: log}

	api := router.Group("/api")
	api.GET("/projects", h.listProjects)
	api.POST("/projects", h.createProject)
	api.GET("/projects/:id", h.getProject)
	api.PUT("/projects/:id", h.updateProject)
	api.DELETE("/projects/:id", h.deleteProject)
	api.POST("/projects/:id/notes", h.appendNote)
	api.GET("/autocomplete/:field", h.autocomplete)
	api.GET("/dashboard", h.dashboard)
	api.GET("/reports/weekly", h.weeklyReport)
	api.GET("/reports/monthly", h.monthlyReport)

	router.GET("/export/csv", h.exportCSV)

	// Pages.
	router.GET("/", h.dashboardPage)
	router.GET("/projects", h.projectsPage)
	router.GET("/projects/:id", h.projectDetailPage)
	router.GET("/reports", h.reportsPage)
}
