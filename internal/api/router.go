package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))
}

// NewRouter wires the HTML views, the JSON API and the health check.
func NewRouter(app App) *gin.Engine {
	if app.Config().Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(app))
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/healthz", Healthz(app))

	// Everything below belongs to a visitor session.
	s := r.Group("/", SessionMiddleware(app))
	s.GET("/", HomePage(app))
	s.GET("/tracker", TrackerPage(app))
	s.POST("/tracker", PostTrackerForm(app))
	s.GET("/plan", PlanPage(app))
	s.GET("/milestones", MilestonesPage(app))
	s.POST("/milestones", PostMilestoneForm(app))
	s.POST("/session/reset", ResetSession(app))

	api := s.Group("/api")
	api.POST("/sleep", PostSleep(app))
	api.GET("/sleep", GetSleep(app))
	api.POST("/milestones", PostMilestone(app))
	api.GET("/milestones", GetMilestones(app))
	api.GET("/plan", GetPlan(app))

	return r
}
