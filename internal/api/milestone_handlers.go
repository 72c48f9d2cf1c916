package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mukundan1989/baebyzleep/internal/service"
)

func PostMilestone(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		var req service.MilestoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateMilestoneRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		milestone, err := service.CreateMilestone(c.Request.Context(), sess.Milestones, &req, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save milestone")
			return
		}

		HandleSuccess(c, app.Logger(), http.StatusCreated, milestone, nil)
	}
}

func GetMilestones(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		milestones, err := sess.Milestones.ListMilestones(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch milestones")
			return
		}

		HandleSuccess(c, app.Logger(), http.StatusOK, milestones, map[string]any{"count": len(milestones)})
	}
}
