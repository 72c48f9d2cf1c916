package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mukundan1989/baebyzleep/internal/service"
)

func PostSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		var body service.SleepEntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateSleepEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		entry, err := service.CreateSleepEntry(c.Request.Context(), sess.Sleep, &body, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to log sleep")
			return
		}

		HandleSuccess(c, app.Logger(), http.StatusCreated, entry, nil)
	}
}

func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		entries, err := sess.Sleep.ListSleepEntries(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch sleep log")
			return
		}

		HandleSuccess(c, app.Logger(), http.StatusOK, entries, map[string]any{"count": len(entries)})
	}
}

// GetPlan answers 200 either way; an empty log yields a message instead of data.
func GetPlan(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		entries, err := sess.Sleep.ListSleepEntries(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch sleep log for plan")
			return
		}

		rec, ok := service.ComputeRecommendation(entries)
		if !ok {
			HandleSuccess(c, app.Logger(), http.StatusOK, nil, map[string]any{"message": service.NoSleepDataMessage})
			return
		}
		meta := map[string]any{
			"bedtime":      rec.Bedtime.Clock(),
			"wakeup":       rec.Wakeup.Clock(),
			"nap_duration": rec.NapHours() + " hours",
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, rec, meta)
	}
}
