package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/service"
)

const (
	flashSleepLogged    = "Sleep logged successfully!"
	flashMilestoneAdded = "Milestone added!"
	flashSessionReset   = "Started a new session."
)

// Form defaults of the sleep tracker.
var (
	defaultBedtime     = internal.NewTimeOfDay(20, 0)
	defaultWakeup      = internal.NewTimeOfDay(7, 0)
	defaultNapDuration = 1.5
)

var flashes = map[string]string{
	"logged": flashSleepLogged,
	"added":  flashMilestoneAdded,
	"reset":  flashSessionReset,
}

func page(c *gin.Context, status int, name, view string, data gin.H) {
	data["View"] = view
	data["Flash"] = flashes[c.Query("flash")]
	c.HTML(status, name, data)
}

func HomePage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page(c, http.StatusOK, "home", "Home", gin.H{})
	}
}

func TrackerPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := service.SleepEntryRequest{
			Bedtime:     defaultBedtime.String(),
			WakeupTime:  defaultWakeup.String(),
			NapDuration: defaultNapDuration,
		}
		renderTracker(c, app, http.StatusOK, form, nil)
	}
}

func PostTrackerForm(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		var form service.SleepEntryRequest
		if err := c.ShouldBind(&form); err != nil {
			app.Logger().Warnf("[request_id=%s] sleep form rejected: %v", c.GetString(requestIDKey), err)
			renderTracker(c, app, http.StatusBadRequest, form, fieldMessages(err))
			return
		}
		if err := service.ValidateSleepEntryRequest(&form); err != nil {
			app.Logger().Warnf("[request_id=%s] sleep form rejected: %v", c.GetString(requestIDKey), err)
			renderTracker(c, app, http.StatusBadRequest, form, fieldMessages(err))
			return
		}

		if _, err := service.CreateSleepEntry(c.Request.Context(), sess.Sleep, &form, app.Now()); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to log sleep: %v", c.GetString(requestIDKey), err)
			renderTracker(c, app, http.StatusInternalServerError, form, []string{"Failed to log sleep."})
			return
		}
		c.Redirect(http.StatusSeeOther, "/tracker?flash=logged")
	}
}

func renderTracker(c *gin.Context, app App, status int, form service.SleepEntryRequest, errs []string) {
	entries, err := currentSession(c).Sleep.ListSleepEntries(c.Request.Context())
	if err != nil {
		app.Logger().Errorf("[request_id=%s] failed to fetch sleep log: %v", c.GetString(requestIDKey), err)
		errs = append(errs, "Failed to load sleep history.")
	}
	page(c, status, "tracker", "Sleep Tracker", gin.H{
		"Form":    form,
		"Errors":  errs,
		"Entries": entries,
	})
}

func PlanPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := currentSession(c).Sleep.ListSleepEntries(c.Request.Context())
		if err != nil {
			app.Logger().Errorf("[request_id=%s] failed to fetch sleep log for plan: %v", c.GetString(requestIDKey), err)
			page(c, http.StatusInternalServerError, "plan", "Sleep Plan", gin.H{"Warning": "Failed to load sleep history."})
			return
		}

		rec, ok := service.ComputeRecommendation(entries)
		if !ok {
			page(c, http.StatusOK, "plan", "Sleep Plan", gin.H{"Warning": service.NoSleepDataMessage})
			return
		}
		page(c, http.StatusOK, "plan", "Sleep Plan", gin.H{"Plan": rec})
	}
}

func MilestonesPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderMilestones(c, app, http.StatusOK, nil)
	}
}

func PostMilestoneForm(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		var form service.MilestoneRequest
		if err := c.ShouldBind(&form); err != nil {
			renderMilestones(c, app, http.StatusBadRequest, fieldMessages(err))
			return
		}
		if err := service.ValidateMilestoneRequest(&form); err != nil {
			renderMilestones(c, app, http.StatusBadRequest, fieldMessages(err))
			return
		}

		if _, err := service.CreateMilestone(c.Request.Context(), sess.Milestones, &form, app.Now()); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to add milestone: %v", c.GetString(requestIDKey), err)
			renderMilestones(c, app, http.StatusInternalServerError, []string{"Failed to add milestone."})
			return
		}
		c.Redirect(http.StatusSeeOther, "/milestones?flash=added")
	}
}

func renderMilestones(c *gin.Context, app App, status int, errs []string) {
	milestones, err := currentSession(c).Milestones.ListMilestones(c.Request.Context())
	if err != nil {
		app.Logger().Errorf("[request_id=%s] failed to fetch milestones: %v", c.GetString(requestIDKey), err)
		errs = append(errs, "Failed to load milestones.")
	}
	page(c, status, "milestones", "Milestones", gin.H{
		"Errors":     errs,
		"Milestones": milestones,
	})
}

// ResetSession throws away the current session's logs and starts over.
func ResetSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.Sessions().End(currentSession(c).ID)
		startSession(c, app)
		c.Redirect(http.StatusSeeOther, "/?flash=reset")
	}
}

func Healthz(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Live-Sessions", strconv.Itoa(app.Sessions().Len()))
		c.String(http.StatusOK, "OK")
	}
}
