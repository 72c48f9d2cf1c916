package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mukundan1989/baebyzleep/internal/session"
)

const (
	requestIDKey = "request_id"
	sessionKey   = "session"
)

// RequestIDMiddleware ensures every request has a correlation/request ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// AccessLogMiddleware writes one structured line per request.
func AccessLogMiddleware(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger().With(
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		).Info("request served")
	}
}

// SessionMiddleware attaches the visitor's session, starting one when the
// cookie is missing or names a session that no longer exists.
func SessionMiddleware(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session
		if id, err := c.Cookie(app.Config().SessionCookie); err == nil {
			sess, _ = app.Sessions().Get(id)
		}
		if sess == nil {
			sess = startSession(c, app)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func startSession(c *gin.Context, app App) *session.Session {
	sess := app.Sessions().Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(app.Config().SessionCookie, sess.ID, 0, "/", "", false, true)
	return sess
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
