package api

import (
	"time"

	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/config"
	"github.com/mukundan1989/baebyzleep/internal/session"
)

type App interface {
	Logger() internal.Logger
	Config() *config.Config
	Sessions() *session.Manager
	Now() time.Time
}

type app struct {
	logger   internal.Logger
	cfg      *config.Config
	sessions *session.Manager
	clock    func() time.Time
}

// NewApp bundles what the handlers need. A nil clock means time.Now.
func NewApp(logger internal.Logger, cfg *config.Config, sessions *session.Manager, clock func() time.Time) App {
	if clock == nil {
		clock = time.Now
	}
	return &app{logger: logger, cfg: cfg, sessions: sessions, clock: clock}
}

func (a *app) Logger() internal.Logger    { return a.logger }
func (a *app) Config() *config.Config     { return a.cfg }
func (a *app) Sessions() *session.Manager { return a.sessions }
func (a *app) Now() time.Time             { return a.clock() }
