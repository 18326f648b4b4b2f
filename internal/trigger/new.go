package trigger

import (
	pkgLog "notion-progress-linker/pkg/log"
)

// Handler serves the external run-trigger webhook, used by CI cron jobs
// that cannot call the authenticated API.
type Handler struct {
	runner   Runner
	security *SecurityValidator
	l        pkgLog.Logger
}

func New(runner Runner, security SecurityConfig, l pkgLog.Logger) *Handler {
	return &Handler{
		runner:   runner,
		security: NewSecurityValidator(security),
		l:        l,
	}
}
