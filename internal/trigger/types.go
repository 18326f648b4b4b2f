package trigger

import (
	"time"

	"notion-progress-linker/internal/model"
)

// SecurityConfig controls webhook request validation.
type SecurityConfig struct {
	Secret          string   // HMAC-SHA256 signing secret
	AllowedIPs      []string // Optional allowlist, entries may be CIDRs
	RateLimitPerMin int
}

// Runner starts linking runs on behalf of webhook callers.
type Runner interface {
	RunNow(trigger model.RunTrigger, lookback time.Duration) (string, error)
}

// runReq is the optional webhook payload.
type runReq struct {
	LookbackMinutes int `json:"lookback_minutes"`
}
