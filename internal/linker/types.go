package linker

import (
	"time"

	"notion-progress-linker/internal/model"
)

// DefaultLookback is the recency window for LinkRecent. The 5 minutes of
// slack over the hourly schedule prevents missing edits at the window
// boundary.
const DefaultLookback = 65 * time.Minute

// LinkRecentInput holds parameters for a recent-tasks linking run.
type LinkRecentInput struct {
	RunID    string           // Empty generates a new run ID
	Trigger  model.RunTrigger // Defaults to TriggerScheduled
	Lookback time.Duration    // Zero selects the configured lookback
}
