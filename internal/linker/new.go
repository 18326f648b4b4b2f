package linker

import (
	"time"

	"notion-progress-linker/internal/linker/repository"
	pkgLog "notion-progress-linker/pkg/log"
	"notion-progress-linker/pkg/period"
)

func New(repo repository.Repository, periods *period.Calculator, lookback time.Duration, l pkgLog.Logger) UseCase {
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	return &usecase{
		repo:     repo,
		resolver: NewSummaryResolver(repo, l),
		periods:  periods,
		lookback: lookback,
		l:        l,
	}
}
