package linker

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"notion-progress-linker/internal/linker/repository"
	"notion-progress-linker/internal/model"
	pkgLog "notion-progress-linker/pkg/log"
)

const (
	resolverCacheSize = 256
	resolverCacheTTL  = 15 * time.Minute
)

// SummaryResolver resolves week/month labels to summary page IDs. Lookups
// are cached because every task due in the same week resolves to the same
// weekly page, and a run can touch dozens of tasks.
type SummaryResolver struct {
	repo  repository.SummaryRepository
	cache *expirable.LRU[string, string]
	l     pkgLog.Logger
}

// NewSummaryResolver creates a resolver backed by the given repository.
func NewSummaryResolver(repo repository.SummaryRepository, l pkgLog.Logger) *SummaryResolver {
	return &SummaryResolver{
		repo:  repo,
		cache: expirable.NewLRU[string, string](resolverCacheSize, nil, resolverCacheTTL),
		l:     l,
	}
}

// Resolve returns the page ID of the summary page titled label. Misses are
// not cached, so a summary page created between runs is picked up on the
// next attempt.
func (r *SummaryResolver) Resolve(ctx context.Context, kind model.SummaryKind, label string) (string, error) {
	key := string(kind) + "/" + label

	if id, ok := r.cache.Get(key); ok {
		return id, nil
	}

	page, err := r.repo.FindByLabel(ctx, kind, label)
	if err != nil {
		return "", err
	}

	r.cache.Add(key, page.ID)
	r.l.Debugf(ctx, "resolved %s summary %q to page %s", kind, label, page.ID)
	return page.ID, nil
}
