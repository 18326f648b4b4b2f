package notion

import "context"

// API is the subset of the Notion REST API used by this service.
type API interface {
	// QueryDatabase runs POST /v1/databases/{id}/query for a single page of results.
	QueryDatabase(ctx context.Context, databaseID string, req QueryDatabaseRequest) (*QueryDatabaseResponse, error)

	// GetPage fetches a single page by ID.
	GetPage(ctx context.Context, pageID string) (*Page, error)

	// UpdatePage patches page properties.
	UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (*Page, error)
}

// Ensure Client implements API.
var _ API = (*Client)(nil)
