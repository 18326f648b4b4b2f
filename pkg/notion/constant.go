package notion

const (
	// DefaultBaseURL is the public Notion API endpoint.
	DefaultBaseURL = "https://api.notion.com"

	// DefaultAPIVersion is sent as the Notion-Version header.
	DefaultAPIVersion = "2022-06-28"

	// Notion allows an average of 3 requests per second per integration.
	requestsPerSecond = 3

	// maxAttempts bounds retries on 429/5xx responses.
	maxAttempts = 3

	// MaxPageSize is the largest page_size Notion accepts for database queries.
	MaxPageSize = 100
)
