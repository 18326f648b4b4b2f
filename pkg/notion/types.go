package notion

import (
	"fmt"
	"strings"
	"time"
)

// Page is a Notion page object as returned by the API.
type Page struct {
	ID             string                   `json:"id"`
	URL            string                   `json:"url,omitempty"`
	CreatedTime    time.Time                `json:"created_time,omitempty"`
	LastEditedTime time.Time                `json:"last_edited_time,omitempty"`
	Archived       bool                     `json:"archived,omitempty"`
	Properties     map[string]PropertyValue `json:"properties,omitempty"`
}

// PropertyValue is a Notion property value. Exactly one of the typed fields
// is populated, indicated by Type on read. On write only the typed field is set.
type PropertyValue struct {
	ID       string     `json:"id,omitempty"`
	Type     string     `json:"type,omitempty"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Formula  *Formula   `json:"formula,omitempty"`
	Date     *Date      `json:"date,omitempty"`
	Relation []PageRef  `json:"relation,omitempty"`
}

// PlainText concatenates the plain_text of a title or rich_text property.
func (p PropertyValue) PlainText() string {
	parts := p.Title
	if len(parts) == 0 {
		parts = p.RichText
	}
	var sb strings.Builder
	for _, rt := range parts {
		sb.WriteString(rt.PlainText)
	}
	return sb.String()
}

// FormulaString returns the string result of a formula property, or "" when
// the property is not a string formula.
func (p PropertyValue) FormulaString() string {
	if p.Formula == nil || p.Formula.String == nil {
		return ""
	}
	return *p.Formula.String
}

// RichText is a single rich text fragment.
type RichText struct {
	Type      string `json:"type,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
	Text      *Text  `json:"text,omitempty"`
}

// Text is the text content of a rich text fragment.
type Text struct {
	Content string `json:"content"`
}

// Formula is the computed result of a formula property.
type Formula struct {
	Type   string   `json:"type"`
	String *string  `json:"string,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

// Date is a Notion date property value. Start is either a date (2006-01-02)
// or an RFC3339 datetime.
type Date struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// StartTime parses the Start field.
func (d Date) StartTime() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, d.Start); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", d.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date start %q: %w", d.Start, err)
	}
	return t, nil
}

// PageRef references another page, used in relation properties.
type PageRef struct {
	ID string `json:"id"`
}

// NewRelation builds a relation property value pointing at the given page IDs.
func NewRelation(pageIDs ...string) PropertyValue {
	refs := make([]PageRef, 0, len(pageIDs))
	for _, id := range pageIDs {
		refs = append(refs, PageRef{ID: id})
	}
	return PropertyValue{Relation: refs}
}

// ---- Database query ----

// Filter is a Notion database query filter. Compound filters set And/Or,
// property filters set Property (or Timestamp) plus one condition.
type Filter struct {
	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`

	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`

	Title          *TextCondition     `json:"title,omitempty"`
	RichText       *TextCondition     `json:"rich_text,omitempty"`
	Date           *DateCondition     `json:"date,omitempty"`
	Relation       *RelationCondition `json:"relation,omitempty"`
	LastEditedTime *DateCondition     `json:"last_edited_time,omitempty"`
}

// TextCondition matches title/rich_text properties.
type TextCondition struct {
	Equals   string `json:"equals,omitempty"`
	Contains string `json:"contains,omitempty"`
}

// DateCondition matches date properties and timestamps.
type DateCondition struct {
	OnOrAfter  string `json:"on_or_after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
	IsEmpty    bool   `json:"is_empty,omitempty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty"`
}

// RelationCondition matches relation properties.
type RelationCondition struct {
	Contains   string `json:"contains,omitempty"`
	IsEmpty    bool   `json:"is_empty,omitempty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty"`
}

// QueryDatabaseRequest is the body for POST /v1/databases/{id}/query.
type QueryDatabaseRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Sort orders query results by a property or timestamp.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// QueryDatabaseResponse is a single page of query results.
type QueryDatabaseResponse struct {
	Object     string `json:"object"`
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// UpdatePageRequest is the body for PATCH /v1/pages/{id}.
type UpdatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties"`
}

// Error is a Notion API error response.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("notion API error %d (%s): %s", e.Status, e.Code, e.Message)
}
