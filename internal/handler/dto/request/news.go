package request

import (
	"bakery-preorder/internal/domain/news"
)

type NewsEntry struct {
	Date    string `json:"date,omitempty"`
	Content string `json:"content" binding:"required"`
}

// SetNewsPreviewRequest replaces a news list with preview entries for this
// process lifetime, shadowing the file-backed list.
type SetNewsPreviewRequest struct {
	Entries []NewsEntry `json:"entries" binding:"required"`
}

func (r SetNewsPreviewRequest) ToEntries() []news.Entry {
	entries := make([]news.Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, news.Entry{Date: e.Date, Content: e.Content})
	}
	return entries
}
