package response

import (
	"bakery-preorder/internal/domain/news"
)

type NewsItemResponse struct {
	Date    string `json:"date,omitempty"`
	Content string `json:"content"`
}

type NewsListResponse struct {
	Items []NewsItemResponse `json:"items"`
}

func FromNewsEntries(kind news.Kind, entries []news.Entry) *NewsListResponse {
	items := make([]NewsItemResponse, 0, len(entries))
	for _, e := range entries {
		item := NewsItemResponse{Content: e.Content}
		// Events are rendered without a date.
		if kind != news.KindEvent {
			item.Date = e.Date
		}
		items = append(items, item)
	}
	return &NewsListResponse{Items: items}
}
