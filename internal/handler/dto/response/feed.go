package response

import (
	"bakery-preorder/internal/usecase/queries"
	"bakery-preorder/internal/usecase/readmodel"
)

type FeedResponse struct {
	Configured bool                  `json:"configured"`
	Items      []readmodel.MediaView `json:"items"`
	Notice     string                `json:"notice,omitempty"`
}

func FromFeedView(view *queries.FeedView) *FeedResponse {
	return &FeedResponse{
		Configured: view.Configured,
		Items:      view.Items,
		Notice:     view.Notice,
	}
}
