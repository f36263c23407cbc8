package queries

import (
	"context"

	"bakery-preorder/internal/pkg/errs"
	"bakery-preorder/internal/usecase/readmodel"
)

var ErrFeedUnavailable = errs.New("social feed unavailable")

// setupNotice is shown in place of the feed until an access credential is
// configured.
const setupNotice = "Instagramのアクセストークンが設定されていません。INSTAGRAM_ACCESS_TOKEN を設定してください。"

type MediaFetcher interface {
	Configured() bool
	Fetch(ctx context.Context) ([]readmodel.MediaView, error)
}

type FeedView struct {
	Configured bool
	Items      []readmodel.MediaView
	Notice     string
}

type FeedQueries interface {
	List(ctx context.Context) (*FeedView, error)
}

type feedQueriesImpl struct {
	fetcher MediaFetcher
}

func NewFeedQueries(fetcher MediaFetcher) FeedQueries {
	return &feedQueriesImpl{fetcher: fetcher}
}

func (q *feedQueriesImpl) List(ctx context.Context) (*FeedView, error) {
	if !q.fetcher.Configured() {
		return &FeedView{Configured: false, Items: []readmodel.MediaView{}, Notice: setupNotice}, nil
	}

	items, err := q.fetcher.Fetch(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrFeedUnavailable)
	}
	return &FeedView{Configured: true, Items: items}, nil
}
