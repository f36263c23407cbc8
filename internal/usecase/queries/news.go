package queries

import (
	"context"
	"log/slog"

	"bakery-preorder/internal/domain/news"
	"bakery-preorder/internal/pkg/errs"
)

var ErrUnknownNewsKind = errs.New("unknown news kind")

type NewsSource interface {
	Load(ctx context.Context, kind news.Kind) ([]news.Entry, error)
}

type NewsOverrides interface {
	Get(kind news.Kind) ([]news.Entry, bool)
	Set(kind news.Kind, entries []news.Entry)
	Clear(kind news.Kind)
}

type NewsQueries interface {
	List(ctx context.Context, kind news.Kind) ([]news.Entry, error)
	SetPreview(kind news.Kind, entries []news.Entry) error
	ClearPreview(kind news.Kind) error
}

type newsQueriesImpl struct {
	source    NewsSource
	overrides NewsOverrides
}

func NewNewsQueries(source NewsSource, overrides NewsOverrides) NewsQueries {
	return &newsQueriesImpl{source: source, overrides: overrides}
}

// List returns the preview override when one is set, otherwise the
// file-backed list. A failing source degrades to an empty list; the page
// renders a placeholder rather than an error.
func (q *newsQueriesImpl) List(ctx context.Context, kind news.Kind) ([]news.Entry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownNewsKind
	}

	if entries, ok := q.overrides.Get(kind); ok {
		return entries, nil
	}

	entries, err := q.source.Load(ctx, kind)
	if err != nil {
		slog.Warn("お知らせの読み込みに失敗しました", "kind", kind, "error", err)
		return []news.Entry{}, nil
	}
	return entries, nil
}

func (q *newsQueriesImpl) SetPreview(kind news.Kind, entries []news.Entry) error {
	if !kind.Valid() {
		return ErrUnknownNewsKind
	}
	q.overrides.Set(kind, entries)
	return nil
}

func (q *newsQueriesImpl) ClearPreview(kind news.Kind) error {
	if !kind.Valid() {
		return ErrUnknownNewsKind
	}
	q.overrides.Clear(kind)
	return nil
}
