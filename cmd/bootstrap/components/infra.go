package components

import (
	"bakery-preorder/internal/infra/instagram"
	"bakery-preorder/internal/infra/newsstore"
	"bakery-preorder/internal/pkg/config"
	"bakery-preorder/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewNewsFileSource,
			fx.As(new(queries.NewsSource)),
		),
		fx.Annotate(
			newsstore.NewMemoryStore,
			fx.As(new(queries.NewsOverrides)),
		),
		fx.Annotate(
			NewInstagramClient,
			fx.As(new(queries.MediaFetcher)),
		),
	),
)

func NewNewsFileSource(cfg config.Config) *newsstore.FileSource {
	return newsstore.NewFileSource(cfg.News)
}

func NewInstagramClient(cfg config.Config) *instagram.Client {
	return instagram.NewClient(cfg.Instagram)
}
