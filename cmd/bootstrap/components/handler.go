package components

import (
	"bakery-preorder/internal/handler"
	"bakery-preorder/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewNewsHandler,
		api.NewFeedHandler,
	),
	fx.Invoke(handler.NewRouter),
)
