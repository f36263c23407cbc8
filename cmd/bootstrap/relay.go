package bootstrap

import (
	"log/slog"

	"bakery-preorder/internal/infra/relay"
	"bakery-preorder/internal/pkg/config"
	"bakery-preorder/internal/usecase/commands"

	"go.uber.org/fx"
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) (relay.Notifier, error) {
	return relay.NewNotifier(cfg.Relay, logger)
}
