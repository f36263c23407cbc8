package relay

import (
	"context"
	"log/slog"

	"bakery-preorder/internal/notify"
	"bakery-preorder/internal/pkg/config"
	"bakery-preorder/internal/pkg/errs"
)

var (
	ErrTokenRequired       = errs.New("relay token is required in live mode")
	ErrUnknownMode         = errs.New("unknown relay mode")
	ErrUnknownResponseMode = errs.New("unknown relay response mode")
)

// Mode selects how delivery is performed. Demo mode performs no network
// I/O and simulates delivery; it is chosen when no credential is
// configured.
type Mode int

const (
	ModeDemo Mode = iota
	ModeLive
)

// ResponseMode models what the relay's response reveals. In Opaque mode
// the response body and status are not observable, so a non-erroring
// dispatch is the strongest delivery signal available.
type ResponseMode int

const (
	ResponseModeObservable ResponseMode = iota
	ResponseModeOpaque
)

// Notifier delivers a formatted message to the shop's chat relay.
type Notifier interface {
	Deliver(ctx context.Context, message string) notify.Outcome
}

// ResolveMode turns the configured mode flag into an explicit Mode once at
// startup, instead of comparing token sentinels at call sites.
func ResolveMode(cfg config.RelayConfig) (Mode, error) {
	switch cfg.Mode {
	case "demo":
		return ModeDemo, nil
	case "live":
		if cfg.Token == "" {
			return ModeDemo, ErrTokenRequired
		}
		return ModeLive, nil
	case "auto", "":
		if cfg.Token == "" {
			return ModeDemo, nil
		}
		return ModeLive, nil
	default:
		return ModeDemo, errs.Mark(errs.Newf("relay mode %q", cfg.Mode), ErrUnknownMode)
	}
}

func resolveResponseMode(cfg config.RelayConfig) (ResponseMode, error) {
	switch cfg.ResponseMode {
	case "observable", "":
		return ResponseModeObservable, nil
	case "opaque":
		return ResponseModeOpaque, nil
	default:
		return ResponseModeObservable, errs.Mark(errs.Newf("relay response mode %q", cfg.ResponseMode), ErrUnknownResponseMode)
	}
}

// NewNotifier builds the notifier for the resolved mode.
func NewNotifier(cfg config.RelayConfig, logger *slog.Logger) (Notifier, error) {
	mode, err := ResolveMode(cfg)
	if err != nil {
		return nil, err
	}
	if mode == ModeDemo {
		logger.Info("通知リレーはデモモードで動作します")
		return NewDemoNotifier(cfg.DemoDelay, logger), nil
	}
	return NewClient(cfg, logger)
}
