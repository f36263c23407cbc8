package relay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"bakery-preorder/internal/notify"
	"bakery-preorder/internal/pkg/config"
)

// Client posts the formatted message to the relay endpoint, form-encoded
// with a bearer credential. One attempt per call; a Failed outcome leaves
// retrying to the user.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	token        string
	responseMode ResponseMode
	logger       *slog.Logger
}

func NewClient(cfg config.RelayConfig, logger *slog.Logger) (*Client, error) {
	responseMode, err := resolveResponseMode(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		endpoint:     cfg.URL,
		token:        cfg.Token,
		responseMode: responseMode,
		logger:       logger,
	}, nil
}

func (c *Client) Deliver(ctx context.Context, message string) notify.Outcome {
	form := url.Values{"message": {message}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return notify.FailedOutcome(fmt.Sprintf("通知リクエストの作成に失敗しました: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("通知の送信に失敗しました", "error", err)
		return notify.FailedOutcome(fmt.Sprintf("通知の送信に失敗しました: %v", err))
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if c.responseMode == ResponseModeOpaque {
		// The response is not observable in this transport mode; a
		// non-erroring dispatch is all that can be reported.
		c.logger.Info("通知リクエストを送信しました（応答は確認できません）")
		return notify.DeliveredOutcome()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("リレーがエラーを返しました", "status", resp.StatusCode)
		return notify.FailedOutcome(fmt.Sprintf("通知の送信に失敗しました (%d)", resp.StatusCode))
	}

	c.logger.Info("通知を送信しました")
	return notify.DeliveredOutcome()
}
