package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"bakery-preorder/internal/pkg/config"
	"bakery-preorder/internal/pkg/errs"
	"bakery-preorder/internal/usecase/readmodel"
)

var ErrAPIError = errs.New("instagram api error")

// Client lists recent media through the Graph API. An unset access token
// leaves the client unconfigured; callers render a setup placeholder
// instead of calling Fetch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limit      int
}

func NewClient(cfg config.InstagramConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.AccessToken,
		limit:      cfg.Limit,
	}
}

func (c *Client) Configured() bool {
	return c.token != ""
}

type mediaResponse struct {
	Data  []readmodel.MediaView `json:"data"`
	Error *apiError             `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

func (c *Client) Fetch(ctx context.Context) ([]readmodel.MediaView, error) {
	query := url.Values{
		"fields":       {"id,caption,media_type,media_url,permalink,thumbnail_url"},
		"access_token": {c.token},
		"limit":        {fmt.Sprintf("%d", c.limit)},
	}
	endpoint := fmt.Sprintf("%s/me/media?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build media request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch media")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read media response")
	}

	var parsed mediaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to parse media response")
	}
	if parsed.Error != nil {
		return nil, errs.Mark(errs.Newf("instagram api: %s (code %d)", parsed.Error.Message, parsed.Error.Code), ErrAPIError)
	}
	return parsed.Data, nil
}
