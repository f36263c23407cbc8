package api

import (
	"errors"
	"net/http"

	resdto "bakery-preorder/internal/handler/dto/response"
	"bakery-preorder/internal/handler/httperr"
	"bakery-preorder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedQueries queries.FeedQueries
}

func NewFeedHandler(feedQueries queries.FeedQueries) *FeedHandler {
	return &FeedHandler{feedQueries: feedQueries}
}

// @Summary List social feed
// @Description List recent media posts; returns a setup placeholder when no credential is configured
// @Tags feed
// @Produce json
// @Success 200 {object} resdto.FeedResponse
// @Failure 502 {object} map[string]string
// @Router /instagram [get]
func (h *FeedHandler) List(c *gin.Context) {
	view, err := h.feedQueries.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrFeedUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  "Failed to load social feed",
				"reason": err.Error(),
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeedView(view))
}
