package api

import (
	"errors"
	"net/http"

	"bakery-preorder/internal/domain/news"
	reqdto "bakery-preorder/internal/handler/dto/request"
	resdto "bakery-preorder/internal/handler/dto/response"
	"bakery-preorder/internal/handler/httperr"
	"bakery-preorder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsQueries queries.NewsQueries
}

func NewNewsHandler(newsQueries queries.NewsQueries) *NewsHandler {
	return &NewsHandler{newsQueries: newsQueries}
}

// @Summary List update history
// @Tags news
// @Produce json
// @Success 200 {object} resdto.NewsListResponse
// @Router /news [get]
func (h *NewsHandler) ListUpdates(c *gin.Context) {
	h.list(c, news.KindUpdate)
}

// @Summary List event announcements
// @Tags news
// @Produce json
// @Success 200 {object} resdto.NewsListResponse
// @Router /news/events [get]
func (h *NewsHandler) ListEvents(c *gin.Context) {
	h.list(c, news.KindEvent)
}

func (h *NewsHandler) list(c *gin.Context, kind news.Kind) {
	entries, err := h.newsQueries.List(c.Request.Context(), kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNewsEntries(kind, entries))
}

// @Summary Set news preview
// @Description Shadow a news list with preview entries for this process lifetime
// @Tags news
// @Accept json
// @Param kind path string true "News kind (update or event)"
// @Param request body reqdto.SetNewsPreviewRequest true "Preview entries"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /news/preview/{kind} [put]
func (h *NewsHandler) SetPreview(c *gin.Context) {
	kind := news.Kind(c.Param("kind"))

	var req reqdto.SetNewsPreviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.newsQueries.SetPreview(kind, req.ToEntries()); err != nil {
		h.respondKindError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear news preview
// @Tags news
// @Param kind path string true "News kind (update or event)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /news/preview/{kind} [delete]
func (h *NewsHandler) ClearPreview(c *gin.Context) {
	kind := news.Kind(c.Param("kind"))

	if err := h.newsQueries.ClearPreview(kind); err != nil {
		h.respondKindError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NewsHandler) respondKindError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrUnknownNewsKind) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown news kind",
		})
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
