package api

import (
	"errors"
	"fmt"
	"net/http"

	"bakery-preorder/internal/domain/order"
	reqdto "bakery-preorder/internal/handler/dto/request"
	resdto "bakery-preorder/internal/handler/dto/response"
	"bakery-preorder/internal/handler/httperr"
	"bakery-preorder/internal/usecase/commands"
	"bakery-preorder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands  commands.OrderCommands
	catalogQueries queries.CatalogQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, catalogQueries queries.CatalogQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands:  orderCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary Submit pre-order
// @Description Validate a pre-order reservation and relay it as a chat notification
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitOrderRequest true "Order form state"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req reqdto.SubmitOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.SubmitOrder(c.Request.Context(), req)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderRequest(result.Order))
}

func (h *OrderHandler) respondSubmitError(c *gin.Context, err error) {
	var fieldErr *order.FieldError
	switch {
	case errors.Is(err, commands.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another order is currently being submitted",
		})
	case errors.Is(err, order.ErrNoProductSelected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Select at least one product",
		})
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("Please check field: %s", fieldErr.Label),
			"field": fieldErr.Label,
		})
	case errors.Is(err, commands.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Order validation failed",
		})
	case errors.Is(err, commands.ErrDeliveryFailed):
		// Failure reason is surfaced so the user can decide to resubmit;
		// nothing was stored, so the form state is untouched.
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Failed to send order notification",
			"reason": err.Error(),
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary List offerings
// @Description List the products available for pre-order
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OfferingResponse
// @Router /offerings [get]
func (h *OrderHandler) ListOfferings(c *gin.Context) {
	offerings := h.catalogQueries.ListOfferings()
	c.JSON(http.StatusOK, resdto.FromOfferings(offerings))
}
