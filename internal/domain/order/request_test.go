//go:build unit

package order_test

import (
	"errors"
	"testing"
	"time"

	"bakery-preorder/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("Asia/Tokyo", 9*60*60)

func validParams() order.NewOrderRequestParams {
	return order.NewOrderRequestParams{
		Name:       "山田太郎",
		Phone:      "090-1234-5678",
		Email:      "taro@example.com",
		PickupDate: "2026-09-01",
		PickupTime: "10:00",
		Notes:      "箱は分けてください",
	}
}

func validSelections() []order.Selection {
	return []order.Selection{
		{Product: "いちごケーキ", Selected: true, Quantity: intPtr(2)},
	}
}

func TestNewOrderRequest(t *testing.T) {
	catalog := testCatalog(t)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, jst)

	t.Run("basic success case", func(t *testing.T) {
		agg := catalog.Aggregate(validSelections())
		req, err := order.NewOrderRequest(now, jst, agg, validParams())
		require.NoError(t, err)

		assert.Equal(t, "山田太郎", req.Customer().String())
		assert.Equal(t, "090-1234-5678", req.Phone().String())
		assert.Equal(t, "taro@example.com", req.Email().String())
		assert.Equal(t, int64(1000), req.Total().Yen())
		assert.Equal(t, "2026-09-01", req.PickupDate().String())
		assert.Equal(t, "10:00", req.PickupTime().String())
		assert.Equal(t, "箱は分けてください", req.Note().String())
		require.Len(t, req.Lines(), 1)
		assert.Equal(t, int64(1000), req.Lines()[0].Subtotal().Yen())
	})

	t.Run("no product selected is reported first", func(t *testing.T) {
		// Even with every other field missing, the selection error wins.
		agg := catalog.Aggregate(nil)
		_, err := order.NewOrderRequest(now, jst, agg, order.NewOrderRequestParams{})
		assert.ErrorIs(t, err, order.ErrNoProductSelected)
	})

	t.Run("field errors carry the form label", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(p *order.NewOrderRequestParams)
			label  string
			errIs  error
		}{
			{
				name:   "missing name",
				mutate: func(p *order.NewOrderRequestParams) { p.Name = "" },
				label:  order.LabelName,
				errIs:  order.ErrNameRequired,
			},
			{
				name:   "invalid phone",
				mutate: func(p *order.NewOrderRequestParams) { p.Phone = "1234" },
				label:  order.LabelPhone,
				errIs:  order.ErrInvalidPhone,
			},
			{
				name:   "invalid email",
				mutate: func(p *order.NewOrderRequestParams) { p.Email = "nope" },
				label:  order.LabelEmail,
				errIs:  order.ErrInvalidEmail,
			},
			{
				name:   "unparsable pickup date",
				mutate: func(p *order.NewOrderRequestParams) { p.PickupDate = "tomorrow" },
				label:  order.LabelPickupDate,
				errIs:  order.ErrInvalidPickupDate,
			},
			{
				name:   "pickup date today",
				mutate: func(p *order.NewOrderRequestParams) { p.PickupDate = "2026-08-31" },
				label:  order.LabelPickupDate,
				errIs:  order.ErrPickupDateNotFuture,
			},
			{
				name:   "pickup date in the past",
				mutate: func(p *order.NewOrderRequestParams) { p.PickupDate = "2026-01-01" },
				label:  order.LabelPickupDate,
				errIs:  order.ErrPickupDateNotFuture,
			},
			{
				name:   "invalid pickup time",
				mutate: func(p *order.NewOrderRequestParams) { p.PickupTime = "25:00" },
				label:  order.LabelPickupTime,
				errIs:  order.ErrInvalidPickupTime,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				params := validParams()
				tc.mutate(&params)

				agg := catalog.Aggregate(validSelections())
				_, err := order.NewOrderRequest(now, jst, agg, params)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)

				var fieldErr *order.FieldError
				require.True(t, errors.As(err, &fieldErr))
				assert.Equal(t, tc.label, fieldErr.Label)
			})
		}
	})

	t.Run("missing quantity blocks submission", func(t *testing.T) {
		agg := catalog.Aggregate([]order.Selection{
			{Product: "いちごケーキ", Selected: true, Quantity: nil},
		})
		_, err := order.NewOrderRequest(now, jst, agg, validParams())
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)

		var fieldErr *order.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, order.LabelQuantity, fieldErr.Label)
	})

	t.Run("unknown product blocks submission", func(t *testing.T) {
		agg := catalog.Aggregate([]order.Selection{
			{Product: "幻のケーキ", Selected: true, Quantity: intPtr(1)},
		})
		_, err := order.NewOrderRequest(now, jst, agg, validParams())
		assert.ErrorIs(t, err, order.ErrUnknownProduct)
	})

	t.Run("displayed total must match the recomputed total", func(t *testing.T) {
		shown := int64(999)
		params := validParams()
		params.ShownTotal = &shown

		agg := catalog.Aggregate(validSelections())
		_, err := order.NewOrderRequest(now, jst, agg, params)
		assert.ErrorIs(t, err, order.ErrTotalMismatch)
	})

	t.Run("matching displayed total is accepted", func(t *testing.T) {
		shown := int64(1000)
		params := validParams()
		params.ShownTotal = &shown

		agg := catalog.Aggregate(validSelections())
		_, err := order.NewOrderRequest(now, jst, agg, params)
		assert.NoError(t, err)
	})

	t.Run("requests get unique IDs", func(t *testing.T) {
		agg := catalog.Aggregate(validSelections())
		first, err := order.NewOrderRequest(now, jst, agg, validParams())
		require.NoError(t, err)
		second, err := order.NewOrderRequest(now, jst, agg, validParams())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}
