package request

import (
	"bakery-preorder/internal/domain/order"
)

// OrderItem is the committed state of one product control. A missing
// "selected" means the item was sent because it is checked.
type OrderItem struct {
	Product  string `json:"product" binding:"required"`
	Selected *bool  `json:"selected,omitempty"`
	Quantity *int   `json:"quantity,omitempty"`
}

type SubmitOrderRequest struct {
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	Email      *string     `json:"email,omitempty"`
	Items      []OrderItem `json:"items"`
	PickupDate string      `json:"pickup_date"`
	PickupTime string      `json:"pickup_time"`
	Notes      *string     `json:"notes,omitempty"`
	// Total is the total the form displayed when submitting; it is
	// cross-checked against the recomputed total.
	Total *int64 `json:"total,omitempty"`
}

func (r SubmitOrderRequest) ToSelections() []order.Selection {
	selections := make([]order.Selection, 0, len(r.Items))
	for _, item := range r.Items {
		selected := true
		if item.Selected != nil {
			selected = *item.Selected
		}
		selections = append(selections, order.Selection{
			Product:  item.Product,
			Selected: selected,
			Quantity: item.Quantity,
		})
	}
	return selections
}

func (r SubmitOrderRequest) ToParams() order.NewOrderRequestParams {
	params := order.NewOrderRequestParams{
		Name:       r.Name,
		Phone:      r.Phone,
		PickupDate: r.PickupDate,
		PickupTime: r.PickupTime,
		ShownTotal: r.Total,
	}
	if r.Email != nil {
		params.Email = *r.Email
	}
	if r.Notes != nil {
		params.Notes = *r.Notes
	}
	return params
}
