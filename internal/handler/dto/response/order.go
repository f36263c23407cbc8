package response

import (
	"bakery-preorder/internal/domain/order"
)

type OrderLineResponse struct {
	Product   string `json:"product"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	Status     string              `json:"status"`
	Lines      []OrderLineResponse `json:"lines"`
	Total      int64               `json:"total"`
	PickupDate string              `json:"pickup_date"`
	PickupTime string              `json:"pickup_time"`
}

func FromOrderRequest(req *order.OrderRequest) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(req.Lines()))
	for _, l := range req.Lines() {
		lines = append(lines, OrderLineResponse{
			Product:   l.Name(),
			UnitPrice: l.UnitPrice().Yen(),
			Quantity:  l.Quantity().Value(),
			Subtotal:  l.Subtotal().Yen(),
		})
	}
	return &OrderResponse{
		ID:         req.ID().String(),
		Status:     "accepted",
		Lines:      lines,
		Total:      req.Total().Yen(),
		PickupDate: req.PickupDate().String(),
		PickupTime: req.PickupTime().String(),
	}
}

type OfferingResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func FromOfferings(offerings []order.Offering) []OfferingResponse {
	out := make([]OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, OfferingResponse{Name: o.Name(), Price: o.UnitPrice().Yen()})
	}
	return out
}
